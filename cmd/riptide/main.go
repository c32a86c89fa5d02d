package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/riptide/server/internal/config"
	"github.com/riptide/server/internal/core/event"
	coresys "github.com/riptide/server/internal/core/system"
	"github.com/riptide/server/internal/data"
	"github.com/riptide/server/internal/handler"
	gamenet "github.com/riptide/server/internal/net"
	"github.com/riptide/server/internal/persist"
	"github.com/riptide/server/internal/scripting"
	gamesys "github.com/riptide/server/internal/system"
	"github.com/riptide/server/internal/world"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "fatal:", err)
		os.Exit(1)
	}
}

func run() error {
	cfgPath := flag.String("config", "config/server.toml", "path to config file")
	flag.Parse()
	if env := os.Getenv("RIPTIDE_CONFIG"); env != "" {
		*cfgPath = env
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return err
	}

	log, err := newLogger(cfg.Logging)
	if err != nil {
		return err
	}
	defer log.Sync()

	log.Info("starting", zap.String("server", cfg.Server.Name),
		zap.Int("steps_per_second", cfg.Simulation.StepsPerSecond))

	// Persistence is optional: a failed connect or migration logs and the
	// server runs without saves.
	var gateway *persist.Gateway
	if cfg.Database.Enabled {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		db, err := persist.NewDB(ctx, cfg.Database, log)
		if err == nil {
			err = persist.RunMigrations(ctx, db.Pool)
		}
		cancel()
		if err != nil {
			log.Error("database unavailable, running without persistence", zap.Error(err))
		} else {
			defer db.Close()
			gateway = persist.NewGateway(persist.NewPlayerRepo(db), log)
		}
	}

	zones, err := data.LoadZoneTable(filepath.Join(cfg.Server.DataDir, "zones.yaml"))
	if err != nil {
		return err
	}
	items, err := data.LoadItemTable(filepath.Join(cfg.Server.DataDir, "items.yaml"))
	if err != nil {
		return err
	}
	mobs, err := data.LoadMobTable(filepath.Join(cfg.Server.DataDir, "mobs.yaml"))
	if err != nil {
		return err
	}
	npcs, err := data.LoadNpcTable(filepath.Join(cfg.Server.DataDir, "npcs.yaml"))
	if err != nil {
		return err
	}
	log.Info("data tables loaded",
		zap.Int("zones", zones.Count()),
		zap.Int("items", items.Count()),
		zap.Int("mobs", mobs.Count()),
		zap.Int("npcs", npcs.Count()))

	ws := world.NewState()
	ws.SetNow(time.Now())
	for _, id := range zones.IDs() {
		ws.AddZone(world.NewZone(zones.Get(id)))
	}
	if ws.Zone(cfg.Server.StartZone) == nil {
		return fmt.Errorf("start zone %d not defined", cfg.Server.StartZone)
	}
	spawnMobs(ws, mobs)
	spawnNpcs(ws, npcs)
	log.Info("world ready",
		zap.Int("zones", ws.ZoneCount()),
		zap.Int("mobs", len(ws.Mobs())),
		zap.Int("npcs", ws.NpcCount()))

	engine, err := scripting.NewEngine(cfg.Server.ScriptDir, log)
	if err != nil {
		log.Error("scripting unavailable, using built-in dialogue", zap.Error(err))
		engine = nil
	} else {
		defer engine.Close()
	}

	bus := event.NewBus()
	deps := &handler.Deps{
		Config:    cfg,
		Log:       log,
		World:     ws,
		Items:     items,
		Mobs:      mobs,
		Npcs:      npcs,
		Scripting: engine,
		Gateway:   gateway,
		Bus:       bus,
	}
	handler.WireEvents(deps)

	server := gamenet.NewServer(cfg.Network, cfg.Server.ClientDir, log)
	go func() {
		if err := server.ListenAndServe(); err != nil {
			log.Error("listener stopped", zap.Error(err))
		}
	}()
	log.Info("listening", zap.String("addr", server.Addr()))

	runner := coresys.NewRunner()
	runner.Register(gamesys.NewInputSystem(deps, server))
	runner.Register(gamesys.NewEventDispatchSystem(bus))
	runner.Register(gamesys.NewMovementSystem(deps))
	runner.Register(gamesys.NewSkillSystem(deps))
	runner.Register(gamesys.NewMobAISystem(deps))
	runner.Register(gamesys.NewProjectileSystem(deps))
	runner.Register(gamesys.NewAreaEffectSystem(deps))
	runner.Register(gamesys.NewDropSystem(deps))
	runner.Register(gamesys.NewRespawnSystem(deps))
	runner.Register(gamesys.NewSnapshotSystem(deps))
	runner.Register(gamesys.NewPersistenceSystem(deps))

	loop := coresys.NewLoop(cfg.Simulation.StepDT(), cfg.Simulation.MaxStepsPerFrame,
		func(now time.Time, dt time.Duration) {
			ws.SetNow(now)
			runner.Tick(dt)
		})

	stop := make(chan struct{})
	done := make(chan struct{})
	go func() {
		loop.Run(stop)
		close(done)
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	s := <-sig
	log.Info("shutting down", zap.String("signal", s.String()))

	close(stop)
	<-done

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	server.Shutdown(shutdownCtx)

	if gateway.Enabled() {
		gateway.Close()
		ws.AllPlayers(func(p *world.Player) {
			if p.Name != "" {
				gateway.SaveSync(shutdownCtx, handler.RecordFor(p))
			}
		})
		log.Info("final saves flushed", zap.Int("players", ws.PlayerCount()))
	}
	return nil
}

func spawnMobs(ws *world.State, mobs *data.MobTable) {
	for _, sp := range mobs.Spawns() {
		tmpl := mobs.Get(sp.Type)
		z := ws.Zone(sp.ZoneID)
		if tmpl == nil || z == nil {
			continue
		}
		count := sp.Count
		if count <= 0 {
			count = 1
		}
		for i := 0; i < count; i++ {
			x := sp.X + (rand.Float64()*2-1)*sp.Spread
			y := sp.Y + (rand.Float64()*2-1)*sp.Spread
			x, y = z.Clamp(x, y, tmpl.Radius)
			ws.AddMob(world.NewMob(ws.NextID(), tmpl, sp.ZoneID, x, y))
		}
	}
}

func spawnNpcs(ws *world.State, npcs *data.NpcTable) {
	for _, def := range npcs.All() {
		if ws.Zone(def.ZoneID) == nil {
			continue
		}
		n := &world.NPC{
			ID:     ws.NextID(),
			ZoneID: def.ZoneID,
			X:      def.X,
			Y:      def.Y,
			Key:    def.Key,
			Name:   def.Name,
			Sprite: def.Sprite,
		}
		if def.Quest != nil {
			n.Quest = def.Quest.ID
		}
		ws.AddNpc(n)
	}
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", cfg.Level, err)
	}
	var zc zap.Config
	if cfg.Format == "json" {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	return zc.Build()
}
