package persist

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// playerStore is the slice of PlayerRepo the gateway drives.
type playerStore interface {
	Load(ctx context.Context, name string) (*PlayerRecord, error)
	Save(ctx context.Context, rec *PlayerRecord) error
}

// Gateway is the async persistence boundary. Loads run on their own
// goroutines; saves are queued to a single worker so writes for the same
// player land in the order they were issued and the newest state wins.
// Load results are handed back to the loop through Drain. A nil repo puts
// the gateway in degraded (non-persistent) mode where every call is a no-op.
type Gateway struct {
	repo        playerStore
	log         *zap.Logger
	completions chan func()
	saves       chan PlayerRecord
	saverDone   chan struct{}
}

func NewGateway(repo *PlayerRepo, log *zap.Logger) *Gateway {
	var store playerStore
	if repo != nil {
		store = repo
	}
	return newGateway(store, log)
}

func newGateway(store playerStore, log *zap.Logger) *Gateway {
	g := &Gateway{
		repo:        store,
		log:         log,
		completions: make(chan func(), 64),
		saves:       make(chan PlayerRecord, 256),
		saverDone:   make(chan struct{}),
	}
	if store != nil {
		go g.saveWorker()
	}
	return g
}

// Enabled reports whether a database is attached.
func (g *Gateway) Enabled() bool { return g != nil && g.repo != nil }

// LoadAsync fetches a record by name off the loop. apply runs later on the
// game loop goroutine (via Drain) with a nil record when no row exists or
// the load failed; the caller re-validates session state inside apply.
func (g *Gateway) LoadAsync(name string, apply func(rec *PlayerRecord)) {
	if !g.Enabled() {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		rec, err := g.repo.Load(ctx, name)
		if err != nil {
			g.log.Error("player load failed", zap.String("name", name), zap.Error(err))
			rec = nil
		}
		select {
		case g.completions <- func() { apply(rec) }:
		default:
			g.log.Warn("persistence completion queue full, dropping load result",
				zap.String("name", name))
		}
	}()
}

// SaveAsync queues a record for the save worker. rec is a value copy, so a
// save in flight can never reach back into a since-removed player.
func (g *Gateway) SaveAsync(rec PlayerRecord) {
	if !g.Enabled() {
		return
	}
	select {
	case g.saves <- rec:
	default:
		g.log.Warn("save queue full, dropping save", zap.String("name", rec.Name))
	}
}

// saveWorker drains the save queue one record at a time. Serializing the
// writes here is what keeps a slow autosave from landing after a newer
// disconnect save for the same player.
func (g *Gateway) saveWorker() {
	defer close(g.saverDone)
	for rec := range g.saves {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := g.repo.Save(ctx, &rec); err != nil {
			g.log.Error("player save failed", zap.String("name", rec.Name), zap.Error(err))
		}
		cancel()
	}
}

// Close flushes queued saves and stops the worker. Called at shutdown
// before the final synchronous saves so those remain the last writes.
func (g *Gateway) Close() {
	if !g.Enabled() {
		return
	}
	close(g.saves)
	<-g.saverDone
}

// SaveSync writes a record on the caller's goroutine. Shutdown path only,
// after Close.
func (g *Gateway) SaveSync(ctx context.Context, rec PlayerRecord) {
	if !g.Enabled() {
		return
	}
	if err := g.repo.Save(ctx, &rec); err != nil {
		g.log.Error("player save failed", zap.String("name", rec.Name), zap.Error(err))
	}
}

// Drain runs queued load completions on the caller's goroutine. Called once
// per tick from the input phase so all state mutation stays on the loop.
func (g *Gateway) Drain() {
	if g == nil {
		return
	}
	for {
		select {
		case fn := <-g.completions:
			fn()
		default:
			return
		}
	}
}
