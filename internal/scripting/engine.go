package scripting

import (
	"fmt"
	"os"
	"path/filepath"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// Engine wraps a single gopher-lua VM holding the NPC dialogue scripts.
// Single-goroutine access only (game loop).
type Engine struct {
	vm  *lua.LState
	log *zap.Logger
}

// NewEngine creates a Lua engine and loads all scripts from the given
// directory tree (scripts/npc/*.lua).
func NewEngine(scriptsDir string, log *zap.Logger) (*Engine, error) {
	vm := lua.NewState(lua.Options{
		SkipOpenLibs: false,
	})
	vm.SetGlobal("API_VERSION", lua.LNumber(1))

	e := &Engine{vm: vm, log: log}
	if err := e.loadDir(filepath.Join(scriptsDir, "npc")); err != nil {
		vm.Close()
		return nil, fmt.Errorf("load npc scripts: %w", err)
	}
	return e, nil
}

func (e *Engine) loadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // skip missing dirs
		}
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".lua" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := e.vm.DoFile(path); err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
		e.log.Debug("loaded lua script", zap.String("file", path))
	}
	return nil
}

func (e *Engine) Close() {
	e.vm.Close()
}

// TalkContext carries everything the dialogue script needs to pick a line.
type TalkContext struct {
	NpcKey     string
	NpcName    string
	PlayerName string
	QuestStage int // 0 none, 1 in progress, 2 rewarded
	Kills      int
	Required   int
}

// NpcTalk calls the Lua npc_talk function and returns the dialogue line.
// ok is false when no script handles the NPC; the caller falls back to a
// default line.
func (e *Engine) NpcTalk(ctx TalkContext) (string, bool) {
	fn := e.vm.GetGlobal("npc_talk")
	if fn == lua.LNil {
		return "", false
	}

	t := e.vm.NewTable()
	t.RawSetString("npc_key", lua.LString(ctx.NpcKey))
	t.RawSetString("npc_name", lua.LString(ctx.NpcName))
	t.RawSetString("player_name", lua.LString(ctx.PlayerName))
	t.RawSetString("quest_stage", lua.LNumber(ctx.QuestStage))
	t.RawSetString("kills", lua.LNumber(ctx.Kills))
	t.RawSetString("required", lua.LNumber(ctx.Required))

	if err := e.vm.CallByParam(lua.P{Fn: fn, NRet: 1, Protect: true}, t); err != nil {
		e.log.Error("npc_talk failed", zap.String("npc", ctx.NpcKey), zap.Error(err))
		return "", false
	}
	ret := e.vm.Get(-1)
	e.vm.Pop(1)
	if s, ok := ret.(lua.LString); ok && s != "" {
		return string(s), true
	}
	return "", false
}
