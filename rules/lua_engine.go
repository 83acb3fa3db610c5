// Package rules runs game rules written in Lua behind contract.Engine.
// A script returns a module with new, execute, public, private and actions functions.
package rules

import (
	_ "embed"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"game-lab/contract"
	"os"
	"strings"
	"sync"

	lua "github.com/yuin/gopher-lua"
	"github.com/yuin/gopher-lua/parse"
)

//go:embed scripts/turns.lua
var defaultScript string

var (
	_ contract.EngineFactory = (*LuaFactory)(nil)
	_ contract.Engine        = (*LuaEngine)(nil)
	_ contract.ReasonedError = (*RulesError)(nil)
)

// RulesError is a rejection raised by the script with error({reason = CODE}).
type RulesError struct {
	reason string
}

func (e *RulesError) Error() string  { return fmt.Sprintf("rules rejected action: %s", e.reason) }
func (e *RulesError) Reason() string { return e.reason }

// LuaFactory compiles a script once and starts one Lua state per room.
type LuaFactory struct {
	name  string
	proto *lua.FunctionProto
}

// NewDefaultFactory uses the embedded turns.lua rules.
func NewDefaultFactory() (*LuaFactory, error) {
	return NewFactory("turns.lua", defaultScript)
}

// NewFactoryFromFile loads rules from path, or the embedded rules when path is empty.
func NewFactoryFromFile(path string) (*LuaFactory, error) {
	if path == "" {
		return NewDefaultFactory()
	}
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read rules script: %w", err)
	}
	return NewFactory(path, string(source))
}

func NewFactory(name, source string) (*LuaFactory, error) {
	chunk, err := parse.Parse(strings.NewReader(source), name)
	if err != nil {
		return nil, fmt.Errorf("unable to parse rules script %s: %w", name, err)
	}
	proto, err := lua.Compile(chunk, name)
	if err != nil {
		return nil, fmt.Errorf("unable to compile rules script %s: %w", name, err)
	}
	return &LuaFactory{name: name, proto: proto}, nil
}

func (f *LuaFactory) New(cfg contract.EngineConfig) (contract.Engine, error) {
	L := newSandbox()
	L.Push(L.NewFunctionFromProto(f.proto))
	if err := L.PCall(0, 1, nil); err != nil {
		L.Close()
		return nil, fmt.Errorf("unable to load rules script %s: %w", f.name, err)
	}
	module, ok := L.Get(-1).(*lua.LTable)
	L.Pop(1)
	if !ok {
		L.Close()
		return nil, fmt.Errorf("rules script %s must return a table", f.name)
	}

	engine := &LuaEngine{L: L, module: module, hook: cfg.OnActionCompleted}
	names := L.NewTable()
	for _, name := range cfg.DisplayNames {
		names.Append(lua.LString(name))
	}
	rets, err := engine.call("new", 1, names, lua.LBool(cfg.AutoCollect))
	if err != nil {
		L.Close()
		return nil, err
	}
	engine.game = rets[0]
	return engine, nil
}

// newSandbox opens the libraries a rules script needs and nothing else.
func newSandbox() *lua.LState {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	for _, lib := range []struct {
		name string
		open lua.LGFunction
	}{
		{lua.BaseLibName, lua.OpenBase},
		{lua.TabLibName, lua.OpenTable},
		{lua.StringLibName, lua.OpenString},
		{lua.MathLibName, lua.OpenMath},
	} {
		L.Push(L.NewFunction(lib.open))
		L.Push(lua.LString(lib.name))
		L.Call(1, 0)
	}
	for _, unsafe := range []string{"dofile", "loadfile", "load", "loadstring", "require", "module"} {
		L.SetGlobal(unsafe, lua.LNil)
	}
	return L
}

// LuaEngine is one running game. An LState is not goroutine safe, mu guards it.
type LuaEngine struct {
	mu     sync.Mutex
	L      *lua.LState
	module *lua.LTable
	game   lua.LValue
	hook   contract.ActionHook
}

// ExecuteAction applies the action, then reports every completed action to the hook,
// including the ones the rules chained automatically.
// The hook runs once the Lua state is released, so it may read the state back.
func (e *LuaEngine) ExecuteAction(seat int, action string, args json.RawMessage) error {
	completed, err := e.execute(seat, action, args)
	if err != nil || e.hook == nil {
		return err
	}
	for _, c := range completed {
		e.hook(c.action, c.seat, c.args)
	}
	return nil
}

type completedAction struct {
	action string
	seat   int
	args   json.RawMessage
}

func (e *LuaEngine) execute(seat int, action string, args json.RawMessage) ([]completedAction, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	luaArgs, err := jsonToLua(e.L, args)
	if err != nil {
		return nil, &RulesError{reason: "INVALID_ARGUMENTS"}
	}
	rets, err := e.call("execute", 1, e.game, lua.LNumber(seat), lua.LString(action), luaArgs)
	if err != nil {
		return nil, err
	}
	table, ok := rets[0].(*lua.LTable)
	if !ok {
		return nil, nil
	}
	var completed []completedAction
	for i := 1; i <= table.Len(); i++ {
		entry, ok := table.RawGetInt(i).(*lua.LTable)
		if !ok {
			continue
		}
		c := completedAction{
			action: lua.LVAsString(entry.RawGetString("action")),
			seat:   int(lua.LVAsNumber(entry.RawGetString("seat"))),
		}
		if c.action == action && c.seat == seat {
			c.args = args
		}
		completed = append(completed, c)
	}
	return completed, nil
}

func (e *LuaEngine) PublicState() (map[string]any, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	rets, err := e.call("public", 1, e.game)
	if err != nil {
		return nil, err
	}
	return toMap(rets[0]), nil
}

func (e *LuaEngine) PrivateState(seat int) (map[string]any, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	rets, err := e.call("private", 1, e.game, lua.LNumber(seat))
	if err != nil {
		return nil, err
	}
	return toMap(rets[0]), nil
}

func (e *LuaEngine) AvailableActions(seat int) ([]string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	rets, err := e.call("actions", 1, e.game, lua.LNumber(seat))
	if err != nil {
		return nil, err
	}
	actions := []string{}
	if table, ok := rets[0].(*lua.LTable); ok {
		table.ForEach(func(_, v lua.LValue) {
			if s, ok := v.(lua.LString); ok {
				actions = append(actions, string(s))
			}
		})
	}
	return actions, nil
}

// Close releases the Lua state.
func (e *LuaEngine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.L.Close()
}

func (e *LuaEngine) call(fn string, nret int, args ...lua.LValue) ([]lua.LValue, error) {
	f := e.module.RawGetString(fn)
	if f.Type() != lua.LTFunction {
		return nil, fmt.Errorf("rules script has no %q function", fn)
	}
	if err := e.L.CallByParam(lua.P{Fn: f, NRet: nret, Protect: true}, args...); err != nil {
		return nil, rulesError(err)
	}
	rets := make([]lua.LValue, nret)
	for i := nret - 1; i >= 0; i-- {
		rets[i] = e.L.Get(-1)
		e.L.Pop(1)
	}
	return rets, nil
}

// rulesError turns error({reason = CODE}) into a *RulesError.
// Anything else is a script failure.
func rulesError(err error) error {
	var apiErr *lua.ApiError
	if stderrors.As(err, &apiErr) {
		if table, ok := apiErr.Object.(*lua.LTable); ok {
			if reason, ok := table.RawGetString("reason").(lua.LString); ok && reason != "" {
				return &RulesError{reason: string(reason)}
			}
		}
	}
	return fmt.Errorf("rules script failed: %w", err)
}
