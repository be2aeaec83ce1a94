package transform

import (
	"context"
	"errors"
	"fmt"

	glua "github.com/yuin/gopher-lua"
)

// luaEntryPoint is the global function a transform script must define.
const luaEntryPoint = "transform"

// Lua runs a user script as a transformation. The script must define a
// global function transform(text) returning a string. A fresh Lua
// state is created per call so scripts cannot leak state between runs.
type Lua struct {
	name   string
	script string
}

// NewLua creates the provider. With an empty script the provider
// reports not ready and refuses to run.
func NewLua(name, script string) *Lua {
	if name == "" {
		name = "lua"
	}
	return &Lua{name: name, script: script}
}

// Name implements Provider.
func (l *Lua) Name() string { return l.name }

// Ready implements Provider.
func (l *Lua) Ready() bool { return l.script != "" }

// Run implements Provider.
func (l *Lua) Run(ctx context.Context, input string) (string, error) {
	if !l.Ready() {
		return "", ErrNotReady
	}

	L := glua.NewState()
	defer L.Close()
	L.SetContext(ctx)

	if err := L.DoString(l.script); err != nil {
		return "", fmt.Errorf("lua transform %s: %w", l.name, err)
	}

	fn, ok := L.GetGlobal(luaEntryPoint).(*glua.LFunction)
	if !ok {
		return "", fmt.Errorf("lua transform %s: %w", l.name, errMissingEntryPoint)
	}

	err := L.CallByParam(glua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}, glua.LString(input))
	if err != nil {
		return "", fmt.Errorf("lua transform %s: %w", l.name, err)
	}

	ret := L.Get(-1)
	L.Pop(1)

	str, ok := ret.(glua.LString)
	if !ok || str == "" {
		return "", ErrEmptyResult
	}
	return string(str), nil
}

var errMissingEntryPoint = errors.New("script does not define transform(text)")
