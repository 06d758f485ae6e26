package lua

import (
	lua "github.com/yuin/gopher-lua"
)

// removedGlobals load code from outside the sandbox.
var removedGlobals = []string{
	"dofile",
	"loadfile",
	"load",
	"loadstring",
	"require",
	"module",
}

// openSafeLibraries opens only safe Lua standard libraries.
func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
}

// installSandbox removes the chunk loaders from the globals.
func installSandbox(L *lua.LState) {
	for _, name := range removedGlobals {
		L.SetGlobal(name, lua.LNil)
	}
}

// SetPrint replaces the print global. The terminal is in raw mode while
// scripts run, so output must go somewhere other than stdout.
func (s *State) SetPrint(fn func(msg string)) {
	s.L.SetGlobal("print", s.L.NewFunction(func(L *lua.LState) int {
		n := L.GetTop()
		var msg []byte
		for i := 1; i <= n; i++ {
			if i > 1 {
				msg = append(msg, '\t')
			}
			msg = append(msg, L.ToStringMeta(L.Get(i)).String()...)
		}
		fn(string(msg))
		return 0
	}))
}
