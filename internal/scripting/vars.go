package scripting

import (
	"sort"

	lua "github.com/yuin/gopher-lua"
)

// RegisterVars binds every entry of vars as a numeric global and mirrors them
// into a global table named "vars" for scripts that iterate.
//
// Precondition: L must be non-nil; keys must be valid Lua identifiers.
func RegisterVars(L *lua.LState, vars map[string]int) {
	tbl := L.NewTable()
	keys := make([]string, 0, len(vars))
	for k := range vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		v := lua.LNumber(vars[k])
		L.SetGlobal(k, v)
		tbl.RawSetString(k, v)
	}
	L.SetGlobal("vars", tbl)
}
