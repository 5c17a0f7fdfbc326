// Package scripting evaluates small content-defined predicates, such as
// occupation gates, in a restricted GopherLua state. It knows nothing about
// heroes; inputs arrive as named integer globals.
package scripting

import (
	"context"
	"sync/atomic"

	lua "github.com/yuin/gopher-lua"
)

// DefaultInstructionLimit caps the opcodes one predicate may execute.
const DefaultInstructionLimit = 10_000

// strippedGlobals are removed after the base library opens.
var strippedGlobals = []string{
	"dofile", "loadfile", "load", "loadstring", "collectgarbage", "require", "module",
	"print", "getfenv", "setfenv",
}

// opBudget is a context that cancels itself once Done has been polled more
// times than its budget allows. GopherLua polls Done once per opcode.
type opBudget struct {
	context.Context
	cancel context.CancelFunc
	left   atomic.Int64
}

func (b *opBudget) Done() <-chan struct{} {
	if b.left.Add(-1) < 0 {
		b.cancel()
	}
	return b.Context.Done()
}

// Sandbox is a single-use Lua state with only base and math available.
type Sandbox struct {
	L      *lua.LState
	cancel context.CancelFunc
}

// NewSandbox creates a Sandbox that errors after limit opcodes.
//
// Precondition: limit <= 0 selects DefaultInstructionLimit.
// Postcondition: The caller must Close the returned Sandbox.
func NewSandbox(limit int) *Sandbox {
	if limit <= 0 {
		limit = DefaultInstructionLimit
	}

	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	lua.OpenBase(L)
	lua.OpenMath(L)
	for _, name := range strippedGlobals {
		L.SetGlobal(name, lua.LNil)
	}

	ctx, cancel := context.WithCancel(context.Background())
	budget := &opBudget{Context: ctx, cancel: cancel}
	budget.left.Store(int64(limit))
	L.SetContext(budget)

	return &Sandbox{L: L, cancel: cancel}
}

// Close releases the state and its budget context.
func (s *Sandbox) Close() {
	s.cancel()
	s.L.Close()
}
