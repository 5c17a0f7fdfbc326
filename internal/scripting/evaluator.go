package scripting

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	lua "github.com/yuin/gopher-lua"
	"github.com/yuin/gopher-lua/parse"
	"go.uber.org/zap"
)

// ErrEmptyExpression is returned when a blank predicate is compiled.
var ErrEmptyExpression = errors.New("scripting: empty expression")

// Evaluator compiles boolean Lua expressions once and evaluates them against
// integer inputs in a fresh sandboxed state per call.
//
// Evaluator is safe for concurrent use.
type Evaluator struct {
	mu        sync.RWMutex
	protos    map[string]*lua.FunctionProto
	instLimit int
	logger    *zap.Logger
}

// NewEvaluator creates an Evaluator.
//
// Precondition: logger must be non-nil; instLimit <= 0 uses DefaultInstructionLimit.
func NewEvaluator(instLimit int, logger *zap.Logger) *Evaluator {
	return &Evaluator{
		protos:    make(map[string]*lua.FunctionProto),
		instLimit: instLimit,
		logger:    logger,
	}
}

// Compile parses expr and caches its bytecode. Content loaders call Compile to
// reject bad expressions before any evaluation.
//
// Postcondition: a nil error means Eval(expr, ...) will not fail to compile.
func (e *Evaluator) Compile(expr string) error {
	_, err := e.proto(expr)
	return err
}

func (e *Evaluator) proto(expr string) (*lua.FunctionProto, error) {
	key := strings.TrimSpace(expr)
	if key == "" {
		return nil, ErrEmptyExpression
	}

	e.mu.RLock()
	p, ok := e.protos[key]
	e.mu.RUnlock()
	if ok {
		return p, nil
	}

	src := "return (" + key + ")"
	chunk, err := parse.Parse(strings.NewReader(src), key)
	if err != nil {
		return nil, fmt.Errorf("scripting: parsing %q: %w", key, err)
	}
	p, err = lua.Compile(chunk, key)
	if err != nil {
		return nil, fmt.Errorf("scripting: compiling %q: %w", key, err)
	}

	e.mu.Lock()
	e.protos[key] = p
	e.mu.Unlock()
	return p, nil
}

// Eval evaluates expr with vars bound as globals and returns its Lua truthiness.
//
// Precondition: vars keys are valid Lua identifiers.
// Postcondition: returns an error on compile failure, runtime error, or when the
// instruction limit is exceeded.
func (e *Evaluator) Eval(expr string, vars map[string]int) (bool, error) {
	p, err := e.proto(expr)
	if err != nil {
		return false, err
	}

	sb := NewSandbox(e.instLimit)
	defer sb.Close()
	L := sb.L
	RegisterVars(L, vars)

	L.Push(L.NewFunctionFromProto(p))
	if err := L.PCall(0, 1, nil); err != nil {
		e.logger.Warn("scripting: predicate failed",
			zap.String("expr", expr),
			zap.Error(err),
		)
		return false, fmt.Errorf("scripting: evaluating %q: %w", expr, err)
	}
	ret := L.Get(-1)
	L.Pop(1)
	return lua.LVAsBool(ret), nil
}
