// Package motion runs user-scripted motions in a sandboxed Lua state.
//
// A motion script defines a global function:
//
//	function positions(buffer)
//	    return { 1, 5, 9 }
//	end
//
// returning 1-based rune positions in strictly ascending order. The script
// is compiled once; every jump invocation calls positions with the current
// buffer snapshot. The Lua state is sandboxed: no io, os, debug, or module
// loading, only base, table, string, and math libraries.
package motion

import (
	"errors"
	"fmt"
	"sync"
	"unicode/utf8"

	lua "github.com/yuin/gopher-lua"
)

// Errors returned by scripted motions.
var (
	// ErrScriptClosed indicates the script state was already closed.
	ErrScriptClosed = errors.New("motion script is closed")

	// ErrNoPositionsFunc indicates the script does not define positions().
	ErrNoPositionsFunc = errors.New("script must define a positions function")

	// ErrBadResult indicates positions() returned something other than an
	// ascending table of in-range integers.
	ErrBadResult = errors.New("invalid positions result")
)

// Script is a compiled, sandboxed motion script. It implements the engine's
// Finder contract.
//
// gopher-lua states are not goroutine-safe; the mutex serializes calls from
// Go. Lua execution itself is single-threaded.
type Script struct {
	mu     sync.Mutex
	state  *lua.LState
	closed bool
}

// Load compiles source in a fresh sandboxed state and verifies it defines a
// positions function.
func Load(source string) (*Script, error) {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	openSafeLibraries(L)
	installSandbox(L)

	if err := doWithRecovery(func() error { return L.DoString(source) }); err != nil {
		L.Close()
		return nil, fmt.Errorf("loading motion script: %w", err)
	}

	fn := L.GetGlobal("positions")
	if fn.Type() != lua.LTFunction {
		L.Close()
		return nil, fmt.Errorf("%w (got %s)", ErrNoPositionsFunc, fn.Type())
	}

	return &Script{state: L}, nil
}

// Find calls positions(buffer) and validates the result.
func (s *Script) Find(buffer string) ([]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, ErrScriptClosed
	}

	L := s.state
	var ret lua.LValue
	err := doWithRecovery(func() error {
		if err := L.CallByParam(lua.P{
			Fn:      L.GetGlobal("positions"),
			NRet:    1,
			Protect: true,
		}, lua.LString(buffer)); err != nil {
			return err
		}
		ret = L.Get(-1)
		L.Pop(1)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("calling positions: %w", err)
	}

	return validate(ret, utf8.RuneCountInString(buffer))
}

// Close releases the Lua state. It is safe to call more than once.
func (s *Script) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.closed {
		s.closed = true
		s.state.Close()
	}
}

// validate converts the Lua return value into ascending in-range positions.
func validate(v lua.LValue, bufLen int) ([]int, error) {
	table, ok := v.(*lua.LTable)
	if !ok {
		return nil, fmt.Errorf("%w: expected table, got %s", ErrBadResult, v.Type())
	}

	positions := []int{}
	n := table.Len()
	for i := 1; i <= n; i++ {
		item := table.RawGetInt(i)
		num, ok := item.(lua.LNumber)
		if !ok {
			return nil, fmt.Errorf("%w: element %d is %s, want number", ErrBadResult, i, item.Type())
		}
		pos := int(num)
		if lua.LNumber(pos) != num {
			return nil, fmt.Errorf("%w: element %d (%v) is not an integer", ErrBadResult, i, num)
		}
		if pos < 1 || pos > bufLen {
			return nil, fmt.Errorf("%w: position %d out of range 1..%d", ErrBadResult, pos, bufLen)
		}
		if len(positions) > 0 && pos <= positions[len(positions)-1] {
			return nil, fmt.Errorf("%w: positions must be strictly ascending", ErrBadResult)
		}
		positions = append(positions, pos)
	}
	return positions, nil
}

// openSafeLibraries opens only side-effect-free Lua standard libraries.
func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
	// io, os, debug, and package stay closed: scripts compute positions,
	// nothing else.
}

// installSandbox removes base functions that could escape the sandbox.
func installSandbox(L *lua.LState) {
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring"} {
		L.SetGlobal(name, lua.LNil)
	}
}

// doWithRecovery executes fn converting Lua panics into errors.
func doWithRecovery(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("lua panic: %v", r)
		}
	}()
	return fn()
}
