// Package luatransform rewrites greeting text with a small user supplied Lua
// script run in a restricted interpreter.
//
// The script sees the globals text, name and code and must return a string:
//
//	return string.upper(text)
package luatransform

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"math/rand"
	"strings"
	"time"

	lua "github.com/yuin/gopher-lua"
)

const (
	// DefaultTimeout bounds a single script run.
	DefaultTimeout = 500 * time.Millisecond

	sandboxTimeoutViolation = "sandbox timeout"
	sandboxMemoryViolation  = "sandbox memory limit"
	registryMaxSize         = 4096
	maxResultBytes          = 64 * 1024
)

// Input is what the script can read.
type Input struct {
	Text string
	Name string
	Code string
}

// Transformer runs one compiled-once script against many greetings.
type Transformer struct {
	code    string
	timeout time.Duration
}

// New checks that code compiles and returns a Transformer for it.
func New(code string, timeout time.Duration) (*Transformer, error) {
	if strings.TrimSpace(code) == "" {
		return nil, errors.New("lua transform: empty script")
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	L := newSandboxState(0)
	defer L.Close()
	if _, err := L.LoadString(code); err != nil {
		return nil, fmt.Errorf("lua transform: %w", err)
	}
	return &Transformer{code: code, timeout: timeout}, nil
}

// Apply runs the script for in and returns the string it produced.
func (t *Transformer) Apply(ctx context.Context, in Input) (string, error) {
	L := newSandboxState(greetingSeed(in))
	defer L.Close()

	runCtx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()
	L.SetContext(runCtx)

	L.SetGlobal("text", lua.LString(in.Text))
	L.SetGlobal("name", lua.LString(in.Name))
	L.SetGlobal("code", lua.LString(in.Code))

	fn, err := L.LoadString(t.code)
	if err != nil {
		return "", fmt.Errorf("lua transform: %w", err)
	}
	L.Push(fn)
	if err := L.PCall(0, 1, nil); err != nil {
		if isTimeoutError(err) {
			return "", fmt.Errorf("lua transform: %s", sandboxTimeoutViolation)
		}
		if strings.Contains(strings.ToLower(err.Error()), "registry overflow") {
			return "", fmt.Errorf("lua transform: %s", sandboxMemoryViolation)
		}
		return "", fmt.Errorf("lua transform: %w", err)
	}
	ret := L.Get(-1)
	L.Pop(1)
	s, ok := ret.(lua.LString)
	if !ok {
		return "", fmt.Errorf("lua transform: script must return a string, got %s", ret.Type())
	}
	if len(s) > maxResultBytes {
		return "", fmt.Errorf("lua transform: %s", sandboxMemoryViolation)
	}
	return string(s), nil
}

var sandboxLibs = []struct {
	name string
	open lua.LGFunction
}{
	{lua.BaseLibName, lua.OpenBase},
	{lua.StringLibName, lua.OpenString},
	{lua.TabLibName, lua.OpenTable},
	{lua.MathLibName, lua.OpenMath},
}

// newSandboxState opens base, string, table and math only, with math.random
// drawing from a generator seeded per greeting.
func newSandboxState(seed int64) *lua.LState {
	L := lua.NewState(lua.Options{
		SkipOpenLibs:    true,
		RegistrySize:    256,
		RegistryMaxSize: registryMaxSize,
	})
	for _, lib := range sandboxLibs {
		L.Push(L.NewFunction(lib.open))
		L.Push(lua.LString(lib.name))
		L.Call(1, 0)
	}
	for _, g := range []string{"dofile", "loadfile", "require", "module"} {
		L.SetGlobal(g, lua.LNil)
	}
	if math, ok := L.GetGlobal("math").(*lua.LTable); ok {
		math.RawSetString("random", L.NewFunction(greetingRandom(rand.New(rand.NewSource(seed)))))
		math.RawSetString("randomseed", L.NewFunction(func(*lua.LState) int { return 0 }))
	}
	return L
}

// greetingSeed keys the generator on the language and the name so a script
// gives the same answer for the same greeting.
func greetingSeed(in Input) int64 {
	h := fnv.New64a()
	_, _ = fmt.Fprintf(h, "%s\x00%s", in.Code, in.Name)
	return int64(h.Sum64() >> 1)
}

// greetingRandom implements math.random(n) in [1, n] and
// math.random(lo, hi) in [lo, hi].
func greetingRandom(rng *rand.Rand) lua.LGFunction {
	return func(L *lua.LState) int {
		lo, hi := 1, 0
		switch L.GetTop() {
		case 1:
			hi = L.CheckInt(1)
		case 2:
			lo, hi = L.CheckInt(1), L.CheckInt(2)
		default:
			L.RaiseError("math.random expects 1 or 2 arguments")
			return 0
		}
		if hi < lo {
			L.ArgError(L.GetTop(), "interval is empty")
			return 0
		}
		L.Push(lua.LNumber(lo + rng.Intn(hi-lo+1)))
		return 1
	}
}

func isTimeoutError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "deadline") || strings.Contains(msg, "context canceled")
}
