package testutil

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/rs/zerolog"
)

// NewTestRNG creates a deterministic random number generator for tests
func NewTestRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// NopLogger returns a no-op logger for tests
func NopLogger() zerolog.Logger {
	return zerolog.Nop()
}

// AssertPanic asserts that the given function panics
func AssertPanic(t *testing.T, f func(), msgAndArgs ...interface{}) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("Expected panic but none occurred: %v", msgAndArgs)
		}
	}()
	f()
}

// RecoverError runs f and returns the error it panicked with, or nil if it
// returned normally. Non-error panic values are wrapped with fmt.Errorf.
func RecoverError(f func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
				return
			}
			err = fmt.Errorf("%v", r)
		}
	}()
	f()
	return nil
}

// ScriptedRNG replays fixed values. Ints feed Intn, Floats feed Float64.
// Running out of values, or scripting an Intn value outside [0, n), panics
// so a test never silently consumes randomness it did not plan for.
type ScriptedRNG struct {
	Ints   []int
	Floats []float64
}

func (s *ScriptedRNG) Intn(n int) int {
	if len(s.Ints) == 0 {
		panic(fmt.Sprintf("ScriptedRNG: Intn(%d) called with no scripted ints left", n))
	}
	v := s.Ints[0]
	s.Ints = s.Ints[1:]
	if v < 0 || v >= n {
		panic(fmt.Sprintf("ScriptedRNG: scripted int %d outside [0,%d)", v, n))
	}
	return v
}

func (s *ScriptedRNG) Float64() float64 {
	if len(s.Floats) == 0 {
		panic("ScriptedRNG: Float64 called with no scripted floats left")
	}
	v := s.Floats[0]
	s.Floats = s.Floats[1:]
	return v
}

// Exhausted reports whether every scripted value has been consumed.
func (s *ScriptedRNG) Exhausted() bool {
	return len(s.Ints) == 0 && len(s.Floats) == 0
}
