package interpreter

import (
	"fmt"
	"strconv"
)

// Environment holds script variables. Entries are only added or overwritten
// during a session; Reset clears them when the session restarts.
type Environment struct {
	vars map[string]int
}

func NewEnvironment() *Environment {
	return &Environment{vars: make(map[string]int)}
}

func (e *Environment) Get(name string) (int, bool) {
	v, ok := e.vars[name]
	return v, ok
}

func (e *Environment) Set(name string, val int) {
	e.vars[name] = val
}

func (e *Environment) Len() int {
	return len(e.vars)
}

func (e *Environment) Reset() {
	clear(e.vars)
}

func (e *Environment) String() string {
	return fmt.Sprint(e.vars)
}

// Evaluate resolves a token to an integer: a base-10 literal, otherwise the
// named variable, otherwise 0. It never fails.
func Evaluate(token string, env *Environment) int {
	if n, ok := parseLiteral(token); ok {
		return n
	}
	v, _ := env.Get(token)
	return v
}

func parseLiteral(token string) (int, bool) {
	n, err := strconv.Atoi(token)
	if err != nil {
		return 0, false
	}
	return n, true
}
