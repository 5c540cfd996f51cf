// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package harness

import (
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Evaluate evaluates an assertion expression against the results globals.
// The assertion holds only if the expression evaluates to True.
func Evaluate(expr string, globals starlark.StringDict) (ok bool, err error) {
	thread := &starlark.Thread{Name: "assert"}
	opts := syntax.FileOptions{}

	env := make(starlark.StringDict, len(predeclared)+len(globals))
	for key, value := range predeclared {
		env[key] = value
	}
	for key, value := range globals {
		env[key] = value
	}

	value, err := starlark.EvalOptions(&opts, thread, "assert", expr, env)
	if err != nil {
		return
	}

	ok = value == starlark.True
	return
}
