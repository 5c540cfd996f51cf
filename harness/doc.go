// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package harness runs assembly programs on a hardware simulator and checks
// the simulation results.
//
// A test is a source file containing a ';!test' line. Each ';!assert EXPR'
// line holds a Starlark expression that must evaluate to True against the
// globals of the results file the simulator's testbench writes. For each
// test the harness assembles the program, renders the instruction memory,
// runs the simulator, loads the results and evaluates the assertions.
package harness
