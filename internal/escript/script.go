package escript

import _ "embed"

// ScriptName is the driver script's file name. It is written under the
// artifact directory before each spawn, and its path is the worker's sole
// command-line argument.
const ScriptName = "rift@@compile.erl"

// Script is the embedded driver script implementing the worker side of the
// protocol: read one unit-separator-joined request line, compile, answer
// "ok" or "err", repeat.
//
//go:embed template/rift@@compile.erl
var Script []byte
