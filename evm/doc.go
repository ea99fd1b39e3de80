/*
Package evm implements the dispatch table and interpreter loop for a
substantial subset of the Ethereum Virtual Machine.

The evm package loops over a string of opcode bytes and executes them
against an operand stack, a flat byte-addressed memory, and a persistent
key/value store, following the rules the Ethereum yellow paper gives for
256-bit wrapping arithmetic, control flow, and the core op set.
CALL-family opcodes, gas metering, and state-sync across invocations are
out of scope; see package interpreter for the public entry point.
*/
package evm
