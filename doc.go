// Package circuits provides typed gadgets for building arithmetic circuits
// over the BLS12-377 scalar field.
//
// A gadget value is a vector of boolean wires inside a constraint system.
// Every wire carries a visibility mode (constant, public or private) and an
// eagerly known witness value, so a circuit is constructed and checked for
// satisfiability in a single pass.
//
// The packages are organised bottom up:
//
//   - circuit: the constraint system environment (variables, linear
//     combinations, R1CS constraints, scopes, satisfiability)
//   - types/boolean: the boolean wire gadget
//   - types/field: the field element gadget
//   - types/integers: fixed-width signed and unsigned integers (8 to 128
//     bits) with wrapped and checked arithmetic
package circuits
