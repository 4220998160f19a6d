// Package typedesc defines the descriptor record kept for every built-in
// type: its naming, categorical flags, fast-path method flags, declared and
// computed slot tables and the links to its base type and metatype.
//
// Descriptors are created unresolved. The registry fills in the links and
// the computed slots in a single resolution pass and then freezes them; from
// that point on only the special-method cache may change, exactly once.
package typedesc
