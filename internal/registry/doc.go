// Package registry owns the process-wide catalogue of built-in type
// descriptors.
//
// Types are declared once, in order, into an arena indexed by typedesc.ID.
// Declarations only carry what a type adds: its own slots and, for a few
// types, an explicit base or metatype. Resolve then links every type to its
// base and metatype, linearizes the inherited slot tables and asks the layout
// collaborator for weak-reference offsets. After Resolve the registry is
// read-only and may be shared between goroutines without locking.
//
// Configuration mistakes (cyclic bases, duplicate names, a missing root) are
// programming errors in a fixed catalogue and panic.
package registry
