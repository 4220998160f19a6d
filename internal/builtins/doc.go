// Package builtins assembles the interpreter's built-in type catalogue.
//
// The catalogue is split in two halves that must agree. The manifests under
// manifest/ declare every type: its name, module, flags, explicit base or
// metatype, and the builtin-definition units making up its declared slots.
// The units declared in this package contribute the slot implementations.
// Build joins the two into a resolved registry.Registry; Default does so once
// for the embedded manifests.
package builtins
