// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the primary execution lifecycle: load the
// type catalogue, build and resolve the registry, optionally verify it
// against the contributor units, and report on the requested types. It is
// decoupled from any specific entrypoint like a CLI.
package app
