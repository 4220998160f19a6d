// Package config defines the format-agnostic model of a type catalogue and
// the Loader interface for reading it from manifest files.
//
// The `config.Model` is the single input of the builtins package. Concrete
// loaders, such as the HCL one, live in separate packages.
package config
