// Package hcl provides the concrete HCL implementation of the config.Loader
// interface. It is responsible for manifest parsing, evaluation of the
// preset namespaces (`flags`, `mflags`) and HCL-to-model translation.
package hcl
