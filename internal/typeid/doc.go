/*
Package typeid provides a structured representation for qualified type
names, based on the canonical format `module.name`.

The module part may itself be dotted (`os.stat_result` has module `os`,
`multiprocessing.synchronize.SemLock` has module
`multiprocessing.synchronize`). A bare name carries no module.

This package centralizes the formatting and parsing of the names type
selectors and print names use.
*/
package typeid
