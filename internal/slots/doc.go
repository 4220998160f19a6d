// Package slots models the tables of special operations ("slots") that a
// built-in type implements.
//
// A Table is immutable once built. Tables are combined either by Merge, which
// unions the entries of independent contributors, or by overriding a copy of
// a parent table with a child's declared entries, which is how inheritance is
// linearized. Overrides work on groups of correlated slots so that a child
// declaring one member of a family never inherits stale siblings.
package slots
