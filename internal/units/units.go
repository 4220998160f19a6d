// Package units holds the builtin-definition units that contribute slot
// implementations to built-in types. A unit may extend several types and a
// type may be extended by several units; the registry's declared slot table
// for a type must agree with the units that target it.
package units

import (
	"fmt"
	"log/slog"

	"github.com/vk/typeslots/internal/slots"
)

// Unit is one builtin-definition unit.
type Unit struct {
	Name    string
	Extends []string
	Slots   *slots.Table
}

// Units holds all registered units in registration order.
type Units struct {
	all   map[string]*Unit
	order []*Unit
}

// New creates an empty catalogue.
func New() *Units {
	return &Units{
		all: make(map[string]*Unit),
	}
}

// Register adds a unit. Registering a name twice is a programming error.
func (u *Units) Register(unit *Unit) {
	if unit == nil || unit.Name == "" {
		panic("unit must have a name")
	}
	if _, exists := u.all[unit.Name]; exists {
		panic(fmt.Sprintf("unit with name '%s' already registered", unit.Name))
	}
	if unit.Slots == nil {
		unit.Slots = slots.Empty()
	}
	slog.Debug("Registering builtin unit.", "name", unit.Name, "extends", unit.Extends, "slots", unit.Slots.Len())
	u.all[unit.Name] = unit
	u.order = append(u.order, unit)
}

// Get returns the unit registered under name.
func (u *Units) Get(name string) (*Unit, bool) {
	unit, ok := u.all[name]
	return unit, ok
}

// All returns the units in registration order.
func (u *Units) All() []*Unit {
	out := make([]*Unit, len(u.order))
	copy(out, u.order)
	return out
}

// Len returns the number of registered units.
func (u *Units) Len() int {
	return len(u.order)
}

// Contributors returns the units extending the type with the given key, in
// registration order.
func (u *Units) Contributors(typeKey string) []*Unit {
	var out []*Unit
	for _, unit := range u.order {
		for _, target := range unit.Extends {
			if target == typeKey {
				out = append(out, unit)
				break
			}
		}
	}
	return out
}

// ByTarget groups units by the type keys they extend. Within each group the
// units keep registration order.
func (u *Units) ByTarget() map[string][]*Unit {
	out := make(map[string][]*Unit)
	for _, unit := range u.order {
		for _, target := range unit.Extends {
			out[target] = append(out[target], unit)
		}
	}
	return out
}
