package builtins

import (
	"github.com/vk/typeslots/internal/slots"
	"github.com/vk/typeslots/internal/units"
)

// unit declares a builtin-definition unit whose implementations are named
// after the unit and the slot, e.g. "ListBuiltins.__len__".
func unit(name string, extends []string, ids ...slots.ID) *units.Unit {
	b := slots.NewBuilder()
	for _, id := range ids {
		b.Set(id, slots.NewImpl(name+"."+id.String(), nil))
	}
	return &units.Unit{Name: name, Extends: extends, Slots: b.Build()}
}

// Units returns a catalogue of every builtin-definition unit. The units
// themselves are shared between calls, so their tables compare identical
// across catalogues.
func Units() *units.Units {
	us := units.New()
	for _, group := range [][]*units.Unit{coreUnits, containerUnits, moduleUnits, exceptionUnits} {
		for _, u := range group {
			us.Register(u)
		}
	}
	return us
}
