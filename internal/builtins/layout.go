package builtins

import (
	"github.com/vk/typeslots/internal/config"
	"github.com/vk/typeslots/internal/typedesc"
)

const (
	objectHeaderSize = 16
	pointerSize      = 8
)

// Layout places the weak-reference list right after the object header and,
// when present, the instance dict pointer.
type Layout struct {
	weakrefable map[string]bool
}

// NewLayout collects the weakrefable types of model.
func NewLayout(model *config.Model) *Layout {
	l := &Layout{weakrefable: make(map[string]bool)}
	for _, def := range model.Types {
		if def.Weakrefable {
			l.weakrefable[def.Key] = true
		}
	}
	return l
}

// WeaklistOffset implements registry.Layout.
func (l *Layout) WeaklistOffset(d *typedesc.Descriptor) int {
	if !l.weakrefable[d.Key()] {
		return typedesc.WeaklistNotApplicable
	}
	if d.HasInstanceDict() {
		return objectHeaderSize + pointerSize
	}
	return objectHeaderSize
}
