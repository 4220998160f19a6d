package registry

import (
	"context"
	"fmt"
	"strings"

	"github.com/vk/typeslots/internal/ctxlog"
	"github.com/vk/typeslots/internal/slots"
	"github.com/vk/typeslots/internal/units"
)

// ValidateContributors checks that every type's declared slot table agrees
// with the builtin-definition units extending it. A type with one
// contributor must hold that unit's table itself; a type with several must
// hold a table equal to their merge in registration order.
func (r *Registry) ValidateContributors(ctx context.Context, us *units.Units) error {
	var errs []string
	logger := ctxlog.FromContext(ctx)
	if !r.resolved {
		logger.Warn("Validating contributors of an unresolved registry.")
	}

	for _, unit := range us.All() {
		for _, target := range unit.Extends {
			if _, ok := r.byKey[target]; !ok {
				errs = append(errs, fmt.Sprintf("unit '%s': extends unknown type '%s'", unit.Name, target))
			}
		}
	}

	byTarget := us.ByTarget()
	checked := 0
	for _, d := range r.All() {
		contributors := byTarget[d.Key()]
		switch len(contributors) {
		case 0:
			continue
		case 1:
			if contributors[0].Slots != d.DeclaredSlots() {
				errs = append(errs, fmt.Sprintf("type '%s': declared slots are not the table of its only unit '%s'", d.Key(), contributors[0].Name))
			}
		default:
			tables := make([]*slots.Table, len(contributors))
			names := make([]string, len(contributors))
			for i, unit := range contributors {
				tables[i] = unit.Slots
				names[i] = unit.Name
			}
			merged := slots.MergeAll(tables...)
			if !merged.Equal(d.DeclaredSlots()) {
				errs = append(errs, fmt.Sprintf("type '%s': declared slots %s differ from merged units [%s] %s", d.Key(), d.DeclaredSlots(), strings.Join(names, ", "), merged))
			}
		}
		checked++
	}

	if len(errs) > 0 {
		return fmt.Errorf("registry validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	logger.Debug("Contributor units agree with declared slots.", "types", checked, "units", us.Len())
	return nil
}
