package app

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/vk/typeslots/internal/registry"
	"github.com/vk/typeslots/internal/typedesc"
)

// typeReport is what the application prints for one type. Summary reports
// leave the detail fields empty.
type typeReport struct {
	Key       string `json:"key"`
	PrintName string `json:"print_name"`
	Base      string `json:"base,omitempty"`
	Metatype  string `json:"metatype"`

	Name            string       `json:"name,omitempty"`
	Module          string       `json:"module,omitempty"`
	DeclaringModule string       `json:"declaring_module,omitempty"`
	Ancestors       []string     `json:"ancestors,omitempty"`
	Flags           *flagsReport `json:"flags,omitempty"`
	MethodFlags     []string     `json:"method_flags,omitempty"`
	WeaklistOffset  *int         `json:"weaklist_offset,omitempty"`
	Slots           []slotReport `json:"slots,omitempty"`
}

type flagsReport struct {
	Public bool `json:"public"`
	Base   bool `json:"base"`
	Dict   bool `json:"dict"`
}

type slotReport struct {
	Slot string `json:"slot"`
	Impl string `json:"impl"`
}

func summarize(reg *registry.Registry, d *typedesc.Descriptor) *typeReport {
	r := &typeReport{
		Key:       d.Key(),
		PrintName: d.PrintName(),
		Metatype:  reg.Metatype(d.ID()).Key(),
	}
	if base := reg.Base(d.ID()); base != nil {
		r.Base = base.Key()
	}
	return r
}

func describe(reg *registry.Registry, d *typedesc.Descriptor) *typeReport {
	r := summarize(reg, d)
	r.Name = d.Name()
	r.Module = d.ModuleName()
	r.DeclaringModule = d.DeclaringModule()
	for _, anc := range reg.Ancestors(d.ID()) {
		r.Ancestors = append(r.Ancestors, anc.Key())
	}
	r.Flags = &flagsReport{Public: d.Flags().IsPublic, Base: d.IsBase(), Dict: d.HasInstanceDict()}
	r.MethodFlags = d.MethodFlags().Names()
	if offset := d.WeaklistOffset(); offset != typedesc.WeaklistNotApplicable {
		r.WeaklistOffset = &offset
	}
	for id, impl := range d.Slots().All() {
		r.Slots = append(r.Slots, slotReport{Slot: id.String(), Impl: impl.Name()})
	}
	return r
}

func writeJSON(w io.Writer, reports []*typeReport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(reports)
}

func writeSummaryText(w io.Writer, reports []*typeReport) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "KEY\tNAME\tBASE\tMETATYPE")
	for _, r := range reports {
		base := r.Base
		if base == "" {
			base = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.Key, r.PrintName, base, r.Metatype)
	}
	return tw.Flush()
}

func writeDetailText(w io.Writer, reports []*typeReport) error {
	tw := tabwriter.NewWriter(w, 0, 4, 1, ' ', 0)
	for i, r := range reports {
		if i > 0 {
			fmt.Fprintln(tw)
		}
		fmt.Fprintf(tw, "%s (%s)\n", r.Key, r.PrintName)
		fmt.Fprintf(tw, "  module:\t%s\n", moduleLine(r))
		fmt.Fprintf(tw, "  ancestors:\t%s\n", orNone(strings.Join(r.Ancestors, " -> ")))
		fmt.Fprintf(tw, "  metatype:\t%s\n", r.Metatype)
		fmt.Fprintf(tw, "  flags:\t%s\n", flagsLine(r.Flags))
		fmt.Fprintf(tw, "  method flags:\t%s\n", orNone(strings.Join(r.MethodFlags, " ")))
		if r.WeaklistOffset != nil {
			fmt.Fprintf(tw, "  weaklist offset:\t%d\n", *r.WeaklistOffset)
		} else {
			fmt.Fprintf(tw, "  weaklist offset:\t-\n")
		}
		fmt.Fprintf(tw, "  slots:\t%d\n", len(r.Slots))
		for _, s := range r.Slots {
			fmt.Fprintf(tw, "    %s\t%s\n", s.Slot, s.Impl)
		}
	}
	return tw.Flush()
}

func moduleLine(r *typeReport) string {
	switch {
	case r.Module == "" && r.DeclaringModule == "":
		return "-"
	case r.Module == r.DeclaringModule:
		return r.Module
	case r.DeclaringModule == "":
		return r.Module + " (unpublished)"
	case r.Module == "":
		return "- (published in " + r.DeclaringModule + ")"
	default:
		return r.Module + " (published in " + r.DeclaringModule + ")"
	}
}

func flagsLine(f *flagsReport) string {
	parts := []string{"private"}
	if f.Public {
		parts[0] = "public"
	}
	if f.Base {
		parts = append(parts, "base")
	} else {
		parts = append(parts, "final")
	}
	if f.Dict {
		parts = append(parts, "dict")
	}
	return strings.Join(parts, " ")
}

func orNone(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
