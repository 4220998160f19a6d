package hcl

import "github.com/hashicorp/hcl/v2"

// fileRoot decodes the top-level blocks of a manifest file.
type fileRoot struct {
	Types []*typeBlock `hcl:"type,block"`
}

// typeBlock is a `type` block. Expression fields are evaluated during
// translation because they refer to presets or to other types by name.
type typeBlock struct {
	Key         string         `hcl:"key,label"`
	Name        string         `hcl:"name"`
	Module      string         `hcl:"module,optional"`
	PublishIn   *string        `hcl:"publish_in,optional"`
	Unpublished bool           `hcl:"unpublished,optional"`
	Flags       hcl.Expression `hcl:"flags,optional"`
	MethodFlags hcl.Expression `hcl:"method_flags,optional"`
	Base        hcl.Expression `hcl:"base,optional"`
	Metatype    hcl.Expression `hcl:"metatype,optional"`
	Slots       hcl.Expression `hcl:"slots,optional"`
	Weakrefable bool           `hcl:"weakrefable,optional"`
}
