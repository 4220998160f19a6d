package typeid

import (
	"fmt"
	"regexp"
	"strings"
)

const builtinsModule = "builtins"

// segmentRegex matches one dot-separated segment.
var segmentRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Parse converts a `module.name` or bare `name` string into a Name. The
// final segment is the type name; everything before it is the module.
func Parse(s string) (Name, error) {
	if s == "" {
		return Name{}, fmt.Errorf("type name cannot be empty")
	}

	segments := strings.Split(s, ".")
	for i, segment := range segments {
		if !segmentRegex.MatchString(segment) {
			return Name{}, fmt.Errorf("invalid segment %q at position %d in type name %q", segment, i, s)
		}
	}

	last := len(segments) - 1
	return Name{
		Module: strings.Join(segments[:last], "."),
		Name:   segments[last],
	}, nil
}

// MustParse is like Parse but panics on malformed input.
func MustParse(s string) Name {
	n, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return n
}
