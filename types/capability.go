package types

import "strings"

// Capability is an atomic thing a permission set allows on a report.
// Capabilities are power of twos to achieve efficient set operations,
// like union, intersection, complement.
// A capability is also a union of capabilities.
type Capability uint32

// capabilities a permission set may grant, following the report host's options
const (
	EditAndSave Capability = 1 << iota
	EditAndSaveAs
	ExportReport
	ShareReport
	SemanticModelRefresh
	ScheduleTasks
	BIGenius
	BIGeniusDeepDive

	NoCapabilities Capability = 0
)

// AllCapabilities is the union of every known capability
const AllCapabilities = EditAndSave | EditAndSaveAs | ExportReport | ShareReport |
	SemanticModelRefresh | ScheduleTasks | BIGenius | BIGeniusDeepDive

var capabilityNames = map[Capability]string{
	EditAndSave:          "allowEditAndSave",
	EditAndSaveAs:        "allowEditAndSaveAs",
	ExportReport:         "allowExportReport",
	ShareReport:          "allowSharingReport",
	SemanticModelRefresh: "allowSemanticModelRefresh",
	ScheduleTasks:        "allowSchedulingTasks",
	BIGenius:             "allowAccessToBIGenius",
	BIGeniusDeepDive:     "allowAccessToBIGeniusQueryDeepDive",
}

// ParseCapability resolves a serialized capability name.
// Unknown names are reported, not invented: snapshot readers are expected
// to skip them so newer directory exports stay loadable.
func ParseCapability(name string) (Capability, error) {
	for c, n := range capabilityNames {
		if n == name {
			return c, nil
		}
	}
	return NoCapabilities, ErrUnknownCapability
}

// IsIn tells if all capabilities in c are members of d: c is subset of d
func (c Capability) IsIn(d Capability) bool {
	return c|d == d
}

// Includes tells if all capabilities in d are members of c: c is superset of d
func (c Capability) Includes(d Capability) bool {
	return d.IsIn(c)
}

// Difference returns capabilities belong to c but not d: complement of d in c
func (c Capability) Difference(d Capability) Capability {
	return c &^ d
}

// Split a union of capabilities to slice of single capabilities
func (c Capability) Split() []Capability {
	out := make([]Capability, 0)
	op := Capability(1)
	for op <= c {
		if op&c > 0 {
			out = append(out, op)
		}
		op <<= 1
	}
	return out
}

func (c Capability) String() string {
	cs := c.Split()
	ns := make([]string, 0, len(cs))
	for _, c := range cs {
		n, ok := capabilityNames[c]
		if !ok {
			n = "unknown"
		}
		ns = append(ns, n)
	}
	return strings.Join(ns, "|")
}
