package types

// PermissionSet is a named bag of capabilities assignments point at
type PermissionSet struct {
	ID           string
	Name         string
	Description  string
	Capabilities Capability
}

// ReportRef is a static catalog entry for a report the console manages
// access to. Not mutated at runtime.
type ReportRef struct {
	ID       string
	Name     string
	Path     string   // logical path inside the reporting hub
	Dataset  string   // backing dataset id, if any
	RLSRoles []string // row-level-security roles the report offers
}
