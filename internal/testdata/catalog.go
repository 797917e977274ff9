package testdata

import (
	"github.com/reportinghub/accesshub/types"
)

// PermissionSets returns the seed catalog the console starts with
func PermissionSets() []types.PermissionSet {
	return []types.PermissionSet{
		{
			ID:           "ps_viewer",
			Name:         "Viewer",
			Description:  "Read and export reports",
			Capabilities: types.ExportReport,
		},
		{
			ID:          "ps_editor",
			Name:        "Editor",
			Description: "Edit reports and refresh their models",
			Capabilities: types.EditAndSave | types.EditAndSaveAs |
				types.ExportReport | types.SemanticModelRefresh,
		},
		{
			ID:           "ps_admin",
			Name:         "Admin",
			Description:  "Everything, including sharing and scheduling",
			Capabilities: types.AllCapabilities,
		},
		{
			ID:          "ps_finance_analyst",
			Name:        "Finance Analyst",
			Description: "Editing plus scheduled refreshes for finance reports",
			Capabilities: types.EditAndSave | types.ExportReport |
				types.SemanticModelRefresh | types.ScheduleTasks,
		},
		{
			ID:           "ps_executive_dashboard",
			Name:         "Executive Dashboard",
			Description:  "View, export, and share leadership reports",
			Capabilities: types.ExportReport | types.ShareReport,
		},
		{
			ID:          "ps_data_scientist",
			Name:        "Data Scientist",
			Description: "Full analysis surface including AI assist tiers",
			Capabilities: types.EditAndSaveAs | types.ExportReport |
				types.SemanticModelRefresh | types.BIGenius | types.BIGeniusDeepDive,
		},
		{
			ID:           "ps_guest_limited",
			Name:         "Guest Limited",
			Description:  "View only, nothing leaves the tenant",
			Capabilities: types.NoCapabilities,
		},
		{
			ID:           "ps_marketing_team",
			Name:         "Marketing Team",
			Description:  "Export and share campaign reports",
			Capabilities: types.ExportReport | types.ShareReport,
		},
		{
			ID:           "ps_audit_readonly",
			Name:         "Audit Read-Only",
			Description:  "Strict read-only access for compliance",
			Capabilities: types.ExportReport,
		},
	}
}

// Reports returns the static report catalog
func Reports() []types.ReportRef {
	return []types.ReportRef{
		{ID: ReportSales, Name: "Sales Dashboard", Path: "/sales", Dataset: "ds_sales_core", RLSRoles: []string{"CountryUS", "CountryCA", "All"}},
		{ID: ReportExec, Name: "Executive Summary", Path: "/executive", Dataset: "ds_exec", RLSRoles: []string{"LeadershipOnly", "All"}},
		{ID: ReportFin, Name: "Finance P&L", Path: "/finance/pnl", Dataset: "ds_fin", RLSRoles: []string{"FinanceOnly", "All"}},
	}
}

// Assignments returns the seed assignment records: tenant defaults first,
// report overrides after, the way the setup wizard writes them
func Assignments() []types.Assignment {
	return []types.Assignment{
		{TenantID: ContosoID, Subject: types.GroupSubject(GroupFinance), PermissionSetID: "ps_viewer", Scope: types.ScopeTenant},
		{TenantID: ContosoID, Subject: types.GroupSubject(GroupFinance), PermissionSetID: "ps_viewer", Scope: types.ScopeReport, TargetID: ReportSales},
		{TenantID: ContosoID, Subject: types.GroupSubject(GroupFinance), PermissionSetID: "ps_editor", Scope: types.ScopeReport, TargetID: ReportFin, RLSRole: "All"},

		{TenantID: ContosoID, Subject: types.GroupSubject(GroupExecutive), PermissionSetID: "ps_admin", Scope: types.ScopeTenant},
		{TenantID: ContosoID, Subject: types.GroupSubject(GroupExecutive), PermissionSetID: "ps_executive_dashboard", Scope: types.ScopeReport, TargetID: ReportExec},

		{TenantID: ContosoID, Subject: types.UserSubject(user(1)), PermissionSetID: "ps_admin", Scope: types.ScopeReport, TargetID: ReportSales},
		{TenantID: ContosoID, Subject: types.UserSubject(user(4)), PermissionSetID: "ps_editor", Scope: types.ScopeReport, TargetID: ReportFin},

		{TenantID: ContosoID, Subject: types.GroupSubject(GroupGuests), PermissionSetID: "ps_guest_limited", Scope: types.ScopeTenant},

		{TenantID: FabrikamID, Subject: types.GroupSubject("b1b1b1b1-2222-5555-aaaa-000000000120"), PermissionSetID: "ps_viewer", Scope: types.ScopeTenant},
	}
}
