package resolve

import (
	"sort"

	"github.com/reportinghub/accesshub/internal/directory"
	"github.com/reportinghub/accesshub/types"
)

// ReportAudit answers "who can access this report": every group in the
// tenant with an effective permission on it, largest audience first.
// Member counts come from the transitive walk and so count a multi-path
// user once per path.
func (r *Resolver) ReportAudit(ix *directory.Index, reportID string) ([]types.AuditRow, error) {
	tenant := ix.Tenant()

	rows := make([]types.AuditRow, 0)
	for _, grp := range ix.Groups() {
		eff, err := r.Effective(tenant.ID, types.GroupSubject(grp.ID), reportID)
		if err != nil {
			return nil, err
		}
		if !eff.Assigned() {
			continue
		}

		rows = append(rows, types.AuditRow{
			Group:       grp,
			Effective:   eff,
			MemberCount: ix.MemberCount(grp.ID),
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].MemberCount > rows[j].MemberCount
	})

	return rows, nil
}
