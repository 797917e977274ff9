package types_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"

	. "github.com/reportinghub/accesshub/types"
)

var _ = Describe("assignment", func() {
	a := Assignment{
		TenantID:        "t1",
		Subject:         GroupSubject("g1"),
		PermissionSetID: "ps_viewer",
		Scope:           ScopeReport,
		TargetID:        "r_fin",
		RLSRole:         "All",
	}

	It("is identified by its key tuple", func() {
		Expect(a.Key()).To(Equal(AssignmentKey{
			TenantID: "t1",
			Subject:  GroupSubject("g1"),
			Scope:    ScopeReport,
			TargetID: "r_fin",
		}))
	})

	It("matches records regardless of permission set and RLS role", func() {
		b := a
		b.PermissionSetID = "ps_editor"
		b.RLSRole = ""
		Expect(b.Matches(a.Key())).To(BeTrue())
	})

	It("does not match across subject kinds", func() {
		b := a
		b.Subject = UserSubject("g1")
		Expect(b.Matches(a.Key())).To(BeFalse())
	})

	DescribeTable("scope validity",
		func(s Scope, valid bool) {
			Expect(s.Valid()).To(Equal(valid))
		},
		Entry("tenant", ScopeTenant, true),
		Entry("report", ScopeReport, true),
		Entry("folder is declared", ScopeFolder, true),
		Entry("anything else", Scope("Workspace"), false),
	)

	It("zero effective means not assigned", func() {
		Expect(Effective{}.Assigned()).To(BeFalse())
		Expect(Effective{PermissionSetID: "ps_viewer"}.Assigned()).To(BeTrue())
	})
})
