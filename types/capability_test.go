package types_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"

	. "github.com/reportinghub/accesshub/types"
)

var _ = Describe("capability", func() {
	DescribeTable("is in",
		func(c, d Capability) {
			Expect(c.IsIn(d)).To(BeTrue())
		},
		Entry("export is in export", ExportReport, ExportReport),
		Entry("export is in editor surface", ExportReport, EditAndSave|ExportReport),
		Entry("none is in everything", NoCapabilities, AllCapabilities),
		Entry("share is in all", ShareReport, AllCapabilities),
	)

	DescribeTable("is not in",
		func(c, d Capability) {
			Expect(c.IsIn(d)).To(BeFalse())
		},
		Entry("edit is not in export", EditAndSave, ExportReport),
		Entry("AI deep dive is not in AI assist", BIGeniusDeepDive, BIGenius),
	)

	DescribeTable("split",
		func(joined Capability, split []interface{}) {
			Expect(joined.Split()).To(ConsistOf(split...))
		},
		Entry("single", ExportReport, []interface{}{ExportReport}),
		Entry("editor union", EditAndSave|EditAndSaveAs|ExportReport,
			[]interface{}{EditAndSave, EditAndSaveAs, ExportReport}),
		Entry("none", NoCapabilities, []interface{}{}),
	)

	It("includes is the mirror of is in", func() {
		Expect(AllCapabilities.Includes(ScheduleTasks)).To(BeTrue())
		Expect(ScheduleTasks.Includes(AllCapabilities)).To(BeFalse())
	})

	It("difference removes the other set", func() {
		editor := EditAndSave | EditAndSaveAs | ExportReport
		Expect(editor.Difference(ExportReport)).To(Equal(EditAndSave | EditAndSaveAs))
		Expect(editor.Difference(AllCapabilities)).To(Equal(NoCapabilities))
	})

	It("serializes with the directory export names", func() {
		Expect(ExportReport.String()).To(Equal("allowExportReport"))
		Expect((EditAndSave | ExportReport).String()).
			To(Equal("allowEditAndSave|allowExportReport"))
	})

	DescribeTable("parse",
		func(name string, want Capability) {
			Expect(ParseCapability(name)).To(Equal(want))
		},
		Entry("edit and save", "allowEditAndSave", EditAndSave),
		Entry("model refresh", "allowSemanticModelRefresh", SemanticModelRefresh),
		Entry("AI deep dive", "allowAccessToBIGeniusQueryDeepDive", BIGeniusDeepDive),
	)

	It("rejects unknown capability names", func() {
		_, err := ParseCapability("allowTimeTravel")
		Expect(err).To(MatchError(ErrUnknownCapability))
	})
})
