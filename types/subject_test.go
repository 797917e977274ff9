package types_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"

	. "github.com/reportinghub/accesshub/types"
)

var _ = Describe("subject", func() {
	DescribeTable("serialize and parse back",
		func(sub Subject) {
			parsed, err := ParseSubject(sub.String())
			Expect(err).To(Succeed())
			Expect(parsed).To(Equal(sub))
		},
		Entry("user", UserSubject("d1b3e2f0-7b0c-4a3c-9e8f-000000000001")),
		Entry("group", GroupSubject("a0a0a0a0-1111-4444-9999-000000000010")),
	)

	It("rejects unknown kinds", func() {
		_, err := ParseSubject("device:000")
		Expect(err).To(MatchError(ErrInvalidSubject))
	})

	It("keeps a user and a group with one id apart", func() {
		var u Subject = UserSubject("same-id")
		var g Subject = GroupSubject("same-id")
		Expect(u).NotTo(Equal(g))
		Expect(u.(UserSubject).ID()).To(Equal(g.(GroupSubject).ID()))
	})
})
