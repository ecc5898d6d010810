package domain_test

import (
	"encoding/json"
	"errors"

	"dataforge-server/internal/dataset/domain"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("Table", func() {
	ginkgo.It("should encode records keeping the column order", func() {
		table := domain.Table{
			Columns: []string{"zeta", "alpha", "active"},
			Rows: [][]any{
				{"z", 1, true},
			},
		}

		encoded, err := json.Marshal(table.Records())

		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(string(encoded)).To(gomega.Equal(`[{"zeta":"z","alpha":1,"active":true}]`))
	})

	ginkgo.It("should look up values by column name", func() {
		table := domain.Table{Columns: []string{"a", "b"}, Rows: [][]any{{1, "two"}}}
		record := table.Records()[0]

		value, ok := record.Get("b")
		gomega.Expect(ok).To(gomega.BeTrue())
		gomega.Expect(value).To(gomega.Equal("two"))

		_, ok = record.Get("c")
		gomega.Expect(ok).To(gomega.BeFalse())
	})

	ginkgo.It("should report its length", func() {
		gomega.Expect(domain.Table{}.Len()).To(gomega.Equal(0))
		gomega.Expect(domain.Table{Rows: make([][]any, 4)}.Len()).To(gomega.Equal(4))
	})
})

var _ = ginkgo.Describe("Errors", func() {
	ginkgo.It("should unwrap input errors to their kind", func() {
		err := domain.NewInputError("File has no extension")
		gomega.Expect(errors.Is(err, domain.ErrInvalidInput)).To(gomega.BeTrue())
		gomega.Expect(errors.Is(err, domain.ErrUpstream)).To(gomega.BeFalse())
		gomega.Expect(err.Error()).To(gomega.Equal("File has no extension"))
	})

	ginkgo.It("should keep the cause of upstream errors", func() {
		cause := errors.New("connection reset")
		err := domain.NewUpstreamError(cause, "Failed to generate schema")
		gomega.Expect(errors.Is(err, domain.ErrUpstream)).To(gomega.BeTrue())
		gomega.Expect(errors.Is(err, cause)).To(gomega.BeTrue())
		gomega.Expect(err.Error()).To(gomega.Equal("Failed to generate schema: connection reset"))
	})

	ginkgo.It("should mark not found errors", func() {
		err := domain.NewNotFoundError("template %s not found", "abc")
		gomega.Expect(errors.Is(err, domain.ErrNotFound)).To(gomega.BeTrue())
		gomega.Expect(err.Error()).To(gomega.Equal("template abc not found"))
	})

	ginkgo.It("should mark existing errors as input errors", func() {
		err := domain.AsInputError(domain.ErrTemplateNameRequired)
		gomega.Expect(errors.Is(err, domain.ErrInvalidInput)).To(gomega.BeTrue())
		gomega.Expect(errors.Is(err, domain.ErrTemplateNameRequired)).To(gomega.BeTrue())
		gomega.Expect(err.Error()).To(gomega.Equal("template name is required"))
	})
})
