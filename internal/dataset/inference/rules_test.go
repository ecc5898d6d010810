package inference_test

import (
	"dataforge-server/internal/dataset/domain"
	"dataforge-server/internal/dataset/inference"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("InferDataType", func() {
	ginkgo.DescribeTable("name rules",
		func(name string, expected domain.DataType) {
			column := inference.Column{Name: name, Samples: []string{"42"}, Native: inference.NativeNumber}
			gomega.Expect(inference.InferDataType(column)).To(gomega.Equal(expected))
		},
		ginkgo.Entry("email", "Email", domain.DataTypeEmail),
		ginkgo.Entry("e-mail", "contact e-mail", domain.DataTypeEmail),
		ginkgo.Entry("over-matching email", "Emailed", domain.DataTypeEmail),
		ginkgo.Entry("phone", "Phone", domain.DataTypePhone),
		ginkgo.Entry("mobile", "mobile_number", domain.DataTypePhone),
		ginkgo.Entry("tel", "hotel", domain.DataTypePhone),
		ginkgo.Entry("address", "Home Address", domain.DataTypeAddress),
		ginkgo.Entry("street", "street", domain.DataTypeAddress),
		ginkgo.Entry("url", "profile_url", domain.DataTypeURL),
		ginkgo.Entry("website", "Website", domain.DataTypeURL),
		ginkgo.Entry("date", "created_date", domain.DataTypeDate),
		ginkgo.Entry("birth", "birthday", domain.DataTypeDate),
		ginkgo.Entry("price", "Price", domain.DataTypeCurrency),
		ginkgo.Entry("salary", "salary", domain.DataTypeCurrency),
		ginkgo.Entry("uuid", "user_uuid_id", domain.DataTypeUUID),
		ginkgo.Entry("guid", "GUID_ID", domain.DataTypeUUID),
		ginkgo.Entry("active", "Active", domain.DataTypeBoolean),
		ginkgo.Entry("is_ prefix", "is_admin", domain.DataTypeBoolean),
	)

	ginkgo.It("should apply the first matching rule", func() {
		column := inference.Column{Name: "email_date"}
		gomega.Expect(inference.InferDataType(column)).To(gomega.Equal(domain.DataTypeEmail))
	})

	ginkgo.It("should not treat a bare id column as uuid", func() {
		column := inference.Column{Name: "id", Samples: []string{"1", "2"}, Native: inference.NativeNumber}
		gomega.Expect(inference.InferDataType(column)).To(gomega.Equal(domain.DataTypeNumber))
	})

	ginkgo.It("should only match the exact boolean names", func() {
		column := inference.Column{Name: "inactive_reason", Samples: []string{"moved"}}
		gomega.Expect(inference.InferDataType(column)).To(gomega.Equal(domain.DataTypeString))
	})

	ginkgo.Context("when no name rule matches", func() {
		ginkgo.It("should use the native boolean hint", func() {
			column := inference.Column{Name: "flag", Samples: []string{"true"}, Native: inference.NativeBoolean}
			gomega.Expect(inference.InferDataType(column)).To(gomega.Equal(domain.DataTypeBoolean))
		})

		ginkgo.It("should use the native number hint", func() {
			column := inference.Column{Name: "age", Samples: []string{"31"}, Native: inference.NativeNumber}
			gomega.Expect(inference.InferDataType(column)).To(gomega.Equal(domain.DataTypeNumber))
		})

		ginkgo.It("should treat textual boolean literals as boolean", func() {
			column := inference.Column{Name: "flag", Samples: []string{"Yes"}}
			gomega.Expect(inference.InferDataType(column)).To(gomega.Equal(domain.DataTypeString))

			column = inference.Column{Name: "flag", Samples: []string{"TRUE", "false", "1"}}
			gomega.Expect(inference.InferDataType(column)).To(gomega.Equal(domain.DataTypeBoolean))
		})

		ginkgo.It("should fall back to string without samples", func() {
			column := inference.Column{Name: "notes"}
			gomega.Expect(inference.InferDataType(column)).To(gomega.Equal(domain.DataTypeString))
		})
	})
})

var _ = ginkgo.Describe("InferFields", func() {
	ginkgo.It("should keep column order and assign ids", func() {
		table := inference.Table{Columns: []inference.Column{
			{Name: "email"},
			{Name: "age", Samples: []string{"3"}, Native: inference.NativeNumber},
		}}

		fields, err := inference.InferFields(table)

		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(fields).To(gomega.HaveLen(2))
		gomega.Expect(fields[0].Name).To(gomega.Equal("email"))
		gomega.Expect(fields[0].Order).To(gomega.Equal(0))
		gomega.Expect(fields[1].Type).To(gomega.Equal(domain.DataTypeNumber))
		gomega.Expect(fields[1].Order).To(gomega.Equal(1))
		gomega.Expect(fields[0].ID).NotTo(gomega.Equal(fields[1].ID))
	})
})
