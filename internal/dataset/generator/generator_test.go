package generator_test

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"dataforge-server/internal/dataset/domain"
	"dataforge-server/internal/dataset/generator"
	"dataforge-server/internal/infra/utils"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var (
	uuidPattern     = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)
	currencyPattern = regexp.MustCompile(`^\$\d+\.\d{2}$`)
	samplePattern   = regexp.MustCompile(`^Sample widget (\d+)$`)
)

var _ = ginkgo.Describe("Generator", func() {
	var (
		gen   *generator.Generator
		today time.Time
	)

	ginkgo.BeforeEach(func() {
		today = time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)
		gen = generator.NewSeededGenerator(42).WithClock(func() time.Time { return today })
	})

	ginkgo.Context("Value", func() {
		ginkgo.It("should generate numbers in range", func() {
			for i := 0; i < 200; i++ {
				value, ok := gen.Value("count", domain.DataTypeNumber).(int)
				gomega.Expect(ok).To(gomega.BeTrue())
				gomega.Expect(value).To(gomega.BeNumerically(">=", 0))
				gomega.Expect(value).To(gomega.BeNumerically("<=", 1000))
			}
		})

		ginkgo.It("should generate dates within the last five years", func() {
			earliest := today.AddDate(0, 0, -1825).Format("2006-01-02")
			latest := today.Format("2006-01-02")
			for i := 0; i < 200; i++ {
				value := gen.Value("created", domain.DataTypeDate).(string)
				_, err := time.Parse("2006-01-02", value)
				gomega.Expect(err).NotTo(gomega.HaveOccurred())
				gomega.Expect(value >= earliest && value <= latest).To(gomega.BeTrue(), value)
			}
		})

		ginkgo.It("should generate booleans", func() {
			_, ok := gen.Value("flag", domain.DataTypeBoolean).(bool)
			gomega.Expect(ok).To(gomega.BeTrue())
		})

		ginkgo.It("should generate uuids", func() {
			id := gen.Value("id", domain.DataTypeUUID).(string)
			gomega.Expect(id).To(gomega.MatchRegexp(uuidPattern.String()))
			gomega.Expect(utils.IsUUID(id)).To(gomega.BeTrue())
		})

		ginkgo.It("should generate currency amounts", func() {
			for i := 0; i < 200; i++ {
				value := gen.Value("price", domain.DataTypeCurrency).(string)
				gomega.Expect(value).To(gomega.MatchRegexp(currencyPattern.String()))
				amount, err := strconv.ParseFloat(strings.TrimPrefix(value, "$"), 64)
				gomega.Expect(err).NotTo(gomega.HaveOccurred())
				gomega.Expect(amount).To(gomega.BeNumerically("<=", 10000))
			}
		})

		ginkgo.It("should generate emails and urls", func() {
			gomega.Expect(gen.Value("contact", domain.DataTypeEmail)).To(gomega.ContainSubstring("@"))
			gomega.Expect(gen.Value("site", domain.DataTypeURL)).To(gomega.HavePrefix("http"))
			gomega.Expect(gen.Value("phone", domain.DataTypePhone)).NotTo(gomega.BeEmpty())
		})

		ginkgo.It("should collapse addresses onto one line", func() {
			value := gen.Value("home", domain.DataTypeAddress).(string)
			gomega.Expect(value).NotTo(gomega.ContainSubstring("\n"))
			gomega.Expect(value).To(gomega.ContainSubstring(","))
		})

		ginkgo.It("should pick statuses and categories from fixed sets", func() {
			gomega.Expect(gen.Value("Order Status", domain.DataTypeString)).To(gomega.BeElementOf(
				"Active", "Pending", "Completed", "In Progress", "Cancelled"))
			gomega.Expect(gen.Value("category", domain.DataTypeString)).To(gomega.BeElementOf(
				"Type A", "Type B", "Category 1", "Category 2", "Standard"))
		})

		// a faker with the same seed replays the value the matching rule draws
		ginkgo.DescribeTable("should pick the first rule the field name matches",
			func(name string, expected func(f *gofakeit.Faker) string) {
				value := gen.Value(name, domain.DataTypeString)

				gomega.Expect(value).To(gomega.Equal(expected(gofakeit.New(42))))
				gomega.Expect(value).NotTo(gomega.HavePrefix("Sample"))
			},
			ginkgo.Entry("first name", "first_name", func(f *gofakeit.Faker) string { return f.FirstName() }),
			ginkgo.Entry("first before last", "first_last", func(f *gofakeit.Faker) string { return f.FirstName() }),
			ginkgo.Entry("last name", "last_name", func(f *gofakeit.Faker) string { return f.LastName() }),
			ginkgo.Entry("full name", "Full Name", func(f *gofakeit.Faker) string { return f.Name() }),
			ginkgo.Entry("name before company", "Company Name", func(f *gofakeit.Faker) string { return f.Name() }),
			ginkgo.Entry("title", "Job Title", func(f *gofakeit.Faker) string { return f.HackerPhrase() }),
			ginkgo.Entry("subject", "Ticket Subject", func(f *gofakeit.Faker) string { return f.HackerPhrase() }),
			ginkgo.Entry("description", "description", func(f *gofakeit.Faker) string { return f.Sentence(10) }),
			ginkgo.Entry("comment", "Comments", func(f *gofakeit.Faker) string { return f.Sentence(10) }),
			ginkgo.Entry("note before status", "Status Note", func(f *gofakeit.Faker) string { return f.Sentence(10) }),
			ginkgo.Entry("type", "Order Type", func(f *gofakeit.Faker) string {
				return f.RandomString([]string{"Type A", "Type B", "Category 1", "Category 2", "Standard"})
			}),
			ginkgo.Entry("company", "company", func(f *gofakeit.Faker) string { return f.Company() }),
			ginkgo.Entry("organization", "Organization", func(f *gofakeit.Faker) string { return f.Company() }),
			ginkgo.Entry("city", "city", func(f *gofakeit.Faker) string { return f.City() }),
			ginkgo.Entry("country", "country", func(f *gofakeit.Faker) string { return f.Country() }),
		)

		ginkgo.It("should give single word first and last names", func() {
			gomega.Expect(gen.Value("first_name", domain.DataTypeString)).NotTo(gomega.ContainSubstring(" "))
			gomega.Expect(gen.Value("last_name", domain.DataTypeString)).NotTo(gomega.ContainSubstring(" "))
			gomega.Expect(gen.Value("Full Name", domain.DataTypeString)).To(gomega.ContainSubstring(" "))
		})

		ginkgo.It("should fall back to a numbered sample", func() {
			value := gen.Value("widget", domain.DataTypeString).(string)
			match := samplePattern.FindStringSubmatch(value)
			gomega.Expect(match).To(gomega.HaveLen(2))
			n, _ := strconv.Atoi(match[1])
			gomega.Expect(n).To(gomega.BeNumerically(">=", 1))
			gomega.Expect(n).To(gomega.BeNumerically("<=", 1000))
		})

		ginkgo.It("should generate unknown tags as strings", func() {
			value := gen.Value("widget", domain.DataType("emotion"))
			gomega.Expect(value).To(gomega.MatchRegexp(samplePattern.String()))
		})
	})

	ginkgo.Context("Table", func() {
		ginkgo.It("should order columns by field order", func() {
			fields := []domain.Field{
				{ID: "2", Name: "age", Type: domain.DataTypeNumber, Order: 1},
				{ID: "1", Name: "email", Type: domain.DataTypeEmail, Order: 0},
			}

			table := gen.Table(fields, 5)

			gomega.Expect(table.Columns).To(gomega.Equal([]string{"email", "age"}))
			gomega.Expect(table.Len()).To(gomega.Equal(5))
			for _, row := range table.Rows {
				gomega.Expect(row[0]).To(gomega.ContainSubstring("@"))
				gomega.Expect(row[1]).To(gomega.BeAssignableToTypeOf(0))
			}
		})

		ginkgo.It("should merge fields sharing a name", func() {
			fields := []domain.Field{
				{ID: "1", Name: "value", Type: domain.DataTypeNumber, Order: 0},
				{ID: "2", Name: "other", Type: domain.DataTypeNumber, Order: 1},
				{ID: "3", Name: "value", Type: domain.DataTypeBoolean, Order: 2},
			}

			table := gen.Table(fields, 3)

			gomega.Expect(table.Columns).To(gomega.Equal([]string{"value", "other"}))
			for _, row := range table.Rows {
				gomega.Expect(row[0]).To(gomega.BeAssignableToTypeOf(true))
			}
		})

		ginkgo.It("should return an empty table for zero rows", func() {
			fields := []domain.Field{{ID: "1", Name: "a", Type: domain.DataTypeString}}

			table := gen.Table(fields, 0)

			gomega.Expect(table.Columns).To(gomega.Equal([]string{"a"}))
			gomega.Expect(table.Rows).To(gomega.BeEmpty())
		})
	})
})
