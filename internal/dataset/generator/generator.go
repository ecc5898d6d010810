package generator

import (
	"fmt"
	"strings"
	"time"

	"dataforge-server/internal/dataset/domain"
	"dataforge-server/internal/infra/utils"

	"github.com/brianvoe/gofakeit/v6"
)

const (
	maxNumber       = 1000
	maxCurrency     = 10000.0
	maxDaysInPast   = 5 * 365
	maxSampleSuffix = 1000
	dateLayout      = "2006-01-02"
)

var (
	statuses   = []string{"Active", "Pending", "Completed", "In Progress", "Cancelled"}
	categories = []string{"Type A", "Type B", "Category 1", "Category 2", "Standard"}
)

// Generator produces fake values for fields. It is safe for concurrent use.
type Generator struct {
	faker *gofakeit.Faker
	now   func() time.Time
}

func NewGenerator() *Generator {
	return NewSeededGenerator(0)
}

// NewSeededGenerator returns a reproducible generator. A zero seed picks a random one.
// uuid values are always random.
func NewSeededGenerator(seed int64) *Generator {
	return &Generator{
		faker: gofakeit.New(seed),
		now:   time.Now,
	}
}

// WithClock replaces the time source used for date values.
func (g *Generator) WithClock(now func() time.Time) *Generator {
	g.now = now
	return g
}

// Value returns a value for a field. Numbers are ints, booleans are bools, everything else is a string.
// Unknown type tags are generated as strings.
func (g *Generator) Value(name string, dataType domain.DataType) any {
	switch dataType {
	case domain.DataTypeNumber:
		return g.faker.IntRange(0, maxNumber)
	case domain.DataTypeDate:
		days := g.faker.IntRange(0, maxDaysInPast)
		return g.now().AddDate(0, 0, -days).Format(dateLayout)
	case domain.DataTypeBoolean:
		return g.faker.Bool()
	case domain.DataTypeEmail:
		return g.faker.Email()
	case domain.DataTypePhone:
		return g.faker.PhoneFormatted()
	case domain.DataTypeAddress:
		return g.address()
	case domain.DataTypeURL:
		return g.faker.URL()
	case domain.DataTypeUUID:
		return utils.GenerateUUID()
	case domain.DataTypeCurrency:
		return fmt.Sprintf("$%.2f", g.faker.Float64Range(0, maxCurrency))
	}
	return g.text(name)
}

func (g *Generator) address() string {
	info := g.faker.Address()
	return strings.Join(strings.Fields(strings.ReplaceAll(info.Address, "\n", ", ")), " ")
}

func (g *Generator) text(name string) string {
	lower := strings.ToLower(name)
	switch {
	case strings.Contains(lower, "first"):
		return g.faker.FirstName()
	case strings.Contains(lower, "last"):
		return g.faker.LastName()
	case strings.Contains(lower, "name"):
		return g.faker.Name()
	case containsAny(lower, "title", "subject"):
		return g.faker.HackerPhrase()
	case containsAny(lower, "description", "comment", "note"):
		return g.faker.Sentence(10)
	case strings.Contains(lower, "status"):
		return g.faker.RandomString(statuses)
	case containsAny(lower, "category", "type"):
		return g.faker.RandomString(categories)
	case containsAny(lower, "company", "organization"):
		return g.faker.Company()
	case strings.Contains(lower, "city"):
		return g.faker.City()
	case strings.Contains(lower, "country"):
		return g.faker.Country()
	}
	return fmt.Sprintf("Sample %s %d", name, g.faker.IntRange(1, maxSampleSuffix))
}

func containsAny(value string, needles ...string) bool {
	for _, needle := range needles {
		if strings.Contains(value, needle) {
			return true
		}
	}
	return false
}

// Table generates rows records over fields sorted by order. Fields sharing a name share a
// column, placed where the name first appears and holding the value of the last such field.
func (g *Generator) Table(fields []domain.Field, rows int) domain.Table {
	sorted := domain.SortFields(fields)

	positions := make([]int, len(sorted))
	index := make(map[string]int, len(sorted))
	table := domain.Table{Columns: make([]string, 0, len(sorted))}
	for i, field := range sorted {
		pos, ok := index[field.Name]
		if !ok {
			pos = len(table.Columns)
			index[field.Name] = pos
			table.Columns = append(table.Columns, field.Name)
		}
		positions[i] = pos
	}

	if rows < 0 {
		rows = 0
	}
	table.Rows = make([][]any, rows)
	for r := range table.Rows {
		row := make([]any, len(table.Columns))
		for i, field := range sorted {
			row[positions[i]] = g.Value(field.Name, field.Type)
		}
		table.Rows[r] = row
	}

	return table
}
