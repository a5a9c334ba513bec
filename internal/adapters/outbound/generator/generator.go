package generator

import (
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"

	"github.com/ordertrack/ordertrack/internal/domain"
)

const (
	MinNumber = 0
	MaxNumber = 5000
	MinAmount = 100.00
	MaxAmount = 5000.00
)

// Faker implements domain.OrderGenerator with gofakeit.
type Faker struct {
	faker *gofakeit.Faker
	now   func() time.Time
}

var _ domain.OrderGenerator = (*Faker)(nil)

// New creates a generator. A zero seed picks a random one.
func New(seed uint64) *Faker {
	return &Faker{faker: gofakeit.New(seed), now: time.Now}
}

// WithClock pins "today" for date generation.
func (g *Faker) WithClock(now func() time.Time) *Faker {
	g.now = now
	return g
}

// Generate returns an order dated this year, up to today.
func (g *Faker) Generate() domain.Order {
	today := g.now().UTC()
	startOfYear := time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)

	return domain.Order{
		ClientName: g.faker.Name(),
		Number:     g.faker.IntRange(MinNumber, MaxNumber),
		Date:       g.faker.DateRange(startOfYear, today),
		Amount:     decimal.NewFromFloat(g.faker.Float64Range(MinAmount, MaxAmount)),
		Status:     domain.Status(g.faker.RandomString(statusLabels())),
	}.Normalize()
}

func statusLabels() []string {
	labels := make([]string, len(domain.ValidStatuses))
	for i, s := range domain.ValidStatuses {
		labels[i] = string(s)
	}
	return labels
}
