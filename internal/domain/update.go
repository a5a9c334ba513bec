package domain

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/fatih/camelcase"
	"github.com/shopspring/decimal"
)

// Field names an Order attribute that can be updated.
type Field string

const (
	FieldClientName Field = "client_name"
	FieldNumber     Field = "order_number"
	FieldDate       Field = "order_date"
	FieldAmount     Field = "order_amount"
	FieldStatus     Field = "status"
)

// ValidFields lists the updatable fields in persisted column order.
var ValidFields = []Field{FieldClientName, FieldNumber, FieldDate, FieldAmount, FieldStatus}

var fieldAliases = map[string]Field{
	"client_name":  FieldClientName,
	"client":       FieldClientName,
	"order_number": FieldNumber,
	"number":       FieldNumber,
	"order_date":   FieldDate,
	"date":         FieldDate,
	"order_amount": FieldAmount,
	"amount":       FieldAmount,
	"status":       FieldStatus,
}

// OrderUpdate is a partial update. Nil fields are left untouched.
type OrderUpdate struct {
	ClientName *string
	Number     *int
	Date       *time.Time
	Amount     *decimal.Decimal
	Status     *Status
}

// IsEmpty reports whether the update changes nothing.
func (u OrderUpdate) IsEmpty() bool {
	return u.ClientName == nil && u.Number == nil && u.Date == nil && u.Amount == nil && u.Status == nil
}

// Apply returns o with every set field of u applied.
func (u OrderUpdate) Apply(o Order) Order {
	if u.ClientName != nil {
		o.ClientName = *u.ClientName
	}
	if u.Number != nil {
		o.Number = *u.Number
	}
	if u.Date != nil {
		o.Date = *u.Date
	}
	if u.Amount != nil {
		o.Amount = *u.Amount
	}
	if u.Status != nil {
		o.Status = *u.Status
	}
	return o.Normalize()
}

// ParseField resolves a user-supplied key such as "clientName", "Client Name"
// or "order-amount" to a Field.
func ParseField(key string) (Field, bool) {
	f, ok := fieldAliases[normalizeKey(key)]
	return f, ok
}

// ParseUpdate coerces key/value pairs into an OrderUpdate. Keys that name no
// Order field are skipped and returned sorted so the caller can report them.
func ParseUpdate(values map[string]string) (OrderUpdate, []string, error) {
	var (
		u       OrderUpdate
		ignored []string
	)
	for key, raw := range values {
		field, ok := ParseField(key)
		if !ok {
			ignored = append(ignored, key)
			continue
		}
		if err := u.set(field, raw); err != nil {
			return OrderUpdate{}, nil, fmt.Errorf("field %s: %w", field, err)
		}
	}
	sort.Strings(ignored)
	return u, ignored, nil
}

func (u *OrderUpdate) set(field Field, raw string) error {
	switch field {
	case FieldClientName:
		u.ClientName = &raw
	case FieldNumber:
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return fmt.Errorf("invalid order number %q", raw)
		}
		u.Number = &n
	case FieldDate:
		d, err := ParseDate(strings.TrimSpace(raw))
		if err != nil {
			return fmt.Errorf("invalid date %q (want YYYY-MM-DD)", raw)
		}
		u.Date = &d
	case FieldAmount:
		a, err := ParseAmount(strings.TrimSpace(raw))
		if err != nil {
			return fmt.Errorf("invalid amount %q", raw)
		}
		u.Amount = &a
	case FieldStatus:
		s := Status(raw)
		u.Status = &s
	}
	return nil
}

func normalizeKey(key string) string {
	chunks := strings.FieldsFunc(key, func(r rune) bool {
		return r == '_' || r == '-' || unicode.IsSpace(r)
	})
	var words []string
	for _, c := range chunks {
		for _, w := range camelcase.Split(c) {
			words = append(words, strings.ToLower(w))
		}
	}
	return strings.Join(words, "_")
}
