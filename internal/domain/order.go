package domain

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the on-disk and display format of an order date.
const DateLayout = "2006-01-02"

// AmountPlaces is the number of fraction digits kept for order amounts.
const AmountPlaces = 2

var ErrOrderNotFound = errors.New("order not found")

// Status is the progress state of an order.
type Status string

const (
	StatusCompleted  Status = "Completed"
	StatusInProgress Status = "InProgress"
)

// ValidStatuses lists the statuses the tool knows about, in display order.
var ValidStatuses = []Status{StatusCompleted, StatusInProgress}

// IsCompleted reports whether the order is done. Anything else counts as in progress.
func (s Status) IsCompleted() bool { return s == StatusCompleted }

// Order is one customer purchase record.
type Order struct {
	ClientName string
	Number     int
	Date       time.Time
	Amount     decimal.Decimal
	Status     Status
}

// MarshalJSON renders the order the way it is persisted: date as YYYY-MM-DD,
// amount with two fraction digits.
func (o Order) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ClientName string `json:"client_name"`
		Number     int    `json:"order_number"`
		Date       string `json:"order_date"`
		Amount     string `json:"order_amount"`
		Status     Status `json:"status"`
	}{o.ClientName, o.Number, o.DateText(), o.AmountText(), o.Status})
}

// Normalize rounds the amount to AmountPlaces and strips the time of day.
func (o Order) Normalize() Order {
	o.Amount = o.Amount.Round(AmountPlaces)
	o.Date = truncateDay(o.Date)
	return o
}

// AmountText is the amount as persisted: exactly two fraction digits.
func (o Order) AmountText() string {
	return o.Amount.StringFixed(AmountPlaces)
}

// DateText is the order date formatted as YYYY-MM-DD.
func (o Order) DateText() string {
	return o.Date.Format(DateLayout)
}

// ParseDate parses a YYYY-MM-DD date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// ParseAmount coerces text to an amount rounded to AmountPlaces.
func ParseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return d.Round(AmountPlaces), nil
}

func truncateDay(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
