package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ordertrack/ordertrack/internal/domain"
)

func TestOrder_NormalizeRoundsAmountAndDate(t *testing.T) {
	o := domain.Order{
		Amount: decimal.RequireFromString("12.345"),
		Date:   time.Date(2026, 3, 4, 15, 30, 0, 0, time.UTC),
	}.Normalize()

	assert.Equal(t, "12.35", o.AmountText())
	assert.Equal(t, "2026-03-04", o.DateText())
	assert.Equal(t, 0, o.Date.Hour())
}

func TestOrder_AmountTextAlwaysTwoDigits(t *testing.T) {
	o := domain.Order{Amount: decimal.NewFromInt(100)}
	assert.Equal(t, "100.00", o.AmountText())
}

func TestParseAmount(t *testing.T) {
	a, err := domain.ParseAmount("149.9")
	require.NoError(t, err)
	assert.Equal(t, "149.90", a.StringFixed(2))

	_, err = domain.ParseAmount("lots")
	assert.Error(t, err)
}

func TestParseDate(t *testing.T) {
	d, err := domain.ParseDate("2026-02-28")
	require.NoError(t, err)
	assert.Equal(t, time.February, d.Month())

	_, err = domain.ParseDate("28.02.2026")
	assert.Error(t, err)
}

func TestStatus_IsCompleted(t *testing.T) {
	assert.True(t, domain.StatusCompleted.IsCompleted())
	assert.False(t, domain.StatusInProgress.IsCompleted())
	assert.False(t, domain.Status("Shipped").IsCompleted())
}

func TestOrder_MarshalJSON(t *testing.T) {
	o := domain.Order{
		ClientName: "Ada Lovelace",
		Number:     7,
		Date:       time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC),
		Amount:     decimal.NewFromInt(50),
		Status:     domain.StatusCompleted,
	}

	data, err := json.Marshal(o)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"client_name": "Ada Lovelace",
		"order_number": 7,
		"order_date": "2026-01-02",
		"order_amount": "50.00",
		"status": "Completed"
	}`, string(data))
}
