package csvstore_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ordertrack/ordertrack/internal/adapters/outbound/csvstore"
	"github.com/ordertrack/ordertrack/internal/domain"
)

func sampleOrders() []domain.Order {
	d1, _ := domain.ParseDate("2026-01-10")
	d2, _ := domain.ParseDate("2026-02-20")
	return []domain.Order{
		{ClientName: "Olena Kovalenko", Number: 101, Date: d1, Amount: decimal.RequireFromString("1500"), Status: domain.StatusCompleted},
		{ClientName: "Smith, John", Number: 102, Date: d2, Amount: decimal.RequireFromString("99.9"), Status: domain.StatusInProgress},
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestStore_SaveWritesHeaderAndFixedAmounts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	store := csvstore.New(path)

	require.NoError(t, store.Save(sampleOrders()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t,
		"Client Name,Order Number,Order Date,Order Amount,Status\n"+
			"Olena Kovalenko,101,2026-01-10,1500.00,Completed\n"+
			"\"Smith, John\",102,2026-02-20,99.90,InProgress\n",
		string(data))
}

func TestStore_SaveAndLoad(t *testing.T) {
	store := csvstore.New(filepath.Join(t.TempDir(), "data.csv"))
	require.NoError(t, store.Save(sampleOrders()))

	loaded, err := store.Load()
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, "Olena Kovalenko", loaded[0].ClientName)
	assert.Equal(t, 101, loaded[0].Number)
	assert.Equal(t, "2026-01-10", loaded[0].DateText())
	assert.Equal(t, "1500.00", loaded[0].AmountText())
	assert.Equal(t, domain.StatusCompleted, loaded[0].Status)
	assert.Equal(t, "Smith, John", loaded[1].ClientName)
	assert.Equal(t, "99.90", loaded[1].AmountText())
}

func TestStore_LoadNonExistent(t *testing.T) {
	store := csvstore.New(filepath.Join(t.TempDir(), "missing.csv"))

	loaded, err := store.Load()
	assert.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestStore_LoadHeaderOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	store := csvstore.New(path)
	require.NoError(t, store.Save(nil))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.NotNil(t, loaded)
	assert.Empty(t, loaded)
}

func TestStore_LoadEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	writeFile(t, path, "")

	loaded, err := csvstore.New(path).Load()
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestStore_LoadRejectsWrongHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	writeFile(t, path, "Client,Order Number,Order Date,Order Amount,Status\nBob,1,2026-01-01,1.00,Completed\n")

	_, err := csvstore.New(path).Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected column 1")
}

func TestStore_LoadRejectsWrongColumnCount(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	writeFile(t, path, "Client Name,Order Number,Order Date,Order Amount,Status\nBob,1,2026-01-01\n")

	_, err := csvstore.New(path).Load()
	assert.Error(t, err)
}

func TestStore_LoadRejectsBadValues(t *testing.T) {
	header := "Client Name,Order Number,Order Date,Order Amount,Status\n"
	rows := map[string]string{
		"number": "Bob,abc,2026-01-01,1.00,Completed\n",
		"date":   "Bob,1,01/01/2026,1.00,Completed\n",
		"amount": "Bob,1,2026-01-01,one,Completed\n",
	}
	for name, row := range rows {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "data.csv")
			writeFile(t, path, header+row)

			_, err := csvstore.New(path).Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "line 2")
		})
	}
}

func TestStore_SaveCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deep", "data.csv")
	require.NoError(t, csvstore.New(path).Save(sampleOrders()))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestStore_SaveTruncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	store := csvstore.New(path)
	require.NoError(t, store.Save(sampleOrders()))
	require.NoError(t, store.Save(sampleOrders()[:1]))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Len(t, loaded, 1)
}

func TestStore_SaveFailsOnDirectory(t *testing.T) {
	dir := t.TempDir()
	assert.Error(t, csvstore.New(dir).Save(sampleOrders()))
}

func TestStore_LoadFixture(t *testing.T) {
	loaded, err := csvstore.New(filepath.Join("testdata", "orders.csv")).Load()
	require.NoError(t, err)
	require.Len(t, loaded, 3)

	assert.Equal(t, 1204, loaded[0].Number)
	assert.Equal(t, 1204, loaded[2].Number, "duplicate numbers load as separate orders")
	assert.Equal(t, "1000.00", loaded[1].AmountText())

	largest, ok := domain.Largest(loaded, domain.CompareText)
	require.True(t, ok)
	assert.Equal(t, "999.00", largest.AmountText())
}
