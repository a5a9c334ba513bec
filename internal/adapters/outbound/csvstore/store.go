package csvstore

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/ordertrack/ordertrack/internal/domain"
)

// Header is the exact first row of a data file, in column order.
var Header = []string{"Client Name", "Order Number", "Order Date", "Order Amount", "Status"}

// Store is a CSV file implementation of domain.OrderRepository.
type Store struct {
	path string
}

var _ domain.OrderRepository = (*Store)(nil)

// New creates a store backed by the file at path.
func New(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Path() string { return s.path }

// Load reads all orders. Returns (nil, nil) if the file does not exist.
func (s *Store) Load() ([]domain.Order, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil // no file yet is not an error
		}
		return nil, err
	}
	defer f.Close()

	orders, err := decode(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", s.path, err)
	}
	return orders, nil
}

// Save rewrites the whole file, creating directories as needed.
func (s *Store) Save(orders []domain.Order) (err error) {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return encode(f, orders)
}

func encode(w io.Writer, orders []domain.Order) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, o := range orders {
		if err := cw.Write(toRecord(o)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func decode(r io.Reader) ([]domain.Order, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(Header)

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return []domain.Order{}, nil
	}
	if err != nil {
		return nil, err
	}
	if err := checkHeader(header); err != nil {
		return nil, err
	}

	orders := []domain.Order{}
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		o, err := fromRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		orders = append(orders, o)
	}
	return orders, nil
}

func checkHeader(header []string) error {
	for i, want := range Header {
		if header[i] != want {
			return fmt.Errorf("unexpected column %d: got %q, want %q", i+1, header[i], want)
		}
	}
	return nil
}

func toRecord(o domain.Order) []string {
	return []string{
		o.ClientName,
		strconv.Itoa(o.Number),
		o.DateText(),
		o.AmountText(),
		string(o.Status),
	}
}

func fromRecord(rec []string) (domain.Order, error) {
	number, err := strconv.Atoi(rec[1])
	if err != nil {
		return domain.Order{}, fmt.Errorf("order number %q: %w", rec[1], err)
	}
	date, err := domain.ParseDate(rec[2])
	if err != nil {
		return domain.Order{}, fmt.Errorf("order date %q: %w", rec[2], err)
	}
	amount, err := domain.ParseAmount(rec[3])
	if err != nil {
		return domain.Order{}, fmt.Errorf("order amount %q: %w", rec[3], err)
	}
	return domain.Order{
		ClientName: rec[0],
		Number:     number,
		Date:       date,
		Amount:     amount,
		Status:     domain.Status(rec[4]),
	}, nil
}
