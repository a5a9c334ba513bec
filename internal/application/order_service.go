package application

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/ordertrack/ordertrack/internal/domain"
)

// OrderService owns the in-memory order list and rewrites the backing file
// after every mutation. It is not safe for concurrent use.
type OrderService struct {
	repo      domain.OrderRepository
	log       *logrus.Entry
	largestBy domain.CompareMode
	orders    []domain.Order
}

// Option customizes an OrderService.
type Option func(*OrderService)

// WithLargestBy selects how Largest ranks amounts.
func WithLargestBy(mode domain.CompareMode) Option {
	return func(s *OrderService) {
		if mode != "" {
			s.largestBy = mode
		}
	}
}

// NewOrderService loads the stored orders. A missing file yields an empty
// list; an unreadable one is logged and also yields an empty list.
func NewOrderService(repo domain.OrderRepository, logger *logrus.Entry, opts ...Option) *OrderService {
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger())
	}
	s := &OrderService{
		repo:      repo,
		log:       logger.WithField("component", "order_service"),
		largestBy: domain.CompareText,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.load()
	return s
}

func (s *OrderService) load() {
	orders, err := s.repo.Load()
	if err != nil {
		s.log.WithError(err).WithField("path", s.repo.Path()).Error("failed to load orders, starting with an empty list")
		return
	}
	if orders == nil {
		s.log.WithField("path", s.repo.Path()).Info("data file not found, a new one will be created")
		return
	}
	s.orders = orders
}

// Path is the location of the backing file.
func (s *OrderService) Path() string { return s.repo.Path() }

// Add appends an order and persists. Duplicate numbers are allowed.
func (s *OrderService) Add(o domain.Order) error {
	s.orders = append(s.orders, o.Normalize())
	return s.save()
}

// Edit applies u to the first order with the given number and persists.
// Later orders sharing the number are left alone.
func (s *OrderService) Edit(number int, u domain.OrderUpdate) error {
	for i := range s.orders {
		if s.orders[i].Number != number {
			continue
		}
		s.orders[i] = u.Apply(s.orders[i])
		return s.save()
	}
	s.log.WithField("order_number", number).Warn("order not found")
	return fmt.Errorf("order %d: %w", number, domain.ErrOrderNotFound)
}

// Delete removes every order with the given number and persists, even when
// nothing matched. It returns how many orders were removed.
func (s *OrderService) Delete(number int) (int, error) {
	kept := s.orders[:0:0]
	for _, o := range s.orders {
		if o.Number != number {
			kept = append(kept, o)
		}
	}
	removed := len(s.orders) - len(kept)
	s.orders = kept
	return removed, s.save()
}

// List returns a copy of the orders in insertion order.
func (s *OrderService) List() []domain.Order {
	out := make([]domain.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

func (s *OrderService) Stats() domain.Stats {
	return domain.ComputeStats(s.orders)
}

// Largest returns the order with the greatest amount. ok is false when there
// are no orders.
func (s *OrderService) Largest() (domain.Order, bool) {
	o, ok := domain.Largest(s.orders, s.largestBy)
	if !ok {
		s.log.Info("order list is empty")
	}
	return o, ok
}

func (s *OrderService) StatusSeries() domain.StatusSeries {
	return domain.ComputeStatusSeries(s.orders)
}

func (s *OrderService) DateSeries() []domain.DateCount {
	return domain.ComputeDateSeries(s.orders)
}

// save rewrites the backing file. The in-memory list is kept on failure.
func (s *OrderService) save() error {
	if err := s.repo.Save(s.orders); err != nil {
		s.log.WithError(err).WithField("path", s.repo.Path()).Error("failed to save orders")
		return fmt.Errorf("saving orders: %w", err)
	}
	return nil
}

// IsNotFound reports whether err is a benign lookup miss.
func IsNotFound(err error) bool {
	return errors.Is(err, domain.ErrOrderNotFound)
}
