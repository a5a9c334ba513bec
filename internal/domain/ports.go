package domain

// OrderRepository persists the full order list. Load returns (nil, nil) when
// nothing has been stored yet.
type OrderRepository interface {
	Load() ([]Order, error)
	Save(orders []Order) error
	Path() string
}

// OrderGenerator produces synthetic orders for demos and tests.
type OrderGenerator interface {
	Generate() Order
}

// ConfigLoader reads tool configuration from a file path.
type ConfigLoader interface {
	Load(path string) (Config, error)
}
