// Package prices holds the editable driver and constructor price tables.
package prices

import (
	"fmt"
	"sync"

	"github.com/shopspring/decimal"
)

// Table is a snapshot of entity name to price in millions.
type Table map[string]decimal.Decimal

// Store keeps the two price tables. The sets of names are fixed at
// construction; only values change afterwards. Safe for concurrent use by the
// HTTP handlers.
type Store struct {
	mu               sync.RWMutex
	drivers          map[string]decimal.Decimal
	constructors     map[string]decimal.Decimal
	driverOrder      []string
	constructorOrder []string
}

// NewStore seeds both tables from the built-in defaults.
func NewStore() *Store {
	s := &Store{
		drivers:      make(map[string]decimal.Decimal, len(defaultDriverPrices)),
		constructors: make(map[string]decimal.Decimal, len(defaultConstructorPrices)),
	}
	for _, e := range defaultDriverPrices {
		s.drivers[e.Name] = decimal.NewFromFloat(e.Price)
		s.driverOrder = append(s.driverOrder, e.Name)
	}
	for _, e := range defaultConstructorPrices {
		s.constructors[e.Name] = decimal.NewFromFloat(e.Price)
		s.constructorOrder = append(s.constructorOrder, e.Name)
	}
	return s
}

// Drivers returns a copy of the driver table.
func (s *Store) Drivers() Table {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyTable(s.drivers)
}

// Constructors returns a copy of the constructor table.
func (s *Store) Constructors() Table {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyTable(s.constructors)
}

// DriverNames returns all driver names in seed order.
func (s *Store) DriverNames() []string {
	return append([]string(nil), s.driverOrder...)
}

// ConstructorNames returns all constructor names in seed order.
func (s *Store) ConstructorNames() []string {
	return append([]string(nil), s.constructorOrder...)
}

// SetDriverPrice updates one driver's price. Unknown names are rejected; any
// price value, including zero or negative, is accepted and flows into later
// budget arithmetic unchanged.
func (s *Store) SetDriverPrice(name string, price decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.drivers[name]; !ok {
		return fmt.Errorf("unknown driver %q", name)
	}
	s.drivers[name] = price
	return nil
}

// SetConstructorPrice updates one constructor's price.
func (s *Store) SetConstructorPrice(name string, price decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.constructors[name]; !ok {
		return fmt.Errorf("unknown constructor %q", name)
	}
	s.constructors[name] = price
	return nil
}

// HasDriver reports whether name is part of the fixed driver set.
func (s *Store) HasDriver(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.drivers[name]
	return ok
}

// HasConstructor reports whether name is part of the fixed constructor set.
func (s *Store) HasConstructor(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.constructors[name]
	return ok
}

func copyTable(src map[string]decimal.Decimal) Table {
	out := make(Table, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}
