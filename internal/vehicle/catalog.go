// Package vehicle owns the full vehicle records. The work-order registry never
// reads them; it only sees vehicle ids that a shell attached to a customer.
package vehicle

import (
	"errors"
	"fmt"
	"sync"
)

var ErrNotFound = errors.New("no such vehicle")

type Vehicle struct {
	ID         int    `json:"id"`
	OwnerID    int    `json:"ownerId"`
	Make       string `json:"make"`
	Model      string `json:"model"`
	Year       int    `json:"year"`
	Powertrain string `json:"powertrain"`
	Body       string `json:"body"`
}

// Display renders the one-line form used by list screens.
func (v Vehicle) Display() string {
	return fmt.Sprintf("%d: %d %s %s (%s, %s)", v.ID, v.Year, v.Make, v.Model, v.Powertrain, v.Body)
}

// Catalog is the in-memory vehicle store with its own id allocator, separate
// from the registry's allocators.
type Catalog struct {
	mu       sync.Mutex
	vehicles []Vehicle
	nextID   int
}

func NewCatalog() *Catalog {
	return &Catalog{nextID: 1}
}

func (c *Catalog) Register(ownerID int, make, model string, year int, powertrain, body string) Vehicle {
	c.mu.Lock()
	defer c.mu.Unlock()

	v := Vehicle{
		ID:         c.nextID,
		OwnerID:    ownerID,
		Make:       make,
		Model:      model,
		Year:       year,
		Powertrain: powertrain,
		Body:       body,
	}
	c.nextID++
	c.vehicles = append(c.vehicles, v)
	return v
}

func (c *Catalog) Get(id int) (Vehicle, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, v := range c.vehicles {
		if v.ID == id {
			return v, nil
		}
	}
	return Vehicle{}, ErrNotFound
}

func (c *Catalog) List() []Vehicle {
	c.mu.Lock()
	defer c.mu.Unlock()

	return append([]Vehicle(nil), c.vehicles...)
}
