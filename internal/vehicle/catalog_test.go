package vehicle

import (
	"errors"
	"testing"
)

func TestCatalog_RegisterAndGet(t *testing.T) {
	c := NewCatalog()
	v := c.Register(1, "Toyota", "Corolla", 2019, "petrol", "sedan")
	if v.ID != 1 {
		t.Fatalf("expected id 1, got %d", v.ID)
	}
	got, err := c.Get(v.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Model != "Corolla" {
		t.Fatalf("expected Corolla, got %s", got.Model)
	}
	if _, err := c.Get(99); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestVehicle_Display(t *testing.T) {
	v := Vehicle{ID: 3, Year: 2021, Make: "Honda", Model: "Civic", Powertrain: "hybrid", Body: "hatchback"}
	want := "3: 2021 Honda Civic (hybrid, hatchback)"
	if got := v.Display(); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}
