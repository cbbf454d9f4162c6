package garage

type Customer struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`

	// VehicleIDs holds references only; the full vehicle records live in the
	// catalog, outside the registry. Attachment order is kept and duplicates
	// are tolerated.
	VehicleIDs []int `json:"vehicleIds"`
}

func (r *Registry) CreateCustomer(name, phone string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	c := &Customer{
		ID:    r.nextCustomerID,
		Name:  name,
		Phone: phone,
	}
	r.nextCustomerID++
	r.customers = append(r.customers, c)
	return c.ID
}

// AttachVehicle records that the customer owns the vehicle. The registry trusts
// the caller that vehicleID denotes a real vehicle; attaching the same id twice
// is permitted.
func (r *Registry) AttachVehicle(customerID, vehicleID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c := r.findCustomer(customerID)
	if c == nil {
		return ErrCustomerNotFound
	}
	c.VehicleIDs = append(c.VehicleIDs, vehicleID)
	return nil
}

func (r *Registry) GetCustomer(id int) (Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c := r.findCustomer(id)
	if c == nil {
		return Customer{}, ErrCustomerNotFound
	}
	return snapshotCustomer(c), nil
}

// ListCustomers returns value copies in creation order so callers cannot reach
// into registry state.
func (r *Registry) ListCustomers() []Customer {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Customer, 0, len(r.customers))
	for _, c := range r.customers {
		out = append(out, snapshotCustomer(c))
	}
	return out
}

func snapshotCustomer(c *Customer) Customer {
	cp := *c
	cp.VehicleIDs = append([]int(nil), c.VehicleIDs...)
	return cp
}
