package garage

import "github.com/shopspring/decimal"

// HourlyRate converts labour hours to the invoice total. It is a shop-wide
// constant, not configurable per order or customer.
var HourlyRate = decimal.NewFromInt(100)

const currencyScale = 2

type WorkOrder struct {
	ID          int             `json:"id"`
	CustomerID  int             `json:"customerId"`
	VehicleID   int             `json:"vehicleId"`
	Status      Status          `json:"status"`
	LabourHours decimal.Decimal `json:"labourHours"`
}

// BookWorkOrder opens a work order for a customer/vehicle pair. Customer
// existence is checked before vehicle linkage, so an unknown customer is
// reported distinctly from a known customer with an unlinked vehicle. The
// vehicle check happens once, here; later mutations never re-validate it.
//
// Booked orders start IN_PROGRESS straight away — there is no operator path
// that parks one at PENDING.
func (r *Registry) BookWorkOrder(customerID, vehicleID int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c := r.findCustomer(customerID)
	if c == nil {
		return 0, ErrCustomerNotFound
	}
	if !hasVehicle(c, vehicleID) {
		return 0, ErrVehicleNotLinked
	}

	wo := &WorkOrder{
		ID:          r.nextWorkOrderID,
		CustomerID:  customerID,
		VehicleID:   vehicleID,
		Status:      StatusInProgress,
		LabourHours: decimal.Zero,
	}
	r.nextWorkOrderID++
	r.workOrders = append(r.workOrders, wo)
	return wo.ID, nil
}

// AddLabourHours accumulates billable time. Hours sum forever: never reset,
// never capped, and zero is an accepted no-op add. An order found at PENDING is
// advanced to IN_PROGRESS as a side effect of recording labour. Hours are still
// accepted after DONE or APPROVED; that looseness is long-standing behavior and
// callers should not rely on it being tightened silently.
func (r *Registry) AddLabourHours(workOrderID int, hours decimal.Decimal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	wo := r.findWorkOrder(workOrderID)
	if wo == nil {
		return ErrWorkOrderNotFound
	}
	if hours.IsNegative() {
		return ErrInvalidHours
	}
	wo.LabourHours = wo.LabourHours.Add(hours)
	if wo.Status == StatusPending {
		wo.Status = StatusInProgress
	}
	return nil
}

// MarkDone sets the order to DONE regardless of its current status. Forward-only
// progression is the design intent (see allowedTransitions) but this operation
// does not enforce it; that matches the shop's established behavior.
func (r *Registry) MarkDone(workOrderID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	wo := r.findWorkOrder(workOrderID)
	if wo == nil {
		return ErrWorkOrderNotFound
	}
	wo.Status = StatusDone
	return nil
}

// Approve freezes a DONE work order and mints its invoice. The total is fixed at
// approval time (hours x HourlyRate, rounded to cents) and is never recomputed.
// A work order can be approved at most once, so at most one invoice exists per
// order.
func (r *Registry) Approve(workOrderID int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	wo := r.findWorkOrder(workOrderID)
	if wo == nil {
		return 0, ErrWorkOrderNotFound
	}
	if !CanTransition(wo.Status, StatusApproved) {
		return 0, ErrNotDone
	}
	wo.Status = StatusApproved

	inv := &Invoice{
		ID:          r.nextInvoiceID,
		WorkOrderID: wo.ID,
		Total:       wo.LabourHours.Mul(HourlyRate).Round(currencyScale),
		Status:      InvoiceUnpaid,
	}
	r.nextInvoiceID++
	r.invoices = append(r.invoices, inv)
	return inv.ID, nil
}

func (r *Registry) GetWorkOrder(id int) (WorkOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	wo := r.findWorkOrder(id)
	if wo == nil {
		return WorkOrder{}, ErrWorkOrderNotFound
	}
	return *wo, nil
}

func (r *Registry) ListWorkOrders() []WorkOrder {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]WorkOrder, 0, len(r.workOrders))
	for _, wo := range r.workOrders {
		out = append(out, *wo)
	}
	return out
}

func hasVehicle(c *Customer, vehicleID int) bool {
	for _, id := range c.VehicleIDs {
		if id == vehicleID {
			return true
		}
	}
	return false
}
