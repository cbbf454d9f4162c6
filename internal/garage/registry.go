package garage

import "sync"

// Registry owns every collection and mints every identifier. It is an explicit
// context object: the process constructs one and hands it to whatever shell is
// driving the shop; tests build a fresh one each.
//
// Ids are strictly increasing from 1 per entity kind and are never reused
// (entities are never deleted). Lookups are linear scans over the ordered
// collections, which is fine at workshop scale.
type Registry struct {
	mu sync.Mutex

	customers  []*Customer
	workOrders []*WorkOrder
	invoices   []*Invoice

	nextCustomerID  int
	nextWorkOrderID int
	nextInvoiceID   int
}

func New() *Registry {
	return &Registry{
		nextCustomerID:  1,
		nextWorkOrderID: 1,
		nextInvoiceID:   1,
	}
}

// find helpers assume r.mu is held.

func (r *Registry) findCustomer(id int) *Customer {
	for _, c := range r.customers {
		if c.ID == id {
			return c
		}
	}
	return nil
}

func (r *Registry) findWorkOrder(id int) *WorkOrder {
	for _, wo := range r.workOrders {
		if wo.ID == id {
			return wo
		}
	}
	return nil
}

func (r *Registry) findInvoice(id int) *Invoice {
	for _, inv := range r.invoices {
		if inv.ID == id {
			return inv
		}
	}
	return nil
}
