package garage

import "github.com/shopspring/decimal"

type Invoice struct {
	ID          int             `json:"id"`
	WorkOrderID int             `json:"workOrderId"`
	Total       decimal.Decimal `json:"total"`
	Status      InvoiceStatus   `json:"status"`
}

// PayInvoice settles an invoice. The amount must cover the full total; there are
// no partial payments, and overpayment is accepted without change or credit.
// Paying an already-PAID invoice with a qualifying amount re-succeeds with no
// observable side effect.
func (r *Registry) PayInvoice(invoiceID int, amount decimal.Decimal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	inv := r.findInvoice(invoiceID)
	if inv == nil {
		return ErrInvoiceNotFound
	}
	if amount.LessThan(inv.Total) {
		return ErrInsufficientPay
	}
	inv.Status = InvoicePaid
	return nil
}

func (r *Registry) GetInvoice(id int) (Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	inv := r.findInvoice(id)
	if inv == nil {
		return Invoice{}, ErrInvoiceNotFound
	}
	return *inv, nil
}

func (r *Registry) ListInvoices() []Invoice {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Invoice, 0, len(r.invoices))
	for _, inv := range r.invoices {
		out = append(out, *inv)
	}
	return out
}
