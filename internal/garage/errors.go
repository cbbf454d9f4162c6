package garage

// Error is a coded failure so callers (and the HTTP layer) can tell outcomes
// apart without string matching.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string { return e.Message }

var (
	ErrCustomerNotFound  = &Error{Code: "CUSTOMER_NOT_FOUND", Message: "no such customer"}
	ErrVehicleNotLinked  = &Error{Code: "VEHICLE_NOT_LINKED", Message: "vehicle not linked to that customer"}
	ErrWorkOrderNotFound = &Error{Code: "WORK_ORDER_NOT_FOUND", Message: "no such work order"}
	ErrInvoiceNotFound   = &Error{Code: "INVOICE_NOT_FOUND", Message: "no such invoice"}
	ErrInvalidHours      = &Error{Code: "INVALID_HOURS", Message: "hours must not be negative"}
	ErrNotDone           = &Error{Code: "WORK_ORDER_NOT_DONE", Message: "work order must be DONE before approval"}
	ErrInsufficientPay   = &Error{Code: "INSUFFICIENT_AMOUNT", Message: "payment amount is less than the invoice total"}
)
