package garage

import "fmt"

type Status string

const (
	StatusPending    Status = "PENDING"
	StatusInProgress Status = "IN_PROGRESS"
	StatusDone       Status = "DONE"
	StatusApproved   Status = "APPROVED"
)

type InvoiceStatus string

const (
	InvoiceUnpaid InvoiceStatus = "UNPAID"
	InvoicePaid   InvoiceStatus = "PAID"
)

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusInProgress, StatusDone, StatusApproved:
		return Status(s), nil
	default:
		return "", fmt.Errorf("unknown status: %s", s)
	}
}

// Work orders only ever move forward through the sequence; nothing regresses.
// MarkDone intentionally bypasses this table (see workorder.go), Approve does not.
var allowedTransitions = map[Status]map[Status]bool{
	StatusPending:    {StatusInProgress: true, StatusDone: true},
	StatusInProgress: {StatusDone: true},
	StatusDone:       {StatusApproved: true},
	StatusApproved:   {},
}

func CanTransition(from, to Status) bool {
	m, ok := allowedTransitions[from]
	if !ok {
		return false
	}
	return m[to]
}
