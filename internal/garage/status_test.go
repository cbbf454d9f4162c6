package garage

import "testing"

func TestCanTransition_ForwardOnly(t *testing.T) {
	if !CanTransition(StatusPending, StatusInProgress) {
		t.Fatalf("expected PENDING -> IN_PROGRESS allowed")
	}
	if !CanTransition(StatusInProgress, StatusDone) {
		t.Fatalf("expected IN_PROGRESS -> DONE allowed")
	}
	if !CanTransition(StatusDone, StatusApproved) {
		t.Fatalf("expected DONE -> APPROVED allowed")
	}
	if CanTransition(StatusApproved, StatusDone) {
		t.Fatalf("expected APPROVED -> DONE rejected")
	}
	if CanTransition(StatusDone, StatusInProgress) {
		t.Fatalf("expected DONE -> IN_PROGRESS rejected")
	}
	if CanTransition(StatusInProgress, StatusApproved) {
		t.Fatalf("expected IN_PROGRESS -> APPROVED shortcut rejected")
	}
}

func TestParseStatus(t *testing.T) {
	st, err := ParseStatus("DONE")
	if err != nil {
		t.Fatalf("ParseStatus: %v", err)
	}
	if st != StatusDone {
		t.Fatalf("expected DONE, got %s", st)
	}
	if _, err := ParseStatus("CANCELLED"); err == nil {
		t.Fatalf("expected error for unknown status")
	}
}
