package policy

import (
	"testing"

	"github.com/Akimtsev/ops_console/internal/domain"
)

func equalSet(got []domain.Status, want ...domain.Status) bool {
	if len(got) != len(want) {
		return false
	}
	seen := make(map[domain.Status]bool, len(got))
	for _, s := range got {
		seen[s] = true
	}
	for _, s := range want {
		if !seen[s] {
			return false
		}
	}
	return true
}

func TestNextAllowed_AdminTable(t *testing.T) {
	cases := []struct {
		current domain.Status
		want    []domain.Status
	}{
		{domain.StatusPlaced, []domain.Status{domain.StatusAccepted, domain.StatusRejected}},
		{domain.StatusAccepted, []domain.Status{domain.StatusReady}},
		{domain.StatusReady, []domain.Status{domain.StatusPickedUp}},
		{domain.StatusPickedUp, []domain.Status{domain.StatusOutForDelivery}},
		{domain.StatusOutForDelivery, []domain.Status{domain.StatusDelivered}},
		{domain.StatusScheduled, nil},
		{domain.StatusPreparing, nil},
		{domain.StatusRejected, nil},
		{domain.StatusDelivered, nil},
		{domain.StatusCancelled, nil},
		{domain.StatusFailed, nil},
	}
	for _, tc := range cases {
		got := NextAllowed(tc.current, domain.RoleAdmin)
		if !equalSet(got, tc.want...) {
			t.Fatalf("admin %s: want %v, got %v", tc.current, tc.want, got)
		}
	}
}

func TestNextAllowed_KitchenTable(t *testing.T) {
	cases := []struct {
		current domain.Status
		want    []domain.Status
	}{
		{domain.StatusPlaced, []domain.Status{domain.StatusAccepted, domain.StatusRejected}},
		{domain.StatusAccepted, []domain.Status{domain.StatusPreparing}},
		{domain.StatusPreparing, []domain.Status{domain.StatusReady}},
		{domain.StatusReady, nil},
		{domain.StatusRejected, nil},
		// дальше READY у кухни полномочий нет
		{domain.StatusPickedUp, nil},
		{domain.StatusOutForDelivery, nil},
		{domain.StatusDelivered, nil},
	}
	for _, tc := range cases {
		got := NextAllowed(tc.current, domain.RoleKitchenStaff)
		if !equalSet(got, tc.want...) {
			t.Fatalf("kitchen %s: want %v, got %v", tc.current, tc.want, got)
		}
	}
}

func TestNextAllowed_UnknownRole(t *testing.T) {
	if got := NextAllowed(domain.StatusPlaced, domain.Role("COURIER")); len(got) != 0 {
		t.Fatalf("unknown role must get empty set, got %v", got)
	}
	if got := NextAllowed(domain.StatusPlaced, ""); len(got) != 0 {
		t.Fatalf("empty role must get empty set, got %v", got)
	}
}

func TestAllowed(t *testing.T) {
	// кухня не может перескочить PLACED -> READY
	if Allowed(domain.StatusPlaced, domain.StatusReady, domain.RoleKitchenStaff) {
		t.Fatalf("PLACED->READY must be rejected for kitchen staff")
	}
	if !Allowed(domain.StatusReady, domain.StatusPickedUp, domain.RoleAdmin) {
		t.Fatalf("READY->PICKED_UP must be allowed for admin")
	}
}

func TestIsTerminal(t *testing.T) {
	for _, s := range []domain.Status{
		domain.StatusRejected, domain.StatusCancelled, domain.StatusFailed, domain.StatusDelivered,
	} {
		if !IsTerminal(s) {
			t.Fatalf("%s must be terminal", s)
		}
	}
	for _, s := range []domain.Status{
		domain.StatusPlaced, domain.StatusScheduled, domain.StatusAccepted,
		domain.StatusPreparing, domain.StatusReady, domain.StatusPickedUp, domain.StatusOutForDelivery,
	} {
		if IsTerminal(s) {
			t.Fatalf("%s must not be terminal", s)
		}
	}
}

func TestNextAllowed_TableIsolation(t *testing.T) {
	got := NextAllowed(domain.StatusPlaced, domain.RoleAdmin)
	got[0] = domain.StatusFailed
	again := NextAllowed(domain.StatusPlaced, domain.RoleAdmin)
	if again[0] == domain.StatusFailed {
		t.Fatalf("NextAllowed must return a copy, not the table itself")
	}
}
