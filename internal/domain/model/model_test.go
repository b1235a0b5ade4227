package model

import "testing"

func TestOrderStatusValues(t *testing.T) {
	cases := []struct {
		name  string
		got   OrderStatus
		value string
	}{
		{"pending", OrderStatusPending, "PENDING"},
		{"confirmed", OrderStatusConfirmed, "CONFIRMED"},
		{"processing", OrderStatusProcessing, "PROCESSING"},
		{"shipped", OrderStatusShipped, "SHIPPED"},
		{"delivered", OrderStatusDelivered, "DELIVERED"},
		{"cancelled", OrderStatusCancelled, "CANCELLED"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if string(tc.got) != tc.value {
				t.Fatalf("expected %s, got %s", tc.value, tc.got)
			}
		})
	}
}

func TestOrderStatusTransitions(t *testing.T) {
	cases := []struct {
		from    OrderStatus
		to      OrderStatus
		allowed bool
	}{
		{OrderStatusPending, OrderStatusConfirmed, true},
		{OrderStatusPending, OrderStatusCancelled, true},
		{OrderStatusPending, OrderStatusShipped, false},
		{OrderStatusConfirmed, OrderStatusProcessing, true},
		{OrderStatusConfirmed, OrderStatusCancelled, true},
		{OrderStatusProcessing, OrderStatusShipped, true},
		{OrderStatusProcessing, OrderStatusCancelled, false},
		{OrderStatusShipped, OrderStatusDelivered, true},
		{OrderStatusShipped, OrderStatusCancelled, false},
		{OrderStatusDelivered, OrderStatusPending, false},
		{OrderStatusCancelled, OrderStatusConfirmed, false},
	}

	for _, tc := range cases {
		if got := tc.from.CanTransition(tc.to); got != tc.allowed {
			t.Fatalf("%s -> %s: expected %v, got %v", tc.from, tc.to, tc.allowed, got)
		}
	}
}

func TestOrderStatusValid(t *testing.T) {
	if !OrderStatusShipped.Valid() {
		t.Fatal("expected SHIPPED to be valid")
	}
	if OrderStatus("UNKNOWN").Valid() {
		t.Fatal("expected UNKNOWN to be invalid")
	}
}

func TestParseRole(t *testing.T) {
	cases := []struct {
		raw     string
		want    UserRole
		wantErr bool
	}{
		{"", RoleUser, false},
		{"USER", RoleUser, false},
		{"PREMIUM_USER", RolePremiumUser, false},
		{"ADMIN", RoleAdmin, false},
		{"SUPERUSER", "", true},
		{"admin", "", true},
	}

	for _, tc := range cases {
		role, err := ParseRole(tc.raw)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("expected error for role %q", tc.raw)
			}
			continue
		}
		if err != nil {
			t.Fatalf("unexpected error for role %q: %v", tc.raw, err)
		}
		if role != tc.want {
			t.Fatalf("role %q: expected %s, got %s", tc.raw, tc.want, role)
		}
	}
}

func TestUserIsAdmin(t *testing.T) {
	if (&User{Role: RoleUser}).IsAdmin() {
		t.Fatal("USER must not be admin")
	}
	if !(&User{Role: RoleAdmin}).IsAdmin() {
		t.Fatal("ADMIN must be admin")
	}
	var nobody *User
	if nobody.IsAdmin() {
		t.Fatal("nil user must not be admin")
	}
}

func TestPageRequestNormalize(t *testing.T) {
	page := PageRequest{Page: -1, Size: 0}.Normalize(20, 100)
	if page.Page != 0 || page.Size != 20 {
		t.Fatalf("unexpected normalized page: %+v", page)
	}

	page = PageRequest{Page: 3, Size: 500}.Normalize(20, 100)
	if page.Size != 100 {
		t.Fatalf("expected size capped at 100, got %d", page.Size)
	}
	if page.Offset() != 300 {
		t.Fatalf("unexpected offset: %d", page.Offset())
	}
}
