package usecase

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/AbhishekM14/order-management-api/internal/domain/model"
)

func amount(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	return decimal.RequireFromString(s)
}

func TestDiscountCalculatorRegularUser(t *testing.T) {
	calc := NewDiscountCalculator()

	cases := []struct {
		name     string
		role     model.UserRole
		subtotal string
		want     string
	}{
		{name: "user under threshold", role: model.RoleUser, subtotal: "500.00", want: "0"},
		{name: "admin under threshold", role: model.RoleAdmin, subtotal: "499.99", want: "0"},
		{name: "user above threshold", role: model.RoleUser, subtotal: "500.01", want: "25.00"},
		{name: "user large order", role: model.RoleUser, subtotal: "1000.00", want: "50.00"},
		{name: "admin large order", role: model.RoleAdmin, subtotal: "600.00", want: "30.00"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := calc.Calculate(tc.role, amount(t, tc.subtotal))
			if !got.Equal(amount(t, tc.want)) {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestDiscountCalculatorPremiumUser(t *testing.T) {
	calc := NewDiscountCalculator()

	// 10% always; +5% on the same subtotal once above 500.00.
	cases := []struct {
		subtotal string
		want     string
	}{
		{subtotal: "100.00", want: "10.00"},
		{subtotal: "500.00", want: "50.00"},
		{subtotal: "1000.00", want: "150.00"},
		{subtotal: "500.01", want: "75.00"},
	}

	for _, tc := range cases {
		got := calc.Calculate(model.RolePremiumUser, amount(t, tc.subtotal))
		if !got.Equal(amount(t, tc.want)) {
			t.Fatalf("subtotal %s: expected %s, got %s", tc.subtotal, tc.want, got)
		}
	}
}

func TestDiscountCalculatorRoundsHalfUp(t *testing.T) {
	calc := NewDiscountCalculator()

	// 10% of 100.05 is 10.005, which rounds up to 10.01.
	got := calc.Calculate(model.RolePremiumUser, amount(t, "100.05"))
	if !got.Equal(amount(t, "10.01")) {
		t.Fatalf("expected 10.01, got %s", got)
	}

	// 5% of 500.10 is 25.005, rounded to 25.01.
	got = calc.Calculate(model.RoleUser, amount(t, "500.10"))
	if !got.Equal(amount(t, "25.01")) {
		t.Fatalf("expected 25.01, got %s", got)
	}
}

func TestDiscountCalculatorNonPositiveSubtotal(t *testing.T) {
	calc := NewDiscountCalculator()

	if got := calc.Calculate(model.RolePremiumUser, decimal.Zero); !got.IsZero() {
		t.Fatalf("expected zero discount for zero subtotal, got %s", got)
	}
	if got := calc.Calculate(model.RolePremiumUser, amount(t, "-10.00")); !got.IsZero() {
		t.Fatalf("expected zero discount for negative subtotal, got %s", got)
	}
}

func TestDiscountCalculatorIdempotent(t *testing.T) {
	calc := NewDiscountCalculator()
	subtotal := amount(t, "1000.00")

	first := calc.Calculate(model.RolePremiumUser, subtotal)
	second := calc.Calculate(model.RolePremiumUser, subtotal)
	if !first.Equal(second) {
		t.Fatalf("expected identical results, got %s and %s", first, second)
	}
}

func TestCombinedDescription(t *testing.T) {
	calc := NewDiscountCalculator()

	if got := calc.CombinedDescription(model.RoleUser, amount(t, "100.00")); got != "No discount" {
		t.Fatalf("unexpected description: %q", got)
	}
	if got := calc.CombinedDescription(model.RolePremiumUser, amount(t, "100.00")); got != "10% premium user discount" {
		t.Fatalf("unexpected description: %q", got)
	}
	want := "10% premium user discount + 5% discount for orders above $500"
	if got := calc.CombinedDescription(model.RolePremiumUser, amount(t, "600.00")); got != want {
		t.Fatalf("unexpected description: %q", got)
	}
	if got := calc.CombinedDescription(model.UserRole("GUEST"), amount(t, "100.00")); got != noDiscountDescription {
		t.Fatalf("unexpected description: %q", got)
	}
}

func TestIndividualStrategies(t *testing.T) {
	premium := PremiumUserStrategy{}
	if premium.Applicable(model.RoleUser, decimal.Zero) {
		t.Fatal("premium strategy should not apply to USER")
	}
	if !premium.Applicable(model.RolePremiumUser, decimal.Zero) {
		t.Fatal("premium strategy should apply to PREMIUM_USER")
	}

	large := LargeOrderStrategy{}
	if large.Applicable(model.RoleUser, amount(t, "500.00")) {
		t.Fatal("large order strategy applies only strictly above the threshold")
	}
	if !large.Applicable(model.RoleUser, amount(t, "500.01")) {
		t.Fatal("large order strategy should apply above the threshold")
	}
	if got := large.Calculate(amount(t, "400.00")); !got.IsZero() {
		t.Fatalf("expected zero below threshold, got %s", got)
	}

	base := BaseStrategy{}
	if !base.Applicable(model.RoleUser, decimal.Zero) || !base.Applicable(model.RoleAdmin, decimal.Zero) {
		t.Fatal("base strategy should apply to USER and ADMIN")
	}
	if base.Applicable(model.RolePremiumUser, decimal.Zero) {
		t.Fatal("base strategy should not apply to PREMIUM_USER")
	}
	if got := base.Calculate(amount(t, "100.00")); !got.IsZero() {
		t.Fatalf("expected zero base discount, got %s", got)
	}
}
