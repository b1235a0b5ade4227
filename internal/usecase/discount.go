package usecase

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/AbhishekM14/order-management-api/internal/domain/model"
)

// noDiscountDescription is returned when no strategy applies.
const noDiscountDescription = "No discount applied"

var (
	premiumDiscountRate = decimal.RequireFromString("0.10")
	largeOrderRate      = decimal.RequireFromString("0.05")
	largeOrderThreshold = decimal.RequireFromString("500.00")
)

// DiscountStrategy is a single pricing rule. Strategies are independent and
// additive: every applicable strategy contributes its own amount.
type DiscountStrategy interface {
	Applicable(role model.UserRole, subtotal decimal.Decimal) bool
	Calculate(subtotal decimal.Decimal) decimal.Decimal
	Description() string
}

// PremiumUserStrategy grants premium users 10% off the subtotal.
type PremiumUserStrategy struct{}

func (PremiumUserStrategy) Applicable(role model.UserRole, _ decimal.Decimal) bool {
	return role == model.RolePremiumUser
}

// Calculate rounds half-up to 2 decimal places.
func (PremiumUserStrategy) Calculate(subtotal decimal.Decimal) decimal.Decimal {
	return subtotal.Mul(premiumDiscountRate).Round(2)
}

func (PremiumUserStrategy) Description() string {
	return "10% premium user discount"
}

// LargeOrderStrategy grants 5% off subtotals strictly above the threshold.
type LargeOrderStrategy struct{}

func (LargeOrderStrategy) Applicable(_ model.UserRole, subtotal decimal.Decimal) bool {
	return subtotal.GreaterThan(largeOrderThreshold)
}

func (LargeOrderStrategy) Calculate(subtotal decimal.Decimal) decimal.Decimal {
	if subtotal.GreaterThan(largeOrderThreshold) {
		return subtotal.Mul(largeOrderRate).Round(2)
	}
	return decimal.Zero
}

func (LargeOrderStrategy) Description() string {
	return "5% discount for orders above $500"
}

// BaseStrategy covers USER and ADMIN roles with no discount. Placeholder for
// future role-based rules.
type BaseStrategy struct{}

func (BaseStrategy) Applicable(role model.UserRole, _ decimal.Decimal) bool {
	return role == model.RoleUser || role == model.RoleAdmin
}

func (BaseStrategy) Calculate(decimal.Decimal) decimal.Decimal {
	return decimal.Zero
}

func (BaseStrategy) Description() string {
	return "No discount"
}

// DiscountCalculator composes the fixed strategy set into one aggregate
// amount and one human-readable description.
type DiscountCalculator struct {
	strategies []DiscountStrategy
}

// NewDiscountCalculator builds the calculator with the full strategy set.
func NewDiscountCalculator() *DiscountCalculator {
	return &DiscountCalculator{
		strategies: []DiscountStrategy{
			BaseStrategy{},
			PremiumUserStrategy{},
			LargeOrderStrategy{},
		},
	}
}

// Calculate sums the amounts of all applicable strategies. A zero or negative
// subtotal yields zero, not an error.
func (c *DiscountCalculator) Calculate(role model.UserRole, subtotal decimal.Decimal) decimal.Decimal {
	if !subtotal.IsPositive() {
		return decimal.Zero
	}

	total := decimal.Zero
	for _, s := range c.strategies {
		if s.Applicable(role, subtotal) {
			total = total.Add(s.Calculate(subtotal))
		}
	}
	return total
}

// CombinedDescription joins descriptions of applicable strategies.
func (c *DiscountCalculator) CombinedDescription(role model.UserRole, subtotal decimal.Decimal) string {
	var parts []string
	for _, s := range c.strategies {
		if s.Applicable(role, subtotal) {
			parts = append(parts, s.Description())
		}
	}
	if len(parts) == 0 {
		return noDiscountDescription
	}
	return strings.Join(parts, " + ")
}
