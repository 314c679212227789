// Package pricing computes document totals from line items. It is the single
// source of truth for invoice and quote amounts: services recompute and
// persist totals through these functions on every item mutation, and caller
// supplied amounts are ignored.
package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// DefaultTaxRate is applied to a line item when the caller does not specify one.
var DefaultTaxRate = decimal.NewFromInt(20)

var hundred = decimal.NewFromInt(100)

// LineInput is the pricing-relevant slice of a line item.
type LineInput struct {
	Quantity decimal.Decimal
	Price    decimal.Decimal
	TaxRate  decimal.Decimal
}

// DocumentTotals is the derived monetary state of a quote or invoice.
type DocumentTotals struct {
	Amount    decimal.Decimal // discounted sum of line totals, pre-tax
	TaxAmount decimal.Decimal // discounted sum of line taxes
}

// LineTotal returns quantity x price, before tax and before any discount.
func LineTotal(quantity, price decimal.Decimal) decimal.Decimal {
	return quantity.Mul(price)
}

// LineTax returns the tax portion of a single line: line_total x rate/100.
func LineTax(lineTotal, taxRate decimal.Decimal) decimal.Decimal {
	return lineTotal.Mul(taxRate.Div(hundred))
}

// ComputeTotals aggregates the line items of a document and applies the
// whole-document discount percent uniformly to both the amount and the tax.
// Zero items yields zero totals.
func ComputeTotals(items []LineInput, discount decimal.Decimal) (DocumentTotals, error) {
	if discount.IsNegative() || discount.GreaterThan(hundred) {
		return DocumentTotals{}, fmt.Errorf("discount percent %s out of range [0,100]", discount)
	}

	subtotal := decimal.Zero
	subtotalTax := decimal.Zero
	for i, item := range items {
		if item.Quantity.IsNegative() {
			return DocumentTotals{}, fmt.Errorf("line %d: quantity must not be negative", i)
		}
		if item.Price.IsNegative() {
			return DocumentTotals{}, fmt.Errorf("line %d: price must not be negative", i)
		}
		rate := item.TaxRate
		if rate.IsNegative() {
			return DocumentTotals{}, fmt.Errorf("line %d: tax rate must not be negative", i)
		}
		lineTotal := LineTotal(item.Quantity, item.Price)
		subtotal = subtotal.Add(lineTotal)
		subtotalTax = subtotalTax.Add(LineTax(lineTotal, rate))
	}

	if discount.IsPositive() {
		subtotal = subtotal.Sub(subtotal.Mul(discount.Div(hundred)))
		subtotalTax = subtotalTax.Sub(subtotalTax.Mul(discount.Div(hundred)))
	}

	return DocumentTotals{Amount: subtotal, TaxAmount: subtotalTax}, nil
}

// PercentChange returns the percentage delta from previous to current,
// rounded to one decimal place. A zero previous value yields zero rather than
// a division error, which keeps dashboard change figures well defined for new
// accounts.
func PercentChange(current, previous decimal.Decimal) decimal.Decimal {
	if previous.IsZero() {
		return decimal.Zero
	}
	return current.Sub(previous).Div(previous).Mul(hundred).Round(1)
}
