package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestRecalculateTotals(t *testing.T) {
	inv := Invoice{Lines: []InvoiceLine{
		{Quantity: decimal.NewFromInt(2), UnitPrice: decimal.NewFromInt(1500)},
		{Quantity: decimal.NewFromFloat(10.5), UnitPrice: decimal.NewFromInt(299)},
	}}
	inv.RecalculateTotals()

	if !inv.Subtotal.Equal(decimal.NewFromFloat(6139.5)) {
		t.Errorf("subtotal = %s, want 6139.5", inv.Subtotal)
	}
	// 15% of 6139.5 = 920.925, rounded to 920.93
	if !inv.TaxAmount.Equal(decimal.NewFromFloat(920.93)) {
		t.Errorf("tax = %s, want 920.93", inv.TaxAmount)
	}
	if !inv.TotalAmount.Equal(decimal.NewFromFloat(7060.43)) {
		t.Errorf("total = %s, want 7060.43", inv.TotalAmount)
	}
	for _, line := range inv.Lines {
		if !line.LineTotal.Equal(line.UnitPrice.Mul(line.Quantity)) {
			t.Errorf("line total %s != qty*price", line.LineTotal)
		}
	}
}

func TestRefreshStatus(t *testing.T) {
	cases := []struct {
		paid string
		want InvoiceStatus
	}{
		{"0", InvoiceStatusUnpaid},
		{"500", InvoiceStatusPartial},
		{"1000", InvoiceStatusPaid},
	}
	for _, tc := range cases {
		inv := Invoice{TotalAmount: decimal.NewFromInt(1000)}
		inv.PaidAmount = decimal.RequireFromString(tc.paid)
		inv.RefreshStatus()
		if inv.Status != tc.want {
			t.Errorf("paid=%s: status = %s, want %s", tc.paid, inv.Status, tc.want)
		}
	}
}

func TestBalance(t *testing.T) {
	inv := Invoice{
		TotalAmount: decimal.NewFromInt(1000),
		PaidAmount:  decimal.NewFromInt(250),
	}
	if !inv.Balance().Equal(decimal.NewFromInt(750)) {
		t.Errorf("balance = %s, want 750", inv.Balance())
	}
}

func TestAccountForMethod(t *testing.T) {
	cases := map[PaymentMethod]string{
		PaymentCash:   AccountCash,
		PaymentCard:   AccountCard,
		PaymentOnline: AccountOnline,
	}
	for method, want := range cases {
		if got := AccountForMethod(method); got != want {
			t.Errorf("AccountForMethod(%s) = %s, want %s", method, got, want)
		}
	}
}
