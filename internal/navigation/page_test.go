package navigation

import "testing"

func TestParseFragmentRoundTrip(t *testing.T) {
	cases := []Page{
		Home(),
		{Key: PageBookings},
		{Key: PageOperationsDashboard},
		InvoiceDetail(42),
	}
	for _, want := range cases {
		got, err := ParseFragment(want.Fragment())
		if err != nil {
			t.Fatalf("ParseFragment(%q): %v", want.Fragment(), err)
		}
		if got != want {
			t.Fatalf("round trip of %q: got %+v want %+v", want.Fragment(), got, want)
		}
	}
}

func TestParseFragmentEmptyMeansHome(t *testing.T) {
	for _, fragment := range []string{"", "#", "#/"} {
		page, err := ParseFragment(fragment)
		if err != nil {
			t.Fatalf("ParseFragment(%q): %v", fragment, err)
		}
		if page.Key != PageHome {
			t.Fatalf("ParseFragment(%q) = %v, want home", fragment, page.Key)
		}
	}
}

func TestParseFragmentRejectsUnknownPage(t *testing.T) {
	if _, err := ParseFragment("#/no-such-page"); err == nil {
		t.Fatal("expected error for unknown page")
	}
}

func TestParseFragmentRejectsBadInvoiceID(t *testing.T) {
	for _, fragment := range []string{"#/invoice-detail-", "#/invoice-detail-abc", "#/invoice-detail-0", "#/invoice-detail--3"} {
		if _, err := ParseFragment(fragment); err == nil {
			t.Fatalf("expected error for %q", fragment)
		}
	}
}

func TestInvoiceDetailFragmentEmbedsID(t *testing.T) {
	if got := InvoiceDetail(7).Fragment(); got != "#/invoice-detail-7" {
		t.Fatalf("fragment = %q", got)
	}
}
