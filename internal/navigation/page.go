package navigation

import (
	"fmt"
	"strconv"
	"strings"
)

// PageKey identifies a navigable portal view.
type PageKey string

const (
	PageHome                PageKey = "home"
	PageMyVehicles          PageKey = "my-vehicles"
	PageServices            PageKey = "services"
	PageServiceBooking      PageKey = "service-booking"
	PageMyBookings          PageKey = "my-bookings"
	PageProfile             PageKey = "profile"
	PageJobManagement       PageKey = "job-management"
	PageCurrentJobs         PageKey = "current-jobs"
	PageTechnicians         PageKey = "technicians"
	PagePendingJobs         PageKey = "pending-jobs"
	PageUserManagement      PageKey = "user-management"
	PageCustomers           PageKey = "customers"
	PageVehicles            PageKey = "vehicles"
	PageBookings            PageKey = "bookings"
	PageServiceTypes        PageKey = "service-types"
	PageInventory           PageKey = "inventory"
	PageInventoryNew        PageKey = "inventory-new"
	PageInventoryMoves      PageKey = "inventory-moves"
	PageVehicleTypes        PageKey = "vehicle-types"
	PageOperationsDashboard PageKey = "operations-dashboard"
	PageInvoices            PageKey = "invoices"
	PageInvoiceDetail       PageKey = "invoice-detail"
	PageFinanceLedger       PageKey = "finance-ledger"
)

const invoiceDetailPrefix = "invoice-detail-"

// Page is a navigable view. The invoice detail view carries the invoice id
// as a typed field rather than a string suffix, so callers never parse keys.
type Page struct {
	Key       PageKey
	InvoiceID int64
}

// Home returns the default landing page.
func Home() Page {
	return Page{Key: PageHome}
}

// InvoiceDetail returns the detail page for the given invoice.
func InvoiceDetail(id int64) Page {
	return Page{Key: PageInvoiceDetail, InvoiceID: id}
}

// Fragment renders the page as a URL fragment. The fragment is the sole
// persisted navigation state and must round-trip through ParseFragment.
func (p Page) Fragment() string {
	if p.Key == PageInvoiceDetail {
		return fmt.Sprintf("#/%s%d", invoiceDetailPrefix, p.InvoiceID)
	}
	return "#/" + string(p.Key)
}

// ParseFragment decodes a URL fragment into a Page. An empty fragment means
// home. Unknown keys and malformed invoice ids are explicit errors; the
// router treats them like inaccessible pages.
func ParseFragment(fragment string) (Page, error) {
	trimmed := strings.TrimPrefix(fragment, "#")
	trimmed = strings.TrimPrefix(trimmed, "/")
	if trimmed == "" {
		return Home(), nil
	}

	if rest, ok := strings.CutPrefix(trimmed, invoiceDetailPrefix); ok {
		id, err := strconv.ParseInt(rest, 10, 64)
		if err != nil || id <= 0 {
			return Page{}, fmt.Errorf("invalid invoice id in fragment %q", fragment)
		}
		return InvoiceDetail(id), nil
	}

	key := PageKey(trimmed)
	if !Known(key) {
		return Page{}, fmt.Errorf("unknown page %q", trimmed)
	}
	return Page{Key: key}, nil
}
