package navigation

import (
	"sync"

	"go.uber.org/zap"
)

// History abstracts the address-bar fragment so hash synchronization can be
// driven and observed without a browser.
type History interface {
	Fragment() string
	Push(fragment string)
}

// MemoryHistory is the in-process History used by the server and by tests.
type MemoryHistory struct {
	mu       sync.Mutex
	fragment string
	pushes   int
}

// NewMemoryHistory returns an empty history.
func NewMemoryHistory() *MemoryHistory {
	return &MemoryHistory{}
}

// Fragment returns the current fragment.
func (h *MemoryHistory) Fragment() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.fragment
}

// Push records a new fragment as a history mutation.
func (h *MemoryHistory) Push(fragment string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.fragment = fragment
	h.pushes++
}

// Pushes returns the number of history mutations performed.
func (h *MemoryHistory) Pushes() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.pushes
}

// Params is the ephemeral bag of values handed from one view to the next
// (e.g. pre-selecting a service on the booking form). Cleared on every
// navigation.
type Params map[string]string

// NavResult reports where a navigation ended up.
type NavResult struct {
	Page       Page
	Redirected bool
}

// Router owns the current page, keeps it synchronized with the URL fragment
// and gates every navigation through the role access table. Unauthorized and
// unknown targets degrade silently to home; the guard is the layer that
// surfaces denials.
type Router struct {
	mu      sync.Mutex
	session *Session
	page    Page
	params  Params
	history History
	logger  *zap.Logger
}

// NewRouter starts at home with no session.
func NewRouter(history History, logger *zap.Logger) *Router {
	if history == nil {
		history = NewMemoryHistory()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Router{page: Home(), history: history, logger: logger}
}

// SetSession installs the session and re-checks the current page, since the
// accessible set depends on the role. Pass nil on logout.
func (r *Router) SetSession(s *Session) {
	r.mu.Lock()
	r.session = s
	page := r.page
	r.mu.Unlock()

	// Role changed: the page we are on may no longer be reachable.
	r.NavigateTo(page, nil)
}

// Page returns the current page.
func (r *Router) Page() Page {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.page
}

// Params returns the parameters stored by the last navigation.
func (r *Router) Params() Params {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.params
}

// IsPageAccessible applies the access decision: no session denies
// everything, otherwise membership in the role's allow-list.
func (r *Router) IsPageAccessible(key PageKey) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.accessible(key)
}

func (r *Router) accessible(key PageKey) bool {
	if r.session == nil {
		return false
	}
	return Accessible(r.session.Role, key)
}

// NavigateTo moves to the page when the current role allows it, storing the
// params and writing the fragment only when it differs from the current one.
// Denied targets force home, clear params and rewrite the fragment.
func (r *Router) NavigateTo(page Page, params Params) NavResult {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.accessible(page.Key) {
		if page.Key != PageHome {
			r.logger.Debug("navigation denied",
				zap.String("page", string(page.Key)))
		}
		r.page = Home()
		r.params = nil
		r.writeFragment(r.page.Fragment())
		return NavResult{Page: r.page, Redirected: true}
	}

	r.page = page
	r.params = params
	r.writeFragment(page.Fragment())
	return NavResult{Page: page}
}

// Restore adopts the page named by the fragment, subject to the same access
// check as NavigateTo. It serves initial load, back/forward and manual URL
// edits, so deep links respect the access table rather than trusting the
// address bar.
func (r *Router) Restore(fragment string) NavResult {
	page, err := ParseFragment(fragment)
	if err != nil {
		r.logger.Debug("unparseable fragment", zap.String("fragment", fragment), zap.Error(err))
		page = Home()
	}
	return r.NavigateTo(page, nil)
}

// writeFragment pushes only when the fragment actually changes, so repeated
// navigations to the same page do not pile up history entries.
func (r *Router) writeFragment(fragment string) {
	if r.history.Fragment() != fragment {
		r.history.Push(fragment)
	}
}
