package navigation

import (
	"github.com/autofuellanka/portal-service/internal/domain"
)

// DecisionKind classifies a guard outcome.
type DecisionKind string

const (
	// DecisionLoading means the session has not resolved yet; render a
	// placeholder and nothing else.
	DecisionLoading DecisionKind = "LOADING"
	// DecisionSignedOut means no authenticated session exists. The guard
	// renders nothing; the outer shell owns the login prompt.
	DecisionSignedOut DecisionKind = "SIGNED_OUT"
	// DecisionDenied means the session's role is not in the required set.
	// This is the one place in the core that surfaces access denial.
	DecisionDenied DecisionKind = "DENIED"
	// DecisionAllowed means the wrapped content renders unchanged.
	DecisionAllowed DecisionKind = "ALLOWED"
)

// Decision is the guard verdict. Required carries the acceptable roles when
// the verdict is DENIED, so the denial message can name them.
type Decision struct {
	Kind     DecisionKind
	Required []domain.Role
}

// Allowed is a convenience accessor.
func (d Decision) Allowed() bool {
	return d.Kind == DecisionAllowed
}

// Check is the render-time guard: a pure function of session state and the
// required role set. Accepts a single role or several. An empty requirement
// only demands authentication.
func Check(sess *Session, loading bool, required ...domain.Role) Decision {
	if loading {
		return Decision{Kind: DecisionLoading}
	}
	if sess == nil {
		return Decision{Kind: DecisionSignedOut}
	}
	if len(required) == 0 {
		return Decision{Kind: DecisionAllowed}
	}
	for _, role := range required {
		if sess.Role == role {
			return Decision{Kind: DecisionAllowed}
		}
	}
	return Decision{Kind: DecisionDenied, Required: required}
}

// CheckPage guards a page using the registry's allow-list, so the guard and
// the router can never disagree about who may open a page.
func CheckPage(sess *Session, loading bool, key PageKey) Decision {
	return Check(sess, loading, AllowedRoles(key)...)
}
