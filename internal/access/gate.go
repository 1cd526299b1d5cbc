// Package access decides, per navigation, whether a view may be shown.
// The decision is a pure function of the session state and the view's
// role requirement; it is re-evaluated on every navigation and never
// cached across views.
package access

// Role requirement of a view.
type Role int

const (
	// RoleNone means the view only requires an authenticated session.
	RoleNone Role = iota
	// RoleAdmin additionally requires the admin role.
	RoleAdmin
)

// Decision is the gate's verdict.
type Decision int

const (
	// Render the requested view.
	Render Decision = iota
	// Wait: the session is still being resolved from persisted storage;
	// show a neutral loading state and make no redirect decision yet.
	Wait
	// RedirectLanding sends the anonymous user to the landing route.
	RedirectLanding
	// RedirectDashboard sends an authenticated non-admin away from an
	// admin view to the authenticated default, never an error page.
	RedirectDashboard
)

// State is the slice of session state the gate consults.
type State struct {
	Loading       bool
	Authenticated bool
	Admin         bool
}

// Decide evaluates the gate for one navigation.
func Decide(state State, required Role) Decision {
	if state.Loading {
		return Wait
	}
	if !state.Authenticated {
		return RedirectLanding
	}
	if required == RoleAdmin && !state.Admin {
		return RedirectDashboard
	}
	return Render
}
