package dashboard

import (
	"github.com/sportsmgr/club-service/internal/auth"
)

// Routes guarded by the gate. Dashboard and settings are open to any
// signed-in role.
const (
	RouteDashboard   = "/dashboard"
	RouteLogin       = "/login"
	RouteTeams       = "/teams"
	RoutePlayers     = "/players"
	RouteMatches     = "/matches"
	RouteTactics     = "/tactics"
	RouteStatistics  = "/statistics"
	RoutePerformance = "/performance"
	RouteSettings    = "/settings"
)

// routeResources maps each guarded route to the resource whose read
// permission controls it. Routes absent from the map only require a session.
var routeResources = map[string]auth.Resource{
	RouteTeams:       auth.ResourceTeams,
	RoutePlayers:     auth.ResourcePlayers,
	RouteMatches:     auth.ResourceMatches,
	RouteTactics:     auth.ResourceTactics,
	RouteStatistics:  auth.ResourceStatistics,
	RoutePerformance: auth.ResourcePerformance,
}

// navLabels gives menu labels in display order.
var navLabels = map[auth.Resource]string{
	auth.ResourceTeams:       "Teams",
	auth.ResourcePlayers:     "Players",
	auth.ResourceMatches:     "Matches",
	auth.ResourceTactics:     "Tactics",
	auth.ResourceStatistics:  "Statistics",
	auth.ResourcePerformance: "Performance",
}

// Decision is the gate's verdict for a navigation attempt.
type Decision struct {
	Allowed bool
	// RedirectTo is set when Allowed is false: the login route for missing
	// sessions, the dashboard for missing permissions.
	RedirectTo string
	// ReturnTo preserves the originally requested route across a login
	// redirect so the user lands where they were headed.
	ReturnTo string
}

// NavItem is one entry of the side menu.
type NavItem struct {
	Label string
	Route string
}

// Gate decides route access from the session's role. Denials are quiet:
// the user is sent to the dashboard without an error toast, because the menu
// never offered the route in the first place.
type Gate struct {
	session *Session
}

// NewGate builds a gate over the session.
func NewGate(session *Session) *Gate {
	return &Gate{session: session}
}

// Authorize evaluates a navigation attempt to route.
func (g *Gate) Authorize(route string) Decision {
	if g.session.State() != StateAuthenticated {
		return Decision{RedirectTo: RouteLogin, ReturnTo: route}
	}

	resource, guarded := routeResources[route]
	if !guarded {
		return Decision{Allowed: true}
	}
	if g.session.HasPermission(resource, auth.ActionRead) {
		return Decision{Allowed: true}
	}
	return Decision{RedirectTo: RouteDashboard}
}

// NavItems returns the menu for the signed-in role. Entries the role cannot
// read are omitted entirely rather than rendered disabled. Dashboard and
// settings bracket the list for every role; an empty slice means signed out.
func (g *Gate) NavItems() []NavItem {
	if g.session.State() != StateAuthenticated {
		return nil
	}

	items := []NavItem{{Label: "Dashboard", Route: RouteDashboard}}
	for _, resource := range auth.AllResources() {
		if !g.session.HasPermission(resource, auth.ActionRead) {
			continue
		}
		items = append(items, NavItem{
			Label: navLabels[resource],
			Route: resourceRoute(resource),
		})
	}
	items = append(items, NavItem{Label: "Settings", Route: RouteSettings})
	return items
}

func resourceRoute(resource auth.Resource) string {
	for route, mapped := range routeResources {
		if mapped == resource {
			return route
		}
	}
	return RouteDashboard
}
