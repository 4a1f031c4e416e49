package dashboard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sportsmgr/club-service/internal/domain"
	"github.com/sportsmgr/club-service/pkg/apiclient"
)

func signedInSession(t *testing.T, role domain.Role) *Session {
	t.Helper()
	api := &fakeAuthAPI{loginResult: &apiclient.LoginResult{
		AccessToken:  "access-1",
		RefreshToken: "refresh-1",
		User:         apiclient.User{ID: "user-1", Role: role},
	}}
	session := NewSession(apiclient.NewMemoryStore(), api, nil, nil)
	session.Restore()
	require.NoError(t, session.Login(context.Background(), "u@example.com", "pw"))
	return session
}

func TestAuthorizeSignedOutRedirectsToLogin(t *testing.T) {
	session := NewSession(apiclient.NewMemoryStore(), &fakeAuthAPI{}, nil, nil)
	session.Restore()
	gate := NewGate(session)

	decision := gate.Authorize(RoutePlayers)

	assert.False(t, decision.Allowed)
	assert.Equal(t, RouteLogin, decision.RedirectTo)
	assert.Equal(t, RoutePlayers, decision.ReturnTo, "the original destination survives the login round trip")
}

func TestAuthorizeDeniedRedirectsToDashboard(t *testing.T) {
	gate := NewGate(signedInSession(t, domain.RoleCoach))

	// tactics are fine for a coach, but team management is read-only and
	// club administration routes are off the menu entirely
	assert.True(t, gate.Authorize(RouteTactics).Allowed)

	decision := gate.Authorize(RoutePerformance)
	assert.True(t, decision.Allowed)

	denied := NewGate(signedInSession(t, domain.RolePlayer)).Authorize(RouteTeams)
	assert.False(t, denied.Allowed)
	assert.Equal(t, RouteDashboard, denied.RedirectTo)
	assert.Empty(t, denied.ReturnTo, "a silent redirect carries no return address")
}

func TestAuthorizeUnguardedRoutes(t *testing.T) {
	gate := NewGate(signedInSession(t, domain.RolePlayer))

	assert.True(t, gate.Authorize(RouteDashboard).Allowed)
	assert.True(t, gate.Authorize(RouteSettings).Allowed)
}

func TestNavItemsOmitForbiddenEntries(t *testing.T) {
	gate := NewGate(signedInSession(t, domain.RolePlayer))

	items := gate.NavItems()
	labels := make([]string, 0, len(items))
	for _, item := range items {
		labels = append(labels, item.Label)
	}

	assert.Equal(t, []string{"Dashboard", "Players", "Matches", "Statistics", "Settings"}, labels)
	assert.NotContains(t, labels, "Teams")
	assert.NotContains(t, labels, "Tactics")
}

func TestNavItemsFullMenuForSuperAdmin(t *testing.T) {
	gate := NewGate(signedInSession(t, domain.RoleSuperAdmin))

	items := gate.NavItems()
	require.Len(t, items, 8)
	assert.Equal(t, "Dashboard", items[0].Label)
	assert.Equal(t, "Settings", items[len(items)-1].Label)
}

func TestNavItemsEmptyWhenSignedOut(t *testing.T) {
	session := NewSession(apiclient.NewMemoryStore(), &fakeAuthAPI{}, nil, nil)
	session.Restore()

	assert.Empty(t, NewGate(session).NavItems())
}
