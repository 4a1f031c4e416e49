package dashboard

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sportsmgr/club-service/internal/auth"
	"github.com/sportsmgr/club-service/internal/domain"
	"github.com/sportsmgr/club-service/pkg/apiclient"
)

type fakeAuthAPI struct {
	loginResult *apiclient.LoginResult
	loginErr    error
	logoutErr   error
	loadMeErr   error
	logoutWith  []string
}

func (f *fakeAuthAPI) Login(_ context.Context, _, _ string) (*apiclient.LoginResult, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return f.loginResult, nil
}

func (f *fakeAuthAPI) Logout(_ context.Context, refreshToken string) error {
	f.logoutWith = append(f.logoutWith, refreshToken)
	return f.logoutErr
}

func (f *fakeAuthAPI) LoadMe(_ context.Context) (*apiclient.User, error) {
	if f.loadMeErr != nil {
		return nil, f.loadMeErr
	}
	if f.loginResult == nil {
		return nil, &apiclient.ServiceError{Status: http.StatusUnauthorized}
	}
	return &f.loginResult.User, nil
}

func coachLogin() *apiclient.LoginResult {
	return &apiclient.LoginResult{
		AccessToken:  "access-1",
		RefreshToken: "refresh-1",
		User: apiclient.User{
			ID:        "user-1",
			FirstName: "Sam",
			LastName:  "Taylor",
			Email:     "sam@example.com",
			Role:      domain.RoleCoach,
		},
	}
}

func TestSessionStartsRestoring(t *testing.T) {
	session := NewSession(apiclient.NewMemoryStore(), &fakeAuthAPI{}, nil, nil)
	assert.Equal(t, StateRestoring, session.State())
	assert.Nil(t, session.CurrentUser())
}

func TestRestoreWithoutCredentials(t *testing.T) {
	session := NewSession(apiclient.NewMemoryStore(), &fakeAuthAPI{}, nil, nil)
	assert.Equal(t, StateUnauthenticated, session.Restore())
}

func TestRestoreWithPersistedSession(t *testing.T) {
	creds := apiclient.NewMemoryStore()
	require.NoError(t, creds.SetTokens("access-1", "refresh-1"))
	require.NoError(t, creds.SetSession(`{"id":"user-1","firstName":"Sam","role":"coach"}`))

	session := NewSession(creds, &fakeAuthAPI{}, nil, nil)
	assert.Equal(t, StateAuthenticated, session.Restore())

	user := session.CurrentUser()
	require.NotNil(t, user)
	assert.Equal(t, domain.RoleCoach, user.Role)
}

func TestRestoreWithCorruptSessionSignsOut(t *testing.T) {
	creds := apiclient.NewMemoryStore()
	require.NoError(t, creds.SetTokens("access-1", "refresh-1"))
	require.NoError(t, creds.SetSession("{not json"))

	session := NewSession(creds, &fakeAuthAPI{}, nil, nil)
	assert.Equal(t, StateUnauthenticated, session.Restore())
	assert.Empty(t, creds.AccessToken(), "unreadable state is discarded, not limped along with")
}

func TestLoginSuccessPersistsEverything(t *testing.T) {
	creds := apiclient.NewMemoryStore()
	session := NewSession(creds, &fakeAuthAPI{loginResult: coachLogin()}, nil, nil)
	session.Restore()

	require.NoError(t, session.Login(context.Background(), "sam@example.com", "pw"))

	assert.Equal(t, StateAuthenticated, session.State())
	assert.Equal(t, "access-1", creds.AccessToken())
	assert.Equal(t, "refresh-1", creds.RefreshToken())
	assert.NotEmpty(t, creds.Session())
	assert.Equal(t, domain.RoleCoach, session.Role())
}

func TestLoginRejectedCredentials(t *testing.T) {
	creds := apiclient.NewMemoryStore()
	toasts := NewToastRelay()
	api := &fakeAuthAPI{loginErr: &apiclient.ServiceError{Status: http.StatusUnauthorized, Message: "invalid credentials"}}
	session := NewSession(creds, api, toasts, nil)
	session.Restore()

	err := session.Login(context.Background(), "sam@example.com", "wrong")

	require.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Equal(t, StateUnauthenticated, session.State())
	assert.Empty(t, creds.AccessToken(), "nothing is persisted on a rejected login")

	active := toasts.Active()
	require.Len(t, active, 1)
	assert.Equal(t, SeverityError, active[0].Severity)
}

func TestLoginRejectedThroughRealClient(t *testing.T) {
	var refreshCalls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/auth/refresh" {
			refreshCalls++
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"success":false,"data":null,"message":"invalid credentials"}`))
	}))
	defer srv.Close()

	creds := apiclient.NewMemoryStore()
	toasts := NewToastRelay()

	var session *Session
	expired := false
	client := apiclient.New(srv.URL, creds,
		apiclient.WithSessionExpiredHook(func() {
			expired = true
			session.HandleSessionExpired()
		}),
	)
	session = NewSession(creds, apiclient.NewAuthService(client), toasts, nil)
	session.Restore()

	err := session.Login(context.Background(), "sam@example.com", "wrong")

	require.ErrorIs(t, err, ErrInvalidCredentials)
	assert.False(t, expired, "a rejected login must not fire the session-expired hook")
	assert.Zero(t, refreshCalls)
	assert.Equal(t, StateUnauthenticated, session.State())

	active := toasts.Active()
	require.Len(t, active, 1)
	assert.Equal(t, SeverityError, active[0].Severity)
	assert.Equal(t, "Invalid email or password", active[0].Message)
}

func TestLoginTransportErrorIsNotInvalidCredentials(t *testing.T) {
	api := &fakeAuthAPI{loginErr: errors.New("connection refused")}
	session := NewSession(apiclient.NewMemoryStore(), api, nil, nil)
	session.Restore()

	err := session.Login(context.Background(), "sam@example.com", "pw")

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
	assert.Equal(t, StateUnauthenticated, session.State())
}

func TestRefreshProfileUpdatesRestoredUser(t *testing.T) {
	creds := apiclient.NewMemoryStore()
	require.NoError(t, creds.SetTokens("access-1", "refresh-1"))
	require.NoError(t, creds.SetSession(`{"id":"user-1","firstName":"Sam","role":"coach"}`))

	promoted := coachLogin()
	promoted.User.Role = domain.RoleClubAdmin
	session := NewSession(creds, &fakeAuthAPI{loginResult: promoted}, nil, nil)
	require.Equal(t, StateAuthenticated, session.Restore())

	require.NoError(t, session.RefreshProfile(context.Background()))

	assert.Equal(t, domain.RoleClubAdmin, session.Role())
	assert.Contains(t, creds.Session(), "club_admin", "the persisted profile follows the backend")
}

func TestRefreshProfileFailureKeepsCachedUser(t *testing.T) {
	creds := apiclient.NewMemoryStore()
	require.NoError(t, creds.SetTokens("access-1", "refresh-1"))
	require.NoError(t, creds.SetSession(`{"id":"user-1","role":"coach"}`))

	session := NewSession(creds, &fakeAuthAPI{loadMeErr: errors.New("connection refused")}, nil, nil)
	require.Equal(t, StateAuthenticated, session.Restore())

	require.Error(t, session.RefreshProfile(context.Background()))
	assert.Equal(t, StateAuthenticated, session.State())
	assert.Equal(t, domain.RoleCoach, session.Role())
}

func TestRefreshProfileIsNoopWhenSignedOut(t *testing.T) {
	session := NewSession(apiclient.NewMemoryStore(), &fakeAuthAPI{loadMeErr: errors.New("must not be called")}, nil, nil)
	session.Restore()
	require.NoError(t, session.RefreshProfile(context.Background()))
}

func TestLogoutClearsLocallyEvenWhenBackendFails(t *testing.T) {
	creds := apiclient.NewMemoryStore()
	api := &fakeAuthAPI{loginResult: coachLogin(), logoutErr: errors.New("backend down")}
	session := NewSession(creds, api, nil, nil)
	session.Restore()
	require.NoError(t, session.Login(context.Background(), "sam@example.com", "pw"))

	session.Logout(context.Background())

	assert.Equal(t, []string{"refresh-1"}, api.logoutWith)
	assert.Equal(t, StateUnauthenticated, session.State())
	assert.Nil(t, session.CurrentUser())
	assert.Empty(t, creds.AccessToken())
	assert.Empty(t, creds.RefreshToken())
	assert.Empty(t, creds.Session())

	// a restart after logout must come up signed out
	restarted := NewSession(creds, api, nil, nil)
	assert.Equal(t, StateUnauthenticated, restarted.Restore())
}

func TestHandleSessionExpired(t *testing.T) {
	toasts := NewToastRelay()
	session := NewSession(apiclient.NewMemoryStore(), &fakeAuthAPI{loginResult: coachLogin()}, toasts, nil)
	session.Restore()
	require.NoError(t, session.Login(context.Background(), "sam@example.com", "pw"))

	session.HandleSessionExpired()

	assert.Equal(t, StateUnauthenticated, session.State())
	assert.Nil(t, session.CurrentUser())
	require.Len(t, toasts.Active(), 1)
}

func TestHasPermissionFollowsRole(t *testing.T) {
	session := NewSession(apiclient.NewMemoryStore(), &fakeAuthAPI{loginResult: coachLogin()}, nil, nil)
	session.Restore()

	assert.False(t, session.HasPermission(auth.ResourcePlayers, auth.ActionRead), "signed out denies everything")

	require.NoError(t, session.Login(context.Background(), "sam@example.com", "pw"))

	assert.True(t, session.HasPermission(auth.ResourcePlayers, auth.ActionUpdate))
	assert.True(t, session.HasPermission(auth.ResourceTactics, auth.ActionCreate))
	assert.False(t, session.HasPermission(auth.ResourceTeams, auth.ActionCreate))
	assert.False(t, session.HasPermission(auth.ResourcePlayers, auth.ActionDelete))

	session.Logout(context.Background())
	assert.False(t, session.HasPermission(auth.ResourcePlayers, auth.ActionRead))
}
