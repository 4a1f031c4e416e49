package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/sportsmgr/club-service/internal/auth"
	"github.com/sportsmgr/club-service/internal/domain"
	"github.com/sportsmgr/club-service/pkg/apiclient"
)

// State is the authentication lifecycle phase of the dashboard session.
type State string

const (
	StateRestoring       State = "restoring"
	StateUnauthenticated State = "unauthenticated"
	StateAuthenticating  State = "authenticating"
	StateAuthenticated   State = "authenticated"
)

// ErrInvalidCredentials marks a login rejected by the backend, as opposed to
// a transport failure where the credentials were never evaluated.
var ErrInvalidCredentials = errors.New("invalid credentials")

// authAPI is the slice of the API client the session needs.
type authAPI interface {
	Login(ctx context.Context, email, password string) (*apiclient.LoginResult, error)
	Logout(ctx context.Context, refreshToken string) error
	LoadMe(ctx context.Context) (*apiclient.User, error)
}

// Session owns the authentication state machine. It starts in Restoring and
// is the only writer of the credential store; everything else reads.
type Session struct {
	mu     sync.RWMutex
	state  State
	user   *apiclient.User
	creds  apiclient.CredentialStore
	api    authAPI
	toasts *ToastRelay
	logger *zap.Logger
}

// NewSession builds a session over the given credential store and auth API.
// The relay and logger may be nil.
func NewSession(creds apiclient.CredentialStore, api authAPI, toasts *ToastRelay, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		state:  StateRestoring,
		creds:  creds,
		api:    api,
		toasts: toasts,
		logger: logger,
	}
}

// State returns the current lifecycle phase.
func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// CurrentUser returns the authenticated account, or nil outside of the
// Authenticated state.
func (s *Session) CurrentUser() *apiclient.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state != StateAuthenticated {
		return nil
	}
	return s.user
}

// Restore resolves the initial Restoring phase from persisted credentials.
// A stored token pair plus a readable profile yields Authenticated; anything
// less yields Unauthenticated. No network traffic is involved, so a stale
// access token surfaces later through the normal refresh path.
func (s *Session) Restore() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.creds.AccessToken() == "" || s.creds.RefreshToken() == "" {
		s.setStateLocked(StateUnauthenticated)
		return s.state
	}

	var user apiclient.User
	if err := json.Unmarshal([]byte(s.creds.Session()), &user); err != nil || user.ID == "" {
		s.logger.Warn("persisted session unreadable; treating as signed out", zap.Error(err))
		_ = s.creds.Clear()
		s.setStateLocked(StateUnauthenticated)
		return s.state
	}

	s.user = &user
	s.setStateLocked(StateAuthenticated)
	return s.state
}

// RefreshProfile revalidates the restored profile against the backend and
// persists the fresh copy, picking up role changes made since the last sign
// in. Outside the Authenticated state it does nothing. On failure the cached
// profile stays in place; an expired session is handled by the client hook,
// not here.
func (s *Session) RefreshProfile(ctx context.Context) error {
	if s.State() != StateAuthenticated {
		return nil
	}

	user, err := s.api.LoadMe(ctx)
	if err != nil {
		return err
	}
	serialized, err := json.Marshal(user)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateAuthenticated {
		return nil
	}
	s.user = user
	return s.creds.SetSession(string(serialized))
}

// Login runs the credential exchange. On success the token pair and the
// serialized profile are persisted atomically with respect to this session.
// A 401 from the backend maps to ErrInvalidCredentials; transport failures
// pass through unchanged so the caller can tell the two apart.
func (s *Session) Login(ctx context.Context, email, password string) error {
	s.mu.Lock()
	if s.state == StateAuthenticating {
		s.mu.Unlock()
		return errors.New("login already in progress")
	}
	s.setStateLocked(StateAuthenticating)
	s.mu.Unlock()

	result, err := s.api.Login(ctx, email, password)
	if err != nil {
		s.mu.Lock()
		s.setStateLocked(StateUnauthenticated)
		s.mu.Unlock()
		if apiclient.IsUnauthorized(err) {
			s.notify("Invalid email or password", SeverityError)
			return fmt.Errorf("%w: %v", ErrInvalidCredentials, err)
		}
		s.notify("Could not reach the server", SeverityError)
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.persistLocked(result); err != nil {
		s.setStateLocked(StateUnauthenticated)
		return err
	}
	s.user = &result.User
	s.setStateLocked(StateAuthenticated)
	s.logger.Info("logged in", zap.String("role", string(result.User.Role)))
	return nil
}

// Logout revokes the refresh token and clears local state. Local cleanup is
// unconditional: a failed revocation still leaves this client signed out.
func (s *Session) Logout(ctx context.Context) {
	refresh := s.creds.RefreshToken()
	if refresh != "" {
		if err := s.api.Logout(ctx, refresh); err != nil {
			s.logger.Warn("server-side logout failed", zap.Error(err))
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	_ = s.creds.Clear()
	s.user = nil
	s.setStateLocked(StateUnauthenticated)
}

// HandleSessionExpired is the hook target for the API client. The client
// already cleared the credential store, so only in-memory state remains.
func (s *Session) HandleSessionExpired() {
	s.mu.Lock()
	s.user = nil
	s.setStateLocked(StateUnauthenticated)
	s.mu.Unlock()
	s.notify("Your session expired, please sign in again", SeverityWarning)
}

// HasPermission reports whether the signed-in role may perform action on
// resource. Pure with respect to the permission table: no I/O, and false
// whenever nobody is signed in.
func (s *Session) HasPermission(resource auth.Resource, action auth.Action) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state != StateAuthenticated || s.user == nil {
		return false
	}
	return auth.Allowed(s.user.Role, resource, action)
}

// Role returns the signed-in role, or the empty role when signed out.
func (s *Session) Role() domain.Role {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state != StateAuthenticated || s.user == nil {
		return ""
	}
	return s.user.Role
}

func (s *Session) persistLocked(result *apiclient.LoginResult) error {
	serialized, err := json.Marshal(result.User)
	if err != nil {
		return err
	}
	if err := s.creds.SetTokens(result.AccessToken, result.RefreshToken); err != nil {
		return err
	}
	return s.creds.SetSession(string(serialized))
}

func (s *Session) setStateLocked(next State) {
	s.state = next
}

func (s *Session) notify(message string, severity Severity) {
	if s.toasts != nil {
		s.toasts.Notify(message, severity, 0)
	}
}
