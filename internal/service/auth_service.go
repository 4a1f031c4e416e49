package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"

	"github.com/sportsmgr/club-service/internal/auth"
	"github.com/sportsmgr/club-service/internal/config"
	"github.com/sportsmgr/club-service/internal/domain"
	"github.com/sportsmgr/club-service/internal/repository"
	apperrors "github.com/sportsmgr/club-service/pkg/util/errorutil"
)

const refreshKeyPrefix = "refresh:"

// AuthService coordinates login, token renewal and logout.
type AuthService struct {
	users      repository.UserRepository
	redis      *redis.Client
	tokenMgr   *auth.TokenManager
	bcryptCost int
	refreshTTL time.Duration
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, users repository.UserRepository, redisClient *redis.Client) *AuthService {
	return &AuthService{
		users:      users,
		redis:      redisClient,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTL()),
		bcryptCost: cfg.Auth.BcryptCost,
		refreshTTL: cfg.Auth.RefreshTokenTTL(),
	}
}

// TokenPair bundles both credentials issued at login.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}

// Login authenticates a user and issues an access/refresh token pair.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, *TokenPair, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil, apperrors.NewUnauthorized("invalid credentials")
		}
		return nil, nil, err
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, nil, apperrors.NewUnauthorized("invalid credentials")
	}

	access, exp, err := s.tokenMgr.GenerateAccessToken(user.ID, user.Role)
	if err != nil {
		return nil, nil, err
	}

	refresh := uuid.NewString()
	if err := s.redis.Set(ctx, refreshKeyPrefix+refresh, user.ID, s.refreshTTL).Err(); err != nil {
		return nil, nil, err
	}

	return user, &TokenPair{AccessToken: access, RefreshToken: refresh, ExpiresAt: exp}, nil
}

// Refresh exchanges a known refresh token for a new access token. The
// allow-list entry keeps its key but gets its TTL extended, so an in-flight
// client never observes a rotated-away token.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, time.Time, error) {
	userID, err := s.redis.Get(ctx, refreshKeyPrefix+refreshToken).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", time.Time{}, apperrors.NewUnauthorized("refresh token not recognized")
		}
		return "", time.Time{}, err
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return "", time.Time{}, apperrors.NewUnauthorized("user no longer exists")
		}
		return "", time.Time{}, err
	}

	access, exp, err := s.tokenMgr.GenerateAccessToken(user.ID, user.Role)
	if err != nil {
		return "", time.Time{}, err
	}

	_ = s.redis.Expire(ctx, refreshKeyPrefix+refreshToken, s.refreshTTL).Err()
	return access, exp, nil
}

// Logout revokes the refresh token. Unknown tokens are a no-op.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	return s.redis.Del(ctx, refreshKeyPrefix+refreshToken).Err()
}

// LoadUser returns the account behind an authenticated principal.
func (s *AuthService) LoadUser(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("user", nil)
		}
		return nil, err
	}
	return user, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
