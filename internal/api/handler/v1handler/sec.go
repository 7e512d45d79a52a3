package v1handler

import (
	"context"
	"crypto/rsa"
	"errors"
	"fmt"
	"portal/internal/config"
	"portal/pkg/domain"
	"portal/pkg/logger"
	"portal/pkg/serrors"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type ctxKey string

const (
	// UserIDKey stores the authenticated domain.UserID.
	UserIDKey ctxKey = "UserID"
	// ProfileKey stores the caller's domain.Profile.
	ProfileKey ctxKey = "Profile"
)

type SecHandlerOptions struct {
	// PublicKey is the PEM encoded RSA key verifying bearer tokens.
	PublicKey string
}

func NewSecHandlerOptions(cfg *config.Config) *SecHandlerOptions {
	return &SecHandlerOptions{
		PublicKey: cfg.JWT.PublicKey,
	}
}

// SecHandler authenticates RS256 bearer tokens whose subject is a user ID.
type SecHandler struct {
	publicKey *rsa.PublicKey
	parser    *jwt.Parser
}

func NewSecHandler(opts *SecHandlerOptions) (*SecHandler, error) {
	if opts == nil || strings.TrimSpace(opts.PublicKey) == "" {
		return nil, fmt.Errorf("jwt public key is not configured")
	}
	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(opts.PublicKey))
	if err != nil {
		return nil, fmt.Errorf("could not parse RSA public key: %w", err)
	}

	return &SecHandler{
		publicKey: key,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
			jwt.WithExpirationRequired(),
		),
	}, nil
}

// HandleBearerAuth validates token and returns ctx carrying the subject
// under UserIDKey.
func (s *SecHandler) HandleBearerAuth(ctx context.Context, token string) (context.Context, error) {
	var claims jwt.RegisteredClaims
	if _, err := s.parser.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return s.publicKey, nil
	}); err != nil {
		return nil, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid bearer token")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token subject")
	}

	ctx = context.WithValue(ctx, UserIDKey, domain.UserID(userID))

	return logger.WithFields(ctx, zap.String(string(UserIDKey), userID.String())), nil
}

// ProfileFinder resolves the profile of an authenticated user.
type ProfileFinder interface {
	Profile(ctx context.Context, id domain.UserID) (*domain.Profile, error)
}

// Middleware authenticates the Authorization header and loads the caller's
// profile. Tokens of users without a profile are rejected with Forbidden.
func (s *SecHandler) Middleware(profiles ProfileFinder) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			scheme, token, ok := strings.Cut(header, " ")
			if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
				return serrors.With(serrors.ErrUnauthorized, "missing bearer token")
			}

			ctx, err := s.HandleBearerAuth(c.Request().Context(), strings.TrimSpace(token))
			if err != nil {
				return err
			}

			profile, err := profiles.Profile(ctx, GetUserIDFromContext(ctx))
			if err != nil {
				if errors.Is(err, serrors.ErrNotFound) {
					return serrors.Wrap(serrors.ErrForbidden, err, "profile is not registered")
				}

				return err //nolint: wrapcheck
			}

			ctx = context.WithValue(ctx, ProfileKey, *profile)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

func GetUserIDFromContext(ctx context.Context) domain.UserID {
	id, _ := ctx.Value(UserIDKey).(domain.UserID)

	return id
}

// ProfileFromContext returns the caller's profile set by Middleware.
func ProfileFromContext(ctx context.Context) domain.Profile {
	p, _ := ctx.Value(ProfileKey).(domain.Profile)

	return p
}

// RequireReviewer only lets faculty and admin profiles through.
func RequireReviewer(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !ProfileFromContext(c.Request().Context()).Role.CanReview() {
			return serrors.With(serrors.ErrForbidden, "only faculty and admins can access this resource")
		}

		return next(c)
	}
}
