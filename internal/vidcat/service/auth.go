package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/vidcat/internal/vidcat/domain"
	"github.com/aussiebroadwan/vidcat/internal/vidcat/store"
	"github.com/aussiebroadwan/vidcat/pkg/cryptox"
	"github.com/aussiebroadwan/vidcat/pkg/idx"
	"github.com/aussiebroadwan/vidcat/pkg/jwtx"
	"github.com/aussiebroadwan/vidcat/pkg/slogx"
)

const (
	minNameLength     = 2
	minPasswordLength = 6
)

var (
	ErrEmailTaken         = errors.New("email_taken")
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrInvalidRefresh     = errors.New("invalid_refresh_token")
	ErrUserNotFound       = errors.New("user_not_found")
)

// ValidationError lists every problem found with a request body.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}

// AuthService owns accounts and the access/refresh token pair.
type AuthService struct {
	Store      store.Store
	Hasher     *cryptox.PasswordHasher
	Signer     jwtx.Signer
	Issuer     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration

	// Now defaults to time.Now.
	Now func() time.Time
}

// Session is a signed-in user and their fresh tokens.
type Session struct {
	User   domain.User
	Tokens domain.TokenPair
}

func (s *AuthService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// NormalizeEmail trims and lowercases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Signup creates an account and signs it in. All field problems are reported
// together as a *ValidationError.
func (s *AuthService) Signup(ctx context.Context, name, email, password string) (*Session, error) {
	l := slogx.FromContext(ctx)

	name = strings.TrimSpace(name)
	email = NormalizeEmail(email)
	if verr := validateSignup(name, email, password); verr != nil {
		return nil, verr
	}

	hash, err := s.Hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := s.now().UTC()
	user := domain.User{
		ID:           idx.NewAt(now).String(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	var tokens domain.TokenPair
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Users().CreateUser(ctx, user); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return ErrEmailTaken
			}
			return err
		}
		tokens, err = s.issueTokens(ctx, tx, user, now)
		return err
	})
	if err != nil {
		return nil, err
	}

	l.Info("account created", slog.String("user_id", user.ID))
	return &Session{User: user, Tokens: tokens}, nil
}

func validateSignup(name, email, password string) *ValidationError {
	var msgs []string

	switch {
	case name == "":
		msgs = append(msgs, "Name is required")
	case len([]rune(name)) < minNameLength:
		msgs = append(msgs, "Name must be at least 2 characters")
	}

	switch {
	case email == "":
		msgs = append(msgs, "Email is required")
	case !validEmail(email):
		msgs = append(msgs, "Invalid email format")
	}

	switch {
	case password == "":
		msgs = append(msgs, "Password is required")
	case len(password) < minPasswordLength:
		msgs = append(msgs, "Password must be at least 6 characters")
	}

	if len(msgs) == 0 {
		return nil
	}
	return &ValidationError{Messages: msgs}
}

// validEmail is deliberately loose: something@something.
func validEmail(email string) bool {
	at := strings.IndexByte(email, '@')
	return at > 0 && at < len(email)-1 && strings.Count(email, "@") == 1
}

// Login checks credentials. Unknown email and wrong password are the same
// ErrInvalidCredentials and cost the same hashing work.
func (s *AuthService) Login(ctx context.Context, email, password string) (*Session, error) {
	l := slogx.FromContext(ctx)

	email = NormalizeEmail(email)
	var msgs []string
	if email == "" {
		msgs = append(msgs, "Email is required")
	}
	if password == "" {
		msgs = append(msgs, "Password is required")
	}
	if len(msgs) > 0 {
		return nil, &ValidationError{Messages: msgs}
	}

	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.Hasher.VerifyDummy(password)
			l.Info("login failed", slog.String("reason", "unknown_email"))
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := s.Hasher.Verify(password, user.PasswordHash); err != nil {
		if !errors.Is(err, cryptox.ErrPasswordMismatch) {
			l.Error("stored password hash unreadable", slog.String("user_id", user.ID), slog.Any("error", err))
		}
		l.Info("login failed", slog.String("reason", "bad_password"), slog.String("user_id", user.ID))
		return nil, ErrInvalidCredentials
	}

	now := s.now().UTC()
	var tokens domain.TokenPair
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		tokens, err = s.issueTokens(ctx, tx, user, now)
		return err
	})
	if err != nil {
		return nil, err
	}

	l.Info("login succeeded", slog.String("user_id", user.ID))
	return &Session{User: user, Tokens: tokens}, nil
}

// Refresh rotates a refresh token: the presented one is revoked and a new
// pair is issued in the same transaction. A token can be rotated once.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*Session, error) {
	refreshToken = strings.TrimSpace(refreshToken)
	if refreshToken == "" {
		return nil, ErrInvalidRefresh
	}

	hash := cryptox.FingerprintToken(refreshToken)
	now := s.now().UTC()

	var sess Session
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		stored, err := tx.RefreshTokens().GetRefreshTokenByHash(ctx, hash)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrInvalidRefresh
			}
			return err
		}
		if !stored.Usable(now) {
			return ErrInvalidRefresh
		}

		if err := tx.RefreshTokens().RevokeRefreshToken(ctx, hash, now); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrInvalidRefresh
			}
			return err
		}

		user, err := tx.Users().GetUserByID(ctx, stored.UserID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrInvalidRefresh
			}
			return err
		}

		tokens, err := s.issueTokens(ctx, tx, user, now)
		if err != nil {
			return err
		}
		sess = Session{User: user, Tokens: tokens}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &sess, nil
}

// Profile returns the signed-in user.
func (s *AuthService) Profile(ctx context.Context, userID string) (domain.User, error) {
	if userID == "" {
		return domain.User{}, ErrUnauthorized
	}
	u, err := s.Store.Users().GetUserByID(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return domain.User{}, ErrUserNotFound
	}
	return u, err
}

// Logout revokes every refresh token the user holds. Outstanding access
// tokens stay valid until they expire.
func (s *AuthService) Logout(ctx context.Context, userID string) error {
	if userID == "" {
		return ErrUnauthorized
	}
	if err := s.Store.RefreshTokens().RevokeUserRefreshTokens(ctx, userID, s.now().UTC()); err != nil {
		return fmt.Errorf("revoke refresh tokens: %w", err)
	}
	slogx.FromContext(ctx).Info("logged out", slog.String("user_id", userID))
	return nil
}

func (s *AuthService) issueTokens(ctx context.Context, tx store.Tx, user domain.User, now time.Time) (domain.TokenPair, error) {
	claims := jwtx.NewAccessClaims(user.ID, jwtx.ViewerScopes, s.AccessTTL, s.Issuer, user.Name, user.Email, now)
	access, err := s.Signer.Sign(claims)
	if err != nil {
		return domain.TokenPair{}, fmt.Errorf("sign access token: %w", err)
	}

	opaque, err := cryptox.NewOpaqueToken(cryptox.RefreshTokenBytes)
	if err != nil {
		return domain.TokenPair{}, err
	}

	refresh := domain.RefreshToken{
		ID:        idx.NewAt(now).String(),
		UserID:    user.ID,
		TokenHash: opaque.Fingerprint,
		ExpiresAt: now.Add(s.RefreshTTL),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := tx.RefreshTokens().CreateRefreshToken(ctx, refresh); err != nil {
		return domain.TokenPair{}, fmt.Errorf("store refresh token: %w", err)
	}

	return domain.TokenPair{
		AccessToken:  access,
		RefreshToken: opaque.Value,
		TokenType:    "Bearer",
		ExpiresIn:    s.AccessTTL,
	}, nil
}
