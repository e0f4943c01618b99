package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/vidcat/internal/vidcat/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Drivers implement it and expose
// one sub-repository per table so transactions hand out the same shape.
type Store interface {
	Users() Users
	Videos() Videos
	WatchProgress() WatchProgress
	RefreshTokens() RefreshTokens

	ApplyMigrations() error

	// Tx starts a read/write transaction. The caller must Commit or Rollback.
	Tx(ctx context.Context) (Tx, error)

	// WithTx runs fn in a transaction, committing when fn returns nil.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error
	Ping(ctx context.Context) error
}

// Tx is a transaction-scoped Store. Nested transactions are not supported.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail expects an already normalised email.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// CreateUser returns ErrAlreadyExists when the email is taken.
	CreateUser(ctx context.Context, u domain.User) error
}

type Videos interface {
	GetVideoByID(ctx context.Context, id string) (domain.Video, error)

	// FindActiveVideo returns ErrNotFound for missing and inactive videos
	// alike.
	FindActiveVideo(ctx context.Context, id string) (domain.Video, error)

	GetVideoByTitle(ctx context.Context, title string) (domain.Video, error)

	// ListActiveVideos pages through active videos oldest first.
	ListActiveVideos(ctx context.Context, limit, offset int) ([]domain.Video, error)

	CountActiveVideos(ctx context.Context) (int, error)

	CreateVideo(ctx context.Context, v domain.Video) error

	// SetVideoActive flips the active flag. ErrNotFound if no such video.
	SetVideoActive(ctx context.Context, id string, active bool) error
}

type WatchProgress interface {
	// UpsertProgress inserts or replaces the (user, video) record. A missing
	// user or video surfaces as ErrNotFound.
	UpsertProgress(ctx context.Context, p domain.WatchProgress) error

	GetProgress(ctx context.Context, userID, videoID string) (domain.WatchProgress, error)
}

type RefreshTokens interface {
	CreateRefreshToken(ctx context.Context, t domain.RefreshToken) error

	GetRefreshTokenByHash(ctx context.Context, hash string) (domain.RefreshToken, error)

	// RevokeRefreshToken marks the token revoked. ErrNotFound when no
	// unrevoked token has that hash, which makes rotation race safe.
	RevokeRefreshToken(ctx context.Context, hash string, now time.Time) error

	RevokeUserRefreshTokens(ctx context.Context, userID string, now time.Time) error

	// DeleteStaleRefreshTokens removes expired and revoked tokens and reports
	// how many were removed.
	DeleteStaleRefreshTokens(ctx context.Context, now time.Time) (int64, error)
}
