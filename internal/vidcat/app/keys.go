package app

import (
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/vidcat/pkg/cryptox"
	"github.com/aussiebroadwan/vidcat/pkg/jwtx"
	"github.com/aussiebroadwan/vidcat/pkg/playtoken"
)

// keyMaterial is everything built from configured secrets.
type keyMaterial struct {
	signer   *jwtx.HS256Signer
	verifier *jwtx.HS256Verifier
	codec    *playtoken.Codec
	hasher   *cryptox.PasswordHasher
}

// initKeys builds the access token signer and verifier, the playback codec
// and the password hasher.
func initKeys(cfg Config, logger *slog.Logger) (*keyMaterial, error) {
	signer, err := jwtx.NewSignerHS256([]byte(cfg.JWTSecret))
	if err != nil {
		return nil, fmt.Errorf("access token signer: %w", err)
	}
	verifier, err := jwtx.NewVerifierHS256([]byte(cfg.JWTSecret), cfg.Issuer)
	if err != nil {
		return nil, fmt.Errorf("access token verifier: %w", err)
	}

	codec, err := playtoken.NewCodec([]byte(cfg.PlaybackSecret),
		playtoken.WithTTL(cfg.PlaybackTTL),
		playtoken.WithLeeway(cfg.PlaybackClockLeeway),
	)
	if err != nil {
		return nil, fmt.Errorf("playback codec: %w", err)
	}

	pepper, err := cryptox.LoadOrCreatePepper(cfg.PepperFile)
	if err != nil {
		return nil, fmt.Errorf("load pepper: %w", err)
	}

	if cfg.JWTSecret == devJWTSecret || cfg.PlaybackSecret == devPlaybackSecret {
		logger.Warn("using built-in development secrets", "env", cfg.Env)
	}
	logger.Info("keys initialized",
		"playback_ttl", codec.TTL(),
		"playback_leeway", cfg.PlaybackClockLeeway,
	)

	return &keyMaterial{
		signer:   signer,
		verifier: verifier,
		codec:    codec,
		hasher:   cryptox.NewPasswordHasher(pepper),
	}, nil
}
