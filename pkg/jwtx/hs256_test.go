package jwtx_test

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/vidcat/pkg/jwtx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const exampleIssuer = "vidcat-test"

var exampleSecret = []byte("an-example-secret-that-is-32-byte")

func TestHS256SignAndVerify(t *testing.T) {
	signer, err := jwtx.NewSignerHS256(exampleSecret)
	require.NoError(t, err)
	require.Equal(t, "HS256", signer.Alg())

	now := time.Now().UTC()
	claims := jwtx.NewAccessClaims(
		"user-123",         // subject
		jwtx.ViewerScopes,  // scopes
		5*time.Minute,      // TTL
		exampleIssuer,      // issuer
		"Alice",            // name
		"alice@example.io", // email
		now,
	)

	token, err := signer.Sign(claims)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	verifier, err := jwtx.NewVerifierHS256(exampleSecret, exampleIssuer)
	require.NoError(t, err)

	parsed, err := verifier.Verify(token)
	require.NoError(t, err)
	require.Equal(t, claims.Subject, parsed.Subject)
	require.Equal(t, claims.Issuer, parsed.Issuer)
	require.ElementsMatch(t, claims.Scopes, parsed.Scopes)
	require.Equal(t, "Alice", parsed.Name)
	require.Equal(t, "alice@example.io", parsed.Email)
	require.NotEmpty(t, parsed.ID) // JTI should be set
}

func TestHS256VerifyFailures(t *testing.T) {
	signer, err := jwtx.NewSignerHS256(exampleSecret)
	require.NoError(t, err)
	verifier, err := jwtx.NewVerifierHS256(exampleSecret, exampleIssuer)
	require.NoError(t, err)

	now := time.Now().UTC()

	t.Run("wrong secret", func(t *testing.T) {
		other, err := jwtx.NewSignerHS256([]byte("a-completely-different-secret-xx"))
		require.NoError(t, err)

		token, err := other.Sign(jwtx.NewAccessClaims("u1", nil, time.Minute, exampleIssuer, "", "", now))
		require.NoError(t, err)

		_, err = verifier.Verify(token)
		require.Error(t, err)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		token, err := signer.Sign(jwtx.NewAccessClaims("u1", nil, time.Minute, "wrong-issuer", "", "", now))
		require.NoError(t, err)

		_, err = verifier.Verify(token)
		require.ErrorIs(t, err, jwtx.ErrIssuer)
	})

	t.Run("expired", func(t *testing.T) {
		token, err := signer.Sign(jwtx.NewAccessClaims("u1", nil, time.Minute, exampleIssuer, "", "", now.Add(-time.Hour)))
		require.NoError(t, err)

		_, err = verifier.Verify(token)
		require.ErrorIs(t, err, jwtx.ErrExpired)

		_, err = verifier.WithLeeway(2 * time.Hour).Verify(token)
		require.NoError(t, err)
	})

	t.Run("missing subject", func(t *testing.T) {
		token, err := signer.Sign(jwtx.NewAccessClaims("", nil, time.Minute, exampleIssuer, "", "", now))
		require.NoError(t, err)

		_, err = verifier.Verify(token)
		require.ErrorIs(t, err, jwtx.ErrInvalidClaim)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := verifier.Verify("not-a-jwt")
		require.ErrorIs(t, err, jwtx.ErrMalformed)
	})

	t.Run("alg none is rejected", func(t *testing.T) {
		tok := jwt.NewWithClaims(jwt.SigningMethodNone, jwtx.NewAccessClaims("u1", nil, time.Minute, exampleIssuer, "", "", now))
		raw, err := tok.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = verifier.Verify(raw)
		require.Error(t, err)
	})
}

func TestEmptySecret(t *testing.T) {
	_, err := jwtx.NewSignerHS256(nil)
	require.ErrorIs(t, err, jwtx.ErrEmptySecret)

	_, err = jwtx.NewVerifierHS256(nil, exampleIssuer)
	require.ErrorIs(t, err, jwtx.ErrEmptySecret)
}
