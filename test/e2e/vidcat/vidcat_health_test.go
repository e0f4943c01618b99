//go:build e2e

package vidcat_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/aussiebroadwan/vidcat/pkg/vidsdk"
	"github.com/stretchr/testify/require"
)

func TestHealthEndpoint(t *testing.T) {
	client := vidsdk.NewClient(setupContainer(t, baseEnv()))

	health, err := client.Health(t.Context())
	require.NoError(t, err)
	require.Equal(t, "healthy", health.Status)
	require.Equal(t, "API is running", health.Message)
}

// TestStrictRateLimitOnLogin uses the production limits: the eleventh quick
// login attempt from one address is throttled.
func TestStrictRateLimitOnLogin(t *testing.T) {
	client := vidsdk.NewClient(setupContainer(t, baseEnv()))

	var throttled bool
	for range 15 {
		_, err := client.Login(t.Context(), "nobody@example.com", "whatever")
		var apiErr *vidsdk.APIError
		require.True(t, errors.As(err, &apiErr))
		if apiErr.Status == http.StatusTooManyRequests {
			require.Equal(t, vidsdk.CodeRateLimited, apiErr.Code)
			throttled = true
			break
		}
		require.Equal(t, http.StatusUnauthorized, apiErr.Status)
	}
	require.True(t, throttled, "expected login to be rate limited")
}
