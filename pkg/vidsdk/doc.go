/*
Package vidsdk is the Go client for the vidcat video catalog API, and the
home of the request and response types the server writes.

# Client vs Session

  - Client: public endpoints (health, signup, login, refresh, playback
    redemption, seeding) and session creation
  - Session: endpoints that need a bearer token; access tokens are refreshed
    automatically shortly before they expire

Typical use:

	client := vidsdk.NewClient("https://vidcat.example.com")

	session, err := client.LoginSession(ctx, "ada@example.com", "hunter22")
	if err != nil {
		return err
	}

	page, err := session.Dashboard(ctx, 1, 10)
	grant, err := session.Stream(ctx, page.Videos[0].ID)

	// The playback token alone is enough to redeem; no session is needed.
	dest, err := client.Play(ctx, grant.PlaybackToken)

# Errors

Every non-2xx response is returned as *APIError carrying the HTTP status,
the stable error code and any validation messages:

	var apiErr *vidsdk.APIError
	if errors.As(err, &apiErr) && apiErr.Code == vidsdk.CodeInvalidPlaybackToken {
		// ask the user to request playback again
	}
*/
package vidsdk
