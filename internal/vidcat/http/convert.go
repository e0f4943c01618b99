package http

import (
	"github.com/aussiebroadwan/vidcat/internal/vidcat/domain"
	"github.com/aussiebroadwan/vidcat/internal/vidcat/service"
	"github.com/aussiebroadwan/vidcat/pkg/vidsdk"
)

func toUser(u domain.User) vidsdk.User {
	return vidsdk.User{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

// toVideo is the only way a catalog entry leaves the server; the provider
// id is not copied.
func toVideo(v domain.Video) vidsdk.Video {
	return vidsdk.Video{
		ID:           v.ID,
		Title:        v.Title,
		Description:  v.Description,
		ThumbnailURL: v.ThumbnailURL,
		IsActive:     v.Active,
		CreatedAt:    v.CreatedAt,
	}
}

func toAuthResponse(s *service.Session) vidsdk.AuthResponse {
	u := toUser(s.User)
	return vidsdk.AuthResponse{
		User:         &u,
		AccessToken:  s.Tokens.AccessToken,
		RefreshToken: s.Tokens.RefreshToken,
		TokenType:    s.Tokens.TokenType,
		ExpiresIn:    int(s.Tokens.ExpiresIn.Seconds()),
	}
}
