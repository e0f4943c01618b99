package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/aussiebroadwan/vidcat/internal/vidcat/domain"
	"github.com/aussiebroadwan/vidcat/internal/vidcat/store"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

var ErrInvalidPagination = errors.New("invalid_pagination")

// Page is a validated page request.
type Page struct {
	Page  int
	Limit int
}

// Offset is the number of rows to skip.
func (p Page) Offset() int { return (p.Page - 1) * p.Limit }

// Pagination describes where a page sits in the full result.
type Pagination struct {
	Page  int
	Limit int
	Total int
	Pages int
}

// ParsePagination reads page and limit query values. Empty values take the
// defaults; anything non-numeric or out of range is ErrInvalidPagination.
func ParsePagination(page, limit string) (Page, error) {
	p := Page{Page: DefaultPage, Limit: DefaultLimit}

	if s := strings.TrimSpace(page); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			return Page{}, fmt.Errorf("%w: page must be a positive integer", ErrInvalidPagination)
		}
		p.Page = n
	}
	if s := strings.TrimSpace(limit); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 || n > MaxLimit {
			return Page{}, fmt.Errorf("%w: limit must be between 1 and %d", ErrInvalidPagination, MaxLimit)
		}
		p.Limit = n
	}
	return p, nil
}

type CatalogService struct {
	Store store.Store
}

// ListActive returns one page of active videos, oldest first.
func (s *CatalogService) ListActive(ctx context.Context, p Page) ([]domain.Video, Pagination, error) {
	if p.Page < 1 || p.Limit < 1 || p.Limit > MaxLimit {
		return nil, Pagination{}, ErrInvalidPagination
	}

	total, err := s.Store.Videos().CountActiveVideos(ctx)
	if err != nil {
		return nil, Pagination{}, fmt.Errorf("count videos: %w", err)
	}

	videos, err := s.Store.Videos().ListActiveVideos(ctx, p.Limit, p.Offset())
	if err != nil {
		return nil, Pagination{}, fmt.Errorf("list videos: %w", err)
	}

	return videos, Pagination{
		Page:  p.Page,
		Limit: p.Limit,
		Total: total,
		Pages: (total + p.Limit - 1) / p.Limit,
	}, nil
}
