package widget

import (
	"context"

	"github.com/s2hstudio/insta-widget-backend/internal/domain"
)

type Service interface {
	// PostsFor resolves the tenant behind the client selector, queries its
	// Notion database and returns the posts eligible for display, newest
	// first. Returns errors.ErrNotConfigured when the selector has no usable
	// mapping and errors.ErrMissingConfig when the shared credential is absent.
	PostsFor(ctx context.Context, selector string) ([]domain.Post, error)
}
