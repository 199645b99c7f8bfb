package widgetimpl

import (
	"strings"

	"github.com/samber/lo"
	"github.com/s2hstudio/insta-widget-backend/internal/domain"
	"github.com/s2hstudio/insta-widget-backend/pkg/config"
)

// PostFilter applies the display eligibility predicates, in order: playable
// media, the "mostrar no widget" checkbox, and the optional platform/format
// allow-lists. Visibility is filtered here rather than in the upstream query,
// so the two never double-apply.
type PostFilter struct {
	platforms []string
	formats   []string
}

func NewPostFilter(cfg *config.Config) *PostFilter {
	return &PostFilter{
		platforms: splitAllowList(cfg.Widget.Platforms),
		formats:   splitAllowList(cfg.Widget.Formats),
	}
}

func (f *PostFilter) Apply(posts []domain.Post) []domain.Post {
	eligible := lo.Filter(posts, func(p domain.Post, _ int) bool {
		return p.HasMedia()
	})

	eligible = lo.Filter(eligible, func(p domain.Post, _ int) bool {
		return p.MostrarNoWidget
	})

	if len(f.platforms) > 0 {
		eligible = lo.Filter(eligible, func(p domain.Post, _ int) bool {
			return containsFold(f.platforms, p.Platform)
		})
	}
	if len(f.formats) > 0 {
		eligible = lo.Filter(eligible, func(p domain.Post, _ int) bool {
			return containsFold(f.formats, p.Format)
		})
	}

	return eligible
}

func splitAllowList(raw string) []string {
	parts := strings.Split(raw, ",")

	return lo.FilterMap(parts, func(part string, _ int) (string, bool) {
		trimmed := strings.TrimSpace(part)
		return trimmed, trimmed != ""
	})
}

func containsFold(list []string, value string) bool {
	return lo.SomeBy(list, func(item string) bool {
		return strings.EqualFold(item, value)
	})
}
