package widgetimpl

import (
	"context"

	"github.com/samber/lo"
	"github.com/s2hstudio/insta-widget-backend/internal/domain"
	"github.com/s2hstudio/insta-widget-backend/internal/notion"
	"github.com/s2hstudio/insta-widget-backend/internal/tenant"
	"github.com/s2hstudio/insta-widget-backend/internal/widget"
	"github.com/s2hstudio/insta-widget-backend/pkg/config"
	apperrors "github.com/s2hstudio/insta-widget-backend/pkg/errors"
	"github.com/s2hstudio/insta-widget-backend/pkg/logger"
	"go.uber.org/fx"
)

type ServiceImpl struct {
	Notion  notion.Client
	Tenants tenant.Resolver
	Filter  *PostFilter
	Logger  logger.Logger
	Config  *config.Config
}

type Opts struct {
	fx.In

	Notion  notion.Client
	Tenants tenant.Resolver
	Logger  logger.Logger
	Config  *config.Config
}

func New(opts Opts) *ServiceImpl {
	return &ServiceImpl{
		Notion:  opts.Notion,
		Tenants: opts.Tenants,
		Filter:  NewPostFilter(opts.Config),
		Logger:  opts.Logger.WithComponent("WidgetService"),
		Config:  opts.Config,
	}
}

var _ widget.Service = (*ServiceImpl)(nil)

func (s *ServiceImpl) PostsFor(ctx context.Context, selector string) ([]domain.Post, error) {
	if s.Config.Notion.Secret == "" {
		return nil, apperrors.WrapWithDetail(
			apperrors.ErrMissingConfig,
			"Notion credential is missing",
			"NOTION_SECRET is not set in the environment or .env.local",
		)
	}

	databaseID, err := s.Tenants.Resolve(selector)
	if err != nil {
		return nil, err
	}

	pages, err := s.Notion.QueryDatabase(ctx, databaseID)
	if err != nil {
		return nil, err
	}

	posts := lo.Map(pages, func(page notion.Page, _ int) domain.Post {
		return MapPageToPost(page)
	})

	eligible := s.Filter.Apply(posts)

	s.Logger.Info("Posts loaded",
		"selector", selector,
		"pages", len(pages),
		"eligible", len(eligible),
	)

	return eligible, nil
}
