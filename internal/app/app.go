package app

import (
	"net/http"

	"github.com/s2hstudio/insta-widget-backend/internal/notion"
	"github.com/s2hstudio/insta-widget-backend/internal/notion/notionimpl"
	"github.com/s2hstudio/insta-widget-backend/internal/server"
	"github.com/s2hstudio/insta-widget-backend/internal/tenant"
	"github.com/s2hstudio/insta-widget-backend/internal/tenant/tenantimpl"
	"github.com/s2hstudio/insta-widget-backend/internal/widget"
	"github.com/s2hstudio/insta-widget-backend/internal/widget/widgetimpl"
	"github.com/s2hstudio/insta-widget-backend/pkg/config"
	"github.com/s2hstudio/insta-widget-backend/pkg/logger"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(
		config.New,
		logger.FxOption,
	),
	fx.Provide(
		fx.Annotate(
			notionimpl.New,
			fx.As(new(notion.Client)),
		),
		fx.Annotate(
			tenantimpl.New,
			fx.As(new(tenant.Resolver)),
		),
		fx.Annotate(
			widgetimpl.New,
			fx.As(new(widget.Service)),
		),
	),
	fx.Provide(server.New),
	fx.Invoke(func(*http.Server) {}),
)
