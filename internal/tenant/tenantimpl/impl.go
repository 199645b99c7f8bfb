package tenantimpl

import (
	"strings"

	"github.com/s2hstudio/insta-widget-backend/internal/tenant"
	"github.com/s2hstudio/insta-widget-backend/pkg/config"
	apperrors "github.com/s2hstudio/insta-widget-backend/pkg/errors"
	"github.com/s2hstudio/insta-widget-backend/pkg/logger"
	"github.com/s2hstudio/insta-widget-backend/pkg/notionid"
	"go.uber.org/fx"
)

type ResolverImpl struct {
	table  map[string]string
	logger logger.Logger
}

type Opts struct {
	fx.In

	Config *config.Config
	Logger logger.Logger
}

func New(opts Opts) *ResolverImpl {
	return &ResolverImpl{
		// selector -> raw database identifier, one entry per deployment
		table: map[string]string{
			tenant.DefaultSelector: opts.Config.Tenants.Default,
			"brutus":               opts.Config.Tenants.Brutus,
		},
		logger: opts.Logger.WithComponent("TenantResolver"),
	}
}

var _ tenant.Resolver = (*ResolverImpl)(nil)

func (r *ResolverImpl) Resolve(selector string) (string, error) {
	key := strings.ToLower(strings.TrimSpace(selector))
	if key == "" {
		key = tenant.DefaultSelector
	}

	id, ok := r.table[key]
	if !ok {
		r.logger.Warn("Unknown client selector", "selector", selector)
		return "", apperrors.Wrap(apperrors.ErrNotConfigured, "unknown client selector")
	}
	if id == "" {
		r.logger.Warn("Tenant has no database identifier configured", "selector", key)
		return "", apperrors.Wrap(apperrors.ErrNotConfigured, "tenant database identifier is not set")
	}

	return notionid.Normalize(id), nil
}
