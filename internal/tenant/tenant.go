package tenant

// DefaultSelector is the tenant served when the client query parameter is
// absent or empty.
const DefaultSelector = "s2h"

//go:generate go run go.uber.org/mock/mockgen -source=tenant.go -destination=mocks/mock.go
type Resolver interface {
	// Resolve maps a case-insensitive client selector to the tenant's Notion
	// database identifier in canonical dashed form. An empty selector resolves
	// to the default tenant. Unknown selectors and selectors whose identifier
	// is not configured return errors.ErrNotConfigured; there is no silent
	// fallback to the default tenant.
	Resolve(selector string) (string, error)
}
