package domain

import "context"

// CatalogRepository is read-only access to the static catalog. Implementations
// load once at startup; returned slices preserve catalog order and must not be
// mutated by callers.
type CatalogRepository interface {
	Products() []Product
	ProductByID(id string) (Product, error)
	Devices() []DeviceModel
	Categories() []Category
	Posts() []BlogPost
	PostByID(id string) (BlogPost, error)
}

// SessionRepository stores live sessions
type SessionRepository interface {
	Create(session *Session) error
	Get(id string) (*Session, error)
	Delete(id string) error
}

// GeoLocator resolves a client IP to a country name
type GeoLocator interface {
	Lookup(ctx context.Context, ip string) (string, error)
}

// TextGenerator is the external text-generation collaborator used by the
// assistant. One prompt in, one reply out.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
