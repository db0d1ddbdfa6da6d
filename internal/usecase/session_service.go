package usecase

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/cochlearspare/backend/internal/domain"
)

// NavigateRequest is a single navigation action. ProductID is required for
// the product-detail page, PostID for the blog-detail page. ResetFilters is
// set by the primary logo/home action; other transitions to HOME leave the
// brand/model selection alone.
type NavigateRequest struct {
	Page         domain.Page
	ProductID    string
	PostID       string
	ResetFilters bool
}

// CheckoutForm carries the checkout contact and shipping fields. No payment
// details are collected.
type CheckoutForm struct {
	Email    string
	FullName string
	Phone    string
	Street   string
	City     string
	State    string
	Zip      string
	Country  string
}

// OrderSummary is the confirmation returned by checkout: a snapshot of the
// cart with exact cent totals. Shipping is free.
type OrderSummary struct {
	Reference     string
	Lines         []domain.CartLine
	SubtotalCents int64
	ShippingCents int64
	TotalCents    int64
	PlacedAt      time.Time
}

// SessionService owns session lifecycle and funnels every session mutation
// through a named operation: Navigate, SetFilter, ClearFilter, the cart
// operations, Checkout. Views never write session fields directly.
type SessionService struct {
	sessions domain.SessionRepository
	catalog  domain.CatalogRepository
	geo      domain.GeoLocator
	greeting string
}

// NewSessionService creates a session service. geo may be nil, in which case
// the ship-to country stays at its default.
func NewSessionService(
	sessions domain.SessionRepository,
	catalog domain.CatalogRepository,
	geo domain.GeoLocator,
	greeting string,
) *SessionService {
	return &SessionService{
		sessions: sessions,
		catalog:  catalog,
		geo:      geo,
		greeting: greeting,
	}
}

// Create starts a new session on the home page with an empty cart, the
// assistant greeting seeded, and the default ship-to country. The
// geolocation lookup is fire-and-forget: one attempt, no retry, and any
// failure silently leaves the default in place.
func (s *SessionService) Create(clientIP string) (*domain.Session, error) {
	now := time.Now()
	session := &domain.Session{
		ID:        uuid.NewString(),
		Page:      domain.PageHome,
		Country:   domain.DefaultCountry,
		Messages:  []domain.ChatMessage{{Role: domain.ChatRoleAssistant, Text: s.greeting}},
		CreatedAt: now,
		LastSeen:  now,
	}
	if err := s.sessions.Create(session); err != nil {
		return nil, err
	}

	if s.geo != nil {
		go s.resolveCountry(session.ID, clientIP)
	}
	return session, nil
}

// resolveCountry runs the one-shot geolocation lookup for a new session
func (s *SessionService) resolveCountry(sessionID, clientIP string) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	country, err := s.geo.Lookup(ctx, clientIP)
	if err != nil {
		log.Printf("[SESSION] Could not fetch location for session %s: %v", sessionID, err)
		return
	}

	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return
	}
	session.Lock()
	session.Country = country
	session.Unlock()
}

// Get returns the live session for id
func (s *SessionService) Get(id string) (*domain.Session, error) {
	return s.sessions.Get(id)
}

// Navigate moves the session to the requested page. Detail pages refuse to
// render without a valid target: the product or post is resolved first and
// an unknown ID leaves the session state unchanged.
func (s *SessionService) Navigate(session *domain.Session, req NavigateRequest) error {
	if !req.Page.Valid() {
		return domain.ErrUnknownPage
	}

	session.Lock()
	defer session.Unlock()

	switch req.Page {
	case domain.PageProductDetail:
		product, err := s.catalog.ProductByID(req.ProductID)
		if err != nil {
			return err
		}
		session.SelectedProductID = product.ID
	case domain.PageBlogDetail:
		post, err := s.catalog.PostByID(req.PostID)
		if err != nil {
			return err
		}
		session.SelectedPostID = post.ID
	case domain.PageHome:
		if req.ResetFilters {
			session.Selection = domain.Selection{}
		}
	}

	session.Page = req.Page
	return nil
}

// SetFilter updates the brand/model selection. An empty brand clears both
// (a model can never outlive its brand). A model known to belong to another
// brand is rejected; an unrecognized series string is accepted and simply
// yields Universal-only results.
func (s *SessionService) SetFilter(session *domain.Session, brand domain.Brand, model string) error {
	if brand == "" {
		return s.ClearFilter(session)
	}
	if !brand.Valid() {
		return domain.ErrUnknownBrand
	}
	if model != "" {
		for _, d := range s.catalog.Devices() {
			if d.Series == model && d.Brand != brand {
				return domain.ErrModelMismatch
			}
		}
	}

	session.Lock()
	defer session.Unlock()
	session.Selection = domain.Selection{Brand: brand, Model: model}
	return nil
}

// ClearFilter resets the brand and model selection together
func (s *SessionService) ClearFilter(session *domain.Session) error {
	session.Lock()
	defer session.Unlock()
	session.Selection = domain.Selection{}
	return nil
}

// AddToCart resolves the product and merges it into the session cart with
// the chosen options. Option values must exist on the product's axes.
func (s *SessionService) AddToCart(session *domain.Session, productID, color, size, capacity string) error {
	product, err := s.catalog.ProductByID(productID)
	if err != nil {
		return err
	}
	if err := validateOptions(product, color, size, capacity); err != nil {
		return err
	}

	session.Lock()
	defer session.Unlock()
	session.Cart.Add(product, color, size, capacity)
	return nil
}

// IncrementLine bumps the quantity of one cart line
func (s *SessionService) IncrementLine(session *domain.Session, index int) error {
	session.Lock()
	defer session.Unlock()
	return session.Cart.IncrementLine(index)
}

// DecrementLine lowers the quantity of one cart line, removing it at zero
func (s *SessionService) DecrementLine(session *domain.Session, index int) error {
	session.Lock()
	defer session.Unlock()
	return session.Cart.DecrementLine(index)
}

// RemoveLine deletes one cart line unconditionally
func (s *SessionService) RemoveLine(session *domain.Session, index int) error {
	session.Lock()
	defer session.Unlock()
	return session.Cart.RemoveLine(index)
}

// Checkout snapshots the cart into an order summary. The cart itself is left
// untouched and no payment is processed.
func (s *SessionService) Checkout(session *domain.Session, form CheckoutForm) (*OrderSummary, error) {
	session.Lock()
	defer session.Unlock()

	lines := make([]domain.CartLine, len(session.Cart.Lines))
	copy(lines, session.Cart.Lines)

	subtotal := session.Cart.TotalCents()
	summary := &OrderSummary{
		Reference:     uuid.NewString(),
		Lines:         lines,
		SubtotalCents: subtotal,
		ShippingCents: 0,
		TotalCents:    subtotal,
		PlacedAt:      time.Now(),
	}
	return summary, nil
}

// validateOptions checks each chosen option value against the product's axes.
// Choosing a value on an axis the product does not expose is invalid.
func validateOptions(p domain.Product, color, size, capacity string) error {
	if color != "" && !hasColor(p, color) {
		return domain.ErrInvalidRequest
	}
	if size != "" && !hasValue(optionSizes(p), size) {
		return domain.ErrInvalidRequest
	}
	if capacity != "" && !hasValue(optionCapacities(p), capacity) {
		return domain.ErrInvalidRequest
	}
	return nil
}

func hasColor(p domain.Product, name string) bool {
	if p.Options == nil {
		return false
	}
	for _, c := range p.Options.Colors {
		if c.Name == name {
			return true
		}
	}
	return false
}

func optionSizes(p domain.Product) []string {
	if p.Options == nil {
		return nil
	}
	return p.Options.Sizes
}

func optionCapacities(p domain.Product) []string {
	if p.Options == nil {
		return nil
	}
	return p.Options.Capacities
}

func hasValue(values []string, v string) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}
