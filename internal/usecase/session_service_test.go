package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/cochlearspare/backend/internal/domain"
)

// stubSessions is an in-memory SessionRepository for usecase tests
type stubSessions struct {
	mu   sync.Mutex
	data map[string]*domain.Session
}

func newStubSessions() *stubSessions {
	return &stubSessions{data: make(map[string]*domain.Session)}
}

func (s *stubSessions) Create(session *domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[session.ID] = session
	return nil
}

func (s *stubSessions) Get(id string) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.data[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return session, nil
}

func (s *stubSessions) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, id)
	return nil
}

// fakeGeo resolves every IP to a fixed country and signals completion
type fakeGeo struct {
	country string
	err     error
	done    chan struct{}
}

func (g *fakeGeo) Lookup(ctx context.Context, ip string) (string, error) {
	defer close(g.done)
	if g.err != nil {
		return "", g.err
	}
	return g.country, nil
}

func sessionCatalog() *stubCatalog {
	return &stubCatalog{
		products: []domain.Product{
			{ID: "b1", Name: "Batteries", PriceCents: 4500, Options: &domain.ProductOptions{
				Capacities: []string{"60 pack", "120 pack"},
			}},
			{ID: "c1", Name: "Coil Cable", PriceCents: 4200},
		},
		devices: []domain.DeviceModel{
			{ID: "m1", Brand: domain.BrandCochlear, Name: "Model One", Series: "SeriesX"},
			{ID: "m2", Brand: domain.BrandMedEl, Name: "Model Two", Series: "SeriesZ"},
		},
		posts: []domain.BlogPost{
			{ID: "post1", Title: "Battery Life Tips"},
		},
	}
}

func newTestSessionService(geo domain.GeoLocator) (*SessionService, *stubSessions) {
	sessions := newStubSessions()
	svc := NewSessionService(sessions, sessionCatalog(), geo, AssistantGreeting)
	return svc, sessions
}

func TestSessionCreate(t *testing.T) {
	t.Run("starts at home with greeting and default country", func(t *testing.T) {
		svc, _ := newTestSessionService(nil)

		session, err := svc.Create("203.0.113.9")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if session.ID == "" {
			t.Error("session ID is empty")
		}
		if session.Page != domain.PageHome {
			t.Errorf("page = %s, want %s", session.Page, domain.PageHome)
		}
		if session.Country != domain.DefaultCountry {
			t.Errorf("country = %s, want %s", session.Country, domain.DefaultCountry)
		}
		if len(session.Messages) != 1 || session.Messages[0].Role != domain.ChatRoleAssistant {
			t.Fatalf("messages = %v, want a single assistant greeting", session.Messages)
		}
		if session.Cart.Count() != 0 {
			t.Errorf("cart count = %d, want 0", session.Cart.Count())
		}
	})

	t.Run("geolocation updates the country in the background", func(t *testing.T) {
		geo := &fakeGeo{country: "Germany", done: make(chan struct{})}
		svc, _ := newTestSessionService(geo)

		session, err := svc.Create("203.0.113.9")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		select {
		case <-geo.done:
		case <-time.After(2 * time.Second):
			t.Fatal("geolocation lookup never ran")
		}
		// give the goroutine a moment to write the result back
		deadline := time.Now().Add(time.Second)
		for {
			session.Lock()
			country := session.Country
			session.Unlock()
			if country == "Germany" {
				break
			}
			if time.Now().After(deadline) {
				t.Fatalf("country = %s, want Germany", country)
			}
			time.Sleep(5 * time.Millisecond)
		}
	})

	t.Run("geolocation failure keeps the default country", func(t *testing.T) {
		geo := &fakeGeo{err: domain.ErrGeoLookupFailed, done: make(chan struct{})}
		svc, _ := newTestSessionService(geo)

		session, err := svc.Create("203.0.113.9")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		select {
		case <-geo.done:
		case <-time.After(2 * time.Second):
			t.Fatal("geolocation lookup never ran")
		}
		time.Sleep(20 * time.Millisecond)
		session.Lock()
		defer session.Unlock()
		if session.Country != domain.DefaultCountry {
			t.Errorf("country = %s, want %s", session.Country, domain.DefaultCountry)
		}
	})
}

func TestSessionNavigate(t *testing.T) {
	svc, _ := newTestSessionService(nil)

	newSession := func(t *testing.T) *domain.Session {
		t.Helper()
		session, err := svc.Create("203.0.113.9")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return session
	}

	t.Run("moves to a plain page", func(t *testing.T) {
		session := newSession(t)
		if err := svc.Navigate(session, NavigateRequest{Page: domain.PageCart}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if session.Page != domain.PageCart {
			t.Errorf("page = %s, want %s", session.Page, domain.PageCart)
		}
	})

	t.Run("rejects an unknown page", func(t *testing.T) {
		session := newSession(t)
		err := svc.Navigate(session, NavigateRequest{Page: "WISHLIST"})
		if !errors.Is(err, domain.ErrUnknownPage) {
			t.Errorf("error = %v, want ErrUnknownPage", err)
		}
		if session.Page != domain.PageHome {
			t.Errorf("page = %s, want unchanged %s", session.Page, domain.PageHome)
		}
	})

	t.Run("product detail requires a known product", func(t *testing.T) {
		session := newSession(t)
		err := svc.Navigate(session, NavigateRequest{Page: domain.PageProductDetail, ProductID: "nope"})
		if !errors.Is(err, domain.ErrProductNotFound) {
			t.Errorf("error = %v, want ErrProductNotFound", err)
		}
		if session.Page != domain.PageHome {
			t.Errorf("page = %s, want unchanged %s", session.Page, domain.PageHome)
		}

		if err := svc.Navigate(session, NavigateRequest{Page: domain.PageProductDetail, ProductID: "b1"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if session.Page != domain.PageProductDetail || session.SelectedProductID != "b1" {
			t.Errorf("page = %s product = %s, want PRODUCT_DETAIL b1", session.Page, session.SelectedProductID)
		}
	})

	t.Run("blog detail requires a known post", func(t *testing.T) {
		session := newSession(t)
		err := svc.Navigate(session, NavigateRequest{Page: domain.PageBlogDetail, PostID: "nope"})
		if !errors.Is(err, domain.ErrPostNotFound) {
			t.Errorf("error = %v, want ErrPostNotFound", err)
		}

		if err := svc.Navigate(session, NavigateRequest{Page: domain.PageBlogDetail, PostID: "post1"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if session.SelectedPostID != "post1" {
			t.Errorf("post = %s, want post1", session.SelectedPostID)
		}
	})

	t.Run("home with reset clears the filter selection", func(t *testing.T) {
		session := newSession(t)
		if err := svc.SetFilter(session, domain.BrandCochlear, "SeriesX"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if err := svc.Navigate(session, NavigateRequest{Page: domain.PageHome}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if session.Selection.Brand != domain.BrandCochlear {
			t.Error("plain home navigation should keep the selection")
		}

		if err := svc.Navigate(session, NavigateRequest{Page: domain.PageHome, ResetFilters: true}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if session.Selection != (domain.Selection{}) {
			t.Errorf("selection = %v, want cleared", session.Selection)
		}
	})
}

func TestSessionSetFilter(t *testing.T) {
	svc, _ := newTestSessionService(nil)

	newSession := func(t *testing.T) *domain.Session {
		t.Helper()
		session, err := svc.Create("203.0.113.9")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return session
	}

	t.Run("sets brand and model", func(t *testing.T) {
		session := newSession(t)
		if err := svc.SetFilter(session, domain.BrandCochlear, "SeriesX"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if session.Selection.Brand != domain.BrandCochlear || session.Selection.Model != "SeriesX" {
			t.Errorf("selection = %v, want Cochlear/SeriesX", session.Selection)
		}
	})

	t.Run("empty brand clears both fields", func(t *testing.T) {
		session := newSession(t)
		if err := svc.SetFilter(session, domain.BrandCochlear, "SeriesX"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := svc.SetFilter(session, "", ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if session.Selection != (domain.Selection{}) {
			t.Errorf("selection = %v, want cleared", session.Selection)
		}
	})

	t.Run("rejects an unknown brand", func(t *testing.T) {
		session := newSession(t)
		if err := svc.SetFilter(session, "Oticon", ""); !errors.Is(err, domain.ErrUnknownBrand) {
			t.Errorf("error = %v, want ErrUnknownBrand", err)
		}
	})

	t.Run("rejects a model belonging to another brand", func(t *testing.T) {
		session := newSession(t)
		err := svc.SetFilter(session, domain.BrandCochlear, "SeriesZ")
		if !errors.Is(err, domain.ErrModelMismatch) {
			t.Errorf("error = %v, want ErrModelMismatch", err)
		}
		if session.Selection != (domain.Selection{}) {
			t.Errorf("selection = %v, want unchanged", session.Selection)
		}
	})

	t.Run("accepts an unrecognized series string", func(t *testing.T) {
		session := newSession(t)
		if err := svc.SetFilter(session, domain.BrandCochlear, "SeriesY"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if session.Selection.Model != "SeriesY" {
			t.Errorf("model = %s, want SeriesY", session.Selection.Model)
		}
	})
}

func TestSessionCart(t *testing.T) {
	svc, _ := newTestSessionService(nil)

	session, err := svc.Create("203.0.113.9")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("add resolves the product", func(t *testing.T) {
		if err := svc.AddToCart(session, "nope", "", "", ""); !errors.Is(err, domain.ErrProductNotFound) {
			t.Errorf("error = %v, want ErrProductNotFound", err)
		}
		if err := svc.AddToCart(session, "b1", "", "", "60 pack"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if session.Cart.Count() != 1 {
			t.Errorf("count = %d, want 1", session.Cart.Count())
		}
	})

	t.Run("add rejects an option the product does not offer", func(t *testing.T) {
		if err := svc.AddToCart(session, "b1", "", "", "500 pack"); !errors.Is(err, domain.ErrInvalidRequest) {
			t.Errorf("error = %v, want ErrInvalidRequest", err)
		}
		if err := svc.AddToCart(session, "c1", "Beige", "", ""); !errors.Is(err, domain.ErrInvalidRequest) {
			t.Errorf("error = %v, want ErrInvalidRequest", err)
		}
	})

	t.Run("increment decrement remove operate by index", func(t *testing.T) {
		if err := svc.IncrementLine(session, 0); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if session.Cart.Count() != 2 {
			t.Errorf("count = %d, want 2", session.Cart.Count())
		}
		if err := svc.DecrementLine(session, 0); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := svc.IncrementLine(session, 5); !errors.Is(err, domain.ErrLineNotFound) {
			t.Errorf("error = %v, want ErrLineNotFound", err)
		}
		if err := svc.RemoveLine(session, 0); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if session.Cart.Count() != 0 {
			t.Errorf("count = %d, want 0", session.Cart.Count())
		}
	})
}

func TestSessionCheckout(t *testing.T) {
	svc, _ := newTestSessionService(nil)

	session, err := svc.Create("203.0.113.9")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.AddToCart(session, "b1", "", "", "60 pack"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.AddToCart(session, "c1", "", "", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	summary, err := svc.Checkout(session, CheckoutForm{
		Email:    "jo@example.com",
		FullName: "Jo Example",
		Street:   "1 Main St",
		City:     "Springfield",
		Country:  "Germany",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.Reference == "" {
		t.Error("order reference is empty")
	}
	if len(summary.Lines) != 2 {
		t.Fatalf("lines = %d, want 2", len(summary.Lines))
	}
	wantSubtotal := int64(4500 + 4200)
	if summary.SubtotalCents != wantSubtotal {
		t.Errorf("subtotal = %d, want %d", summary.SubtotalCents, wantSubtotal)
	}
	if summary.ShippingCents != 0 {
		t.Errorf("shipping = %d, want 0 (free)", summary.ShippingCents)
	}
	if summary.TotalCents != wantSubtotal {
		t.Errorf("total = %d, want %d", summary.TotalCents, wantSubtotal)
	}
	// checkout is a snapshot: the cart must survive intact
	if session.Cart.Count() != 2 {
		t.Errorf("cart count after checkout = %d, want 2", session.Cart.Count())
	}
}
