package domain

import (
	"sync"
	"time"
)

// Page identifies one of the storefront views
type Page string

const (
	PageHome          Page = "HOME"
	PageProductDetail Page = "PRODUCT_DETAIL"
	PageCart          Page = "CART"
	PageCheckout      Page = "CHECKOUT"
	PageSearch        Page = "SEARCH"
	PageBlog          Page = "BLOG"
	PageBlogDetail    Page = "BLOG_DETAIL"
	PageBrands        Page = "BRANDS"
	PageSupport       Page = "SUPPORT"
)

// Valid reports whether p is a known page
func (p Page) Valid() bool {
	switch p {
	case PageHome, PageProductDetail, PageCart, PageCheckout, PageSearch,
		PageBlog, PageBlogDetail, PageBrands, PageSupport:
		return true
	}
	return false
}

// DefaultCountry is the ship-to display before (or without) a successful
// geolocation lookup
const DefaultCountry = "Worldwide"

// ChatRole is the author of a chat message
type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
)

// ChatMessage is one entry in the assistant conversation
type ChatMessage struct {
	Role ChatRole `json:"role"`
	Text string   `json:"text"`
}

// Selection is the brand/model compatibility filter. Model, when set, always
// belongs to the selected brand; clearing Brand clears Model.
type Selection struct {
	Brand Brand  `json:"brand,omitempty"`
	Model string `json:"model,omitempty"`
}

// Session holds all state scoped to one storefront visit: navigation, the
// compatibility filter, the cart ledger, the assistant conversation, and the
// ship-to country. Sessions are discarded on expiry; nothing persists.
//
// Handlers run concurrently, so every read or mutation goes through the
// embedded mutex even though each logical visitor acts sequentially.
type Session struct {
	mu sync.Mutex

	ID                string
	Page              Page
	SelectedProductID string
	SelectedPostID    string
	Selection         Selection
	Cart              Cart
	Country           string

	Messages      []ChatMessage
	AssistantBusy bool

	CreatedAt time.Time
	LastSeen  time.Time
}

// Lock acquires the session for a read-modify-write operation
func (s *Session) Lock() { s.mu.Lock() }

// Unlock releases the session
func (s *Session) Unlock() { s.mu.Unlock() }
