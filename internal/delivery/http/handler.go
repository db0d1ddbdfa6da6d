package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/cochlearspare/backend/internal/domain"
	"github.com/cochlearspare/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	catalog   domain.CatalogRepository
	catalogs  *usecase.CatalogService
	sessions  *usecase.SessionService
	assistant *usecase.AssistantService
}

// NewHandler creates a new HTTP handler
func NewHandler(
	catalog domain.CatalogRepository,
	catalogs *usecase.CatalogService,
	sessions *usecase.SessionService,
	assistant *usecase.AssistantService,
) *Handler {
	return &Handler{
		catalog:   catalog,
		catalogs:  catalogs,
		sessions:  sessions,
		assistant: assistant,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "cochlearspare-backend",
		"version": "1.0.0",
	})
}

// --- Catalog ---

// ListProducts returns catalog products, optionally filtered by the
// brand/model compatibility selection, category, bulk flag, or a search query
func (h *Handler) ListProducts(c *gin.Context) {
	if q := c.Query("q"); q != "" {
		products := h.catalogs.SearchProducts(q)
		c.JSON(http.StatusOK, gin.H{"products": emptyIfNil(products)})
		return
	}
	if category := c.Query("category"); category != "" {
		products := h.catalogs.ProductsByCategory(category)
		c.JSON(http.StatusOK, gin.H{"products": emptyIfNil(products)})
		return
	}
	if c.Query("bulk") == "true" {
		c.JSON(http.StatusOK, gin.H{"products": emptyIfNil(h.catalogs.BulkProducts())})
		return
	}

	brand := domain.Brand(c.Query("brand"))
	model := c.Query("model")
	products, err := h.catalogs.FilterProducts(brand, model)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": emptyIfNil(products)})
}

// GetProduct returns one product by ID
func (h *Handler) GetProduct(c *gin.Context) {
	product, err := h.catalog.ProductByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// ListBrands returns the supported manufacturers
func (h *Handler) ListBrands(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"brands": domain.Brands})
}

// ListDevices returns device models, optionally for one brand
func (h *Handler) ListDevices(c *gin.Context) {
	if b := c.Query("brand"); b != "" {
		devices, err := h.catalogs.ModelsForBrand(domain.Brand(b))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"devices": emptyIfNil(devices)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"devices": h.catalog.Devices()})
}

// ListCategories returns the shopping categories
func (h *Handler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": h.catalog.Categories()})
}

// ListPosts returns the blog posts
func (h *Handler) ListPosts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"posts": h.catalog.Posts()})
}

// GetPost returns one blog post by ID
func (h *Handler) GetPost(c *gin.Context) {
	post, err := h.catalog.PostByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// --- Sessions ---

// CreateSession starts a new storefront session
func (h *Handler) CreateSession(c *gin.Context) {
	session, err := h.sessions.Create(c.ClientIP())
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Location", "/api/v1/session")
	c.JSON(http.StatusCreated, h.sessionSummary(session))
}

// GetSession returns the session summary the header renders from
func (h *Handler) GetSession(c *gin.Context) {
	c.JSON(http.StatusOK, h.sessionSummary(sessionFrom(c)))
}

// navigateRequest is the body of a navigation action
type navigateRequest struct {
	Page      string `json:"page" binding:"required"`
	ProductID string `json:"productId"`
	PostID    string `json:"postId"`
	Reset     bool   `json:"reset"`
}

// Navigate moves the session to another page
func (h *Handler) Navigate(c *gin.Context) {
	var req navigateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session := sessionFrom(c)
	err := h.sessions.Navigate(session, usecase.NavigateRequest{
		Page:         domain.Page(req.Page),
		ProductID:    req.ProductID,
		PostID:       req.PostID,
		ResetFilters: req.Reset,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.sessionSummary(session))
}

// filterRequest is the body of a compatibility filter update
type filterRequest struct {
	Brand string `json:"brand" binding:"required"`
	Model string `json:"model"`
}

// SetFilter updates the brand/model selection
func (h *Handler) SetFilter(c *gin.Context) {
	var req filterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session := sessionFrom(c)
	if err := h.sessions.SetFilter(session, domain.Brand(req.Brand), req.Model); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.sessionSummary(session))
}

// ClearFilter resets brand and model together
func (h *Handler) ClearFilter(c *gin.Context) {
	session := sessionFrom(c)
	if err := h.sessions.ClearFilter(session); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.sessionSummary(session))
}

// --- Cart ---

// GetCart returns the session's cart ledger
func (h *Handler) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, cartResponse(sessionFrom(c)))
}

// addItemRequest is the body of an add-to-cart action
type addItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Color     string `json:"color"`
	Size      string `json:"size"`
	Capacity  string `json:"capacity"`
}

// AddCartItem merges a product into the cart
func (h *Handler) AddCartItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session := sessionFrom(c)
	if err := h.sessions.AddToCart(session, req.ProductID, req.Color, req.Size, req.Capacity); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cartResponse(session))
}

// IncrementCartItem bumps one line's quantity
func (h *Handler) IncrementCartItem(c *gin.Context) {
	h.mutateLine(c, h.sessions.IncrementLine)
}

// DecrementCartItem lowers one line's quantity, removing it at zero
func (h *Handler) DecrementCartItem(c *gin.Context) {
	h.mutateLine(c, h.sessions.DecrementLine)
}

// RemoveCartItem deletes one line unconditionally
func (h *Handler) RemoveCartItem(c *gin.Context) {
	h.mutateLine(c, h.sessions.RemoveLine)
}

// mutateLine parses the line index and applies op to it
func (h *Handler) mutateLine(c *gin.Context, op func(*domain.Session, int) error) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid line index"})
		return
	}

	session := sessionFrom(c)
	if err := op(session, index); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cartResponse(session))
}

// --- Checkout ---

// checkoutRequest carries the checkout form fields. No payment details.
type checkoutRequest struct {
	Email    string `json:"email" binding:"required,email"`
	FullName string `json:"fullName" binding:"required"`
	Phone    string `json:"phone"`
	Street   string `json:"street" binding:"required"`
	City     string `json:"city" binding:"required"`
	State    string `json:"state"`
	Zip      string `json:"zip"`
	Country  string `json:"country" binding:"required"`
}

// Checkout snapshots the cart into an order summary
func (h *Handler) Checkout(c *gin.Context) {
	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session := sessionFrom(c)
	summary, err := h.sessions.Checkout(session, usecase.CheckoutForm{
		Email:    req.Email,
		FullName: req.FullName,
		Phone:    req.Phone,
		Street:   req.Street,
		City:     req.City,
		State:    req.State,
		Zip:      req.Zip,
		Country:  req.Country,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reference":     summary.Reference,
		"lines":         summary.Lines,
		"subtotalCents": summary.SubtotalCents,
		"subtotal":      domain.FormatCents(summary.SubtotalCents),
		"shippingCents": summary.ShippingCents,
		"shipping":      "Free",
		"totalCents":    summary.TotalCents,
		"total":         domain.FormatCents(summary.TotalCents),
		"placedAt":      summary.PlacedAt,
	})
}

// --- Assistant ---

// ListMessages returns the assistant conversation in order
func (h *Handler) ListMessages(c *gin.Context) {
	session := sessionFrom(c)
	c.JSON(http.StatusOK, gin.H{
		"messages":   h.assistant.History(session),
		"configured": h.assistant.Configured(),
	})
}

// chatRequest is the body of an assistant submission
type chatRequest struct {
	Text string `json:"text" binding:"required"`
}

// SubmitMessage appends the visitor's message and awaits one reply
func (h *Handler) SubmitMessage(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session := sessionFrom(c)
	reply, err := h.assistant.Submit(c.Request.Context(), session, req.Text)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reply":    reply,
		"messages": h.assistant.History(session),
	})
}

// --- Helpers ---

// sessionFrom reads the session placed in the context by SessionMiddleware
func sessionFrom(c *gin.Context) *domain.Session {
	return c.MustGet(sessionContextKey).(*domain.Session)
}

// sessionSummary is the header/state view of a session
func (h *Handler) sessionSummary(session *domain.Session) gin.H {
	session.Lock()
	defer session.Unlock()
	return gin.H{
		"id":                session.ID,
		"page":              session.Page,
		"selectedProductId": session.SelectedProductID,
		"selectedPostId":    session.SelectedPostID,
		"selection":         session.Selection,
		"country":           session.Country,
		"cartCount":         session.Cart.Count(),
		"cartTotalCents":    session.Cart.TotalCents(),
		"cartTotal":         domain.FormatCents(session.Cart.TotalCents()),
	}
}

// cartResponse renders the ledger with exact cent totals and the 2-decimal
// display string. The lines are copied under the lock: marshalling happens
// after the lock is released, and the live slice may be mutated by a
// concurrent request on the same session.
func cartResponse(session *domain.Session) gin.H {
	session.Lock()
	defer session.Unlock()
	lines := make([]domain.CartLine, len(session.Cart.Lines))
	copy(lines, session.Cart.Lines)
	return gin.H{
		"lines":      lines,
		"count":      session.Cart.Count(),
		"totalCents": session.Cart.TotalCents(),
		"total":      domain.FormatCents(session.Cart.TotalCents()),
	}
}

// respondError maps domain sentinel errors to HTTP status codes
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrProductNotFound),
		errors.Is(err, domain.ErrPostNotFound),
		errors.Is(err, domain.ErrSessionNotFound),
		errors.Is(err, domain.ErrLineNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidRequest),
		errors.Is(err, domain.ErrUnknownBrand),
		errors.Is(err, domain.ErrModelMismatch),
		errors.Is(err, domain.ErrUnknownPage):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrAssistantBusy):
		status = http.StatusConflict
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// emptyIfNil keeps JSON arrays as [] instead of null
func emptyIfNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
