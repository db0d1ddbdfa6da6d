package domain

import "errors"

var (
	// ErrProductNotFound is returned when a product ID does not exist in the catalog
	ErrProductNotFound = errors.New("product not found in catalog")

	// ErrPostNotFound is returned when a blog post ID does not exist
	ErrPostNotFound = errors.New("blog post not found")

	// ErrSessionNotFound is returned when a session ID is unknown or expired
	ErrSessionNotFound = errors.New("session not found")

	// ErrLineNotFound is returned when a cart line index is out of range
	ErrLineNotFound = errors.New("cart line not found")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrUnknownBrand is returned when a brand is not one of the supported manufacturers
	ErrUnknownBrand = errors.New("unknown device brand")

	// ErrModelMismatch is returned when a model does not belong to the selected brand
	ErrModelMismatch = errors.New("model does not belong to selected brand")

	// ErrUnknownPage is returned when a navigation target is not a valid page
	ErrUnknownPage = errors.New("unknown page")

	// ErrAssistantBusy is returned when a chat request is already in flight for the session
	ErrAssistantBusy = errors.New("assistant request already in flight")

	// ErrGenerationFailed is returned when the text-generation service fails
	ErrGenerationFailed = errors.New("text generation request failed")

	// ErrGeoLookupFailed is returned when the IP-geolocation service fails
	ErrGeoLookupFailed = errors.New("geolocation lookup failed")
)
