package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/vladia/corretora-go/internal/api/apierr"
	"github.com/vladia/corretora-go/internal/api/request"
	"github.com/vladia/corretora-go/internal/api/response"
	"github.com/vladia/corretora-go/internal/model"
	"github.com/vladia/corretora-go/internal/services/listing"
)

// ListingHandler handles listing CRUD endpoints
type ListingHandler struct {
	listings *listing.Service
}

// NewListingHandler creates a new listing handler
func NewListingHandler(listings *listing.Service) *ListingHandler {
	return &ListingHandler{
		listings: listings,
	}
}

func draftFromRequest(req request.ListingRequest) listing.Draft {
	return listing.Draft{
		Title:            req.Title,
		Kind:             req.Kind,
		Address:          req.Address,
		FormattedAddress: req.FormattedAddress,
		Latitude:         req.Latitude,
		Longitude:        req.Longitude,
		Price:            req.Price,
		Area:             req.Area,
		Rooms:            req.Rooms,
		Bathrooms:        req.Bathrooms,
		Description:      req.Description,
		Amenities:        req.Amenities,
		Images:           req.Images,
		Rent:             req.Rent,
		CondoFee:         req.CondoFee,
		PropertyTax:      req.PropertyTax,
		BelowMarket:      req.BelowMarket,
		Status:           req.Status,
	}
}

// List handles GET /api/listings
func (h *ListingHandler) List(w http.ResponseWriter, r *http.Request) {
	listings, err := h.listings.List(r.Context())
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ListingsFromModel(listings))
}

// Get handles GET /api/listings/{id}
func (h *ListingHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := model.ListingID(mux.Vars(r)["id"])

	l, err := h.listings.Get(r.Context(), id)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ListingFromModel(l))
}

// Create handles POST /api/listings
func (h *ListingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.ListingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewValidationError("invalid request body"))
		return
	}

	if req.Title == "" || req.Address == "" {
		apierr.WriteError(w, apierr.NewValidationError("title and address are required"))
		return
	}

	l, err := h.listings.Create(r.Context(), draftFromRequest(req))
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.ListingFromModel(l))
}

// Update handles PUT /api/listings/{id}
func (h *ListingHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := model.ListingID(mux.Vars(r)["id"])

	var req request.ListingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewValidationError("invalid request body"))
		return
	}

	if req.Title == "" || req.Address == "" {
		apierr.WriteError(w, apierr.NewValidationError("title and address are required"))
		return
	}

	l, err := h.listings.Update(r.Context(), id, draftFromRequest(req))
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ListingFromModel(l))
}

// Delete handles DELETE /api/listings/{id}
func (h *ListingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := model.ListingID(mux.Vars(r)["id"])

	if err := h.listings.Delete(r.Context(), id); err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.NoContent(w)
}
