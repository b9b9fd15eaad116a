package handler

import (
	"encoding/json"
	"net/http"

	"github.com/vladia/corretora-go/internal/api/apierr"
	"github.com/vladia/corretora-go/internal/api/request"
	"github.com/vladia/corretora-go/internal/api/response"
	"github.com/vladia/corretora-go/internal/services/geocode"
)

// GeocodeHandler handles address lookup endpoints
type GeocodeHandler struct {
	geocoder *geocode.Service
}

// NewGeocodeHandler creates a new geocode handler
func NewGeocodeHandler(geocoder *geocode.Service) *GeocodeHandler {
	return &GeocodeHandler{
		geocoder: geocoder,
	}
}

// Geocode handles POST /api/geocode
func (h *GeocodeHandler) Geocode(w http.ResponseWriter, r *http.Request) {
	var req request.GeocodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewValidationError("invalid request body"))
		return
	}

	if req.Address == "" {
		apierr.WriteError(w, apierr.NewValidationError("address is required"))
		return
	}

	result, err := h.geocoder.Geocode(r.Context(), req.Address)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GeocodeResultFromService(result))
}

// ReverseGeocode handles POST /api/geocode/reverse
func (h *GeocodeHandler) ReverseGeocode(w http.ResponseWriter, r *http.Request) {
	var req request.ReverseGeocodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewValidationError("invalid request body"))
		return
	}

	if req.Latitude == nil || req.Longitude == nil {
		apierr.WriteError(w, apierr.NewValidationError("latitude and longitude are required"))
		return
	}

	result, err := h.geocoder.ReverseGeocode(r.Context(), *req.Latitude, *req.Longitude)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GeocodeResultFromService(result))
}
