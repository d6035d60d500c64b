package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"roomshare/internal/feed"
	"roomshare/internal/models"
	"roomshare/internal/repositories"
	"roomshare/internal/services"
)

type ListingHandler struct {
	Service  *services.ListingService
	Views    *services.ViewService
	Feed     *feed.Feed
	CityMode feed.CityMode
}

// GetListings serves the browse view: the in-memory feed filtered by
// the viewer's city/area/search/category selection, newest first.
func (h *ListingHandler) GetListings(w http.ResponseWriter, r *http.Request) {
	listings := h.Feed.Snapshot()
	if len(listings) == 0 {
		var err error
		listings, err = h.Service.GetListings(r.Context(), "", 0)
		if err != nil {
			log.Printf("GetListings error: %v", err)
			http.Error(w, "Failed to fetch listings", http.StatusInternalServerError)
			return
		}
		h.Feed.ReplaceAll(listings)
	}

	criteria := feed.Criteria{
		City:     r.URL.Query().Get("city"),
		Area:     r.URL.Query().Get("area"),
		Search:   r.URL.Query().Get("q"),
		Category: r.URL.Query().Get("category"),
		CityMode: h.CityMode,
	}
	visible := feed.Visible(listings, criteria)

	if limit, _ := strconv.Atoi(r.URL.Query().Get("limit")); limit > 0 && limit < len(visible) {
		visible = visible[:limit]
	}

	json.NewEncoder(w).Encode(visible)
}

// GetNewListings serves the delta pull: rows strictly newer than the
// caller's since timestamp, newest first.
func (h *ListingHandler) GetNewListings(w http.ResponseWriter, r *http.Request) {
	sinceStr := r.URL.Query().Get("since")
	if sinceStr == "" {
		http.Error(w, "Missing since timestamp", http.StatusBadRequest)
		return
	}
	since, err := time.Parse(time.RFC3339, sinceStr)
	if err != nil {
		http.Error(w, "Invalid since timestamp", http.StatusBadRequest)
		return
	}

	listings, err := h.Service.GetNewListings(r.Context(), r.URL.Query().Get("city"), since)
	if err != nil {
		log.Printf("GetNewListings error: %v", err)
		http.Error(w, "Failed to fetch listings", http.StatusInternalServerError)
		return
	}
	if listings == nil {
		listings = []models.Listing{}
	}
	json.NewEncoder(w).Encode(listings)
}

func (h *ListingHandler) GetListingByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(getParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "Invalid listing ID", http.StatusBadRequest)
		return
	}

	listing, err := h.Service.GetListingByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrListingNotFound) || errors.Is(err, models.ErrListingNotFound) {
			http.Error(w, "Listing not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to fetch listing", http.StatusInternalServerError)
		return
	}

	// Count the view off the request path; the response never waits
	// on it and the request context may already be gone.
	if h.Views != nil {
		key := viewerKey(r)
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			h.Views.RecordView(ctx, id, key)
		}()
	}

	json.NewEncoder(w).Encode(listing)
}

func (h *ListingHandler) CreateListing(w http.ResponseWriter, r *http.Request) {
	var req models.NewListing
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	created, err := h.Service.CreateListing(r.Context(), req)
	if err != nil {
		var restricted *models.RestrictedContentError
		switch {
		case errors.As(err, &restricted):
			http.Error(w, restricted.Error(), http.StatusUnprocessableEntity)
		case errors.Is(err, models.ErrInvalidCategory),
			errors.Is(err, models.ErrInvalidEmail),
			errors.Is(err, models.ErrMissingContact):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			log.Printf("CreateListing error: %v", err)
			http.Error(w, "Failed to create listing", http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

// DeleteListing requires the owner token issued at creation, passed in
// the X-Delete-Token header or a {"delete_code": ...} body.
func (h *ListingHandler) DeleteListing(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(getParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "Invalid listing ID", http.StatusBadRequest)
		return
	}

	token := r.Header.Get("X-Delete-Token")
	if token == "" {
		var body struct {
			DeleteCode string `json:"delete_code"`
		}
		if r.Body != nil {
			json.NewDecoder(r.Body).Decode(&body)
		}
		token = body.DeleteCode
	}

	err = h.Service.DeleteListing(r.Context(), id, token)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidDeleteToken):
			http.Error(w, "Invalid delete code", http.StatusForbidden)
		case errors.Is(err, repositories.ErrListingNotFound):
			http.Error(w, "Listing not found", http.StatusNotFound)
		default:
			log.Printf("DeleteListing error: %v", err)
			http.Error(w, "Failed to delete listing", http.StatusInternalServerError)
		}
		return
	}

	h.Feed.Drop(id)
	w.WriteHeader(http.StatusNoContent)
}
