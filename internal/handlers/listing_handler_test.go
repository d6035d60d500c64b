package handlers

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"roomshare/internal/feed"
	"roomshare/internal/models"
	"roomshare/internal/moderation"
	"roomshare/internal/repositories"
	"roomshare/internal/services"
)

type stubStore struct {
	listings   []models.Listing
	ownerToken string
	deleted    []int64
}

func (s *stubStore) Create(ctx context.Context, l models.Listing, ownerToken string) (models.Listing, error) {
	l.ID = int64(len(s.listings) + 1)
	l.CreatedAt = time.Now().UTC()
	s.listings = append(s.listings, l)
	return l, nil
}

func (s *stubStore) GetByID(ctx context.Context, id int64) (models.Listing, error) {
	for _, l := range s.listings {
		if l.ID == id {
			return l, nil
		}
	}
	return models.Listing{}, repositories.ErrListingNotFound
}

func (s *stubStore) GetListings(ctx context.Context, city string, limit int) ([]models.Listing, error) {
	return s.listings, nil
}

func (s *stubStore) GetNewListings(ctx context.Context, city string, since time.Time) ([]models.Listing, error) {
	return nil, nil
}

func (s *stubStore) Delete(ctx context.Context, id int64) error {
	s.deleted = append(s.deleted, id)
	return nil
}

func (s *stubStore) OwnerTokenByID(ctx context.Context, id int64) (string, error) {
	for _, l := range s.listings {
		if l.ID == id {
			return s.ownerToken, nil
		}
	}
	return "", repositories.ErrListingNotFound
}

func newTestHandler(store *stubStore) *ListingHandler {
	f := feed.New(0)
	f.ReplaceAll(store.listings)
	return &ListingHandler{
		Service: &services.ListingService{
			ListingRepo: store,
			Moderation:  moderation.New(nil),
		},
		Feed:     f,
		CityMode: feed.CityModeStrict,
	}
}

func seededStore() *stubStore {
	return &stubStore{
		ownerToken: "2dbf6f3e-9a40-4a90-bd7c-6f7f25c2a611",
		listings: []models.Listing{
			{ID: 2, Title: "Room in Dallas", City: "Dallas", Category: models.CategoryHave, CreatedAt: time.Date(2024, 1, 1, 1, 0, 0, 0, time.UTC)},
			{ID: 1, Title: "Room in Austin", City: "Austin", Category: models.CategoryHave, CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		},
	}
}

func TestGetListingsFiltersByCity(t *testing.T) {
	h := newTestHandler(seededStore())

	r := httptest.NewRequest("GET", "/api/listings?city=Dallas", nil)
	w := httptest.NewRecorder()
	h.GetListings(w, r)

	if w.Code != 200 {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var got []models.Listing
	if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 1 || got[0].City != "Dallas" {
		t.Fatalf("expected only the Dallas listing, got %v", got)
	}
}

func TestGetNewListingsRequiresSince(t *testing.T) {
	h := newTestHandler(seededStore())

	r := httptest.NewRequest("GET", "/api/listings/new", nil)
	w := httptest.NewRecorder()
	h.GetNewListings(w, r)
	if w.Code != 400 {
		t.Fatalf("expected 400 for a missing since timestamp, got %d", w.Code)
	}

	r = httptest.NewRequest("GET", "/api/listings/new?since=2024-01-01T01:00:00Z", nil)
	w = httptest.NewRecorder()
	h.GetNewListings(w, r)
	if w.Code != 200 {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if body := strings.TrimSpace(w.Body.String()); body != "[]" {
		t.Fatalf("empty delta must encode as [], got %s", body)
	}
}

func TestCreateListingRestrictedContentStatus(t *testing.T) {
	store := seededStore()
	h := newTestHandler(store)

	body := `{"title":"Looking for fwb","description":"d","category":"Need","city":"Dallas","contact_info":"x"}`
	r := httptest.NewRequest("POST", "/api/listings", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.CreateListing(w, r)

	if w.Code != 422 {
		t.Fatalf("expected 422 for restricted content, got %d", w.Code)
	}
	if len(store.listings) != 2 {
		t.Fatalf("rejected submission must not be stored")
	}
}

func TestCreateListingReturnsOwnerToken(t *testing.T) {
	h := newTestHandler(seededStore())

	body := `{"title":"Clean room","description":"d","category":"Have","city":"Dallas","contact_info":"469-555-0101"}`
	r := httptest.NewRequest("POST", "/api/listings", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.CreateListing(w, r)

	if w.Code != 201 {
		t.Fatalf("expected 201, got %d", w.Code)
	}
	var created models.CreatedListing
	if err := json.NewDecoder(w.Body).Decode(&created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.OwnerToken == "" {
		t.Fatalf("create response must carry the owner token")
	}
}

func TestDeleteListingWrongCodeForbidden(t *testing.T) {
	store := seededStore()
	h := newTestHandler(store)

	r := httptest.NewRequest("DELETE", "/api/listings/2?id=2", strings.NewReader(`{"delete_code":"0000000000"}`))
	w := httptest.NewRecorder()
	h.DeleteListing(w, r)

	if w.Code != 403 {
		t.Fatalf("expected 403, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Invalid delete code") {
		t.Fatalf("expected invalid code message, got %s", w.Body.String())
	}
	if len(store.deleted) != 0 {
		t.Fatalf("delete must never reach the store for a bad code")
	}
	if h.Feed.Len() != 2 {
		t.Fatalf("feed must be untouched after a rejected delete")
	}
}

func TestDeleteListingWithOwnerToken(t *testing.T) {
	store := seededStore()
	h := newTestHandler(store)

	r := httptest.NewRequest("DELETE", "/api/listings/2?id=2", nil)
	r.Header.Set("X-Delete-Token", store.ownerToken)
	w := httptest.NewRecorder()
	h.DeleteListing(w, r)

	if w.Code != 204 {
		t.Fatalf("expected 204, got %d", w.Code)
	}
	if len(store.deleted) != 1 || store.deleted[0] != 2 {
		t.Fatalf("expected listing 2 deleted, got %v", store.deleted)
	}
	if h.Feed.Len() != 1 {
		t.Fatalf("deleted listing must leave the feed")
	}
}

func TestViewerKey(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/listings/1?id=1", nil)
	r.RemoteAddr = "198.51.100.7:54321"
	if got := viewerKey(r); got != "198.51.100.7" {
		t.Fatalf("expected remote host, got %q", got)
	}

	r.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
	if got := viewerKey(r); got != "203.0.113.9" {
		t.Fatalf("expected first forwarded hop, got %q", got)
	}
}
