package handlers

import (
	"encoding/json"
	"net/http"

	"roomshare/internal/models"
)

type LocationHandler struct{}

// GetLocations serves the static city/area directory the clients build
// their pickers from.
func (h *LocationHandler) GetLocations(w http.ResponseWriter, r *http.Request) {
	json.NewEncoder(w).Encode(struct {
		Locations          []models.CityAreas `json:"locations"`
		AutocompleteCities []string           `json:"autocomplete_cities"`
	}{
		Locations:          models.Locations,
		AutocompleteCities: models.AutocompleteCities,
	})
}

func (h *LocationHandler) GetCityCoords(w http.ResponseWriter, r *http.Request) {
	json.NewEncoder(w).Encode(models.CityCoords)
}
