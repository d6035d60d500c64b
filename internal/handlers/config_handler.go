package handlers

import (
	"encoding/json"
	"net/http"
	"os"
)

// ConfigHandler exposes the hosted-backend connection parameters the
// single-page client reads at startup.
type ConfigHandler struct {
	SupabaseURL string
	SupabaseKey string
}

// NewConfigHandlerFromEnv reads the connection parameters from the
// same env keys the original deployment used.
func NewConfigHandlerFromEnv() *ConfigHandler {
	return &ConfigHandler{
		SupabaseURL: os.Getenv("db_url"),
		SupabaseKey: os.Getenv("anon_key"),
	}
}

func (h *ConfigHandler) GetConfig(w http.ResponseWriter, r *http.Request) {
	json.NewEncoder(w).Encode(struct {
		SupabaseURL string `json:"supabaseUrl"`
		SupabaseKey string `json:"supabaseKey"`
	}{
		SupabaseURL: h.SupabaseURL,
		SupabaseKey: h.SupabaseKey,
	})
}
