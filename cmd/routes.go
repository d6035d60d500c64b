package main

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"
)

func (app *application) routes() http.Handler {
	standardMiddleware := alice.New(app.recoverPanic, app.logRequest, secureHeaders, makeResponseJSON)
	staticMiddleware := alice.New(app.recoverPanic, app.logRequest, secureHeaders)

	mux := pat.New()

	// Listings
	mux.Get("/api/listings/new", standardMiddleware.ThenFunc(app.listingHandler.GetNewListings))
	mux.Get("/api/listings/:id", standardMiddleware.ThenFunc(app.listingHandler.GetListingByID))
	mux.Get("/api/listings", standardMiddleware.ThenFunc(app.listingHandler.GetListings))
	mux.Post("/api/listings", standardMiddleware.ThenFunc(app.listingHandler.CreateListing))
	mux.Del("/api/listings/:id", standardMiddleware.ThenFunc(app.listingHandler.DeleteListing))

	// Locations
	mux.Get("/api/locations/coords", standardMiddleware.ThenFunc(app.locationHandler.GetCityCoords))
	mux.Get("/api/locations", standardMiddleware.ThenFunc(app.locationHandler.GetLocations))

	// Client bootstrap
	mux.Get("/api/config", standardMiddleware.ThenFunc(app.configHandler.GetConfig))

	// Push channel
	mux.Get("/ws", http.HandlerFunc(app.WebSocketHandler))

	// Static assets, with the SPA shell for any unmatched path.
	mux.Get("/", staticMiddleware.Then(spaHandler("./public")))

	return mux
}

// spaHandler serves files from dir and falls back to index.html so
// client-side routes resolve after a hard reload.
func spaHandler(dir string) http.Handler {
	fs := http.FileServer(http.Dir(dir))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := filepath.Join(dir, filepath.Clean(r.URL.Path))
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			fs.ServeHTTP(w, r)
			return
		}
		http.ServeFile(w, r, filepath.Join(dir, "index.html"))
	})
}
