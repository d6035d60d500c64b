package main

import (
	"database/sql"
	"log"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"roomshare/internal/config"
	"roomshare/internal/feed"
	"roomshare/internal/handlers"
	"roomshare/internal/models"
	"roomshare/internal/moderation"
	"roomshare/internal/repositories"
	"roomshare/internal/services"
)

type application struct {
	errorLog        *log.Logger
	infoLog         *log.Logger
	listingHandler  *handlers.ListingHandler
	locationHandler *handlers.LocationHandler
	configHandler   *handlers.ConfigHandler
	listingRepo     *repositories.ListingRepository
	listingFeed     *feed.Feed
	wsManager       *WebSocketManager
	db              *sql.DB
}

func initializeApp(db *sql.DB, cfg config.Config, errorLog, infoLog *log.Logger) *application {
	listingRepo := &repositories.ListingRepository{DB: db, Driver: cfg.Database.Driver}

	listingFeed := feed.New(time.Duration(cfg.Feed.HighlightMillis) * time.Millisecond)
	wsManager := NewWebSocketManager()

	var rdb *redis.Client
	if cfg.Redis.Addr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
	}

	viewService := &services.ViewService{
		ListingRepo: listingRepo,
		Redis:       rdb,
		DedupTTL:    time.Duration(cfg.Redis.ViewDedupTTLH) * time.Hour,
		ErrorLog:    errorLog,
	}

	listingService := &services.ListingService{
		ListingRepo:  listingRepo,
		Moderation:   moderation.New(cfg.Moderation.BannedTerms),
		OperatorCode: cfg.Delete.OperatorCode,
		// Inserts reach browsers through the same idempotent merge the
		// delta poller uses, then fan out over the push channel.
		Notify: func(l models.Listing) {
			listingFeed.MergePush(l)
			wsManager.Broadcast(l)
		},
	}

	cityMode, err := feed.ParseCityMode(cfg.Feed.CityMatchMode)
	if err != nil {
		errorLog.Fatal(err)
	}

	listingHandler := &handlers.ListingHandler{
		Service:  listingService,
		Views:    viewService,
		Feed:     listingFeed,
		CityMode: cityMode,
	}

	return &application{
		errorLog:        errorLog,
		infoLog:         infoLog,
		listingHandler:  listingHandler,
		locationHandler: &handlers.LocationHandler{},
		configHandler:   handlers.NewConfigHandlerFromEnv(),
		listingRepo:     listingRepo,
		listingFeed:     listingFeed,
		wsManager:       wsManager,
		db:              db,
	}
}

func openDB(driver, dsn string) (*sql.DB, error) {
	driverName := driver
	if driver == "postgres" {
		driverName = "pgx"
	}
	db, err := sql.Open(driverName, dsn)
	if err != nil {
		log.Printf("Failed to open DB: %v", err)
		return nil, err
	}
	if err = db.Ping(); err != nil {
		log.Printf("Failed to ping DB: %v", err)
		return nil, err
	}
	db.SetMaxIdleConns(35)
	log.Println("Successfully connected to database")
	return db, nil
}

func addSecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cross-Origin-Opener-Policy", "same-origin")
		w.Header().Set("Cross-Origin-Resource-Policy", "same-origin")
		next.ServeHTTP(w, r)
	})
}
