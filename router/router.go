// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"io/fs"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/danielhkuo/christmas-map/cliparse"
	"github.com/danielhkuo/christmas-map/geocode"
	"github.com/danielhkuo/christmas-map/handlers"
	"github.com/danielhkuo/christmas-map/houses"
	"github.com/danielhkuo/christmas-map/middleware"
	"github.com/danielhkuo/christmas-map/store"
	"github.com/danielhkuo/christmas-map/upload"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *mux.Router {
	r := mux.NewRouter()

	// Initialize dependencies
	svc := houses.NewService(store.New(db, cfg.DatabaseType))
	images := upload.NewStore(cfg.UploadDir)
	geocoder := geocode.New(geocode.Config{
		BaseURL:   cfg.Geocoder.URL,
		UserAgent: cfg.Geocoder.UserAgent,
		Region:    cfg.Geocoder.Region,
		Interval:  geocode.DefaultInterval,
	})

	// Initialize handlers
	houseHandler := handlers.NewHouseHandler(svc)
	votingHandler := handlers.NewVotingHandler(svc)
	uploadHandler := handlers.NewUploadHandler(images)
	geocodeHandler := handlers.NewGeocodeHandler(geocoder)

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}).Methods(http.MethodGet)

	// Uploaded images, served at the path stored in imagePath
	r.PathPrefix(upload.URLPrefix).Handler(
		http.StripPrefix(upload.URLPrefix, http.FileServer(noListing{http.Dir(images.Dir())})),
	).Methods(http.MethodGet, http.MethodHead)

	// API routes sit on the root router so a method mismatch answers 405
	api := cfg.BasePath

	// Houses
	r.HandleFunc(api+"/houses", middleware.WithLogging(houseHandler.ListHouses)).Methods(http.MethodGet)
	r.HandleFunc(api+"/houses", middleware.WithLogging(houseHandler.CreateHouse)).Methods(http.MethodPost)
	r.HandleFunc(api+"/houses/{id}", middleware.WithLogging(houseHandler.DeleteHouse)).Methods(http.MethodDelete)
	r.HandleFunc(api+"/houses/{id}/vote", middleware.WithLogging(votingHandler.CastVote)).Methods(http.MethodPost)

	// Images
	r.HandleFunc(api+"/upload", middleware.WithLogging(uploadHandler.Upload)).Methods(http.MethodPost)

	// Geocoding proxy
	r.HandleFunc(api+"/geocode/search", middleware.WithLogging(geocodeHandler.Search)).Methods(http.MethodGet)
	r.HandleFunc(api+"/geocode/reverse", middleware.WithLogging(geocodeHandler.Reverse)).Methods(http.MethodGet)

	// Root endpoint
	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("christmas-map API v1"))
	}).Methods(http.MethodGet)

	return r
}

// noListing serves files but reports directories as missing
type noListing struct {
	files http.FileSystem
}

func (n noListing) Open(name string) (http.File, error) {
	f, err := n.files.Open(name)
	if err != nil {
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if info.IsDir() {
		f.Close()
		return nil, fs.ErrNotExist
	}
	return f, nil
}
