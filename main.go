package main

import (
	"fmt"
	"log"

	"github.com/AtharvaZ/Portfolio-website/internal/auth"
	"github.com/AtharvaZ/Portfolio-website/internal/config"
	"github.com/AtharvaZ/Portfolio-website/internal/router"
	"github.com/AtharvaZ/Portfolio-website/internal/store"
	"github.com/AtharvaZ/Portfolio-website/internal/store/gormstore"
	"github.com/AtharvaZ/Portfolio-website/internal/store/jsonfile"
)

func main() {
	// load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// open the selected storage backend
	st, err := openStore(cfg)
	if err != nil {
		log.Fatalf("open store (%s): %v", cfg.Storage.Backend, err)
	}
	defer st.Close()

	if cfg.Admin.Username == "" || cfg.Admin.Password == "" {
		log.Println("WARNING: admin credentials not set; admin login is disabled")
	}
	sessions := auth.NewSessionManager(cfg.Admin.Username, cfg.Admin.Password)

	// setup router
	r := router.SetupRouter(cfg, st, sessions)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Address, cfg.Server.Port)
	log.Printf("server listening on %s (storage: %s)", addr, cfg.Storage.Backend)
	if err := r.Run(addr); err != nil {
		log.Fatalf("run server: %v", err)
	}
}

func openStore(cfg *config.Config) (store.Store, error) {
	switch cfg.Storage.Backend {
	case "", "file":
		return jsonfile.New(cfg.Storage.DataDir)
	case "sqlite":
		return gormstore.NewSQLite(cfg.Storage.SQLitePath, cfg.Storage.LogMode)
	case "postgres":
		return gormstore.NewPostgres(cfg.Storage.PostgresURL, cfg.Storage.LogMode)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}
