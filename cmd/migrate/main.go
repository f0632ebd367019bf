// Command migrate copies all portfolio data from the embedded SQLite
// database to a PostgreSQL server. One-shot tool for moving a
// deployment; run the server once against Postgres first (or let this
// tool migrate the schema) and point DATABASE_URL at the target.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/AtharvaZ/Portfolio-website/internal/store/gormstore"
)

func main() {
	sqlitePath := flag.String("sqlite", "portfolio.db", "path to the source SQLite database")
	pgURL := flag.String("postgres", os.Getenv("DATABASE_URL"), "target PostgreSQL URL (defaults to DATABASE_URL)")
	flag.Parse()

	log.Println("Starting migration from SQLite to PostgreSQL...")

	if _, err := os.Stat(*sqlitePath); err != nil {
		log.Fatalf("SQLite database not found at %s", *sqlitePath)
	}
	if *pgURL == "" {
		log.Fatal("DATABASE_URL not set; pass -postgres or set the environment variable")
	}

	src, err := gormstore.NewSQLite(*sqlitePath, false)
	if err != nil {
		log.Fatalf("open sqlite: %v", err)
	}
	defer src.Close()

	dst, err := gormstore.NewPostgres(*pgURL, false)
	if err != nil {
		log.Fatalf("open postgres: %v", err)
	}
	defer dst.Close()

	projects, err := src.ListProjects()
	if err != nil {
		log.Fatalf("read projects: %v", err)
	}
	// explicit ids are preserved so existing project URLs keep working
	if err := dst.ImportProjects(projects); err != nil {
		log.Fatalf("migrate projects: %v", err)
	}
	log.Printf("Migrated %d projects.", len(projects))

	configs, err := src.ListConfig()
	if err != nil {
		log.Fatalf("read site config: %v", err)
	}
	for _, c := range configs {
		if err := dst.SetConfig(c.Key, c.Value); err != nil {
			log.Fatalf("migrate config %q: %v", c.Key, err)
		}
	}
	log.Printf("Migrated %d config items.", len(configs))

	log.Println("Migration committed successfully!")
}
