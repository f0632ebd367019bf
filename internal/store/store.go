// Package store defines the persistence contract shared by the three
// interchangeable backends (JSON file, embedded SQLite, PostgreSQL).
// Every implementation must produce identical observable behavior:
// same id assignment, same ordering, same error kinds.
package store

import "github.com/AtharvaZ/Portfolio-website/internal/models"

// Store is the uniform interface over the project catalog and the
// site-config key/value namespace.
//
// All failures are reported through the apperr sentinels: absent ids
// and keys as apperr.ErrNotFound, everything the engine throws as
// apperr.ErrStorage. Engine error types never leak through.
type Store interface {
	// ListProjects returns every project. It never fails on a missing
	// store: the file backend lazily seeds placeholder content, the
	// SQL backends have their schema migrated at open.
	ListProjects() ([]models.Project, error)

	// CreateProject stores p and fills in its id
	// (max existing id + 1, or 1 on an empty catalog). Any id the
	// caller set is ignored.
	CreateProject(p *models.Project) error

	// UpdateProject replaces the record with the given id; the id
	// itself is immutable.
	UpdateProject(id int, p *models.Project) error

	// DeleteProject removes the record permanently.
	DeleteProject(id int) error

	// GetConfig returns the value stored under key, or
	// apperr.ErrNotFound when the key was never written.
	GetConfig(key string) (string, error)

	// SetConfig upserts key to value.
	SetConfig(key, value string) error

	// ListConfig returns every config entry. Used by the migration
	// tool.
	ListConfig() ([]models.SiteConfig, error)

	// ImportProjects replaces the whole catalog with the given
	// records, keeping their explicit ids. Used by the migration
	// tool; normal creates go through CreateProject.
	ImportProjects(projects []models.Project) error

	Close() error
}
