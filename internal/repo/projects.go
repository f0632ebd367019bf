// Package repo holds the domain layer between handlers and storage:
// it enforces the invariants every backend must present identically
// (sorted listings, id policy, validation, NotFound semantics).
package repo

import (
	"sort"
	"strings"

	"github.com/AtharvaZ/Portfolio-website/internal/apperr"
	"github.com/AtharvaZ/Portfolio-website/internal/models"
	"github.com/AtharvaZ/Portfolio-website/internal/store"
)

// Projects exposes catalog operations over any store.Store.
type Projects struct {
	store store.Store
}

func NewProjects(s store.Store) *Projects {
	return &Projects{store: s}
}

// List returns the catalog sorted ascending by id. The sort is applied
// here as well as in the drivers so the invariant holds no matter what
// physical order a backend yields.
func (r *Projects) List() ([]models.Project, error) {
	projects, err := r.store.ListProjects()
	if err != nil {
		return nil, err
	}
	sort.Slice(projects, func(i, j int) bool {
		return projects[i].ID < projects[j].ID
	})
	return projects, nil
}

// Create validates and stores a new project, returning it with its
// assigned id. Any id the caller supplied is discarded.
func (r *Projects) Create(p models.Project) (models.Project, error) {
	if err := validateProject(&p); err != nil {
		return models.Project{}, err
	}
	p.ID = 0
	if err := r.store.CreateProject(&p); err != nil {
		return models.Project{}, err
	}
	return p, nil
}

// Update replaces the project with the given id. The id itself is
// immutable; apperr.ErrNotFound when it does not exist.
func (r *Projects) Update(id int, p models.Project) (models.Project, error) {
	if err := validateProject(&p); err != nil {
		return models.Project{}, err
	}
	if err := r.store.UpdateProject(id, &p); err != nil {
		return models.Project{}, err
	}
	p.ID = id
	return p, nil
}

// Delete removes a project permanently; apperr.ErrNotFound when the id
// does not exist.
func (r *Projects) Delete(id int) error {
	return r.store.DeleteProject(id)
}

// validateProject rejects an empty title; every other field passes
// through as given. Nil tech/links normalize to empty so responses
// render [] and {} instead of null.
func validateProject(p *models.Project) error {
	if strings.TrimSpace(p.Title) == "" {
		return apperr.Wrapf(apperr.ErrValidation, "title must not be empty")
	}
	if p.Tech == nil {
		p.Tech = []string{}
	}
	if p.Links == nil {
		p.Links = models.LinkMap{}
	}
	return nil
}
