// Package jsonfile implements store.Store over plain JSON documents on
// disk, matching the original flat-file deployment: the whole project
// catalog is one file, read fully and rewritten fully on every
// mutation.
package jsonfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/AtharvaZ/Portfolio-website/internal/apperr"
	"github.com/AtharvaZ/Portfolio-website/internal/models"
	"github.com/AtharvaZ/Portfolio-website/internal/store"
)

const (
	projectsFile = "projects.json"
	resumeFile   = "resume.json"
	configFile   = "site_config.json"

	// ResumeKey is the config key the resume document lives under.
	ResumeKey = "resume_pdf"
)

// Store keeps every read-modify-write cycle under one mutex. Earlier
// deployments relied on sequential request handling and accepted a
// last-writer-wins race; the lock strengthens that without changing
// single-writer behavior. Writers outside this process are still
// unsynchronized.
type Store struct {
	mu  sync.Mutex
	dir string
}

var _ store.Store = (*Store)(nil)

// New returns a file store rooted at dir, creating it if needed.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, apperr.Wrap(apperr.ErrStorage, err)
	}
	return &Store{dir: dir}, nil
}

// defaultProjects is the placeholder catalog written on first access
// to an empty store. One-time seed data, not a permanent default.
func defaultProjects() []models.Project {
	return []models.Project{
		{
			ID:    1,
			Title: "Project Title 01",
			Desc:  "A brief description of the project, including the problem solved and the key features implemented.",
			Tech:  []string{"React", "Node.js", "WebGL"},
			Links: models.LinkMap{{Kind: "github", URL: "#"}, {Kind: "demo", URL: "#"}},
		},
		{
			ID:    2,
			Title: "Project Title 02",
			Desc:  "Description for the second project. Highlight unique challenges or specific technologies you mastered.",
			Tech:  []string{"Vue.js", "Three.js", "Firebase"},
			Links: models.LinkMap{{Kind: "github", URL: "#"}, {Kind: "demo", URL: "#"}},
		},
		{
			ID:    3,
			Title: "Project Title 03",
			Desc:  "A creative coding experiment or a full-stack application. Demonstrates versatility and attention to detail.",
			Tech:  []string{"Vanilla JS", "GSAP", "CSS Grid"},
			Links: models.LinkMap{{Kind: "github", URL: "#"}, {Kind: "demo", URL: "#"}},
		},
		{
			ID:    4,
			Title: "Project Title 04",
			Desc:  "Interactive dashboard or data visualization tool. Shows ability to handle complex data and UI states.",
			Tech:  []string{"D3.js", "TypeScript", "Next.js"},
			Links: models.LinkMap{{Kind: "github", URL: "#"}, {Kind: "demo", URL: "#"}},
		},
	}
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name)
}

// loadProjects reads the catalog. A missing or zero-byte file gets the
// default content written once; a catalog deliberately emptied down to
// [] stays empty. Caller holds s.mu.
func (s *Store) loadProjects() ([]models.Project, error) {
	raw, err := os.ReadFile(s.path(projectsFile))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, apperr.Wrap(apperr.ErrStorage, err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		seed := defaultProjects()
		if err := s.saveProjects(seed); err != nil {
			return nil, err
		}
		return seed, nil
	}

	var projects []models.Project
	if err := json.Unmarshal(raw, &projects); err != nil {
		return nil, apperr.Wrap(apperr.ErrStorage, err)
	}
	return projects, nil
}

// saveProjects rewrites the whole catalog document. Caller holds s.mu.
func (s *Store) saveProjects(projects []models.Project) error {
	raw, err := json.MarshalIndent(projects, "", "  ")
	if err != nil {
		return apperr.Wrap(apperr.ErrStorage, err)
	}
	if err := os.WriteFile(s.path(projectsFile), raw, 0o644); err != nil {
		return apperr.Wrap(apperr.ErrStorage, err)
	}
	return nil
}

func (s *Store) ListProjects() ([]models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadProjects()
}

func (s *Store) CreateProject(p *models.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	projects, err := s.loadProjects()
	if err != nil {
		return err
	}
	maxID := 0
	for _, existing := range projects {
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}
	p.ID = maxID + 1
	projects = append(projects, *p)
	return s.saveProjects(projects)
}

func (s *Store) UpdateProject(id int, p *models.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	projects, err := s.loadProjects()
	if err != nil {
		return err
	}
	for i, existing := range projects {
		if existing.ID == id {
			p.ID = id
			projects[i] = *p
			return s.saveProjects(projects)
		}
	}
	return apperr.Wrapf(apperr.ErrNotFound, "project %d", id)
}

func (s *Store) DeleteProject(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	projects, err := s.loadProjects()
	if err != nil {
		return err
	}
	kept := projects[:0]
	for _, existing := range projects {
		if existing.ID != id {
			kept = append(kept, existing)
		}
	}
	if len(kept) == len(projects) {
		return apperr.Wrapf(apperr.ErrNotFound, "project %d", id)
	}
	return s.saveProjects(kept)
}

// resumeDoc mirrors the original resume.json layout: {"data": "..."}.
type resumeDoc struct {
	Data string `json:"data"`
}

// loadConfigMap reads the generic config document. Caller holds s.mu.
func (s *Store) loadConfigMap() (map[string]string, error) {
	raw, err := os.ReadFile(s.path(configFile))
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrStorage, err)
	}
	cfg := map[string]string{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &cfg); err != nil {
			return nil, apperr.Wrap(apperr.ErrStorage, err)
		}
	}
	return cfg, nil
}

func (s *Store) saveConfigMap(cfg map[string]string) error {
	raw, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return apperr.Wrap(apperr.ErrStorage, err)
	}
	if err := os.WriteFile(s.path(configFile), raw, 0o644); err != nil {
		return apperr.Wrap(apperr.ErrStorage, err)
	}
	return nil
}

func (s *Store) GetConfig(key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// the resume keeps its historical dedicated file
	if key == ResumeKey {
		raw, err := os.ReadFile(s.path(resumeFile))
		if errors.Is(err, fs.ErrNotExist) {
			return "", apperr.Wrapf(apperr.ErrNotFound, "config %q", key)
		}
		if err != nil {
			return "", apperr.Wrap(apperr.ErrStorage, err)
		}
		var doc resumeDoc
		if err := json.Unmarshal(raw, &doc); err != nil {
			return "", apperr.Wrap(apperr.ErrStorage, err)
		}
		if doc.Data == "" {
			return "", apperr.Wrapf(apperr.ErrNotFound, "config %q", key)
		}
		return doc.Data, nil
	}

	cfg, err := s.loadConfigMap()
	if err != nil {
		return "", err
	}
	value, ok := cfg[key]
	if !ok {
		return "", apperr.Wrapf(apperr.ErrNotFound, "config %q", key)
	}
	return value, nil
}

func (s *Store) SetConfig(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if key == ResumeKey {
		raw, err := json.MarshalIndent(resumeDoc{Data: value}, "", "  ")
		if err != nil {
			return apperr.Wrap(apperr.ErrStorage, err)
		}
		if err := os.WriteFile(s.path(resumeFile), raw, 0o644); err != nil {
			return apperr.Wrap(apperr.ErrStorage, err)
		}
		return nil
	}

	cfg, err := s.loadConfigMap()
	if err != nil {
		return err
	}
	cfg[key] = value
	return s.saveConfigMap(cfg)
}

func (s *Store) ListConfig() ([]models.SiteConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.SiteConfig
	raw, err := os.ReadFile(s.path(resumeFile))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, apperr.Wrap(apperr.ErrStorage, err)
	}
	if len(raw) > 0 {
		var doc resumeDoc
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, apperr.Wrap(apperr.ErrStorage, err)
		}
		if doc.Data != "" {
			out = append(out, models.SiteConfig{Key: ResumeKey, Value: doc.Data})
		}
	}

	cfg, err := s.loadConfigMap()
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(cfg))
	for k := range cfg {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		out = append(out, models.SiteConfig{Key: k, Value: cfg[k]})
	}
	return out, nil
}

func (s *Store) ImportProjects(projects []models.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveProjects(projects)
}

func (s *Store) Close() error { return nil }
