package repo

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/AtharvaZ/Portfolio-website/internal/apperr"
	"github.com/AtharvaZ/Portfolio-website/internal/models"
	"github.com/AtharvaZ/Portfolio-website/internal/store"
	"github.com/AtharvaZ/Portfolio-website/internal/store/gormstore"
	"github.com/AtharvaZ/Portfolio-website/internal/store/jsonfile"
)

// the repository must behave identically over every backend;
// each test runs against both the file store and the SQLite store.
func backends(t *testing.T) map[string]store.Store {
	t.Helper()

	fileStore, err := jsonfile.New(t.TempDir())
	if err != nil {
		t.Fatalf("jsonfile.New() error = %v", err)
	}
	sqliteStore, err := gormstore.NewSQLite(filepath.Join(t.TempDir(), "test.db"), false)
	if err != nil {
		t.Fatalf("gormstore.NewSQLite() error = %v", err)
	}
	t.Cleanup(func() {
		_ = fileStore.Close()
		_ = sqliteStore.Close()
	})

	return map[string]store.Store{
		"file":   fileStore,
		"sqlite": sqliteStore,
	}
}

func TestCreate_RejectsEmptyTitle(t *testing.T) {
	for name, st := range backends(t) {
		t.Run(name, func(t *testing.T) {
			r := NewProjects(st)

			for _, title := range []string{"", "   ", "\t\n"} {
				_, err := r.Create(models.Project{Title: title})
				if !errors.Is(err, apperr.ErrValidation) {
					t.Errorf("Create(title=%q) error = %v, want ErrValidation", title, err)
				}
			}
		})
	}
}

func TestCreate_IgnoresCallerID(t *testing.T) {
	for name, st := range backends(t) {
		t.Run(name, func(t *testing.T) {
			r := NewProjects(st)
			if err := st.ImportProjects([]models.Project{{ID: 1, Title: "a"}, {ID: 2, Title: "b"}, {ID: 5, Title: "c"}}); err != nil {
				t.Fatalf("ImportProjects() error = %v", err)
			}

			created, err := r.Create(models.Project{ID: 999, Title: "X"})
			if err != nil {
				t.Fatalf("Create() error = %v", err)
			}
			if created.ID != 6 {
				t.Errorf("Create() id = %d, want 6 (max+1, caller id ignored)", created.ID)
			}
		})
	}
}

func TestList_SortedAscending(t *testing.T) {
	for name, st := range backends(t) {
		t.Run(name, func(t *testing.T) {
			r := NewProjects(st)
			// import out of order; listing must come back ascending
			err := st.ImportProjects([]models.Project{
				{ID: 9, Title: "nine"}, {ID: 2, Title: "two"}, {ID: 5, Title: "five"},
			})
			if err != nil {
				t.Fatalf("ImportProjects() error = %v", err)
			}

			projects, err := r.List()
			if err != nil {
				t.Fatalf("List() error = %v", err)
			}
			want := []int{2, 5, 9}
			if len(projects) != len(want) {
				t.Fatalf("List() returned %d projects, want %d", len(projects), len(want))
			}
			for i, id := range want {
				if projects[i].ID != id {
					t.Errorf("projects[%d].ID = %d, want %d", i, projects[i].ID, id)
				}
			}
		})
	}
}

func TestUpdate_KeepsIDImmutable(t *testing.T) {
	for name, st := range backends(t) {
		t.Run(name, func(t *testing.T) {
			r := NewProjects(st)
			created, err := r.Create(models.Project{Title: "before"})
			if err != nil {
				t.Fatalf("Create() error = %v", err)
			}

			updated, err := r.Update(created.ID, models.Project{ID: 777, Title: "after"})
			if err != nil {
				t.Fatalf("Update() error = %v", err)
			}
			if updated.ID != created.ID {
				t.Errorf("Update() id = %d, want %d (immutable)", updated.ID, created.ID)
			}
			if updated.Title != "after" {
				t.Errorf("Update() title = %q, want %q", updated.Title, "after")
			}
		})
	}
}

func TestUpdateDelete_NotFoundAcrossBackends(t *testing.T) {
	for name, st := range backends(t) {
		t.Run(name, func(t *testing.T) {
			r := NewProjects(st)

			if _, err := r.Update(12345, models.Project{Title: "x"}); !errors.Is(err, apperr.ErrNotFound) {
				t.Errorf("Update(12345) error = %v, want ErrNotFound", err)
			}
			if err := r.Delete(12345); !errors.Is(err, apperr.ErrNotFound) {
				t.Errorf("Delete(12345) error = %v, want ErrNotFound", err)
			}
		})
	}
}

func TestCreate_NormalizesNilCollections(t *testing.T) {
	for name, st := range backends(t) {
		t.Run(name, func(t *testing.T) {
			r := NewProjects(st)
			created, err := r.Create(models.Project{Title: "bare"})
			if err != nil {
				t.Fatalf("Create() error = %v", err)
			}
			if created.Tech == nil || created.Links == nil {
				t.Errorf("Create() returned nil tech/links, want empty collections")
			}
		})
	}
}
