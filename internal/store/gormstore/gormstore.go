// Package gormstore implements store.Store over a gorm database. The
// same implementation backs both SQL variants; only the constructors
// differ (embedded SQLite vs a PostgreSQL server).
package gormstore

import (
	"encoding/json"
	"errors"

	"github.com/AtharvaZ/Portfolio-website/internal/apperr"
	"github.com/AtharvaZ/Portfolio-website/internal/models"
	"github.com/AtharvaZ/Portfolio-website/internal/store"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// projectRow is the persisted shape of a project. tech and links are
// JSON text blobs so the column layout stays identical on SQLite and
// Postgres; they are decoded on every read.
type projectRow struct {
	ID    int    `gorm:"primaryKey;autoIncrement"`
	Title string `gorm:"size:255;not null"`
	Desc  string `gorm:"column:desc;type:text"`
	Tech  string `gorm:"type:text"`
	Links string `gorm:"type:text"`
}

func (projectRow) TableName() string { return "projects" }

type configRow struct {
	Key   string `gorm:"primaryKey;size:64"`
	Value string `gorm:"type:text"`
}

func (configRow) TableName() string { return "site_config" }

// Store wraps a gorm connection. Every mutating call runs in a single
// transaction that commits before the call returns; a failed statement
// rolls the whole call back.
type Store struct {
	db *gorm.DB
}

var _ store.Store = (*Store)(nil)

// newStore migrates the schema and wraps db.
func newStore(db *gorm.DB) (*Store, error) {
	if err := db.AutoMigrate(&projectRow{}, &configRow{}); err != nil {
		return nil, apperr.Wrap(apperr.ErrStorage, err)
	}
	return &Store{db: db}, nil
}

func encodeRow(p *models.Project) (projectRow, error) {
	tech, err := json.Marshal(p.Tech)
	if err != nil {
		return projectRow{}, apperr.Wrap(apperr.ErrStorage, err)
	}
	links, err := json.Marshal(p.Links)
	if err != nil {
		return projectRow{}, apperr.Wrap(apperr.ErrStorage, err)
	}
	return projectRow{
		ID:    p.ID,
		Title: p.Title,
		Desc:  p.Desc,
		Tech:  string(tech),
		Links: string(links),
	}, nil
}

func decodeRow(row projectRow) (models.Project, error) {
	p := models.Project{
		ID:    row.ID,
		Title: row.Title,
		Desc:  row.Desc,
		Tech:  []string{},
		Links: models.LinkMap{},
	}
	if row.Tech != "" {
		if err := json.Unmarshal([]byte(row.Tech), &p.Tech); err != nil {
			return p, apperr.Wrapf(apperr.ErrStorage, "project %d tech: %v", row.ID, err)
		}
	}
	if row.Links != "" {
		if err := json.Unmarshal([]byte(row.Links), &p.Links); err != nil {
			return p, apperr.Wrapf(apperr.ErrStorage, "project %d links: %v", row.ID, err)
		}
	}
	return p, nil
}

func (s *Store) ListProjects() ([]models.Project, error) {
	var rows []projectRow
	if err := s.db.Order("id ASC").Find(&rows).Error; err != nil {
		return nil, apperr.Wrap(apperr.ErrStorage, err)
	}
	projects := make([]models.Project, 0, len(rows))
	for _, row := range rows {
		p, err := decodeRow(row)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, nil
}

func (s *Store) CreateProject(p *models.Project) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		// id policy is max+1, not the engine sequence: sequences never
		// step back after a delete, max+1 must.
		var maxID int
		if err := tx.Model(&projectRow{}).
			Select("COALESCE(MAX(id), 0)").
			Scan(&maxID).Error; err != nil {
			return apperr.Wrap(apperr.ErrStorage, err)
		}
		p.ID = maxID + 1
		row, err := encodeRow(p)
		if err != nil {
			return err
		}
		if err := tx.Create(&row).Error; err != nil {
			return apperr.Wrap(apperr.ErrStorage, err)
		}
		return nil
	})
}

func (s *Store) UpdateProject(id int, p *models.Project) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var existing projectRow
		if err := tx.First(&existing, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.Wrapf(apperr.ErrNotFound, "project %d", id)
			}
			return apperr.Wrap(apperr.ErrStorage, err)
		}
		p.ID = id
		row, err := encodeRow(p)
		if err != nil {
			return err
		}
		if err := tx.Save(&row).Error; err != nil {
			return apperr.Wrap(apperr.ErrStorage, err)
		}
		return nil
	})
}

func (s *Store) DeleteProject(id int) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&projectRow{}, id)
		if res.Error != nil {
			return apperr.Wrap(apperr.ErrStorage, res.Error)
		}
		// zero rows affected is the engine's way of saying NotFound
		if res.RowsAffected == 0 {
			return apperr.Wrapf(apperr.ErrNotFound, "project %d", id)
		}
		return nil
	})
}

func (s *Store) GetConfig(key string) (string, error) {
	var row configRow
	err := s.db.Where("key = ?", key).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", apperr.Wrapf(apperr.ErrNotFound, "config %q", key)
	}
	if err != nil {
		return "", apperr.Wrap(apperr.ErrStorage, err)
	}
	return row.Value, nil
}

func (s *Store) SetConfig(key, value string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		row := configRow{Key: key, Value: value}
		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value"}),
		}).Create(&row).Error
		if err != nil {
			return apperr.Wrap(apperr.ErrStorage, err)
		}
		return nil
	})
}

func (s *Store) ListConfig() ([]models.SiteConfig, error) {
	var rows []configRow
	if err := s.db.Order("key ASC").Find(&rows).Error; err != nil {
		return nil, apperr.Wrap(apperr.ErrStorage, err)
	}
	out := make([]models.SiteConfig, 0, len(rows))
	for _, row := range rows {
		out = append(out, models.SiteConfig{Key: row.Key, Value: row.Value})
	}
	return out, nil
}

// ImportProjects bulk-loads the catalog with explicit ids, replacing
// whatever is there. Used by the migration tool.
func (s *Store) ImportProjects(projects []models.Project) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&projectRow{}).Error; err != nil {
			return apperr.Wrap(apperr.ErrStorage, err)
		}
		for i := range projects {
			row, err := encodeRow(&projects[i])
			if err != nil {
				return err
			}
			if err := tx.Create(&row).Error; err != nil {
				return apperr.Wrap(apperr.ErrStorage, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	return s.fixSequence()
}

// fixSequence realigns the Postgres id sequence after explicit-id
// inserts, so a later engine-assigned insert does not collide. SQLite
// keeps its rowid counter consistent on its own.
func (s *Store) fixSequence() error {
	if s.db.Dialector.Name() != "postgres" {
		return nil
	}
	err := s.db.Exec(
		"SELECT setval(pg_get_serial_sequence('projects','id'), COALESCE((SELECT MAX(id) FROM projects), 1))",
	).Error
	if err != nil {
		return apperr.Wrap(apperr.ErrStorage, err)
	}
	return nil
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return apperr.Wrap(apperr.ErrStorage, err)
	}
	if err := sqlDB.Close(); err != nil {
		return apperr.Wrap(apperr.ErrStorage, err)
	}
	return nil
}
