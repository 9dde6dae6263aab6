package storage

import (
	"errors"

	"github.com/Noty-chan/rogue-prison/internal/game"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

type sqliteRepository struct {
	db *gorm.DB
}

func NewSQLiteRepository(db *gorm.DB) Repository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) GetSave(id string) (*game.SaveSlot, error) {
	var s game.SaveSlot
	if err := r.db.Where("id = ?", id).First(&s).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSaveNotFound
		}
		return nil, err
	}
	return &s, nil
}

// PutSave upserts by primary key so a first write and every later one take
// the same path.
func (r *sqliteRepository) PutSave(s *game.SaveSlot) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"version", "document", "updated_at"}),
	}).Create(s).Error
}

func (r *sqliteRepository) DeleteSavesBefore(cutoff int64) (int64, error) {
	res := r.db.Where("updated_at < ?", cutoff).Delete(&game.SaveSlot{})
	return res.RowsAffected, res.Error
}

func (r *sqliteRepository) RecordRunResult(rr *game.RunResult) error {
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(rr).Error
}

// ListRunResults clamps the limit to 1..100, defaulting to 20.
func (r *sqliteRepository) ListRunResults(saveID string, limit int) ([]game.RunResult, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}
	var rows []game.RunResult
	if err := r.db.Model(&game.RunResult{}).
		Where("save_id = ?", saveID).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
