package game

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// SaveSlot stores one save document keyed by the client-held save id. The
// document is the JSON encoding of State and is never queried by field.
type SaveSlot struct {
	ID        string `gorm:"primaryKey;size:64"`
	Version   int
	Document  []byte `gorm:"type:blob"`
	CreatedAt int64  `gorm:"autoCreateTime"`
	UpdatedAt int64  `gorm:"autoUpdateTime;index"`
}

// TableName overrides the default GORM table name so the persisted table is
// `save_slots`.
func (SaveSlot) TableName() string { return "save_slots" }

var ErrEmptySaveID = errors.New("save id is empty")

// BeforeSave rejects rows without a key.
func (s *SaveSlot) BeforeSave(tx *gorm.DB) error {
	if strings.TrimSpace(s.ID) == "" {
		return ErrEmptySaveID
	}
	return nil
}

// RunResult is an append-only history row written when a run ends.
type RunResult struct {
	gorm.Model
	SaveID     string `json:"save_id" gorm:"index;size:64"`
	RunID      string `json:"run_id" gorm:"size:32"`
	Result     string `json:"result" gorm:"size:16"`
	Floor      int    `json:"floor"`
	Act        int    `json:"act"`
	Loop       int    `json:"loop"`
	Difficulty int    `json:"difficulty"`
	DeckSize   int    `json:"deck_size"`
	Gold       int    `json:"gold"`
}

// Keep history separate from save documents.
func (RunResult) TableName() string { return "run_history" }

// BeforeSave stores results in a canonical lowercase form.
func (r *RunResult) BeforeSave(tx *gorm.DB) error {
	r.Result = strings.ToLower(strings.TrimSpace(r.Result))
	return nil
}

// NewRunResult builds a history row from a run summary.
func NewRunResult(saveID string, s RunSummary) *RunResult {
	return &RunResult{
		SaveID:     saveID,
		RunID:      s.RunID,
		Result:     s.Result,
		Floor:      s.Floor,
		Act:        s.Act,
		Loop:       s.Loop,
		Difficulty: s.Difficulty,
		DeckSize:   s.DeckSize,
		Gold:       s.Gold,
	}
}
