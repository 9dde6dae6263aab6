package storage

import (
	"github.com/Noty-chan/rogue-prison/internal/game"
	"github.com/Noty-chan/rogue-prison/internal/logging"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func OpenAndMigrate(dataSourceName string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dataSourceName), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&game.SaveSlot{}, &game.RunResult{}); err != nil {
		return nil, err
	}

	// One history row per run outcome. Endless loops finish the same run
	// more than once, so the loop is part of the key.
	if execErr := db.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_run_history_outcome ON run_history(save_id, run_id, result, loop);").Error; execErr != nil {
		return nil, execErr
	}
	logging.Info("database ready", logging.Fields{"dsn": dataSourceName})
	return db, nil
}
