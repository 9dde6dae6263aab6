package service

import (
	"time"

	"github.com/Noty-chan/rogue-prison/internal/constants"
	"github.com/Noty-chan/rogue-prison/internal/logging"
)

// PurgeStaleSaves deletes saves untouched for longer than ttl. A zero ttl
// keeps everything.
func PurgeStaleSaves(repo PurgeRepo, now time.Time, ttl time.Duration) (int64, error) {
	if ttl <= 0 {
		return 0, nil
	}
	cutoff := now.Add(-ttl).Unix()
	n, err := repo.DeleteSavesBefore(cutoff)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		logging.Info("stale saves purged", logging.Fields{constants.LogFieldCount: n, constants.LogFieldCutoff: cutoff})
	}
	return n, nil
}
