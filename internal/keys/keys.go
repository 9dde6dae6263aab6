package keys

import (
	"strings"

	"github.com/google/uuid"
)

// MaxSaveIDLen bounds the stored key length.
const MaxSaveIDLen = 64

const saveIDPrefix = "sid_"

// SaveID produces the canonical storage key for a client-supplied save id.
// Behavior: trims, keeps only ASCII letters, digits, '_' and '-', and cuts
// the result to MaxSaveIDLen. An id with nothing left is returned empty.
func SaveID(raw string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(raw) {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
			b.WriteRune(r)
		}
		if b.Len() == MaxSaveIDLen {
			break
		}
	}
	return b.String()
}

// NewSaveID returns a fresh save id for a client that has none.
func NewSaveID() string {
	return saveIDPrefix + strings.ReplaceAll(uuid.NewString(), "-", "")
}
