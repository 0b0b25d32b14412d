package record

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// Fingerprint returns a short hex digest of a binary payload, or "" for an
// empty one. Used to identify photo and drawing blobs without printing them.
func Fingerprint(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:8])
}
