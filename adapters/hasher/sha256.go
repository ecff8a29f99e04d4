package hasher

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/DUBIX17/Dubix-sophia/domain"
)

// fingerprintBytes keeps log fields short while still telling keys apart.
const fingerprintBytes = 6

// New returns a domain.Hasher producing a truncated SHA‑256 fingerprint,
// used to log which credential served a request without logging the credential.
func New() domain.Hasher { return fingerprint{} }

type fingerprint struct{}

func (fingerprint) Hash(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:fingerprintBytes])
}
