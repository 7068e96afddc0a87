package pkg

import (
	"strings"

	"github.com/google/uuid"
)

// deviceNamespace scopes identities derived from device ids.
var deviceNamespace = uuid.MustParse("6f1c3a52-0d8e-4c4b-9f6a-3b8e2d7c5a10")

// GenerateMatchID - generates a match id in the form <uuid>.<node>.
func GenerateMatchID(node string) string {
	return uuid.NewString() + "." + node
}

// SplitMatchID returns the uuid and node parts of a match id, or false if the id is malformed.
func SplitMatchID(matchID string) (uuid.UUID, string, bool) {
	raw, node, ok := strings.Cut(matchID, ".")
	if !ok || node == "" {
		return uuid.Nil, "", false
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, "", false
	}

	return id, node, true
}

// IdentityFromDevice - derives a stable player identity from a device id.
func IdentityFromDevice(deviceID string) string {
	return uuid.NewSHA1(deviceNamespace, []byte(deviceID)).String()
}

// GenerateNewSessionID - generates a new unique session id.
func GenerateNewSessionID() string {
	return uuid.NewString()
}
