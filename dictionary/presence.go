package dictionary

import (
	"fmt"
	"strings"
)

//go:generate go tool stringer -type=Presence -trimprefix=Presence -output=presence_string.go

// Presence classifies how a field may appear within a message.
type Presence int

const (
	_ Presence = iota // skip zero value, it is the invalid Presence

	PresenceRequired
	PresenceOptional
	PresenceForbidden
	PresenceIgnored
	PresenceConstant

	// PresenceTotal is the number of Presence values including the invalid zero value.
	PresenceTotal = int(iota)
)

// ParsePresence parses an orchestra presence attribute. An empty string is
// the orchestra default, PresenceOptional.
func ParsePresence(s string) (Presence, error) {
	if s == "" {
		return PresenceOptional, nil
	}

	for p := Presence(1); int(p) < PresenceTotal; p++ {
		if strings.EqualFold(p.String(), s) {
			return p, nil
		}
	}

	return 0, fmt.Errorf("unknown presence %q", s)
}

// IsValid reports whether p is one of the defined presences.
func (p Presence) IsValid() bool {
	return p > 0 && int(p) < PresenceTotal
}
