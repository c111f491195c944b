// Package tracer provides request and span identifiers for response
// envelopes and audit fabrication.
package tracer

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewTraceID generates a trace ID like "t-3f9c1a82b4d0".
func NewTraceID() string {
	return prefixedID("t", 12)
}

// NewSpanID generates a span ID like "s-7b21e4c9".
func NewSpanID() string {
	return prefixedID("s", 8)
}

// UTCNowISO returns the current UTC time in ISO format with Z suffix.
func UTCNowISO() string {
	return time.Now().UTC().Format("2006-01-02T15:04:05.000Z")
}

func prefixedID(prefix string, hexLen int) string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return prefix + "-" + raw[:hexLen]
}
