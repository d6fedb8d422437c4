// Package model defines the documents held in the record store.
package model

import (
	"fmt"
	"time"
)

// TimeLayout is the wire format for every timestamp in the API:
// ISO-8601 UTC with millisecond precision.
const TimeLayout = "2006-01-02T15:04:05.000Z"

func Now() string {
	return time.Now().UTC().Format(TimeLayout)
}

// NewCaseID generates a human-readable case identifier. Assigned exactly
// once at patient creation, never regenerated.
func NewCaseID() string {
	return fmt.Sprintf("CASE-%d", time.Now().UnixMilli())
}
