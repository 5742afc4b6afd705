// Package ident generates the opaque identifiers the API hands out:
// <kind prefix>_<unix milliseconds>_<random suffix>. Unique in practice,
// not cryptographically so.
package ident

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	FlightPrefix  = "FL"
	BookingPrefix = "BK"
)

func New(prefix string) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("%s_%d_%s", prefix, time.Now().UnixMilli(), suffix)
}
