package ident_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flightops/airdesk/pkg/ident"
)

func TestNew(t *testing.T) {
	id := ident.New(ident.FlightPrefix)

	assert.True(t, strings.HasPrefix(id, "FL_"))

	parts := strings.Split(id, "_")
	require.Len(t, parts, 3)

	_, err := strconv.ParseInt(parts[1], 10, 64)
	assert.NoError(t, err, "middle segment should be a millisecond timestamp")
	assert.Len(t, parts[2], 9)
}

func TestNewBookingPrefix(t *testing.T) {
	id := ident.New(ident.BookingPrefix)
	assert.True(t, strings.HasPrefix(id, "BK_"))
}

func TestNewIsUnique(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		id := ident.New(ident.FlightPrefix)
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
}
