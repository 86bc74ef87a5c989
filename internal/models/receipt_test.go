package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReceipt_PickupTime(t *testing.T) {
	r := &Receipt{PickupDate: "2025-04-18T15:30:00.000Z"}
	ts, err := r.PickupTime()
	require.NoError(t, err)
	assert.Equal(t, "Fri, Apr 18, 2025 at 3:30 PM", FormatPickupDate(ts, time.UTC))

	r.PickupDate = "next tuesday"
	_, err = r.PickupTime()
	require.Error(t, err)
}

func TestFormatPickupDate_Location(t *testing.T) {
	loc := time.FixedZone("EDT", -4*60*60)
	ts := time.Date(2025, time.April, 18, 19, 30, 0, 0, time.UTC)
	assert.Equal(t, "Fri, Apr 18, 2025 at 3:30 PM", FormatPickupDate(ts, loc))
}
