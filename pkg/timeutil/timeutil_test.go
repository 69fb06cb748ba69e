package timeutil

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLocalDateTime(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    LocalDateTime
		wantErr bool
	}{
		{name: "with seconds", input: "2023-10-10T10:00:30", want: LocalDateTime{Year: 2023, Month: time.October, Day: 10, Hour: 10, Second: 30}},
		{name: "without seconds", input: "2023-10-10T10:00", want: LocalDateTime{Year: 2023, Month: time.October, Day: 10, Hour: 10}},
		{name: "space separator", input: "2023-10-10 11:15", want: LocalDateTime{Year: 2023, Month: time.October, Day: 10, Hour: 11, Minute: 15}},
		{name: "with zone rejected", input: "2023-10-10T10:00:00Z", wantErr: true},
		{name: "garbage", input: "tomorrow", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLocalDateTime(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLocalDateTime_JSON(t *testing.T) {
	var payload struct {
		Start LocalDateTime `json:"start"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"start":"2024-03-10T02:30"}`), &payload))
	assert.Equal(t, "2024-03-10T02:30:00", payload.Start.String())

	out, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"start":"2024-03-10T02:30:00"}`, string(out))

	assert.Error(t, json.Unmarshal([]byte(`{"start":"nope"}`), &payload))
}

func TestToUTC(t *testing.T) {
	local := LocalDateTime{Year: 2023, Month: time.July, Day: 1, Hour: 10}

	utc, err := ToUTC(local, "America/New_York")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, time.July, 1, 14, 0, 0, 0, time.UTC), utc)
	assert.Equal(t, time.UTC, utc.Location())

	winter := LocalDateTime{Year: 2023, Month: time.January, Day: 1, Hour: 10}
	utc, err = ToUTC(winter, "America/New_York")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, time.January, 1, 15, 0, 0, 0, time.UTC), utc)

	_, err = ToUTC(local, "Mars/Olympus")
	assert.Error(t, err)
}

func TestFormatInZone(t *testing.T) {
	instant := time.Date(2023, time.October, 10, 8, 0, 0, 0, time.UTC)

	s, err := FormatInZone(instant, "Europe/Helsinki")
	require.NoError(t, err)
	assert.Equal(t, "2023-10-10T11:00:00", s)

	s, err = FormatInZone(instant, "UTC")
	require.NoError(t, err)
	assert.Equal(t, "2023-10-10T08:00:00", s)
}

func TestLocalDateTime_In_DaylightSavingTransitions(t *testing.T) {
	tests := []struct {
		name     string
		local    LocalDateTime
		timezone string
		wantUTC  time.Time
		wantWall string
	}{
		{
			name:     "spring forward gap west of UTC",
			local:    LocalDateTime{Year: 2024, Month: time.March, Day: 10, Hour: 2, Minute: 30},
			timezone: "America/New_York",
			wantUTC:  time.Date(2024, time.March, 10, 7, 30, 0, 0, time.UTC),
			wantWall: "2024-03-10T03:30:00",
		},
		{
			name:     "spring forward gap east of UTC",
			local:    LocalDateTime{Year: 2024, Month: time.March, Day: 31, Hour: 2, Minute: 30},
			timezone: "Europe/Berlin",
			wantUTC:  time.Date(2024, time.March, 31, 1, 30, 0, 0, time.UTC),
			wantWall: "2024-03-31T03:30:00",
		},
		{
			name:     "just before the gap",
			local:    LocalDateTime{Year: 2024, Month: time.March, Day: 10, Hour: 1, Minute: 59},
			timezone: "America/New_York",
			wantUTC:  time.Date(2024, time.March, 10, 6, 59, 0, 0, time.UTC),
			wantWall: "2024-03-10T01:59:00",
		},
		{
			name:     "fall back overlap keeps the earlier offset",
			local:    LocalDateTime{Year: 2024, Month: time.November, Day: 3, Hour: 1, Minute: 30},
			timezone: "America/New_York",
			wantUTC:  time.Date(2024, time.November, 3, 5, 30, 0, 0, time.UTC),
			wantWall: "2024-11-03T01:30:00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			utc, err := ToUTC(tt.local, tt.timezone)
			require.NoError(t, err)
			assert.True(t, tt.wantUTC.Equal(utc), "got %s", utc)

			wall, err := FormatInZone(utc, tt.timezone)
			require.NoError(t, err)
			assert.Equal(t, tt.wantWall, wall)
		})
	}
}

func TestLocalDateTime_Before(t *testing.T) {
	a := LocalDateTime{Year: 2024, Month: time.March, Day: 10, Hour: 1, Minute: 30}
	b := LocalDateTime{Year: 2024, Month: time.March, Day: 10, Hour: 2, Minute: 30}

	assert.True(t, a.Before(b))
	assert.False(t, b.Before(a))
	assert.False(t, a.Before(a))
}

func TestRoundTripThroughZone(t *testing.T) {
	local := LocalDateTime{Year: 2023, Month: time.March, Day: 26, Hour: 9, Minute: 45}

	utc, err := ToUTC(local, "Europe/Berlin")
	require.NoError(t, err)

	s, err := FormatInZone(utc, "Europe/Berlin")
	require.NoError(t, err)
	assert.Equal(t, local.String(), s)
}
