package entity

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVisit_Overlaps(t *testing.T) {
	base := time.Date(2023, time.October, 10, 10, 30, 0, 0, time.UTC)
	existing := &Visit{StartDateTime: base, EndDateTime: base.Add(time.Hour)}

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  bool
	}{
		{name: "partial overlap at start", start: base.Add(-30 * time.Minute), end: base.Add(30 * time.Minute), want: true},
		{name: "contained", start: base.Add(10 * time.Minute), end: base.Add(20 * time.Minute), want: true},
		{name: "containing", start: base.Add(-time.Hour), end: base.Add(2 * time.Hour), want: true},
		{name: "identical", start: base, end: base.Add(time.Hour), want: true},
		{name: "ends exactly at start", start: base.Add(-time.Hour), end: base, want: false},
		{name: "starts exactly at end", start: base.Add(time.Hour), end: base.Add(2 * time.Hour), want: false},
		{name: "well before", start: base.Add(-3 * time.Hour), end: base.Add(-2 * time.Hour), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, existing.Overlaps(tt.start, tt.end))
			assert.Equal(t, tt.want, evalOverlapCondition(t, existing, tt.end, tt.start))
		})
	}
}

// evalOverlapCondition evaluates VisitOverlapCondition for one row with the
// given bind values.
func evalOverlapCondition(t *testing.T, row *Visit, binds ...time.Time) bool {
	t.Helper()
	columns := map[string]time.Time{
		"start_date_time": row.StartDateTime,
		"end_date_time":   row.EndDateTime,
	}

	terms := strings.Split(VisitOverlapCondition, " AND ")
	require.Len(t, terms, len(binds))

	result := true
	for i, term := range terms {
		parts := strings.Fields(term)
		require.Len(t, parts, 3)
		require.Equal(t, "?", parts[2])

		col, ok := columns[parts[0]]
		require.True(t, ok, "unknown column %s", parts[0])

		switch parts[1] {
		case "<":
			result = result && col.Before(binds[i])
		case ">":
			result = result && col.After(binds[i])
		default:
			t.Fatalf("unexpected operator %s", parts[1])
		}
	}
	return result
}

func TestVisit_IsCompletedAt(t *testing.T) {
	now := time.Date(2023, time.October, 10, 12, 0, 0, 0, time.UTC)
	loc, err := time.LoadLocation("America/New_York")
	assert.NoError(t, err)

	past := &Visit{EndDateTime: now.Add(-time.Second)}
	future := &Visit{EndDateTime: now.Add(time.Second)}
	exact := &Visit{EndDateTime: now}

	assert.True(t, past.IsCompletedAt(now, loc))
	assert.True(t, past.IsCompletedAt(now, time.UTC))
	assert.False(t, future.IsCompletedAt(now, loc))
	assert.False(t, exact.IsCompletedAt(now, loc))
}

func TestPatientFilter_Offset(t *testing.T) {
	assert.Equal(t, 0, PatientFilter{Page: 0, Size: 10}.Offset())
	assert.Equal(t, 30, PatientFilter{Page: 3, Size: 10}.Offset())
}
