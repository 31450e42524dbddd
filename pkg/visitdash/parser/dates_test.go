package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/visitdash/pkg/visitdash/models"
)

func TestParseDate(t *testing.T) {
	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name     string
		input    models.Value
		expected time.Time
		missing  bool
	}{
		{"iso date", str("2024-06-01"), day(2024, time.June, 1), false},
		{"iso datetime", str("2024-06-01 10:30:00"), time.Date(2024, time.June, 1, 10, 30, 0, 0, time.UTC), false},
		{"day first", str("03/02/2024"), day(2024, time.February, 3), false},
		{"short day first", str("3/2/2024"), day(2024, time.February, 3), false},
		{"excel serial", models.Int(45292), day(2024, time.January, 1), false},
		{"time passes through", models.Time(day(2020, time.May, 5)), day(2020, time.May, 5), false},
		{"garbage", str("ayer"), time.Time{}, true},
		{"missing", models.Missing(), time.Time{}, true},
		{"negative serial", models.Int(-3), time.Time{}, true},
		{"bool", models.Bool(true), time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseDate(tt.input)
			if tt.missing {
				assert.True(t, got.IsMissing())
				return
			}
			ts, ok := got.Time()
			require.True(t, ok)
			assert.True(t, tt.expected.Equal(ts), "got %v", ts)
		})
	}
}

func TestNormalizeDates(t *testing.T) {
	table := models.NewTable(
		[]string{"cliente", "fecha", "fecha_visita"},
		[]models.Row{
			{str("Bar Pepe"), str("2024-01-15"), str("no")},
			{str("Kiosko"), str("n/a"), models.Int(45292)},
		},
	)

	out := NormalizeDates(table, []string{"fecha", "fecha_visita", "fecha_creacion"})

	assert.Equal(t, models.KindTime, out.Value(0, "fecha").Kind())
	assert.True(t, out.Value(1, "fecha").IsMissing())
	assert.True(t, out.Value(0, "fecha_visita").IsMissing())
	assert.Equal(t, models.KindTime, out.Value(1, "fecha_visita").Kind())
	assert.False(t, out.HasColumn("fecha_creacion"))

	// the source table is untouched
	assert.Equal(t, models.KindString, table.Value(0, "fecha").Kind())
}
