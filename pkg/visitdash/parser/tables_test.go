package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/visitdash/pkg/visitdash/models"
)

func str(s string) models.Value { return models.String(s) }

func TestBuildTable(t *testing.T) {
	t.Run("uses first non-empty row as header", func(t *testing.T) {
		cells := [][]models.Value{
			{},
			{models.Missing(), str("comercial"), str("cliente")},
			{models.Missing(), str("Ana"), str("Bar Pepe")},
			{models.Missing(), models.Missing(), models.Missing()},
			{models.Missing(), str("Luis")},
		}

		table := BuildTable(cells)
		assert.Equal(t, []string{"comercial", "cliente"}, table.Columns())
		require.Equal(t, 2, table.Len())
		assert.Equal(t, "Ana", table.Value(0, "comercial").Text())
		assert.True(t, table.Value(1, "cliente").IsMissing())
	})

	t.Run("names blank and duplicate headers", func(t *testing.T) {
		cells := [][]models.Value{
			{str("a"), models.Missing(), str("a"), str("a"), str("b")},
			{str("1"), str("2"), str("3"), str("4"), str("5")},
		}

		table := BuildTable(cells)
		assert.Equal(t, []string{"a", "Unnamed: 1", "a.1", "a.2", "b"}, table.Columns())
		assert.Equal(t, "3", table.Value(0, "a.1").Text())
	})

	t.Run("numbers blank headers by sheet column", func(t *testing.T) {
		cells := [][]models.Value{
			{models.Missing(), models.Missing(), str("comercial"), models.Missing(), str("estado")},
			{models.Missing(), models.Missing(), str("Ana"), str("x"), str("completada")},
		}

		table := BuildTable(cells)
		assert.Equal(t, []string{"comercial", "Unnamed: 3", "estado"}, table.Columns())
		assert.Equal(t, "x", table.Value(0, "Unnamed: 3").Text())
	})

	t.Run("empty sheet", func(t *testing.T) {
		table := BuildTable(nil)
		assert.Empty(t, table.Columns())
		assert.Equal(t, 0, table.Len())
	})
}

func TestParseRange(t *testing.T) {
	tests := []struct {
		ref      string
		expected models.CellRange
	}{
		{"A1:H500", models.CellRange{R1: 1, C1: 1, R2: 500, C2: 8}},
		{"$B$2:$C$10", models.CellRange{R1: 2, C1: 2, R2: 10, C2: 3}},
		{"'Hoja 1'!A1:B2", models.CellRange{R1: 1, C1: 1, R2: 2, C2: 2}},
		{"C5:A1", models.CellRange{R1: 1, C1: 1, R2: 5, C2: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			got, err := ParseRange(tt.ref)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, *got)
		})
	}

	for _, bad := range []string{"", "A1", "A1:ZZZZZ", "foo:bar"} {
		_, err := ParseRange(bad)
		assert.Error(t, err, bad)
	}
}
