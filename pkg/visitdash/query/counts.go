package query

import (
	"sort"
	"time"

	"github.com/ukaji3/visitdash/pkg/visitdash/models"
)

// ValueCounts counts rows per distinct non-missing text of column, largest
// count first. Ties keep first-appearance order. An absent column yields nil.
func ValueCounts(t *models.Table, column string) []models.Count {
	idx := t.ColumnIndex(column)
	if idx < 0 {
		return nil
	}

	pos := make(map[string]int)
	var counts []models.Count
	for i := 0; i < t.Len(); i++ {
		v := t.Row(i)[idx]
		if v.IsMissing() {
			continue
		}
		label := v.Text()
		if p, ok := pos[label]; ok {
			counts[p].N++
			continue
		}
		pos[label] = len(counts)
		counts = append(counts, models.Count{Label: label, N: 1})
	}

	sort.SliceStable(counts, func(i, j int) bool { return counts[i].N > counts[j].N })
	return counts
}

// MaxTime returns the latest time in column, ignoring missing and non-time
// values. It reports false when there is none.
func MaxTime(t *models.Table, column string) (time.Time, bool) {
	idx := t.ColumnIndex(column)
	if idx < 0 {
		return time.Time{}, false
	}
	var latest time.Time
	found := false
	for i := 0; i < t.Len(); i++ {
		ts, ok := t.Row(i)[idx].Time()
		if !ok {
			continue
		}
		if !found || ts.After(latest) {
			latest = ts
			found = true
		}
	}
	return latest, found
}
