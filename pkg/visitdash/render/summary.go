package render

import (
	"github.com/dustin/go-humanize"
	"github.com/ukaji3/visitdash/pkg/visitdash/models"
	"github.com/ukaji3/visitdash/pkg/visitdash/query"
)

// NotAvailable is shown for a last-visit counter with no date.
const NotAvailable = "N/A"

// Summary holds the four headline counters.
type Summary struct {
	Total       int
	Salespeople int
	Customers   int
	// LastVisit is the latest date formatted day/month/year, or NotAvailable.
	LastVisit string
}

// Counter is one labelled headline number.
type Counter struct {
	Label string
	Value string
}

// Summarize computes the counters over t. Absent columns count as zero
// distinct values.
func Summarize(t *models.Table, schema Schema) Summary {
	s := Summary{
		Total:       t.Len(),
		Salespeople: query.CountDistinct(t, schema.Salesperson),
		Customers:   query.CountDistinct(t, schema.Customer),
		LastVisit:   NotAvailable,
	}
	if latest, ok := query.MaxTime(t, schema.Date); ok {
		s.LastVisit = latest.Format("02/01/2006")
	}
	return s
}

// Counters returns the summary as display counters.
func (s Summary) Counters() []Counter {
	return []Counter{
		{Label: "Total visits", Value: humanize.Comma(int64(s.Total))},
		{Label: "Salespeople", Value: humanize.Comma(int64(s.Salespeople))},
		{Label: "Customers", Value: humanize.Comma(int64(s.Customers))},
		{Label: "Last visit", Value: s.LastVisit},
	}
}
