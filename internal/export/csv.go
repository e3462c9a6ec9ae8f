// Package export serializes contact listings to CSV. It is a pure
// transformation over listing output; no store state is touched.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"leadvault/internal/models"
)

var header = []string{"Name", "Email", "Phone", "Company", "Position", "Address", "Website", "Notes", "Submitted At"}

// WriteCSV writes the records as CSV: a header row followed by one row per
// record in the given order. When includeOwner is set (the admin export), a
// trailing User ID column is added.
func WriteCSV(w io.Writer, records []models.Contact, includeOwner bool) error {
	cw := csv.NewWriter(w)

	head := header
	if includeOwner {
		head = append(append([]string{}, header...), "User ID")
	}
	if err := cw.Write(head); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, rec := range records {
		row := []string{
			rec.Name,
			rec.Email,
			rec.Phone,
			rec.Company,
			rec.Position,
			rec.Address,
			rec.Website,
			rec.Notes,
			rec.SubmittedAt.Format(time.RFC3339),
		}
		if includeOwner {
			row = append(row, rec.OwnerID)
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
