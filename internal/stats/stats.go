// Package stats computes derived views over snapshots of contact records and
// accounts. Every function is pure: it holds no state and never mutates its
// inputs.
package stats

import (
	"math"
	"strings"
	"time"

	"leadvault/internal/models"
)

// AllOwners is the sentinel owner filter value that bypasses filtering.
const AllOwners = "all"

// MonthToDateCount counts records whose submission timestamp falls within
// [startOfMonth(now), now] inclusive, where the month boundary is computed
// in now's location.
func MonthToDateCount(records []models.Contact, now time.Time) int {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	n := 0
	for _, rec := range records {
		if !rec.SubmittedAt.Before(start) && !rec.SubmittedAt.After(now) {
			n++
		}
	}
	return n
}

// DistinctCompanyCount returns the number of distinct raw company values.
// No trimming or case folding is applied: "A" and "a" are two companies,
// and the empty string counts as one distinct value if present.
func DistinctCompanyCount(records []models.Contact) int {
	companies := make(map[string]struct{}, len(records))
	for _, rec := range records {
		companies[rec.Company] = struct{}{}
	}
	return len(companies)
}

// DistinctOwnerCount returns the number of distinct owner ids appearing in
// the records.
func DistinctOwnerCount(records []models.Contact) int {
	owners := make(map[string]struct{}, len(records))
	for _, rec := range records {
		owners[rec.OwnerID] = struct{}{}
	}
	return len(owners)
}

// PerOwnerCount returns the number of records owned by the given account.
func PerOwnerCount(records []models.Contact, ownerID string) int {
	n := 0
	for _, rec := range records {
		if rec.OwnerID == ownerID {
			n++
		}
	}
	return n
}

// Search returns the records whose name, email, company, or phone contains
// term as a case-insensitive substring, preserving order. An empty term
// returns the input unchanged.
func Search(records []models.Contact, term string) []models.Contact {
	if term == "" {
		return records
	}
	needle := strings.ToLower(term)
	var matched []models.Contact
	for _, rec := range records {
		if strings.Contains(strings.ToLower(rec.Name), needle) ||
			strings.Contains(strings.ToLower(rec.Email), needle) ||
			strings.Contains(strings.ToLower(rec.Company), needle) ||
			strings.Contains(strings.ToLower(rec.Phone), needle) {
			matched = append(matched, rec)
		}
	}
	return matched
}

// FilterByOwner returns the records owned by the given account, preserving
// order. The AllOwners sentinel returns the input unchanged.
func FilterByOwner(records []models.Contact, owner string) []models.Contact {
	if owner == AllOwners {
		return records
	}
	var matched []models.Contact
	for _, rec := range records {
		if rec.OwnerID == owner {
			matched = append(matched, rec)
		}
	}
	return matched
}

// Summary aggregates the tenant-wide dashboard numbers.
type Summary struct {
	// TotalSubmissions is the count of all records.
	TotalSubmissions int `json:"totalSubmissions"`
	// MonthToDate is the count of records submitted this calendar month.
	MonthToDate int `json:"thisMonthSubmissions"`
	// DistinctCompanies is the count of distinct raw company values.
	DistinctCompanies int `json:"uniqueCompanies"`
	// RegisteredUsers is the count of accounts in the snapshot.
	RegisteredUsers int `json:"totalUsers"`
	// ActiveUsers is the count of distinct owners appearing in records.
	ActiveUsers int `json:"activeUsers"`
	// AvgPerUser is TotalSubmissions divided by RegisteredUsers, rounded to
	// the nearest integer; 0 when there are no users.
	AvgPerUser int `json:"avgSubmissionsPerUser"`
}

// Overview computes the Summary for a snapshot of records and user accounts.
func Overview(records []models.Contact, users []models.Account, now time.Time) Summary {
	s := Summary{
		TotalSubmissions:  len(records),
		MonthToDate:       MonthToDateCount(records, now),
		DistinctCompanies: DistinctCompanyCount(records),
		RegisteredUsers:   len(users),
		ActiveUsers:       DistinctOwnerCount(records),
	}
	if len(users) > 0 {
		s.AvgPerUser = int(math.Round(float64(len(records)) / float64(len(users))))
	}
	return s
}
