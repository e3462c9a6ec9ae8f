package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"leadvault/internal/models"
)

func rec(id, owner, company string, submitted time.Time) models.Contact {
	return models.Contact{
		ID:          id,
		OwnerID:     owner,
		Company:     company,
		SubmittedAt: submitted,
		Name:        "Contact " + id,
		Email:       id + "@example.com",
		Phone:       "+1-555-0" + id,
	}
}

func TestMonthToDateCount(t *testing.T) {
	now := time.Date(2026, 8, 30, 15, 0, 0, 0, time.UTC)
	startOfMonth := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	records := []models.Contact{
		rec("1", "a", "X", startOfMonth),                       // first instant of month, inclusive
		rec("2", "a", "X", now),                                // now itself, inclusive
		rec("3", "a", "X", startOfMonth.Add(-time.Nanosecond)), // July
		rec("4", "a", "X", now.Add(time.Hour)),                 // future
	}

	assert.Equal(t, 2, MonthToDateCount(records, now))
}

func TestDistinctCompanyCount_NoCaseFolding(t *testing.T) {
	records := []models.Contact{
		rec("1", "a", "A", time.Now()),
		rec("2", "a", "a", time.Now()),
		rec("3", "a", "B", time.Now()),
	}
	assert.Equal(t, 3, DistinctCompanyCount(records))
}

func TestDistinctCompanyCount_EmptyStringIsDistinct(t *testing.T) {
	records := []models.Contact{
		rec("1", "a", "", time.Now()),
		rec("2", "a", "Acme", time.Now()),
	}
	assert.Equal(t, 2, DistinctCompanyCount(records))
}

func TestSearch_EmptyTermIsIdentity(t *testing.T) {
	records := []models.Contact{
		rec("1", "a", "Zeta", time.Now()),
		rec("2", "b", "Acme", time.Now()),
	}
	got := Search(records, "")
	assert.Equal(t, records, got)
}

func TestSearch_CaseInsensitiveSubstring(t *testing.T) {
	records := []models.Contact{
		{ID: "1", Name: "Jane Doe", Email: "jane@acme.com", Company: "Acme", Phone: "+1-555"},
		{ID: "2", Name: "Bob", Email: "bob@other.org", Company: "Other", Phone: "+2-666"},
		{ID: "3", Name: "ACMEVILLE", Email: "x@x.io", Company: "Z", Phone: "+3-777"},
	}

	got := Search(records, "aCmE")
	if assert.Len(t, got, 2) {
		// order preserved
		assert.Equal(t, "1", got[0].ID)
		assert.Equal(t, "3", got[1].ID)
	}

	// phone field is searched too
	got = Search(records, "666")
	if assert.Len(t, got, 1) {
		assert.Equal(t, "2", got[0].ID)
	}
}

func TestFilterByOwner(t *testing.T) {
	records := []models.Contact{
		rec("1", "a", "X", time.Now()),
		rec("2", "b", "X", time.Now()),
	}

	assert.Equal(t, records, FilterByOwner(records, AllOwners))

	got := FilterByOwner(records, "b")
	if assert.Len(t, got, 1) {
		assert.Equal(t, "2", got[0].ID)
	}
}

func TestFilterAndSearchCommute(t *testing.T) {
	records := []models.Contact{
		rec("1", "a", "Acme", time.Now()),
		rec("2", "b", "Acme", time.Now()),
		rec("3", "a", "Other", time.Now()),
	}

	ab := Search(FilterByOwner(records, "a"), "acme")
	ba := FilterByOwner(Search(records, "acme"), "a")
	assert.Equal(t, ab, ba)
}

func TestDemoScenario(t *testing.T) {
	// register (name="Demo User", email="user@demo.com", ...) then create two
	// contacts with company "Acme" for that account.
	ownerID := "demo-1"
	now := time.Now()

	first := rec("1", ownerID, "Acme", now)
	second := rec("2", ownerID, "Acme", now)
	// most-recent-first: the second-created record leads the listing
	listing := []models.Contact{second, first}

	assert.Equal(t, 1, DistinctCompanyCount(listing))
	assert.Equal(t, 2, PerOwnerCount(listing, ownerID))
	assert.Equal(t, "2", listing[0].ID)
}

func TestOverview(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	records := []models.Contact{
		rec("1", "a", "Acme", now.Add(-time.Hour)),
		rec("2", "a", "Globex", now.Add(-2*time.Hour)),
		rec("3", "b", "Acme", time.Date(2026, 7, 31, 23, 59, 0, 0, time.UTC)),
	}
	users := []models.Account{
		{ID: "a", Role: models.RoleUser},
		{ID: "b", Role: models.RoleUser},
	}

	got := Overview(records, users, now)
	assert.Equal(t, Summary{
		TotalSubmissions:  3,
		MonthToDate:       2,
		DistinctCompanies: 2,
		RegisteredUsers:   2,
		ActiveUsers:       2,
		AvgPerUser:        2, // round(3/2) = 2
	}, got)
}

func TestOverview_NoUsers(t *testing.T) {
	got := Overview(nil, nil, time.Now())
	assert.Zero(t, got.AvgPerUser)
	assert.Zero(t, got.TotalSubmissions)
}
