package client

import (
	"testing"
	"time"

	"parlamento/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 3, 10, 15, 30, 0, 0, time.UTC)

func entryAt(region string, date time.Time, cash float64) entities.ParliamentEntry {
	return entities.ParliamentEntry{
		ID:        region + date.Format(time.RFC3339),
		Date:      date,
		Law:       "Lei " + region,
		Region:    region,
		Resources: entities.Resources{Cash: cash, Gold: 1},
	}
}

func TestComputeTodayCosts(t *testing.T) {
	entries := []entities.ParliamentEntry{
		entryAt("A", testNow.Add(-time.Hour), 99),
		entryAt("B", testNow.Add(-2*time.Hour), 99),
		entryAt("A", testNow.AddDate(0, 0, -1), 99),
		entryAt("C", testNow.AddDate(0, 0, -5), 1000),
	}

	got := ComputeTodayCosts(entries, testNow)
	assert.Len(t, got.Entries, 2)
	assert.Equal(t, entities.Resources{Cash: 198, Gold: 2}, got.Totals)
	assert.InDelta(t, 100.0, got.PercentageChange, 1e-9)
}

func TestComputeTodayCosts_NoYesterday(t *testing.T) {
	got := ComputeTodayCosts([]entities.ParliamentEntry{entryAt("A", testNow, 10)}, testNow)
	assert.Equal(t, 0.0, got.PercentageChange)

	empty := ComputeTodayCosts(nil, testNow)
	assert.NotNil(t, empty.Entries)
	assert.Equal(t, entities.Resources{}, empty.Totals)
}

func TestRecentLaws(t *testing.T) {
	var entries []entities.ParliamentEntry
	for i := 0; i < 7; i++ {
		entries = append(entries, entryAt("A", testNow.AddDate(0, 0, -i), float64(i)))
	}
	entries[0], entries[6] = entries[6], entries[0]

	got := RecentLaws(entries, 5)
	require.Len(t, got, 5)
	assert.True(t, got[0].Date.Equal(testNow))
	for i := 1; i < len(got); i++ {
		assert.True(t, got[i-1].Date.After(got[i].Date))
	}
	assert.Len(t, RecentLaws(entries[:2], 5), 2)
}

func TestRegionActivity(t *testing.T) {
	var entries []entities.ParliamentEntry
	counts := map[string]int{"A": 1, "B": 4, "C": 2, "D": 2, "E": 3, "F": 1}
	for _, r := range []string{"A", "B", "C", "D", "E", "F"} {
		for i := 0; i < counts[r]; i++ {
			entries = append(entries, entryAt(r, testNow.Add(time.Duration(i)*time.Minute), 1))
		}
	}

	got := RegionActivity(entries, 5)
	assert.Equal(t, []RegionCount{
		{Region: "B", Count: 4},
		{Region: "E", Count: 3},
		{Region: "C", Count: 2},
		{Region: "D", Count: 2},
		{Region: "A", Count: 1},
	}, got)
}

func TestRegionCostTable(t *testing.T) {
	entries := []entities.ParliamentEntry{
		entryAt("A", testNow, 10),
		entryAt("B", testNow, 50),
		entryAt("A", testNow, 15),
	}

	got := RegionCostTable(entries)
	require.Len(t, got, 2)
	assert.Equal(t, "B", got[0].Region)
	assert.Equal(t, "A", got[1].Region)
	assert.Equal(t, 25.0, got[1].Resources.Cash)
	assert.Equal(t, 2.0, got[1].Resources.Gold)
	assert.Equal(t, 2, got[1].Count)
	assert.Equal(t, entities.Resources{Cash: 75, Gold: 3}, TotalResources(entries))
}

func TestFilterByTimeRange(t *testing.T) {
	entries := []entities.ParliamentEntry{
		entryAt("today", testNow, 1),
		entryAt("d7", time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC), 1),
		entryAt("d8", time.Date(2024, 3, 2, 23, 59, 0, 0, time.UTC), 1),
		entryAt("d60", testNow.AddDate(0, 0, -60), 1),
		entryAt("future", testNow.Add(time.Hour), 1),
	}

	regions := func(es []entities.ParliamentEntry) []string {
		var out []string
		for _, e := range es {
			out = append(out, e.Region)
		}
		return out
	}

	assert.Equal(t, []string{"today", "d7"}, regions(FilterByTimeRange(entries, Range7Days, DateRange{}, testNow)))
	assert.Equal(t, []string{"today", "d7", "d8"}, regions(FilterByTimeRange(entries, Range30Days, DateRange{}, testNow)))
	assert.Equal(t, []string{"today", "d7", "d8", "d60"}, regions(FilterByTimeRange(entries, Range90Days, DateRange{}, testNow)))

	custom := DateRange{
		Start: time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC),
	}
	assert.Equal(t, []string{"d7", "d8"}, regions(FilterByTimeRange(entries, RangeCustom, custom, testNow)))
}

func TestParseTimeRange(t *testing.T) {
	r, err := ParseTimeRange("90days")
	require.NoError(t, err)
	assert.Equal(t, Range90Days, r)

	_, err = ParseTimeRange("year")
	assert.Error(t, err)
}

func TestDailyTotals(t *testing.T) {
	entries := []entities.ParliamentEntry{
		entryAt("A", time.Date(2024, 3, 3, 10, 0, 0, 0, time.UTC), 5),
		entryAt("B", time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC), 2),
		entryAt("C", time.Date(2024, 3, 3, 22, 0, 0, 0, time.UTC), 1),
	}

	got := DailyTotals(entries, time.UTC)
	require.Len(t, got, 3)
	assert.Equal(t, 2.0, got[0].Resources.Cash)
	assert.Equal(t, entities.Resources{}, got[1].Resources)
	assert.Equal(t, 6.0, got[2].Resources.Cash)
	assert.True(t, got[1].Day.Equal(time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)))

	assert.Empty(t, DailyTotals(nil, time.UTC))
}
