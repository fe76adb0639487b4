package client

import (
	"fmt"
	"sort"
	"time"

	"parlamento/internal/domain/entities"
)

// Day boundaries in the selectors below are taken in now's location.

type TodayCosts struct {
	Entries          []entities.ParliamentEntry
	Totals           entities.Resources
	PercentageChange float64
}

// ComputeTodayCosts sums today's entries and compares the combined total with
// yesterday's. The change is 0 when yesterday has nothing to compare to.
func ComputeTodayCosts(entries []entities.ParliamentEntry, now time.Time) TodayCosts {
	today := startOfDay(now)
	yesterday := today.AddDate(0, 0, -1)

	out := TodayCosts{Entries: []entities.ParliamentEntry{}}
	var prev entities.Resources
	for _, e := range entries {
		day := startOfDay(e.Date.In(now.Location()))
		switch {
		case day.Equal(today):
			out.Entries = append(out.Entries, e)
			out.Totals = out.Totals.Add(e.Resources)
		case day.Equal(yesterday):
			prev = prev.Add(e.Resources)
		}
	}
	if prev.Total() != 0 {
		out.PercentageChange = (out.Totals.Total() - prev.Total()) / prev.Total() * 100
	}
	return out
}

// RecentLaws returns up to n entries, newest first.
func RecentLaws(entries []entities.ParliamentEntry, n int) []entities.ParliamentEntry {
	sorted := append([]entities.ParliamentEntry{}, entries...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Date.After(sorted[j].Date) })
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

type RegionCount struct {
	Region string
	Count  int
}

// RegionActivity counts entries per region and keeps the n busiest. Ties
// keep the order in which regions first appear.
func RegionActivity(entries []entities.ParliamentEntry, n int) []RegionCount {
	var out []RegionCount
	index := map[string]int{}
	for _, e := range entries {
		i, ok := index[e.Region]
		if !ok {
			i = len(out)
			index[e.Region] = i
			out = append(out, RegionCount{Region: e.Region})
		}
		out[i].Count++
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	if len(out) > n {
		out = out[:n]
	}
	return out
}

type RegionCost struct {
	Region    string
	Resources entities.Resources
	Count     int
}

// RegionCostTable sums resources per region, highest cash first.
func RegionCostTable(entries []entities.ParliamentEntry) []RegionCost {
	out := []RegionCost{}
	index := map[string]int{}
	for _, e := range entries {
		i, ok := index[e.Region]
		if !ok {
			i = len(out)
			index[e.Region] = i
			out = append(out, RegionCost{Region: e.Region})
		}
		out[i].Resources = out[i].Resources.Add(e.Resources)
		out[i].Count++
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Resources.Cash > out[j].Resources.Cash })
	return out
}

func TotalResources(entries []entities.ParliamentEntry) entities.Resources {
	var total entities.Resources
	for _, e := range entries {
		total = total.Add(e.Resources)
	}
	return total
}

type TimeRange string

const (
	Range7Days  TimeRange = "7days"
	Range30Days TimeRange = "30days"
	Range90Days TimeRange = "90days"
	RangeCustom TimeRange = "custom"
)

func ParseTimeRange(s string) (TimeRange, error) {
	switch r := TimeRange(s); r {
	case Range7Days, Range30Days, Range90Days, RangeCustom:
		return r, nil
	}
	return "", fmt.Errorf("unknown time range %q (want 7days, 30days, 90days or custom)", s)
}

// DateRange is an inclusive pair of calendar days used by RangeCustom.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Bounds resolves the inclusive [start, end] window of r. Preset ranges start
// at midnight N days ago and end now. A custom range spans from the start of
// its first day to the last instant of its end day.
func (r TimeRange) Bounds(custom DateRange, now time.Time) (time.Time, time.Time) {
	switch r {
	case RangeCustom:
		start := startOfDay(custom.Start.In(now.Location()))
		end := startOfDay(custom.End.In(now.Location())).AddDate(0, 0, 1).Add(-time.Millisecond)
		return start, end
	case Range7Days:
		return startOfDay(now).AddDate(0, 0, -7), now
	case Range90Days:
		return startOfDay(now).AddDate(0, 0, -90), now
	default:
		return startOfDay(now).AddDate(0, 0, -30), now
	}
}

// FilterByTimeRange keeps the entries whose date falls inside r's window.
func FilterByTimeRange(entries []entities.ParliamentEntry, r TimeRange, custom DateRange, now time.Time) []entities.ParliamentEntry {
	start, end := r.Bounds(custom, now)
	out := []entities.ParliamentEntry{}
	for _, e := range entries {
		if e.Date.Before(start) || e.Date.After(end) {
			continue
		}
		out = append(out, e)
	}
	return out
}

type DailyTotal struct {
	Day       time.Time
	Resources entities.Resources
}

// DailyTotals buckets entries per day from the earliest to the latest entry,
// filling days without entries with zeros.
func DailyTotals(entries []entities.ParliamentEntry, loc *time.Location) []DailyTotal {
	if len(entries) == 0 {
		return []DailyTotal{}
	}
	first := startOfDay(entries[0].Date.In(loc))
	last := first
	sums := map[time.Time]entities.Resources{}
	for _, e := range entries {
		day := startOfDay(e.Date.In(loc))
		sums[day] = sums[day].Add(e.Resources)
		if day.Before(first) {
			first = day
		}
		if day.After(last) {
			last = day
		}
	}

	var out []DailyTotal
	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		out = append(out, DailyTotal{Day: day, Resources: sums[day]})
	}
	return out
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
