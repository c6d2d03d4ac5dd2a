package domain

import (
	"sort"
	"time"
)

// FilterByYear returns the highlights created in the given year.
func FilterByYear(highlights []Highlight, year int) []Highlight {
	var out []Highlight
	for _, h := range highlights {
		if h.CreatedAt.Year() == year {
			out = append(out, h)
		}
	}
	return out
}

// FilterByYearMonth returns the highlights created in the given year and
// month (1-12).
func FilterByYearMonth(highlights []Highlight, year, month int) []Highlight {
	var out []Highlight
	for _, h := range highlights {
		if h.CreatedAt.Year() == year && int(h.CreatedAt.Month()) == month {
			out = append(out, h)
		}
	}
	return out
}

// FilterByDateRange returns the highlights created within [start, end],
// inclusive on both ends.
func FilterByDateRange(highlights []Highlight, start, end time.Time) []Highlight {
	var out []Highlight
	for _, h := range highlights {
		if h.CreatedAt.Before(start) || h.CreatedAt.After(end) {
			continue
		}
		out = append(out, h)
	}
	return out
}

// Years returns the distinct years present in the collection, ascending.
func Years(highlights []Highlight) []int {
	seen := make(map[int]struct{})
	var years []int
	for _, h := range highlights {
		y := h.CreatedAt.Year()
		if _, ok := seen[y]; !ok {
			seen[y] = struct{}{}
			years = append(years, y)
		}
	}
	sort.Ints(years)
	return years
}

// MonthsInYear returns the distinct months (1-12) with highlights in the
// given year, ascending.
func MonthsInYear(highlights []Highlight, year int) []int {
	seen := make(map[int]struct{})
	var months []int
	for _, h := range highlights {
		if h.CreatedAt.Year() != year {
			continue
		}
		m := int(h.CreatedAt.Month())
		if _, ok := seen[m]; !ok {
			seen[m] = struct{}{}
			months = append(months, m)
		}
	}
	sort.Ints(months)
	return months
}
