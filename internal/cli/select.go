package cli

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/spf13/afero"

	"github.com/streamvault/streamvault-cli/internal/archive"
	"github.com/streamvault/streamvault-cli/internal/domain"
)

// dateLayout is the calendar-day format the --from/--to flags accept.
const dateLayout = "2006-01-02"

// selectHighlights loads the archived highlights and narrows them with
// the filter flags shared by the download, delete and estimate commands.
// year 0 means all years; month 0 means the whole year. from/to bound
// the creation date (inclusive, YYYY-MM-DD) and cannot be combined with
// year/month.
func selectHighlights(year, month int, from, to string) ([]domain.Highlight, error) {
	if month != 0 && year == 0 {
		return nil, errors.New("--month requires --year")
	}
	if month < 0 || month > 12 {
		return nil, fmt.Errorf("invalid month %d", month)
	}
	if (from != "" || to != "") && year != 0 {
		return nil, errors.New("--from/--to cannot be combined with --year")
	}

	store := archive.NewStore(afero.NewOsFs(), cfg.OutputPath)
	highlights := store.LoadAll(cfg.Channel)
	if len(highlights) == 0 {
		return nil, errors.New("no highlights found, run scrape first")
	}

	if from != "" || to != "" {
		return selectByDateRange(highlights, from, to)
	}

	if year == 0 {
		return highlights, nil
	}

	years := domain.Years(highlights)
	if !slices.Contains(years, year) {
		return nil, fmt.Errorf("no highlights in %d (available years: %v)", year, years)
	}

	if month == 0 {
		return domain.FilterByYear(highlights, year), nil
	}

	months := domain.MonthsInYear(highlights, year)
	if !slices.Contains(months, month) {
		return nil, fmt.Errorf("no highlights in %d-%02d (available months: %v)", year, month, months)
	}

	return domain.FilterByYearMonth(highlights, year, month), nil
}

// selectByDateRange narrows the highlights to [from, to], both bounds
// optional. The to bound covers its whole calendar day.
func selectByDateRange(highlights []domain.Highlight, from, to string) ([]domain.Highlight, error) {
	var start time.Time
	if from != "" {
		parsed, err := time.Parse(dateLayout, from)
		if err != nil {
			return nil, fmt.Errorf("invalid --from date %q, want YYYY-MM-DD", from)
		}
		start = parsed
	}

	end := time.Date(9999, time.December, 31, 23, 59, 59, 0, time.UTC)
	if to != "" {
		parsed, err := time.Parse(dateLayout, to)
		if err != nil {
			return nil, fmt.Errorf("invalid --to date %q, want YYYY-MM-DD", to)
		}
		end = parsed.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}

	if end.Before(start) {
		return nil, fmt.Errorf("--from %s is after --to %s", from, to)
	}

	out := domain.FilterByDateRange(highlights, start, end)
	if len(out) == 0 {
		return nil, fmt.Errorf("no highlights between %s and %s", rangeLabel(from), rangeLabel(to))
	}
	return out, nil
}

func rangeLabel(s string) string {
	if s == "" {
		return "any"
	}
	return s
}
