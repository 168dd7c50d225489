// Package availability annotates tables with the verdict of the store's
// availability predicate.  Checks fan out concurrently per table and fan
// in before the response is built; a failed check marks only its own
// table unavailable and never aborts the others.
package availability

import (
	"context"
	"log/slog"
	"sync"

	"github.com/Jonboyweb/MM-br3-sub001/internal/model"
)

// maxConcurrentChecks bounds the fan-out so one large venue cannot
// exhaust the DB pool with parallel predicate calls.
const maxConcurrentChecks = 10

// Predicate answers "is this table free for this window".  The store's
// check_table_availability function is the production implementation.
type Predicate interface {
	Check(ctx context.Context, tableID, date, start, end string) (bool, error)
}

// Window is one (date, start, end) tuple.  Annotations are meaningful
// only for the exact window they were computed against.
type Window struct {
	Date      string // YYYY-MM-DD
	StartTime string // HH:MM
	EndTime   string // HH:MM, may be earlier than StartTime (past midnight)
}

// ParseWindow builds a Window from raw query parameters.  It returns nil
// unless all three parts are present: a partial window is treated the
// same as none, and callers then skip annotation entirely.
func ParseWindow(date, start, end string) *Window {
	if date == "" || start == "" || end == "" {
		return nil
	}
	return &Window{Date: date, StartTime: start, EndTime: end}
}

// Annotate returns the tables annotated with availability for the given
// window.  With a nil window every table is marked available, as the
// browsing UI shows unfiltered layouts by default.  With a window, each
// table is checked independently and concurrently; a predicate error
// fails closed to unavailable and is logged, never surfaced.
func Annotate(ctx context.Context, pred Predicate, log *slog.Logger, tables []model.Table, win *Window) []model.TableWithAvailability {
	out := make([]model.TableWithAvailability, len(tables))
	for i, t := range tables {
		out[i] = model.TableWithAvailability{Table: t, IsAvailable: true}
	}
	if win == nil || len(tables) == 0 {
		return out
	}

	var wg sync.WaitGroup
	sem := make(chan struct{}, maxConcurrentChecks)
	for i := range out {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()

			ok, err := pred.Check(ctx, out[i].ID, win.Date, win.StartTime, win.EndTime)
			if err != nil {
				// fail closed: an unanswered check is an unavailable table
				log.Warn("availability check failed",
					"table_id", out[i].ID, "date", win.Date, "error", err)
				out[i].IsAvailable = false
				return
			}
			out[i].IsAvailable = ok
		}(i)
	}
	wg.Wait()
	return out
}

// Counts summarises an annotated list by total, availability and floor.
func Counts(tables []model.TableWithAvailability) model.TableCounts {
	c := model.TableCounts{Total: len(tables)}
	for _, t := range tables {
		if t.IsAvailable {
			c.Available++
		}
		switch t.Location {
		case model.LocationUpstairs:
			c.Upstairs++
		case model.LocationDownstairs:
			c.Downstairs++
		}
	}
	return c
}
