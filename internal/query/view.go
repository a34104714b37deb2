package query

import (
	"sync"
	"time"

	"github.com/pranshu911/jams/internal/models"
)

// View is the stateful table view a presentation layer feeds input
// into. Filter and search changes are debounced so a typing burst costs
// one recompute; when the timer fires, whatever parameters are current
// at that moment win. Changing the record set, a filter or the search
// string resets the page to 1.
type View struct {
	mu  sync.Mutex
	deb *Debouncer
	now func() time.Time

	records []models.Application
	filter  Filter
	page    int
	size    int

	current Page
}

// NewView builds a View around a clock function, a debounce delay
// (<= 0 for the default) and a page size (<= 0 for the default). The
// clock is injected so bucket and range boundaries are test-stable.
func NewView(now func() time.Time, delay time.Duration, size int) *View {
	if now == nil {
		now = time.Now
	}
	if size <= 0 {
		size = DefaultPageSize
	}
	v := &View{
		deb:  NewDebouncer(delay),
		now:  now,
		page: 1,
		size: size,
	}
	v.current = Paginate(nil, 1, size)
	return v
}

// SetRecords replaces the snapshot and schedules a recompute.
func (v *View) SetRecords(records []models.Application) {
	v.mu.Lock()
	v.records = records
	v.page = 1
	v.mu.Unlock()
	v.deb.Trigger(v.recompute)
}

// SetFilter replaces the filter parameters and schedules a recompute.
func (v *View) SetFilter(f Filter) {
	v.mu.Lock()
	search := v.filter.Search
	v.filter = f
	v.filter.Search = search
	v.page = 1
	v.mu.Unlock()
	v.deb.Trigger(v.recompute)
}

// SetSearch replaces the search string and schedules a recompute.
func (v *View) SetSearch(q string) {
	v.mu.Lock()
	v.filter.Search = q
	v.page = 1
	v.mu.Unlock()
	v.deb.Trigger(v.recompute)
}

// SetPage moves to another page of the current filtered set
// immediately; page navigation is not a keystroke and needs no
// debounce.
func (v *View) SetPage(n int) {
	v.mu.Lock()
	v.page = n
	v.mu.Unlock()
	v.recompute()
}

// Flush cancels any pending timer and recomputes synchronously with the
// latest parameters.
func (v *View) Flush() {
	v.deb.Stop()
	v.recompute()
}

// Close releases the pending timer, if any.
func (v *View) Close() {
	v.deb.Stop()
}

// Page returns the most recently computed page.
func (v *View) Page() Page {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.current
}

func (v *View) recompute() {
	v.mu.Lock()
	defer v.mu.Unlock()
	filtered := Apply(v.records, v.filter, v.now())
	v.current = Paginate(filtered, v.page, v.size)
	v.page = v.current.Number
}
