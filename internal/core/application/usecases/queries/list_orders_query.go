package queries

import (
	"errors"
	"time"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersFilter identifies the listing strategy resolved from the
// optional status and date filters.
type ListOrdersFilter int

const (
	// FilterAll lists every order.
	FilterAll ListOrdersFilter = iota

	// FilterByStatus lists orders in a single status.
	FilterByStatus

	// FilterByPeriod lists orders placed within a closed date range.
	FilterByPeriod

	// FilterByStatusAndPeriod combines status and date range with AND semantics.
	FilterByStatusAndPeriod

	// FilterFromDate lists orders placed at or after a start date.
	FilterFromDate

	// FilterUntilDate lists orders placed at or before an end date.
	FilterUntilDate
)

// ListOrdersPlan is the resolved listing strategy. From and To carry the
// expanded instants: a start date becomes midnight and an end date becomes
// the last instant of that day.
type ListOrdersPlan struct {
	Filter ListOrdersFilter
	Status order.Status
	From   time.Time
	To     time.Time
}

// ListOrdersQuery retrieves orders matching optional status and placement-date
// filters. Filters are calendar dates; resolution into a concrete listing
// strategy happens in Plan.
type ListOrdersQuery struct {
	status order.Status

	hasStatus bool
	dateFrom  time.Time
	hasFrom   bool
	dateTo    time.Time
	hasTo     bool

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a query with optional filters; nil means the
// filter is absent. A present status must be a known lifecycle value.
func NewListOrdersQuery(status *order.Status, dateFrom, dateTo *time.Time) (ListOrdersQuery, error) {
	query := ListOrdersQuery{guard: guard.NewConstructorGuard()}

	if status != nil {
		if err := status.Validate(); err != nil {
			return ListOrdersQuery{}, err
		}
		query.status = *status
		query.hasStatus = true
	}

	if dateFrom != nil {
		query.dateFrom = *dateFrom
		query.hasFrom = true
	}

	if dateTo != nil {
		query.dateTo = *dateTo
		query.hasTo = true
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrListOrdersQueryIsNotConstructed if validation fails.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Plan resolves the optional filters into a listing strategy:
//
//  1. No filters: all orders.
//  2. Status only: orders in that status.
//  3. Both date bounds: orders placed within the expanded range.
//  4. Status and both date bounds: both conditions (AND).
//  5. Start date only: orders placed at or after start-of-day.
//  6. End date only: orders placed at or before end-of-day.
//
// A status combined with a single date bound matches none of the cases and
// falls back to listing all orders.
func (q ListOrdersQuery) Plan() ListOrdersPlan {
	switch {
	case q.hasStatus && q.hasFrom && q.hasTo:
		return ListOrdersPlan{
			Filter: FilterByStatusAndPeriod,
			Status: q.status,
			From:   startOfDay(q.dateFrom),
			To:     endOfDay(q.dateTo),
		}
	case q.hasStatus && !q.hasFrom && !q.hasTo:
		return ListOrdersPlan{Filter: FilterByStatus, Status: q.status}
	case !q.hasStatus && q.hasFrom && q.hasTo:
		return ListOrdersPlan{
			Filter: FilterByPeriod,
			From:   startOfDay(q.dateFrom),
			To:     endOfDay(q.dateTo),
		}
	case !q.hasStatus && q.hasFrom:
		return ListOrdersPlan{Filter: FilterFromDate, From: startOfDay(q.dateFrom)}
	case !q.hasStatus && q.hasTo:
		return ListOrdersPlan{Filter: FilterUntilDate, To: endOfDay(q.dateTo)}
	default:
		return ListOrdersPlan{Filter: FilterAll}
	}
}

// startOfDay expands a calendar date to midnight in its location.
func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// endOfDay expands a calendar date to the last instant of that day.
func endOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
