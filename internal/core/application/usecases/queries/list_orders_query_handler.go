package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListOrdersQueryHandler retrieves orders matching the resolved filter plan.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for filtered order listings.
// Requires a GORM database connection for query execution.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the listing resolved by the query's filter plan.
// Results are sorted by placement time, then by ID for a stable order.
func (h ListOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	base := `
		SELECT ` + orderColumns + `
		FROM orders
	`
	suffix := `
		ORDER BY placed_at, id
	`

	plan := query.Plan()
	tx := h.db.WithContext(ctx)

	var rowsQuery *gorm.DB
	switch plan.Filter {
	case FilterByStatus:
		rowsQuery = tx.Raw(base+`WHERE status = ?`+suffix, int(plan.Status))
	case FilterByPeriod:
		rowsQuery = tx.Raw(base+`WHERE placed_at BETWEEN ? AND ?`+suffix, plan.From, plan.To)
	case FilterByStatusAndPeriod:
		rowsQuery = tx.Raw(base+`WHERE status = ? AND placed_at BETWEEN ? AND ?`+suffix,
			int(plan.Status), plan.From, plan.To)
	case FilterFromDate:
		rowsQuery = tx.Raw(base+`WHERE placed_at >= ?`+suffix, plan.From)
	case FilterUntilDate:
		rowsQuery = tx.Raw(base+`WHERE placed_at <= ?`+suffix, plan.To)
	default:
		rowsQuery = tx.Raw(base + suffix)
	}

	rows, err := rowsQuery.Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderRows(rows)
}
