package queries_test

import (
	"testing"
	"time"

	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func statusPtr(s order.Status) *order.Status { return &s }

func datePtr(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 14, 30, 0, 0, time.UTC)
	return &d
}

func TestListOrdersQuery_Plan_NoFilters(t *testing.T) {
	query, err := queries.NewListOrdersQuery(nil, nil, nil)
	require.NoError(t, err)

	plan := query.Plan()
	assert.Equal(t, queries.FilterAll, plan.Filter)
}

func TestListOrdersQuery_Plan_StatusOnly(t *testing.T) {
	query, err := queries.NewListOrdersQuery(statusPtr(order.Confirmed), nil, nil)
	require.NoError(t, err)

	plan := query.Plan()
	assert.Equal(t, queries.FilterByStatus, plan.Filter)
	assert.Equal(t, order.Confirmed, plan.Status)
}

func TestListOrdersQuery_Plan_FullDateRange(t *testing.T) {
	query, err := queries.NewListOrdersQuery(nil, datePtr(2025, time.March, 1), datePtr(2025, time.March, 31))
	require.NoError(t, err)

	plan := query.Plan()
	assert.Equal(t, queries.FilterByPeriod, plan.Filter)
	assert.Equal(t, time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC), plan.From)
	assert.Equal(t, 31, plan.To.Day())
	assert.Equal(t, 23, plan.To.Hour())
	assert.Equal(t, 59, plan.To.Minute())
	assert.Equal(t, 59, plan.To.Second())
}

func TestListOrdersQuery_Plan_StatusAndFullDateRange(t *testing.T) {
	query, err := queries.NewListOrdersQuery(
		statusPtr(order.Delivered), datePtr(2025, time.March, 1), datePtr(2025, time.March, 31))
	require.NoError(t, err)

	plan := query.Plan()
	assert.Equal(t, queries.FilterByStatusAndPeriod, plan.Filter)
	assert.Equal(t, order.Delivered, plan.Status)
	assert.True(t, plan.From.Before(plan.To))
}

func TestListOrdersQuery_Plan_FromDateOnly(t *testing.T) {
	query, err := queries.NewListOrdersQuery(nil, datePtr(2025, time.March, 15), nil)
	require.NoError(t, err)

	plan := query.Plan()
	assert.Equal(t, queries.FilterFromDate, plan.Filter)
	assert.Equal(t, time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC), plan.From)
}

func TestListOrdersQuery_Plan_UntilDateOnly(t *testing.T) {
	query, err := queries.NewListOrdersQuery(nil, nil, datePtr(2025, time.March, 15))
	require.NoError(t, err)

	plan := query.Plan()
	assert.Equal(t, queries.FilterUntilDate, plan.Filter)
	assert.Equal(t, 23, plan.To.Hour())
}

func TestListOrdersQuery_Plan_StatusWithSingleBoundFallsBackToAll(t *testing.T) {
	t.Run("should fall back to all with status and from date", func(t *testing.T) {
		query, err := queries.NewListOrdersQuery(statusPtr(order.Created), datePtr(2025, time.March, 1), nil)
		require.NoError(t, err)
		assert.Equal(t, queries.FilterAll, query.Plan().Filter)
	})

	t.Run("should fall back to all with status and until date", func(t *testing.T) {
		query, err := queries.NewListOrdersQuery(statusPtr(order.Created), nil, datePtr(2025, time.March, 31))
		require.NoError(t, err)
		assert.Equal(t, queries.FilterAll, query.Plan().Filter)
	})
}

func TestNewListOrdersQuery_InvalidStatus(t *testing.T) {
	bad := order.Status(42)
	_, err := queries.NewListOrdersQuery(&bad, nil, nil)
	require.Error(t, err)
}

func TestListOrdersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.ListOrdersQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrListOrdersQueryIsNotConstructed)
}
