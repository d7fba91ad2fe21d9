package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginationParamsOmitUnsetFields(t *testing.T) {
	params := Filter{Page: 2}.PaginationParams()

	assert.Equal(t, map[string]interface{}{"page": 2}, params)
}

func TestPaginationParamsSnakeCaseKeys(t *testing.T) {
	params := Filter{Page: 1, PerPage: 24}.PaginationParams()

	assert.Equal(t, map[string]interface{}{"page": 1, "per_page": 24}, params)
}

func TestSortParams(t *testing.T) {
	assert.Empty(t, Filter{}.SortParams())

	params := Filter{OrderBy: "rating", Order: "desc"}.SortParams()
	assert.Equal(t, map[string]interface{}{"order_by": "rating", "order": "desc"}, params)
}

func TestMergeParams(t *testing.T) {
	filter := Filter{Page: 3, PerPage: 10, OrderBy: "name", Order: "asc"}

	merged := MergeParams(filter.PaginationParams(), filter.SortParams())

	assert.Equal(t, map[string]interface{}{
		"page":     3,
		"per_page": 10,
		"order_by": "name",
		"order":    "asc",
	}, merged)
}
