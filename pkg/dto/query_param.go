package dto

// Filter carries the list query surface shared by every paginated endpoint.
type Filter struct {
	Page       int    `query:"page"`
	PerPage    int    `query:"perPage"`
	OrderBy    string `query:"orderBy"`
	Order      string `query:"order"`
	Search     string `query:"q"`
	CategoryID int64  `query:"categoryId"`
}

// PaginationParams builds the upstream page params, omitting unset fields
// entirely so they never appear in the query string.
func (f Filter) PaginationParams() map[string]interface{} {
	params := map[string]interface{}{}
	if f.Page > 0 {
		params["page"] = f.Page
	}
	if f.PerPage > 0 {
		params["per_page"] = f.PerPage
	}
	return params
}

func (f Filter) SortParams() map[string]interface{} {
	params := map[string]interface{}{}
	if f.OrderBy != "" {
		params["order_by"] = f.OrderBy
	}
	if f.Order != "" {
		params["order"] = f.Order
	}
	return params
}

// MergeParams combines param sets; later sets win on key collisions.
func MergeParams(sets ...map[string]interface{}) map[string]interface{} {
	merged := map[string]interface{}{}
	for _, set := range sets {
		for key, value := range set {
			merged[key] = value
		}
	}
	return merged
}
