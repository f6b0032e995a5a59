package domain

// Page is the list envelope of every paginated endpoint.
// Pagination is server-driven: Data only holds the requested page.
type Page[T any] struct {
	Data        []T `json:"data"`
	CurrentPage int `json:"currentPage"`
	TotalPages  int `json:"totalPages"`
	TotalCount  int `json:"totalCount"`
}
