package repository

// SearchOptions provides paging options for full-text card search.
type SearchOptions struct {
	Limit  int
	Offset int
}
