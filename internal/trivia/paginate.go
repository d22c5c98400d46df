package trivia

// Paginate returns the page-th fixed-size window of items, counting from 1.
// Out-of-range pages yield an empty (non-nil) slice; callers decide whether
// an empty page is an error. Page values below 1 are rejected at the HTTP
// boundary before this runs.
func Paginate[T any](items []T, page, pageSize int) []T {
	start := (page - 1) * pageSize
	end := start + pageSize
	if start >= len(items) {
		return []T{}
	}
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
