package service

// recordsPerPage is the fixed page size for every list endpoint.
const recordsPerPage = 10

// paginate slices out the requested 1-indexed page. A nil page returns the
// input unchanged (full set); a page past the end returns an empty slice.
func paginate[T any](records []T, page *int) []T {
	if page == nil {
		return records
	}

	skip := (*page - 1) * recordsPerPage
	if skip < 0 {
		skip = 0
	}
	if skip >= len(records) {
		return []T{}
	}

	end := skip + recordsPerPage
	if end > len(records) {
		end = len(records)
	}
	return records[skip:end]
}
