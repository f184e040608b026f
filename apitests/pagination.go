package apitests

// LastPage returns the index of the last page that a listing with the given
// total and page size can be asked for before the response is guaranteed to
// be empty, as floor(total / limit) with zero-based pages. Any page beyond
// this one must come back with an empty data list.
//
// Page boundaries are always derived from a freshly fetched total, never
// hard-coded, because the size of the remote collection changes as other
// clients (and other runs of this harness) create and delete users.
func LastPage(total, limit int) int {
	if limit <= 0 {
		panic("LastPage called with a page size of zero")
	}
	if total < 0 {
		total = 0
	}
	return total / limit
}

// FirstEmptyPage returns the index of the first page that is guaranteed to
// contain no data.
func FirstEmptyPage(total, limit int) int {
	return LastPage(total, limit) + 1
}

// ItemsOnPage returns how many items the given page should contain.
func ItemsOnPage(total, limit, page int) int {
	start := page * limit
	switch {
	case start >= total:
		return 0
	case start+limit > total:
		return total - start
	default:
		return limit
	}
}
