package repo

import "math"

// fitsInt4 reports whether every id fits the INTEGER key columns.
// pgx refuses to encode larger values, and no such row can exist, so
// callers answer "not found" without a round trip.
func fitsInt4(ids ...int) bool {
	for _, id := range ids {
		if id < math.MinInt32 || id > math.MaxInt32 {
			return false
		}
	}
	return true
}
