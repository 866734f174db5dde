// Package tables holds the shared threshold-table machinery. A table is an
// ordered list of (score, value) rows; a query resolves to the first row
// whose score is greater than or equal to it, and anything past the final
// score clamps to the last row.
package tables

type Row[T any] struct {
	Score int
	Value T
}

func Lookup[T any](rows []Row[T], score int) T {
	for _, r := range rows {
		if score <= r.Score {
			return r.Value
		}
	}
	return rows[len(rows)-1].Value
}
