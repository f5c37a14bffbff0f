package genome

// Table is an optional input table. The zero value is an absent table.
type Table[T any] struct {
	rows    []T
	present bool
}

// Present wraps rows as a supplied table. A nil or empty slice is still
// present: the producer ran and found nothing.
func Present[T any](rows []T) Table[T] {
	return Table[T]{rows: rows, present: true}
}

// Absent returns a table that was never supplied.
func Absent[T any]() Table[T] {
	return Table[T]{}
}

// Get returns the rows and whether the table was supplied.
func (t Table[T]) Get() ([]T, bool) {
	return t.rows, t.present
}

// IsPresent reports whether the table was supplied.
func (t Table[T]) IsPresent() bool { return t.present }

// OrElse returns the rows if present, and the result of fallback otherwise.
func (t Table[T]) OrElse(fallback func() []T) []T {
	if t.present {
		return t.rows
	}
	return fallback()
}
