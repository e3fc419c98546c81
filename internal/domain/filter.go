package domain

// ListFilter narrows collection listings. Zero-value fields are ignored.
type ListFilter struct {
	Status   string
	Priority string
	Category string
	Limit    int
	Skip     int
}

// Bounded returns the filter with a sane default and cap on Limit
func (f ListFilter) Bounded() ListFilter {
	if f.Limit <= 0 {
		f.Limit = 50
	}
	if f.Limit > 200 {
		f.Limit = 200
	}
	if f.Skip < 0 {
		f.Skip = 0
	}
	return f
}
