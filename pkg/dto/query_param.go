package dto

// ProductFilter carries the query-string filters of the product listing
// endpoint. Filters compose with logical AND; the free-text search matches
// any of product_name, category or brand.
type ProductFilter struct {
	Search    string  `query:"search"`
	MinRating float64 `query:"min_rating"`
	Location  string  `query:"location"`
	Compare   bool    `query:"compare"`
}

// HasFilter reports whether any filter was requested, which switches the
// listing to ascending price order.
func (f ProductFilter) HasFilter() bool {
	return f.Search != "" || f.MinRating > 0 || f.Location != "" || f.Compare
}
