package dto

type StoreRequest struct {
	Name       string `json:"name"`
	WebsiteURL string `json:"website_url"`
	Location   string `json:"location"`
}

type ProductRequest struct {
	ProductID       string        `json:"product_id"`
	ProductName     string        `json:"product_name"`
	Category        string        `json:"category"`
	Brand           string        `json:"brand"`
	Price           *float64      `json:"price"`
	Availability    *FlexBool     `json:"availability"`
	AverageRating   FlexFloat     `json:"average_rating"`
	NumberOfReviews FlexInt       `json:"number_of_reviews"`
	URL             string        `json:"url"`
	ImageURL        string        `json:"image_url"`
	Store           *StoreRequest `json:"store"`
}

// ProductUpdateRequest holds a partial update; nil fields keep their
// current values.
type ProductUpdateRequest struct {
	ProductName     *string       `json:"product_name"`
	Category        *string       `json:"category"`
	Brand           *string       `json:"brand"`
	Price           *float64      `json:"price"`
	Availability    *FlexBool     `json:"availability"`
	AverageRating   *FlexFloat    `json:"average_rating"`
	NumberOfReviews *FlexInt      `json:"number_of_reviews"`
	URL             *string       `json:"url"`
	ImageURL        *string       `json:"image_url"`
	Store           *StoreRequest `json:"store"`
}
