package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NationwideLocation is the reserved store location meaning the offer is
// available regardless of the region a caller filters by.
const NationwideLocation = "Nationwide"

type Store struct {
	Name       string `bson:"name" json:"name"`
	WebsiteURL string `bson:"website_url" json:"website_url"`
	Location   string `bson:"location" json:"location"`
}

// Product is a single offer of a catalog item by one store. ProductID is the
// externally assigned catalog key; the Mongo _id is never used for lookups.
type Product struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	ProductID       string             `bson:"product_id" json:"product_id"`
	ProductName     string             `bson:"product_name" json:"product_name"`
	Category        string             `bson:"category" json:"category"`
	Brand           string             `bson:"brand" json:"brand"`
	Price           float64            `bson:"price" json:"price"`
	Availability    bool               `bson:"availability" json:"availability"`
	AverageRating   float64            `bson:"average_rating" json:"average_rating"`
	NumberOfReviews int64              `bson:"number_of_reviews" json:"number_of_reviews"`
	URL             string             `bson:"url" json:"url"`
	ImageURL        string             `bson:"image_url" json:"image_url"`
	Store           Store              `bson:"store" json:"store"`
	CreatedAt       time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time          `bson:"updated_at" json:"updated_at"`
}
