package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email          string             `bson:"email" json:"email"`
	Username       string             `bson:"username" json:"username"`
	HashedPassword string             `bson:"password" json:"-"`
	CreatedAt      time.Time          `bson:"created_at" json:"-"`
	UpdatedAt      time.Time          `bson:"updated_at" json:"-"`
}
