package domain

import "time"

// Review is an append-only piece of feedback on a listing. ProductID is not
// checked against the listings collection.
type Review struct {
	ID            string    `json:"_id" bson:"_id,omitempty"`
	ProductID     string    `json:"productId" bson:"productId"`
	ReviewerName  string    `json:"reviewerName,omitempty" bson:"reviewerName,omitempty"`
	ReviewerImage string    `json:"reviewerImage,omitempty" bson:"reviewerImage,omitempty"`
	ReviewerEmail string    `json:"reviewerEmail,omitempty" bson:"reviewerEmail,omitempty"`
	Description   string    `json:"reviewDescription" bson:"reviewDescription"`
	Rating        float64   `json:"rating" bson:"rating"`
	CreatedAt     time.Time `json:"createdAt" bson:"createdAt"`
}
