package domain

import "time"

// Spotlight is a featured listing kept in its own collection under a
// caller-chosen id. It has no moderation state.
type Spotlight struct {
	ID           string    `json:"_id" bson:"_id"`
	ProductName  string    `json:"productName" bson:"productName"`
	ProductImage string    `json:"productImage,omitempty" bson:"productImage,omitempty"`
	Description  string    `json:"description,omitempty" bson:"description,omitempty"`
	Tags         []string  `json:"tags" bson:"tags"`
	ExternalLink string    `json:"externalLink,omitempty" bson:"externalLink,omitempty"`
	Owner        Owner     `json:"owner" bson:"owner"`
	Upvotes      int       `json:"upvotes" bson:"upvotes"`
	UpVotedUsers []string  `json:"upVotedUsers" bson:"upVotedUsers"`
	FeaturedAt   time.Time `json:"featuredAt" bson:"featuredAt"`
}

// SpotlightUpdate is the $set document for PUT /featured/update/:id.
type SpotlightUpdate struct {
	ProductName  string     `bson:"productName,omitempty"`
	ProductImage string     `bson:"productImage,omitempty"`
	Description  string     `bson:"description,omitempty"`
	Tags         []string   `bson:"tags,omitempty"`
	ExternalLink string     `bson:"externalLink,omitempty"`
	Owner        *Owner     `bson:"owner,omitempty"`
	FeaturedAt   *time.Time `bson:"featuredAt,omitempty"`
}
