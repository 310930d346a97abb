package domain

import "time"

// ListingStatus is the moderation state of a listing.
type ListingStatus string

const (
	StatusPending  ListingStatus = "Pending"
	StatusAccepted ListingStatus = "Accepted"
	StatusRejected ListingStatus = "Rejected"
)

// Valid reports whether s is a known moderation state.
func (s ListingStatus) Valid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected:
		return true
	}
	return false
}

// Owner identifies who submitted a listing.
type Owner struct {
	Name  string `json:"name,omitempty" bson:"name,omitempty"`
	Image string `json:"image,omitempty" bson:"image,omitempty"`
	Email string `json:"email" bson:"email"`
}

// Listing is a product submission subject to moderation.
//
// Upvotes always equals len(UpVotedUsers); both are only ever changed together
// by the repository's conditional upvote update.
type Listing struct {
	ID           string        `json:"_id" bson:"_id,omitempty"`
	ProductName  string        `json:"productName" bson:"productName"`
	ProductImage string        `json:"productImage,omitempty" bson:"productImage,omitempty"`
	Description  string        `json:"description,omitempty" bson:"description,omitempty"`
	Tags         []string      `json:"tags" bson:"tags"`
	ExternalLink string        `json:"externalLink,omitempty" bson:"externalLink,omitempty"`
	Owner        Owner         `json:"owner" bson:"owner"`
	Status       ListingStatus `json:"status" bson:"status"`
	Reported     bool          `json:"reported" bson:"reported"`
	Featured     bool          `json:"featured" bson:"featured"`
	Upvotes      int           `json:"upvotes" bson:"upvotes"`
	UpVotedUsers []string      `json:"upVotedUsers" bson:"upVotedUsers"`
	Timestamp    time.Time     `json:"timestamp" bson:"timestamp"`
}

// ListingUpdate carries the descriptive fields an update may overwrite.
// Zero values are omitted from the stored $set document, and the upvote
// bookkeeping is deliberately absent.
type ListingUpdate struct {
	ProductName  string        `bson:"productName,omitempty"`
	ProductImage string        `bson:"productImage,omitempty"`
	Description  string        `bson:"description,omitempty"`
	Tags         []string      `bson:"tags,omitempty"`
	ExternalLink string        `bson:"externalLink,omitempty"`
	Owner        *Owner        `bson:"owner,omitempty"`
	Status       ListingStatus `bson:"status,omitempty"`
	Reported     *bool         `bson:"reported,omitempty"`
	Featured     *bool         `bson:"featured,omitempty"`
	Timestamp    *time.Time    `bson:"timestamp,omitempty"`
}
