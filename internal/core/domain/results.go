package domain

// The write results mirror the driver results the web client already reads.

type InsertResult struct {
	Acknowledged bool   `json:"acknowledged"`
	InsertedID   string `json:"insertedId"`
}

type UpdateResult struct {
	Acknowledged  bool   `json:"acknowledged"`
	MatchedCount  int64  `json:"matchedCount"`
	ModifiedCount int64  `json:"modifiedCount"`
	UpsertedCount int64  `json:"upsertedCount"`
	UpsertedID    string `json:"upsertedId,omitempty"`
}

type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

// AdminStats is a point-in-time approximation; the three counts are not read
// from one snapshot.
type AdminStats struct {
	UsersCount    int64 `json:"usersCount"`
	ProductsCount int64 `json:"productsCount"`
	ReviewsCount  int64 `json:"reviewsCount"`
}
