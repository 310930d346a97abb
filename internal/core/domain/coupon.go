package domain

// Coupon is a discount code. Its fields are stored as supplied.
type Coupon struct {
	ID             string  `json:"_id" bson:"_id,omitempty"`
	CouponCode     string  `json:"couponCode" bson:"couponCode"`
	ExpiryDate     string  `json:"expiryDate" bson:"expiryDate"`
	Description    string  `json:"couponDescription" bson:"couponDescription"`
	DiscountAmount float64 `json:"discountAmount" bson:"discountAmount"`
}

// CouponUpdate is the $set document for PUT /coupon/:id.
type CouponUpdate struct {
	CouponCode     string   `bson:"couponCode,omitempty"`
	ExpiryDate     string   `bson:"expiryDate,omitempty"`
	Description    string   `bson:"couponDescription,omitempty"`
	DiscountAmount *float64 `bson:"discountAmount,omitempty"`
}
