package handler

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/muhammad-sayem/Tech-Horizon-Server/internal/core/domain"
)

// messageResponse is the soft-success and error envelope the web client reads.
type messageResponse struct {
	Message string `json:"message"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// --- Accounts ---

type createUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"    validate:"required,email"`
	Photo    string `json:"photo"`
	Password string `json:"password" validate:"omitempty,min=6"`
}

type roleResponse struct {
	Role domain.Role `json:"role,omitempty"`
}

// --- Listings ---

type ownerRequest struct {
	Name  string `json:"name"`
	Image string `json:"image"`
	Email string `json:"email" validate:"omitempty,email"`
}

func (o ownerRequest) toDomain() domain.Owner {
	return domain.Owner{Name: o.Name, Image: o.Image, Email: o.Email}
}

type createListingRequest struct {
	ProductName  string       `json:"productName"  validate:"required"`
	ProductImage string       `json:"productImage"`
	Description  string       `json:"description"`
	Tags         []string     `json:"tags"`
	ExternalLink string       `json:"externalLink" validate:"omitempty,url"`
	Owner        ownerRequest `json:"owner"`
	Status       string       `json:"status"`
	Reported     bool         `json:"reported"`
	Featured     bool         `json:"featured"`
	Timestamp    *time.Time   `json:"timestamp"`
}

func (r createListingRequest) toDomain() *domain.Listing {
	l := &domain.Listing{
		ProductName:  r.ProductName,
		ProductImage: r.ProductImage,
		Description:  r.Description,
		Tags:         r.Tags,
		ExternalLink: r.ExternalLink,
		Owner:        r.Owner.toDomain(),
		Status:       domain.ListingStatus(r.Status),
		Reported:     r.Reported,
		Featured:     r.Featured,
	}
	if r.Timestamp != nil {
		l.Timestamp = *r.Timestamp
	}
	return l
}

// updateListingRequest has no upvote fields: they are never client-writable.
type updateListingRequest struct {
	ProductName  string        `json:"productName"`
	ProductImage string        `json:"productImage"`
	Description  string        `json:"description"`
	Tags         []string      `json:"tags"`
	ExternalLink string        `json:"externalLink" validate:"omitempty,url"`
	Owner        *ownerRequest `json:"owner"`
	Status       string        `json:"status"`
	Reported     *bool         `json:"reported"`
	Featured     *bool         `json:"featured"`
	Timestamp    *time.Time    `json:"timestamp"`
}

func (r updateListingRequest) toDomain() domain.ListingUpdate {
	u := domain.ListingUpdate{
		ProductName:  r.ProductName,
		ProductImage: r.ProductImage,
		Description:  r.Description,
		Tags:         r.Tags,
		ExternalLink: r.ExternalLink,
		Status:       domain.ListingStatus(r.Status),
		Reported:     r.Reported,
		Featured:     r.Featured,
		Timestamp:    r.Timestamp,
	}
	if r.Owner != nil {
		o := r.Owner.toDomain()
		u.Owner = &o
	}
	return u
}

type listingPageResponse struct {
	Products      []domain.Listing `json:"products"`
	TotalProducts int64            `json:"totalProducts"`
}

// --- Spotlight ---

type spotlightRequest struct {
	ID           string       `json:"_id"`
	ProductName  string       `json:"productName"  validate:"required"`
	ProductImage string       `json:"productImage"`
	Description  string       `json:"description"`
	Tags         []string     `json:"tags"`
	ExternalLink string       `json:"externalLink"`
	Owner        ownerRequest `json:"owner"`
	FeaturedAt   *time.Time   `json:"featuredAt"`
}

func (r spotlightRequest) toDomain() *domain.Spotlight {
	s := &domain.Spotlight{
		ID:           r.ID,
		ProductName:  r.ProductName,
		ProductImage: r.ProductImage,
		Description:  r.Description,
		Tags:         r.Tags,
		ExternalLink: r.ExternalLink,
		Owner:        r.Owner.toDomain(),
	}
	if r.FeaturedAt != nil {
		s.FeaturedAt = *r.FeaturedAt
	}
	return s
}

type updateSpotlightRequest struct {
	ProductName  string        `json:"productName"`
	ProductImage string        `json:"productImage"`
	Description  string        `json:"description"`
	Tags         []string      `json:"tags"`
	ExternalLink string        `json:"externalLink"`
	Owner        *ownerRequest `json:"owner"`
	FeaturedAt   *time.Time    `json:"featuredAt"`
}

func (r updateSpotlightRequest) toDomain() domain.SpotlightUpdate {
	u := domain.SpotlightUpdate{
		ProductName:  r.ProductName,
		ProductImage: r.ProductImage,
		Description:  r.Description,
		Tags:         r.Tags,
		ExternalLink: r.ExternalLink,
		FeaturedAt:   r.FeaturedAt,
	}
	if r.Owner != nil {
		o := r.Owner.toDomain()
		u.Owner = &o
	}
	return u
}

// --- Reviews & coupons ---

type reviewRequest struct {
	ProductID         string  `json:"productId"         validate:"required"`
	ReviewerName      string  `json:"reviewerName"`
	ReviewerImage     string  `json:"reviewerImage"`
	ReviewerEmail     string  `json:"reviewerEmail"     validate:"omitempty,email"`
	ReviewDescription string  `json:"reviewDescription"`
	Rating            float64 `json:"rating"            validate:"gte=0,lte=5"`
}

type couponRequest struct {
	CouponCode        string   `json:"couponCode"        validate:"required"`
	ExpiryDate        string   `json:"expiryDate"`
	CouponDescription string   `json:"couponDescription"`
	DiscountAmount    *float64 `json:"discountAmount"    validate:"omitempty,gte=0"`
}

// --- Payments ---

type paymentIntentRequest struct {
	Price decimal.NullDecimal `json:"price"`
}

type paymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}
