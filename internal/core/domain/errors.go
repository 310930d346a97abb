package domain

import "errors"

var (
	ErrUnauthorized       = errors.New("unauthorized access")
	ErrForbidden          = errors.New("forbidden access")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidID          = errors.New("invalid id")
	ErrMissingEmail       = errors.New("email is required")
	ErrEmptyUpdate        = errors.New("nothing to update")

	ErrAccountNotFound = errors.New("user not found")
	ErrAccountExists   = errors.New("user already exists")
	ErrInvalidRole     = errors.New("invalid role")

	ErrListingNotFound   = errors.New("product not found")
	ErrSpotlightNotFound = errors.New("featured product not found")
	ErrSpotlightExists   = errors.New("featured product already exists")
	ErrCouponNotFound    = errors.New("coupon not found")
	ErrAlreadyUpvoted    = errors.New("you have already upvoted the product")
	ErrInvalidStatus     = errors.New("invalid product status")
	ErrPageOutOfRange    = errors.New("page out of range")

	ErrInvalidPrice       = errors.New("invalid price")
	ErrPaymentUnavailable = errors.New("payment provider not configured")
	ErrPaymentFailed      = errors.New("payment provider error")
)

// IsNotFound reports whether err is any of the entity-not-found sentinels.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrAccountNotFound) ||
		errors.Is(err, ErrListingNotFound) ||
		errors.Is(err, ErrSpotlightNotFound) ||
		errors.Is(err, ErrCouponNotFound)
}
