package services

import "errors"

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrOutOfStock         = errors.New("insufficient stock")
	ErrCouponInvalid      = errors.New("coupon invalid or exhausted")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrInvalidRating      = errors.New("rating must be between 1 and 5")
	ErrNotEligible        = errors.New("no delivered order with this product")
	ErrAlreadyReviewed    = errors.New("product already reviewed")
	ErrEmptyMessage       = errors.New("message needs content, image or location")
)
