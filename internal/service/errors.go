package service

import "errors"

// Validation failures are caught before any repository write and map to
// 4xx responses at the API layer.
var (
	ErrNotFound            = errors.New("not found")
	ErrCartNotFound        = errors.New("cart not found")
	ErrItemNotInCart       = errors.New("item does not belong to this cart")
	ErrInvalidQuantity     = errors.New("quantity must be at least 1")
	ErrInvalidDateRange    = errors.New("end date must not precede start date")
	ErrInvalidDate         = errors.New("dates must be formatted yyyy-mm-dd")
	ErrProductUnavailable  = errors.New("product is not available for rent")
	ErrInvalidPromoCode    = errors.New("promo code is invalid or expired")
	ErrEmptyCart           = errors.New("cart is empty")
	ErrEmailTaken          = errors.New("email is already registered")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrNotOrderOwner       = errors.New("order does not belong to this user")
	ErrOrderNotReturnable  = errors.New("order is not in a returnable state")
	ErrAlreadyResolved     = errors.New("return request is already resolved")
	ErrNoPhotoEvidence     = errors.New("at least one evidence photo is required")
	ErrInvalidStatus       = errors.New("unknown status value")
	ErrMissingSignupFields = errors.New("name and email are required")
	ErrPasswordTooShort    = errors.New("password must be at least 8 characters")
	ErrMissingBankDetails  = errors.New("bank refund details are required")
	ErrPromoCodeRequired   = errors.New("promo code is required")
	ErrInvalidDiscount     = errors.New("discount percent must be within [1, 100]")
)
