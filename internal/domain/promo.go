package domain

import "time"

// PromoCode is a percentage reduction applied to the cart subtotal.
type PromoCode struct {
	ID              int32      `json:"id"`
	Code            string     `json:"code"`
	DiscountPercent int        `json:"discount_percent"`
	Active          bool       `json:"active"`
	ExpiresOn       *time.Time `json:"expires_on,omitempty"`
	CreatedOn       time.Time  `json:"created_on"`
}

// Usable reports whether the code can be applied right now.
func (p *PromoCode) Usable(now time.Time) bool {
	if !p.Active {
		return false
	}
	if p.ExpiresOn != nil && now.After(*p.ExpiresOn) {
		return false
	}
	return true
}
