package entities

import (
	"time"
)

type SubscriptionStatus string

const (
	SubscriptionStatusActive   SubscriptionStatus = "active"
	SubscriptionStatusExpired  SubscriptionStatus = "expired"
	SubscriptionStatusDisabled SubscriptionStatus = "disabled"
)

func (s SubscriptionStatus) String() string {
	return string(s)
}

type ProfileKind string

const (
	ProfileKindHotspot ProfileKind = "hotspot"
	ProfileKindPPPoE   ProfileKind = "pppoe"
)

// Voucher is a persisted prepaid hotspot credential. Code is the hotspot user name.
type Voucher struct {
	Code      string        `json:"code"`
	Password  string        `json:"password"`
	Profile   string        `json:"profile"`
	PriceSell float64       `json:"priceSell"`
	Status    VoucherStatus `json:"status"`
	UsedAt    *time.Time    `json:"usedAt,omitempty"`
	ExpiresAt *time.Time    `json:"expiresAt,omitempty"`
}

// PPPoEUser is a persisted always-on subscription.
type PPPoEUser struct {
	Username       string             `json:"username"`
	Password       string             `json:"password"`
	Profile        string             `json:"profile"`
	CustomerID     string             `json:"customerId"`
	SubscriptionID string             `json:"subscriptionId"`
	Status         SubscriptionStatus `json:"status"`
	CreatedAt      time.Time          `json:"createdAt"`
	ExpiresAt      *time.Time         `json:"expiresAt,omitempty"`
}

// Expired reports whether the subscription is past its expiry at now.
func (u PPPoEUser) Expired(now time.Time) bool {
	return u.ExpiresAt != nil && now.After(*u.ExpiresAt)
}

type Profile struct {
	Name            string      `json:"name"`
	Kind            ProfileKind `json:"kind"`
	DurationSeconds int64       `json:"durationSeconds"`
	PriceSell       float64     `json:"priceSell"`
}
