package entities

// NewVoucherUser is a hotspot user created for a voucher.
type NewVoucherUser struct {
	Code        string  `json:"code" validate:"required"`
	Password    string  `json:"password"`
	Profile     string  `json:"profile" validate:"required"`
	PriceSell   float64 `json:"priceSell" validate:"gte=0"`
	FirstLogin  *int64  `json:"firstLogin,omitempty"`
	ValidUntil  *int64  `json:"validUntil,omitempty"`
	LimitUptime string  `json:"limitUptime,omitempty"`
}

// HotspotUserUpdate changes only the fields that are set.
// Comment is always written in full.
type HotspotUserUpdate struct {
	Password    *string         `json:"password,omitempty"`
	Profile     *string         `json:"profile,omitempty"`
	LimitUptime *string         `json:"limitUptime,omitempty"`
	Disabled    *bool           `json:"disabled,omitempty"`
	Comment     *VoucherComment `json:"comment,omitempty"`
}

// Params returns the set words of the update.
func (u HotspotUserUpdate) Params() (params []Param) {
	if u.Password != nil {
		params = append(params, NewParam("password", *u.Password))
	}
	if u.Profile != nil {
		params = append(params, NewParam("profile", *u.Profile))
	}
	if u.LimitUptime != nil {
		params = append(params, NewParam("limit-uptime", *u.LimitUptime))
	}
	if u.Disabled != nil {
		params = append(params, NewParam("disabled", FormatBool(*u.Disabled)))
	}

	return params
}

func (u HotspotUserUpdate) IsEmpty() bool {
	return u.Password == nil &&
		u.Profile == nil &&
		u.LimitUptime == nil &&
		u.Disabled == nil &&
		u.Comment == nil
}

// NewPPPoESecret is a PPPoE account created for a subscription.
type NewPPPoESecret struct {
	Username       string `json:"username" validate:"required"`
	Password       string `json:"password" validate:"required"`
	Profile        string `json:"profile" validate:"required"`
	Service        string `json:"service,omitempty"`
	CustomerID     string `json:"customerId"`
	SubscriptionID string `json:"subscriptionId"`
	CreatedAt      int64  `json:"createdAt"`
}
