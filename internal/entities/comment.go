package entities

type CommentKind string

const (
	CommentKindVoucher CommentKind = "voucher"
	CommentKindPPPoE   CommentKind = "pppoe"
	CommentKindGeneric CommentKind = "generic"
	CommentKindRaw     CommentKind = "raw"
)

// Comment is the decoded business metadata of a device entity.
type Comment interface {
	Kind() CommentKind
}

type VoucherStatus string

const (
	VoucherStatusAvailable VoucherStatus = "available"
	VoucherStatusActive    VoucherStatus = "active"
	VoucherStatusExpired   VoucherStatus = "expired"
)

func (s VoucherStatus) String() string {
	return string(s)
}

// VoucherComment is the voucher state kept in a hotspot user comment.
// Nil timestamps are encoded as zero.
type VoucherComment struct {
	PriceSell     float64       `json:"priceSell"`
	FirstLogin    *int64        `json:"firstLoginTimestamp"`
	ValidUntil    *int64        `json:"validUntilTimestamp"`
	Status        VoucherStatus `json:"status"`
	TimeRemaining int64         `json:"timeRemaining"`
}

func (VoucherComment) Kind() CommentKind {
	return CommentKindVoucher
}

type PPPoEComment struct {
	CustomerID     string `json:"customer_id"`
	SubscriptionID string `json:"subscription_id"`
	CreatedAt      int64  `json:"created_at"`
}

func (PPPoEComment) Kind() CommentKind {
	return CommentKindPPPoE
}

// GenericComment is a JSON comment of a type the billing system does not model.
type GenericComment struct {
	Type string         `json:"type"`
	Data map[string]any `json:"data"`
}

func (GenericComment) Kind() CommentKind {
	return CommentKindGeneric
}

// RawComment is free text, usually written by an operator by hand.
type RawComment struct {
	Text string `json:"comment"`
}

func (RawComment) Kind() CommentKind {
	return CommentKindRaw
}
