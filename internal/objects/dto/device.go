package dto

import (
	"time"

	"github.com/samber/lo"

	"github.com/rickicode/mikrotik-billing/internal/entities"
)

type Param struct {
	Key   string `json:"key" validate:"required"`
	Value string `json:"value"`
}

type CommandRequest struct {
	Path      string  `json:"path" validate:"required,startswith=/"`
	Params    []Param `json:"params,omitempty" validate:"dive"`
	TimeoutMs int64   `json:"timeoutMs,omitempty" validate:"gte=0"`
	NoCache   bool    `json:"noCache,omitempty"`
}

func (r CommandRequest) ToEntity() entities.Command {
	var params []entities.Param
	for _, p := range r.Params {
		params = append(params, entities.NewParam(p.Key, p.Value))
	}

	cmd := entities.NewCommand(r.Path, params...)

	if r.TimeoutMs > 0 {
		cmd = cmd.WithTimeout(time.Duration(r.TimeoutMs) * time.Millisecond)
	}

	return cmd
}

type BatchRequest struct {
	Commands []CommandRequest `json:"commands" validate:"required,min=1,dive"`
	NoCache  bool             `json:"noCache,omitempty"`
}

type Reply struct {
	Rows     []entities.Row `json:"rows"`
	Ret      string         `json:"ret,omitempty"`
	Cached   bool           `json:"cached,omitempty"`
	Offline  bool           `json:"offline,omitempty"`
	Degraded bool           `json:"degraded,omitempty"`
	Cause    string         `json:"cause,omitempty"`
}

func NewReply(reply entities.Reply) Reply {
	return Reply{
		Rows:     reply.Rows,
		Ret:      reply.Ret,
		Cached:   reply.Cached,
		Offline:  reply.Offline,
		Degraded: reply.Degraded,
		Cause:    reply.CauseMessage(),
	}
}

type BatchResult struct {
	Path  string `json:"path"`
	Reply Reply  `json:"reply"`
	Error string `json:"error,omitempty"`
}

func NewBatchResults(results []entities.BatchResult) []BatchResult {
	return lo.Map(results, func(result entities.BatchResult, _ int) BatchResult {
		item := BatchResult{
			Path:  result.Command.Path,
			Reply: NewReply(result.Reply),
		}
		if result.Err != nil {
			item.Error = result.Err.Error()
		}

		return item
	})
}

type CreateVoucherRequest struct {
	Code        string     `json:"code" validate:"required"`
	Password    string     `json:"password"`
	Profile     string     `json:"profile" validate:"required"`
	PriceSell   float64    `json:"priceSell" validate:"gte=0"`
	LimitUptime string     `json:"limitUptime,omitempty"`
	ExpiresAt   *time.Time `json:"expiresAt,omitempty"`
}

func (r CreateVoucherRequest) ToVoucher() entities.Voucher {
	return entities.Voucher{
		Code:      r.Code,
		Password:  r.Password,
		Profile:   r.Profile,
		PriceSell: r.PriceSell,
		Status:    entities.VoucherStatusAvailable,
		ExpiresAt: r.ExpiresAt,
	}
}

func (r CreateVoucherRequest) ToDeviceUser() entities.NewVoucherUser {
	user := entities.NewVoucherUser{
		Code:        r.Code,
		Password:    r.Password,
		Profile:     r.Profile,
		PriceSell:   r.PriceSell,
		LimitUptime: r.LimitUptime,
	}
	if r.ExpiresAt != nil {
		user.ValidUntil = lo.ToPtr(r.ExpiresAt.Unix())
	}

	return user
}

type UpdateHotspotUserRequest struct {
	Name        string  `json:"name" validate:"required"`
	Password    *string `json:"password,omitempty"`
	Profile     *string `json:"profile,omitempty"`
	LimitUptime *string `json:"limitUptime,omitempty"`
	Disabled    *bool   `json:"disabled,omitempty"`
}

func (r UpdateHotspotUserRequest) ToEntity() entities.HotspotUserUpdate {
	return entities.HotspotUserUpdate{
		Password:    r.Password,
		Profile:     r.Profile,
		LimitUptime: r.LimitUptime,
		Disabled:    r.Disabled,
	}
}

type CreatePPPoERequest struct {
	Username       string     `json:"username" validate:"required"`
	Password       string     `json:"password" validate:"required"`
	Profile        string     `json:"profile" validate:"required"`
	Service        string     `json:"service,omitempty"`
	CustomerID     string     `json:"customerId"`
	SubscriptionID string     `json:"subscriptionId"`
	ExpiresAt      *time.Time `json:"expiresAt,omitempty"`
}

func (r CreatePPPoERequest) ToUser(createdAt time.Time) entities.PPPoEUser {
	return entities.PPPoEUser{
		Username:       r.Username,
		Password:       r.Password,
		Profile:        r.Profile,
		CustomerID:     r.CustomerID,
		SubscriptionID: r.SubscriptionID,
		Status:         entities.SubscriptionStatusActive,
		CreatedAt:      createdAt,
		ExpiresAt:      r.ExpiresAt,
	}
}

func (r CreatePPPoERequest) ToSecret(createdAt time.Time) entities.NewPPPoESecret {
	return entities.NewPPPoESecret{
		Username:       r.Username,
		Password:       r.Password,
		Profile:        r.Profile,
		Service:        r.Service,
		CustomerID:     r.CustomerID,
		SubscriptionID: r.SubscriptionID,
		CreatedAt:      createdAt.Unix(),
	}
}

type DeletePPPoERequest struct {
	Username string `json:"username" validate:"required"`
}
