package billing

import (
	"time"

	"github.com/rickicode/mikrotik-billing/internal/entities"
)

type VoucherModel struct {
	ID        uint       `gorm:"primaryKey"`
	Code      string     `gorm:"column:code;size:64;uniqueIndex"`
	Password  string     `gorm:"column:password;size:64"`
	Profile   string     `gorm:"column:profile;size:64"`
	PriceSell float64    `gorm:"column:price_sell"`
	Status    string     `gorm:"column:status;size:16;index"`
	UsedAt    *time.Time `gorm:"column:used_at"`
	ExpiresAt *time.Time `gorm:"column:expires_at"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (VoucherModel) TableName() string {
	return "vouchers"
}

func (m VoucherModel) toEntity() entities.Voucher {
	return entities.Voucher{
		Code:      m.Code,
		Password:  m.Password,
		Profile:   m.Profile,
		PriceSell: m.PriceSell,
		Status:    entities.VoucherStatus(m.Status),
		UsedAt:    m.UsedAt,
		ExpiresAt: m.ExpiresAt,
	}
}

func newVoucherModel(v entities.Voucher) VoucherModel {
	return VoucherModel{
		Code:      v.Code,
		Password:  v.Password,
		Profile:   v.Profile,
		PriceSell: v.PriceSell,
		Status:    string(v.Status),
		UsedAt:    v.UsedAt,
		ExpiresAt: v.ExpiresAt,
	}
}

type PPPoEUserModel struct {
	ID             uint       `gorm:"primaryKey"`
	Username       string     `gorm:"column:username;size:64;uniqueIndex"`
	Password       string     `gorm:"column:password;size:64"`
	Profile        string     `gorm:"column:profile;size:64"`
	CustomerID     string     `gorm:"column:customer_id;size:64;index"`
	SubscriptionID string     `gorm:"column:subscription_id;size:64"`
	Status         string     `gorm:"column:status;size:16;index"`
	ExpiresAt      *time.Time `gorm:"column:expires_at"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (PPPoEUserModel) TableName() string {
	return "pppoe_users"
}

func (m PPPoEUserModel) toEntity() entities.PPPoEUser {
	return entities.PPPoEUser{
		Username:       m.Username,
		Password:       m.Password,
		Profile:        m.Profile,
		CustomerID:     m.CustomerID,
		SubscriptionID: m.SubscriptionID,
		Status:         entities.SubscriptionStatus(m.Status),
		CreatedAt:      m.CreatedAt,
		ExpiresAt:      m.ExpiresAt,
	}
}

func newPPPoEUserModel(u entities.PPPoEUser) PPPoEUserModel {
	return PPPoEUserModel{
		Username:       u.Username,
		Password:       u.Password,
		Profile:        u.Profile,
		CustomerID:     u.CustomerID,
		SubscriptionID: u.SubscriptionID,
		Status:         string(u.Status),
		ExpiresAt:      u.ExpiresAt,
		CreatedAt:      u.CreatedAt,
	}
}

type ProfileModel struct {
	ID              uint    `gorm:"primaryKey"`
	Name            string  `gorm:"column:name;size:64;uniqueIndex:idx_profiles_kind_name"`
	Kind            string  `gorm:"column:kind;size:16;uniqueIndex:idx_profiles_kind_name"`
	DurationSeconds int64   `gorm:"column:duration_seconds"`
	PriceSell       float64 `gorm:"column:price_sell"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (ProfileModel) TableName() string {
	return "profiles"
}

func (m ProfileModel) toEntity() entities.Profile {
	return entities.Profile{
		Name:            m.Name,
		Kind:            entities.ProfileKind(m.Kind),
		DurationSeconds: m.DurationSeconds,
		PriceSell:       m.PriceSell,
	}
}
