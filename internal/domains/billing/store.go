package billing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/samber/lo"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/rickicode/mikrotik-billing/internal/entities"
	"github.com/rickicode/mikrotik-billing/internal/errs"
	"github.com/rickicode/mikrotik-billing/internal/logger"
)

const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

// Open connects to the billing database. Supported drivers: postgres, mysql.
func Open(driver, dsn string) (db *gorm.DB, err error) {
	var dialector gorm.Dialector
	switch driver {
	case DriverPostgres:
		dialector = postgres.Open(dsn)
	case DriverMySQL:
		dialector = mysql.Open(dsn)
	default:
		return nil, fmt.Errorf("Open: %w: unsupported database driver %q", errs.ErrConfiguration, driver)
	}

	if db, err = gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.New(logger.NewGormWriter(), gormlogger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	}); err != nil {
		return nil, fmt.Errorf("Open: %w", err)
	}

	return db, nil
}

// Store keeps vouchers, PPPoE subscriptions and profiles.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{
		db: db,
	}
}

func (s *Store) AutoMigrate(ctx context.Context) (err error) {
	if err = s.db.WithContext(ctx).AutoMigrate(&VoucherModel{}, &PPPoEUserModel{}, &ProfileModel{}); err != nil {
		return fmt.Errorf("AutoMigrate: %w", err)
	}

	return nil
}

// FindActiveVouchers returns vouchers that are sold and not expired yet.
func (s *Store) FindActiveVouchers(ctx context.Context) (vouchers []entities.Voucher, err error) {
	var models []VoucherModel
	if err = s.db.WithContext(ctx).
		Where("status IN ?", []string{
			string(entities.VoucherStatusAvailable),
			string(entities.VoucherStatusActive),
		}).
		Order("id").
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("FindActiveVouchers: %w", err)
	}

	return lo.Map(models, func(m VoucherModel, _ int) entities.Voucher {
		return m.toEntity()
	}), nil
}

func (s *Store) FindActivePPPoEUsers(ctx context.Context) (users []entities.PPPoEUser, err error) {
	var models []PPPoEUserModel
	if err = s.db.WithContext(ctx).
		Where("status = ?", string(entities.SubscriptionStatusActive)).
		Order("id").
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("FindActivePPPoEUsers: %w", err)
	}

	return lo.Map(models, func(m PPPoEUserModel, _ int) entities.PPPoEUser {
		return m.toEntity()
	}), nil
}

// UpdateVoucherStatus sets the voucher status, and used_at when given.
func (s *Store) UpdateVoucherStatus(ctx context.Context, code string, status entities.VoucherStatus, usedAt *time.Time) (err error) {
	updates := map[string]any{
		"status": string(status),
	}
	if usedAt != nil {
		updates["used_at"] = *usedAt
	}

	result := s.db.WithContext(ctx).
		Model(&VoucherModel{}).
		Where("code = ?", code).
		Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("UpdateVoucherStatus: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("UpdateVoucherStatus: voucher %s: %w", code, gorm.ErrRecordNotFound)
	}

	return nil
}

func (s *Store) UpdatePPPoEStatus(ctx context.Context, username string, status entities.SubscriptionStatus) (err error) {
	result := s.db.WithContext(ctx).
		Model(&PPPoEUserModel{}).
		Where("username = ?", username).
		Update("status", string(status))
	if result.Error != nil {
		return fmt.Errorf("UpdatePPPoEStatus: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("UpdatePPPoEStatus: user %s: %w", username, gorm.ErrRecordNotFound)
	}

	return nil
}

func (s *Store) FindProfileByName(ctx context.Context, name string) (profile entities.Profile, err error) {
	var model ProfileModel
	if err = s.db.WithContext(ctx).
		Where("name = ?", name).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return profile, fmt.Errorf("FindProfileByName: %s: %w", name, errs.ErrProfileNotFound)
		}

		return profile, fmt.Errorf("FindProfileByName: %w", err)
	}

	return model.toEntity(), nil
}

// CreateVoucher stores a sold voucher.
func (s *Store) CreateVoucher(ctx context.Context, voucher entities.Voucher) (err error) {
	model := newVoucherModel(voucher)
	if err = s.db.WithContext(ctx).Create(&model).Error; err != nil {
		return fmt.Errorf("CreateVoucher: %w", err)
	}

	return nil
}

func (s *Store) CreatePPPoEUser(ctx context.Context, user entities.PPPoEUser) (err error) {
	model := newPPPoEUserModel(user)
	if err = s.db.WithContext(ctx).Create(&model).Error; err != nil {
		return fmt.Errorf("CreatePPPoEUser: %w", err)
	}

	return nil
}
