package gorm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/platemind/v1/internal/domain/profile"
	"github.com/platemind/v1/internal/infrastructure/config"
	appErrors "github.com/platemind/v1/pkg/errors"
)

// ProfileStore implements the outbound profile store port on SQLite.
type ProfileStore struct {
	db *gorm.DB
}

// Open connects the store and optionally migrates the schema.
func Open(cfg config.DatabaseConfig) (*ProfileStore, error) {
	db, err := gorm.Open(sqlite.Open(cfg.Path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open profile database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("access underlying connection: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if cfg.AutoMigrate {
		if err := db.AutoMigrate(&HouseholdModel{}, &MemberModel{}); err != nil {
			return nil, fmt.Errorf("migrate profile schema: %w", err)
		}
	}

	return &ProfileStore{db: db}, nil
}

// NewProfileStore wraps an existing connection, used by tests.
func NewProfileStore(db *gorm.DB) *ProfileStore {
	return &ProfileStore{db: db}
}

// GetFullProfile loads a household with all members. Called fresh on
// every engine invocation.
func (s *ProfileStore) GetFullProfile(ctx context.Context, householdID uuid.UUID) (*profile.Household, error) {
	var model HouseholdModel
	err := s.db.WithContext(ctx).
		Preload("Members").
		First(&model, "id = ?", householdID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, appErrors.NewProfileNotFoundError(householdID.String())
	}
	if err != nil {
		return nil, fmt.Errorf("load household %s: %w", householdID, err)
	}
	return toDomainHousehold(&model), nil
}

// SaveProfile upserts a household and replaces its member list.
func (s *ProfileStore) SaveProfile(ctx context.Context, h *profile.Household) error {
	if err := h.Validate(); err != nil {
		return err
	}
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	for i := range h.Members {
		if h.Members[i].ID == uuid.Nil {
			h.Members[i].ID = uuid.New()
		}
	}

	model := toHouseholdModel(h)
	now := time.Now().UTC()
	model.UpdatedAt = now

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("household_id = ?", h.ID).Delete(&MemberModel{}).Error; err != nil {
			return fmt.Errorf("clear members: %w", err)
		}
		if err := tx.Save(model).Error; err != nil {
			return fmt.Errorf("save household: %w", err)
		}
		return nil
	})
}

// DeleteProfile removes a household and its members.
func (s *ProfileStore) DeleteProfile(ctx context.Context, householdID uuid.UUID) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("household_id = ?", householdID).Delete(&MemberModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&HouseholdModel{}, "id = ?", householdID).Error
	})
}
