// Package gorm implements the profile store on GORM with SQLite.
package gorm

import (
	"time"

	"github.com/google/uuid"
)

// HouseholdModel is the persistence shape of a household profile.
type HouseholdModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name            string    `gorm:"size:200;not null"`
	FavoredCuisines string    `gorm:"size:500"`
	AvoidedCuisines string    `gorm:"size:500"`
	PantryLevel     string    `gorm:"size:20"`
	Language        string    `gorm:"size:10"`
	Measurement     string    `gorm:"size:10"`

	Members []MemberModel `gorm:"foreignKey:HouseholdID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides the table name
func (HouseholdModel) TableName() string { return "households" }

// MemberModel is the persistence shape of a household member.
//
// Allergens and DietaryRestrictions are nullable columns: NULL means
// the member never answered the question, an empty string means they
// declared having none. The distinction must survive a round trip
// because the gate blocks on undeclared fields.
type MemberModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	HouseholdID uuid.UUID `gorm:"type:uuid;index;not null"`
	Name        string    `gorm:"size:200;not null"`
	AgeCategory string    `gorm:"size:20"`

	Allergens           *string `gorm:"size:1000"`
	DietaryRestrictions *string `gorm:"size:1000"`
	HealthConditions    string  `gorm:"size:1000"`
	MedicalNote         string  `gorm:"size:2000"`

	SpiceTolerance int
	Likes          string `gorm:"size:1000"`
	Dislikes       string `gorm:"size:1000"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides the table name
func (MemberModel) TableName() string { return "household_members" }
