package model

import (
	"time"

	"convoy/internal/domain/entity"

	"github.com/google/uuid"
)

// BeaconModel mirrors the 'beacons' table. Resolved beacons are deleted, so
// the table only ever holds the live feed.
type BeaconModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key"`
	UserID      uuid.UUID  `gorm:"type:uuid;index;not null"`
	DisplayName string     `gorm:"type:varchar(100);not null"`
	AvatarRef   string     `gorm:"type:varchar(255)"`
	Latitude    float64    `gorm:"not null"`
	Longitude   float64    `gorm:"not null"`
	Kind        string     `gorm:"type:varchar(32);not null"`
	Description string     `gorm:"type:text"`
	Status      string     `gorm:"type:varchar(16);not null;index"`
	HelperID    *uuid.UUID `gorm:"type:uuid"`
	HelperName  string     `gorm:"type:varchar(100)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (BeaconModel) TableName() string {
	return "beacons"
}

// FromBeaconDomain converts a domain beacon to its row form.
func FromBeaconDomain(beacon *entity.Beacon) *BeaconModel {
	return &BeaconModel{
		ID:          beacon.ID,
		UserID:      beacon.UserID,
		DisplayName: beacon.DisplayName,
		AvatarRef:   beacon.AvatarRef,
		Latitude:    beacon.Position.Lat(),
		Longitude:   beacon.Position.Lon(),
		Kind:        string(beacon.Kind),
		Description: beacon.Description,
		Status:      string(beacon.Status),
		HelperID:    beacon.HelperID,
		HelperName:  beacon.HelperName,
		CreatedAt:   beacon.CreatedAt,
		UpdatedAt:   beacon.UpdatedAt,
	}
}

// ToBeaconDomain converts a row back to the domain entity.
func ToBeaconDomain(m *BeaconModel) *entity.Beacon {
	return &entity.Beacon{
		ID:          m.ID,
		UserID:      m.UserID,
		DisplayName: m.DisplayName,
		AvatarRef:   m.AvatarRef,
		Position:    entity.PositionOf(m.Latitude, m.Longitude),
		Kind:        entity.BeaconKind(m.Kind),
		Description: m.Description,
		Status:      entity.BeaconStatus(m.Status),
		HelperID:    m.HelperID,
		HelperName:  m.HelperName,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
