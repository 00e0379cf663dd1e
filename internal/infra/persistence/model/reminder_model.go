package model

import (
	"time"

	"convoy/internal/domain/entity"

	"github.com/google/uuid"
)

// VehicleReminderModel mirrors the 'vehicle_reminders' table.
type VehicleReminderModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID      uuid.UUID `gorm:"type:uuid;index;not null"`
	VehicleName string    `gorm:"type:varchar(100)"`
	Type        string    `gorm:"type:varchar(32);not null"`
	ExpiresOn   time.Time `gorm:"type:date;not null"`
	Enabled     bool      `gorm:"not null;default:true;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (VehicleReminderModel) TableName() string {
	return "vehicle_reminders"
}

// ToReminderDomain converts a row to the domain entity.
func ToReminderDomain(m *VehicleReminderModel) *entity.VehicleReminder {
	return &entity.VehicleReminder{
		ID:          m.ID,
		UserID:      m.UserID,
		VehicleName: m.VehicleName,
		Type:        entity.VehicleReminderType(m.Type),
		ExpiresOn:   m.ExpiresOn,
		Enabled:     m.Enabled,
	}
}
