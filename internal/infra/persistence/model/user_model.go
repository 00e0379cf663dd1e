// Package model contains the GORM table mappings for the persistence layer.
package model

import (
	"encoding/json"
	"time"

	"convoy/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// UserModel mirrors the 'users' table. Only the directory view lives here;
// credentials and account management are owned by another service.
type UserModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	DisplayName   string    `gorm:"type:varchar(100);not null"`
	AvatarRef     string    `gorm:"type:varchar(255)"`
	DeliveryToken string    `gorm:"type:varchar(512);index"`
	StatusText    string    `gorm:"type:varchar(140)"`
	AllowContact  bool      `gorm:"not null;default:true"`
	MapVisible    bool      `gorm:"not null;default:true"`
	Settings      []byte    `gorm:"type:jsonb"`
	HomeZone      []byte    `gorm:"type:jsonb"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// ToUserDomain converts the row to a domain entity.
func ToUserDomain(m *UserModel) (*entity.User, error) {
	user := &entity.User{
		ID:            m.ID,
		DisplayName:   m.DisplayName,
		AvatarRef:     m.AvatarRef,
		DeliveryToken: m.DeliveryToken,
		StatusText:    m.StatusText,
		AllowContact:  m.AllowContact,
		MapVisible:    m.MapVisible,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}

	if len(m.Settings) > 0 {
		settings := new(entity.NotificationSettings)
		if err := json.Unmarshal(m.Settings, settings); err != nil {
			return nil, errors.Wrap(err, "failed to decode notification settings")
		}
		user.Settings = settings
	}

	if len(m.HomeZone) > 0 {
		zone := new(entity.HomeZone)
		if err := json.Unmarshal(m.HomeZone, zone); err != nil {
			return nil, errors.Wrap(err, "failed to decode home zone")
		}
		user.HomeZone = zone
	}

	return user, nil
}

// FromSettingsDomain encodes notification settings for the jsonb column.
func FromSettingsDomain(settings *entity.NotificationSettings) ([]byte, error) {
	if settings == nil {
		return nil, nil
	}

	raw, err := json.Marshal(settings)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode notification settings")
	}

	return raw, nil
}
