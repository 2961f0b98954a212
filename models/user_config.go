package models

import "time"

// UserConfig is the persisted per-user preference record. ConfigData holds
// the serialized overlay document (JSONB at the persistence layer); the
// application layer owns its schema.
type UserConfig struct {
	// UserID identifies the owning account. One row per user.
	UserID int64 `json:"-"`

	// ConfigData is the raw overlay document.
	ConfigData []byte `json:"config_data"`

	// UpdatedAt is the server-side timestamp of the last write.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the UserConfig model.
func (UserConfig) TableName() string {
	return "user_config"
}
