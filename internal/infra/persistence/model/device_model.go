// Package model holds the GORM-specific structs backing the domain entities.
package model

// DeviceModel is the GORM-specific struct for the 'devices' table.
// Timestamps are stored as epoch milliseconds. The composite primary key on
// (tenant, identifier) is the uniqueness backstop for concurrent enrollment
// attempts; the state machine's existence pre-check is best-effort only.
type DeviceModel struct {
	Tenant     string `gorm:"type:varchar(64);primaryKey"`
	Identifier string `gorm:"type:varchar(64);primaryKey"`
	Name       string `gorm:"type:varchar(255);not null"`
	Type       string `gorm:"type:varchar(64);not null"`
	Owner      string `gorm:"type:varchar(255);not null"`
	Status     string `gorm:"type:varchar(32);not null"`
	Ownership  string `gorm:"type:varchar(32);not null"`
	EnrolledAt int64  `gorm:"column:enrolled_at;not null"`
	UpdatedAt  int64  `gorm:"column:last_updated_at;not null"`
}

// TableName explicitly sets the table name for GORM.
func (DeviceModel) TableName() string {
	return "devices"
}
