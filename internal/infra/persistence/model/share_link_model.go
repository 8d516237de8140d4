package model

import (
	"time"

	"github.com/google/uuid"
)

// ShareLinkModel mirrors the 'share_links' table. Only the argon2id hash
// of the secret is stored; the plaintext never touches the database.
type ShareLinkModel struct {
	ShareID     string    `gorm:"type:varchar(32);primary_key"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	CalendarID  uuid.UUID `gorm:"type:uuid;not null"`
	Description string    `gorm:"type:varchar(255)"`
	SecretHash  string    `gorm:"type:varchar(255);not null"`
	CreatedAt   time.Time
	LastUsed    *time.Time
}

// TableName explicitly sets the table name for GORM.
func (ShareLinkModel) TableName() string {
	return "share_links"
}

// ShareIndexModel mirrors the 'share_index' table, the reverse index from
// a secret's lookup key to its owning record. Rows here are derived state
// and always written in the same transaction as their share_links row.
type ShareIndexModel struct {
	LookupKey string    `gorm:"type:varchar(64);primary_key"`
	UserID    uuid.UUID `gorm:"type:uuid;not null"`
	ShareID   string    `gorm:"type:varchar(32);not null;index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ShareIndexModel) TableName() string {
	return "share_index"
}
