package model

import (
	"time"

	"github.com/google/uuid"
)

// ProductReminderModel mirrors the 'product_reminders' table.
type ProductReminderModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	UserID      uuid.UUID  `gorm:"type:uuid;not null;index:idx_product_reminders_on_user"`
	SearchTerm  string     `gorm:"type:varchar(200);not null"`
	ProductID   *uuid.UUID `gorm:"type:uuid"`
	StoreID     *uuid.UUID `gorm:"type:uuid"`
	NotifiedAt  *time.Time
	DismissedAt *time.Time
	IsActive    bool `gorm:"not null;default:true"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductReminderModel) TableName() string {
	return "product_reminders"
}
