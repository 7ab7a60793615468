package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Service struct {
	ID          int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	MedspaID    int64           `gorm:"index;not null" json:"medspa_id"`
	CategoryID  int64           `gorm:"index;not null" json:"category_id"`
	TypeID      int64           `gorm:"index;not null" json:"type_id"`
	ProductID   int64           `gorm:"index;not null" json:"product_id"`
	Name        string          `gorm:"not null" json:"name"`
	Description string          `gorm:"type:text" json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Duration    int             `gorm:"not null" json:"duration"` // in minutes
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`

	Medspa   *Medspa          `gorm:"foreignKey:MedspaID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Category *ServiceCategory `gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Type     *ServiceType     `gorm:"foreignKey:TypeID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Product  *ServiceProduct  `gorm:"foreignKey:ProductID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
}
