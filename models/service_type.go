package models

// ServiceType belongs to exactly one category. CategoryID is fixed once created.
type ServiceType struct {
	ID         int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	CategoryID int64  `gorm:"index;not null" json:"category_id"`
	Name       string `gorm:"not null" json:"name"`

	Category *ServiceCategory `gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
}

func (ServiceType) TableName() string {
	return "service_types"
}
