package models

type ServiceCategory struct {
	ID   int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"not null" json:"name"`
}

func (ServiceCategory) TableName() string {
	return "service_categories"
}
