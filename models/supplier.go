package models

type Supplier struct {
	ID   int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"not null" json:"name"`
}

func (Supplier) TableName() string {
	return "service_product_suppliers"
}
