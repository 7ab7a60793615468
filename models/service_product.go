package models

// ServiceProduct belongs to exactly one type and is supplied by one supplier.
// TypeID is fixed once created.
type ServiceProduct struct {
	ID         int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	TypeID     int64  `gorm:"index;not null" json:"type_id"`
	SupplierID int64  `gorm:"index;not null" json:"supplier_id"`
	Name       string `gorm:"not null" json:"name"`

	Type     *ServiceType `gorm:"foreignKey:TypeID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Supplier *Supplier    `gorm:"foreignKey:SupplierID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
}

func (ServiceProduct) TableName() string {
	return "service_products"
}
