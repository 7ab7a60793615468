package models

import "gorm.io/gorm"

// Tables lists every entity in migration order.
var Tables = []interface{}{
	&Medspa{},
	&ServiceCategory{},
	&ServiceType{},
	&Supplier{},
	&ServiceProduct{},
	&Service{},
	&Appointment{},
	&AppointmentService{},
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(Tables...)
}
