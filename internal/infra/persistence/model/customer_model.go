package model

import "time"

// CustomerModel mirrors the 'clientes' table.
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type CustomerModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	FirstName string    `gorm:"column:nombre;type:varchar(40);not null"`
	LastName  string    `gorm:"column:apellido;type:varchar(40);not null"`
	Email     string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	CreateAt  time.Time `gorm:"column:create_at;type:date;not null"`
	RegionID  *int64    `gorm:"index"`
	Region    *RegionModel
	Photo     string `gorm:"column:foto;type:varchar(255)"`
}

// TableName explicitly sets the table name for GORM.
func (CustomerModel) TableName() string {
	return "clientes"
}

// RegionModel mirrors the read-only 'regiones' table.
type RegionModel struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"column:nombre;type:varchar(100);not null"`
}

// TableName explicitly sets the table name for GORM.
func (RegionModel) TableName() string {
	return "regiones"
}
