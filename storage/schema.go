package storage

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// productRow declares the local MySQL schema for migration. Column names are
// the flattened lowercase ones of the mysql mapping profile — including the
// allowcustomname column, which this schema names differently from the
// hosted backend. Runtime reads and writes go through column-keyed maps, not
// this struct.
type productRow struct {
	ID                  string         `gorm:"column:id;type:varchar(36);primaryKey"`
	Name                string         `gorm:"column:name;type:varchar(255);not null"`
	Description         string         `gorm:"column:description;type:text"`
	Price               float64        `gorm:"column:price;type:decimal(10,2);not null"`
	Category            string         `gorm:"column:category;type:varchar(100);index"`
	Stock               int            `gorm:"column:stock;not null"`
	ImageURL            string         `gorm:"column:imageurl;type:varchar(512)"`
	Discount            int            `gorm:"column:discount"`
	Featured            bool           `gorm:"column:featured;index"`
	DescriptionImages   datatypes.JSON `gorm:"column:descriptionimages"`
	SpecificationImages datatypes.JSON `gorm:"column:specificationimages"`
	DeliveryImages      datatypes.JSON `gorm:"column:deliveryimages"`
	AllowCustomName     bool           `gorm:"column:allowcustomname"`
	Colors              datatypes.JSON `gorm:"column:colors"`
	CreatedAt           time.Time      `gorm:"column:createdat"`
}

func (productRow) TableName() string {
	return "products"
}

// AutoMigrate creates or updates the products table.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&productRow{})
}
