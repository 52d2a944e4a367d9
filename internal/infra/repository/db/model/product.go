package model

import (
	"github.com/shopspring/decimal"
)

type Product struct {
	ProductID  uint            `gorm:"primaryKey"`
	Name       string          `gorm:"not null;type:varchar(100);unique"`
	Price      decimal.Decimal `gorm:"not null;type:decimal(10,2)"`
	OrderItems []OrderItem     `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	BaseModel
}
