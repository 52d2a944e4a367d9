package model

import "time"

type Customer struct {
	CustomerID    uint       `gorm:"primaryKey"`
	Name          string     `gorm:"not null;type:varchar(100)"`
	Phone         string     `gorm:"not null;type:varchar(50);unique"`
	Address       string     `gorm:"not null;type:varchar(255)"`
	LastOrderDate *time.Time `gorm:"null"`
	Orders        []Order    `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
	BaseModel
}
