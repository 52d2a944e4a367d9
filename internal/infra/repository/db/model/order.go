package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// 訂單狀態
const (
	OrderStatusPendiente = "pendiente"
	OrderStatusEntregado = "entregado"
	OrderStatusCancelado = "cancelado"
)

type Order struct {
	OrderID       uint            `gorm:"primaryKey"`
	CustomerID    uint            `gorm:"not null"` // 外鍵，關聯到 Customer
	Customer      *Customer       `gorm:"foreignKey:CustomerID"`
	OrderItems    []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"` // 一對多，級聯刪除
	PaymentMethod string          `gorm:"type:varchar(20)"`
	Status        string          `gorm:"not null;type:varchar(20);default:pendiente"`
	Amount        decimal.Decimal `gorm:"not null;type:decimal(10,2)"`
	OrderDate     time.Time       `gorm:"not null"`
	BaseModel
}

type OrderItem struct {
	OrderID   uint            `gorm:"primaryKey"` // 外鍵，關聯到 Order
	ProductID uint            `gorm:"primaryKey"` // 外鍵，關聯到 Product
	Product   *Product        `gorm:"foreignKey:ProductID"`
	Quantity  int             `gorm:"not null"`
	Subtotal  decimal.Decimal `gorm:"not null;type:decimal(10,2)"`
	BaseModel
}
