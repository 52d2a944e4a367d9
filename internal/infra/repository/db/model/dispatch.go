package model

import "time"

// DailyDispatch 每日配送清單，一筆對應一張訂單
type DailyDispatch struct {
	DispatchID   uint      `gorm:"primaryKey"`
	OrderID      uint      `gorm:"not null"` // 外鍵，關聯到 Order
	Order        *Order    `gorm:"foreignKey:OrderID"`
	DispatchDate time.Time `gorm:"not null;type:date"`
	Dispatched   bool      `gorm:"not null;default:false"`
	BaseModel
}
