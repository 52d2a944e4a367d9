package dto

import "time"

// CustomerDTO 表示客戶資訊
type CustomerDTO struct {
	ID            uint       `json:"id"`
	Name          string     `json:"name"`
	Phone         string     `json:"phone"`
	Address       string     `json:"address"`
	LastOrderDate *time.Time `json:"last_order_date"`
}

type CustomerSectionDTO struct {
	Title     string        `json:"title"`
	Customers []CustomerDTO `json:"customers"`
}

type CreateCustomerDTO struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// ProductDTO 表示商品資訊，價格以字串傳遞避免浮點誤差
type ProductDTO struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Price string `json:"price"`
}

type CreateProductDTO struct {
	Name  string `json:"name"`
	Price string `json:"price"`
}

//草稿操作

type DraftAddCustomerDTO struct {
	CustomerID uint `json:"customer_id"`
}

type DraftAddProductDTO struct {
	CustomerID uint `json:"customer_id"`
	ProductID  uint `json:"product_id"`
}

type DraftSetQuantityDTO struct {
	CustomerID uint `json:"customer_id"`
	ProductID  uint `json:"product_id"`
	Quantity   int  `json:"quantity"`
}

type DraftSetPaymentMethodDTO struct {
	CustomerID    uint   `json:"customer_id"`
	PaymentMethod string `json:"payment_method"`
}

type DraftLineItemDTO struct {
	ProductID   uint   `json:"product_id"`
	ProductName string `json:"product_name"`
	Price       string `json:"price"`
	Quantity    int    `json:"quantity"`
	Subtotal    string `json:"subtotal"`
}

type DraftCustomerOrderDTO struct {
	Customer      CustomerDTO        `json:"customer"`
	PaymentMethod string             `json:"payment_method"`
	Items         []DraftLineItemDTO `json:"items"`
	Total         string             `json:"total"`
}

// DraftDTO 草稿完整狀態加上即時計算的各項總計
type DraftDTO struct {
	DraftID    string                  `json:"draft_id"`
	Orders     []DraftCustomerOrderDTO `json:"orders"`
	GrandTotal string                  `json:"grand_total"`
}

//訂單

type OrderItemDTO struct {
	ProductID   uint   `json:"product_id"`
	ProductName string `json:"product_name"`
	Price       string `json:"price"`
	Quantity    int    `json:"quantity"`
	Subtotal    string `json:"subtotal"`
}

type OrderDTO struct {
	ID            uint           `json:"id"`
	Customer      *CustomerDTO   `json:"customer"`
	PaymentMethod string         `json:"payment_method"`
	Status        string         `json:"status"`
	Amount        string         `json:"amount"`
	OrderDate     time.Time      `json:"order_date"`
	Items         []OrderItemDTO `json:"items"`
}

type UpdateOrderStatusDTO struct {
	Status string `json:"status"`
}

//配送

type CreateDispatchDTO struct {
	OrderID      uint   `json:"order_id"`
	DispatchDate string `json:"dispatch_date"` // yyyy-mm-dd
}

type UpdateDispatchedDTO struct {
	Dispatched bool `json:"dispatched"`
}

type DispatchDTO struct {
	ID           uint      `json:"id"`
	Order        *OrderDTO `json:"order"`
	DispatchDate string    `json:"dispatch_date"`
	Dispatched   bool      `json:"dispatched"`
}

//摘要

type SummaryDTO struct {
	Text string `json:"text"`
}
