package model

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrCustomerAlreadyInDraft = errors.New("customer already in draft")
	ErrCustomerNotInDraft     = errors.New("customer not in draft")
	ErrInvalidPaymentMethod   = errors.New("invalid payment method")
)

// 付款方式 空字串表示尚未選擇
type PaymentMethod string

const (
	PaymentNone          PaymentMethod = ""
	PaymentEfectivo      PaymentMethod = "efectivo"
	PaymentTransferencia PaymentMethod = "transferencia"
	PaymentTarjeta       PaymentMethod = "tarjeta"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentNone, PaymentEfectivo, PaymentTransferencia, PaymentTarjeta:
		return true
	}
	return false
}

// CustomerRef 草稿內客戶快照，來源是選擇客戶當下的資料
type CustomerRef struct {
	CustomerID uint   `json:"customer_id"`
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
}

// ProductRef 草稿內商品快照
type ProductRef struct {
	ProductID uint            `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
}

type LineItem struct {
	ProductID   uint            `json:"product_id"`
	ProductName string          `json:"product_name"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"` // 永遠 >= 1，歸零只能用刪除
}

// Subtotal 單價 x 數量，讀取時計算，不落地
func (li LineItem) Subtotal() decimal.Decimal {
	return li.Price.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// CustomerOrder 單一客戶的子訂單，Items 順序即顯示順序
// 同一商品只會有一條 LineItem，重複加入會累加數量
type CustomerOrder struct {
	Customer      CustomerRef   `json:"customer"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	Items         []LineItem    `json:"items"`
}

func (co *CustomerOrder) Total() decimal.Decimal {
	total := decimal.NewFromInt(0)
	for _, item := range co.Items {
		total = total.Add(item.Subtotal())
	}
	return total
}

func (co *CustomerOrder) findItem(productID uint) *LineItem {
	for i := range co.Items {
		if co.Items[i].ProductID == productID {
			return &co.Items[i]
		}
	}
	return nil
}

// OrderDraft 當日組單的聚合，客戶順序即加入順序
// 同一客戶只會有一筆 CustomerOrder
type OrderDraft struct {
	DraftID uuid.UUID       `json:"draft_id"`
	Orders  []CustomerOrder `json:"orders"`
}

func NewOrderDraft() *OrderDraft {
	return &OrderDraft{
		DraftID: uuid.New(),
		Orders:  []CustomerOrder{},
	}
}

func (d *OrderDraft) findOrder(customerID uint) *CustomerOrder {
	for i := range d.Orders {
		if d.Orders[i].Customer.CustomerID == customerID {
			return &d.Orders[i]
		}
	}
	return nil
}

// AddCustomer 重複加入同一客戶會被拒絕，草稿維持原狀
func (d *OrderDraft) AddCustomer(customer CustomerRef) error {
	if d.findOrder(customer.CustomerID) != nil {
		return ErrCustomerAlreadyInDraft
	}
	d.Orders = append(d.Orders, CustomerOrder{
		Customer:      customer,
		PaymentMethod: PaymentNone,
		Items:         []LineItem{},
	})
	return nil
}

// RemoveCustomer 客戶不存在時不動作
func (d *OrderDraft) RemoveCustomer(customerID uint) {
	for i := range d.Orders {
		if d.Orders[i].Customer.CustomerID == customerID {
			d.Orders = append(d.Orders[:i], d.Orders[i+1:]...)
			return
		}
	}
}

// AddProduct 已存在的商品數量+1，否則新增一條數量為1的LineItem
func (d *OrderDraft) AddProduct(customerID uint, product ProductRef) error {
	order := d.findOrder(customerID)
	if order == nil {
		return ErrCustomerNotInDraft
	}
	if item := order.findItem(product.ProductID); item != nil {
		item.Quantity++
		return nil
	}
	order.Items = append(order.Items, LineItem{
		ProductID:   product.ProductID,
		ProductName: product.Name,
		Price:       product.Price,
		Quantity:    1,
	})
	return nil
}

// RemoveLineItem 刪除整條商品，客戶本身保留
func (d *OrderDraft) RemoveLineItem(customerID, productID uint) {
	order := d.findOrder(customerID)
	if order == nil {
		return
	}
	for i := range order.Items {
		if order.Items[i].ProductID == productID {
			order.Items = append(order.Items[:i], order.Items[i+1:]...)
			return
		}
	}
}

// SetQuantity 數量下限為1，低於1會被拉回1
func (d *OrderDraft) SetQuantity(customerID, productID uint, quantity int) error {
	order := d.findOrder(customerID)
	if order == nil {
		return ErrCustomerNotInDraft
	}
	item := order.findItem(productID)
	if item == nil {
		return nil
	}
	if quantity < 1 {
		quantity = 1
	}
	item.Quantity = quantity
	return nil
}

func (d *OrderDraft) SetPaymentMethod(customerID uint, method PaymentMethod) error {
	if !method.Valid() {
		return ErrInvalidPaymentMethod
	}
	order := d.findOrder(customerID)
	if order == nil {
		return ErrCustomerNotInDraft
	}
	order.PaymentMethod = method
	return nil
}

// GrandTotal 所有客戶小計的加總
func (d *OrderDraft) GrandTotal() decimal.Decimal {
	total := decimal.NewFromInt(0)
	for i := range d.Orders {
		total = total.Add(d.Orders[i].Total())
	}
	return total
}

func (d *OrderDraft) IsEmpty() bool {
	return len(d.Orders) == 0
}

// Clear 重置為空草稿，DraftID重新產生
func (d *OrderDraft) Clear() {
	d.DraftID = uuid.New()
	d.Orders = []CustomerOrder{}
}

// Copy 深拷貝，給需要快照的呼叫端使用
func (d *OrderDraft) Copy() *OrderDraft {
	cp := &OrderDraft{
		DraftID: d.DraftID,
		Orders:  make([]CustomerOrder, len(d.Orders)),
	}
	for i, order := range d.Orders {
		items := make([]LineItem, len(order.Items))
		copy(items, order.Items)
		order.Items = items
		cp.Orders[i] = order
	}
	return cp
}
