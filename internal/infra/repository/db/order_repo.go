package db

import (
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/db/model"
)

type OrderRepo struct {
	dbDao *DbDao
}

func NewOrderRepo(dbDao *DbDao) *OrderRepo {
	return &OrderRepo{dbDao: dbDao}
}

// Create - 創建訂單主檔與明細，同一個gorm交易寫入
func (s *OrderRepo) CreateOrder(order *model.Order) error {
	return s.dbDao.Create(order).Error
}

// Read - 根據ID查詢訂單，帶出客戶與明細
func (s *OrderRepo) GetOrderByID(id uint) (*model.Order, error) {
	var order model.Order
	err := s.dbDao.
		Preload("Customer").
		Preload("OrderItems").
		Preload("OrderItems.Product").
		First(&order, id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// Read - 查詢所有訂單，巢狀帶出客戶、明細與商品，日期新到舊
func (s *OrderRepo) GetAllOrders() ([]model.Order, error) {
	var orders []model.Order
	err := s.dbDao.
		Preload("Customer").
		Preload("OrderItems").
		Preload("OrderItems.Product").
		Order("order_date DESC").
		Find(&orders).Error
	return orders, err
}

// Read - 根據客戶ID查詢訂單
func (s *OrderRepo) GetOrdersByCustomerID(customerID uint) ([]model.Order, error) {
	var orders []model.Order
	err := s.dbDao.
		Preload("OrderItems").
		Preload("OrderItems.Product").
		Where("customer_id = ?", customerID).
		Order("order_date DESC").
		Find(&orders).Error
	return orders, err
}

// Update - 更新訂單狀態，id不存在時回報錯誤
func (s *OrderRepo) UpdateOrderStatus(id uint, status string) error {
	result := s.dbDao.Model(&model.Order{}).
		Where("order_id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

// Delete - 軟刪除訂單
func (s *OrderRepo) DeleteOrder(id uint) error {
	result := s.dbDao.Delete(&model.Order{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

// 取得訂單項目
func (s *OrderRepo) GetOrderItems(orderID uint) ([]model.OrderItem, error) {
	var items []model.OrderItem
	err := s.dbDao.Where("order_id = ?", orderID).Find(&items).Error
	return items, err
}
