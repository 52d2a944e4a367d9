package db

import (
	"time"

	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/db/model"
)

type CustomerRepo struct {
	dbDao *DbDao
}

func NewCustomerRepo(dbDao *DbDao) *CustomerRepo {
	return &CustomerRepo{dbDao: dbDao}
}

// Create - 創建客戶
func (s *CustomerRepo) CreateCustomer(customer *model.Customer) (*model.Customer, error) {
	if err := s.dbDao.Create(customer).Error; err != nil {
		return nil, err
	}
	return customer, nil
}

// Read - 根據ID查詢客戶
func (s *CustomerRepo) GetCustomerByID(id uint) (*model.Customer, error) {
	var customer model.Customer
	err := s.dbDao.First(&customer, id).Error
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

// Read - 查詢所有客戶，依名稱排序，給分組清單用
func (s *CustomerRepo) GetAllCustomers() ([]model.Customer, error) {
	var customers []model.Customer
	err := s.dbDao.Order("name ASC").Find(&customers).Error
	return customers, err
}

// Read - 根據電話查詢客戶
func (s *CustomerRepo) GetCustomerByPhone(phone string) (*model.Customer, error) {
	var customer model.Customer
	err := s.dbDao.Where("phone = ?", phone).First(&customer).Error
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

// Update - 更新客戶，id不存在時回報錯誤
func (s *CustomerRepo) UpdateCustomer(customer *model.Customer) error {
	result := s.dbDao.Model(&model.Customer{}).
		Where("customer_id = ?", customer.CustomerID).
		Updates(map[string]interface{}{
			"name":    customer.Name,
			"phone":   customer.Phone,
			"address": customer.Address,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

// Update - 更新最後下單時間，訂單結單第三步使用
func (s *CustomerRepo) UpdateLastOrderDate(id uint, orderDate time.Time) error {
	result := s.dbDao.Model(&model.Customer{}).
		Where("customer_id = ?", id).
		Update("last_order_date", orderDate)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

// Delete - 軟刪除客戶，id不存在時回報錯誤
func (s *CustomerRepo) DeleteCustomer(id uint) error {
	result := s.dbDao.Delete(&model.Customer{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

// Delete - 硬刪除客戶
func (s *CustomerRepo) HardDeleteCustomer(id uint) error {
	return s.dbDao.Unscoped().Delete(&model.Customer{}, id).Error
}
