package db

import (
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/db/model"
	"github.com/shopspring/decimal"
)

type ProductRepo struct {
	dbDao *DbDao
}

func NewProductRepo(dbDao *DbDao) *ProductRepo {
	return &ProductRepo{dbDao: dbDao}
}

// Create - 創建商品
func (s *ProductRepo) CreateProduct(product *model.Product) (*model.Product, error) {
	if err := s.dbDao.Create(product).Error; err != nil {
		return nil, err
	}
	return product, nil
}

// Read - 根據ID查詢商品
func (s *ProductRepo) GetProductByID(id uint) (*model.Product, error) {
	var product model.Product
	err := s.dbDao.First(&product, id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// Read - 查詢所有商品，依名稱排序
func (s *ProductRepo) GetAllProducts() ([]model.Product, error) {
	var products []model.Product
	err := s.dbDao.Order("name ASC").Find(&products).Error
	return products, err
}

// Read - 根據名稱搜尋商品（模糊搜尋）
func (s *ProductRepo) SearchProductsByName(name string) ([]model.Product, error) {
	var products []model.Product
	err := s.dbDao.Where("name LIKE ?", "%"+name+"%").Find(&products).Error
	return products, err
}

// Update - 更新商品，id不存在時回報錯誤
func (s *ProductRepo) UpdateProduct(product *model.Product) error {
	result := s.dbDao.Model(&model.Product{}).
		Where("product_id = ?", product.ProductID).
		Updates(map[string]interface{}{
			"name":  product.Name,
			"price": product.Price,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

// Update - 更新商品價格
func (s *ProductRepo) UpdatePrice(id uint, price decimal.Decimal) error {
	return s.dbDao.Model(&model.Product{}).Where("product_id = ?", id).Update("price", price).Error
}

// Delete - 軟刪除商品，id不存在時回報錯誤
func (s *ProductRepo) DeleteProduct(id uint) error {
	result := s.dbDao.Delete(&model.Product{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

// Delete - 硬刪除商品
func (s *ProductRepo) HardDeleteProduct(id uint) error {
	return s.dbDao.Unscoped().Delete(&model.Product{}, id).Error
}
