package db

import (
	"time"

	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/db/model"
)

type DispatchRepo struct {
	dbDao *DbDao
}

func NewDispatchRepo(dbDao *DbDao) *DispatchRepo {
	return &DispatchRepo{dbDao: dbDao}
}

// Create - 創建當日配送
func (s *DispatchRepo) CreateDispatch(dispatch *model.DailyDispatch) (*model.DailyDispatch, error) {
	if err := s.dbDao.Create(dispatch).Error; err != nil {
		return nil, err
	}
	return dispatch, nil
}

// Read - 根據日期查詢配送清單，巢狀帶出訂單、客戶與明細
func (s *DispatchRepo) GetDispatchesByDate(date time.Time) ([]model.DailyDispatch, error) {
	var dispatches []model.DailyDispatch
	err := s.dbDao.
		Preload("Order").
		Preload("Order.Customer").
		Preload("Order.OrderItems").
		Preload("Order.OrderItems.Product").
		Where("dispatch_date = ?", date.Format("2006-01-02")).
		Order("dispatch_id ASC").
		Find(&dispatches).Error
	return dispatches, err
}

// Update - 更新配送狀態，id不存在時回報錯誤
func (s *DispatchRepo) UpdateDispatched(id uint, dispatched bool) error {
	result := s.dbDao.Model(&model.DailyDispatch{}).
		Where("dispatch_id = ?", id).
		Update("dispatched", dispatched)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

// Delete - 軟刪除配送
func (s *DispatchRepo) DeleteDispatch(id uint) error {
	result := s.dbDao.Delete(&model.DailyDispatch{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}
