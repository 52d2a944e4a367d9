package service

import (
	"context"
	"errors"
	"time"

	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/db/model"
)

var ErrDispatchNotFound = errors.New("dispatch not found")

type IDispatchService interface {
	CreateDispatch(ctx context.Context, orderID uint, dispatchDate time.Time) (*model.DailyDispatch, error)
	ListDispatchesByDate(ctx context.Context, date time.Time) ([]model.DailyDispatch, error)
	SetDispatched(ctx context.Context, id uint, dispatched bool) error
}

type DispatchService struct {
	dispatchRepo *db.DispatchRepo
	orderRepo    IOrderRepository
}

func NewDispatchService(dispatchRepo *db.DispatchRepo, orderRepo IOrderRepository) IDispatchService {
	return &DispatchService{
		dispatchRepo: dispatchRepo,
		orderRepo:    orderRepo,
	}
}

// CreateDispatch 排入某日配送，訂單必須存在
func (d *DispatchService) CreateDispatch(ctx context.Context, orderID uint, dispatchDate time.Time) (*model.DailyDispatch, error) {
	if _, err := d.orderRepo.GetOrderByID(orderID); err != nil {
		return nil, ErrOrderNotFound
	}

	return d.dispatchRepo.CreateDispatch(&model.DailyDispatch{
		OrderID:      orderID,
		DispatchDate: dispatchDate,
	})
}

func (d *DispatchService) ListDispatchesByDate(ctx context.Context, date time.Time) ([]model.DailyDispatch, error) {
	return d.dispatchRepo.GetDispatchesByDate(date)
}

func (d *DispatchService) SetDispatched(ctx context.Context, id uint, dispatched bool) error {
	err := d.dispatchRepo.UpdateDispatched(id, dispatched)
	if errors.Is(err, db.ErrRecordNotFound) {
		return ErrDispatchNotFound
	}
	return err
}
