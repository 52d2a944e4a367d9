package service

import (
	"context"
	"sync"

	domain "github.com/RoyceAzure/lab/storefront/internal/domain/model"
	dbmodel "github.com/RoyceAzure/lab/storefront/internal/infra/repository/db/model"
	"github.com/rs/zerolog"
)

// DraftStore 草稿的持久化策略，由外部注入
// Load 找不到、資料毀損或後端連不上都要回傳空草稿，不可回傳錯誤
type DraftStore interface {
	Load(ctx context.Context) (*domain.OrderDraft, error)
	Save(ctx context.Context, draft *domain.OrderDraft) error
	Clear(ctx context.Context) error
}

// DraftService 持有組單session的草稿聚合
// 草稿在記憶體內是事實來源，每次變更後best-effort寫回DraftStore
// 寫入失敗只記log，不回滾記憶體內的狀態
type DraftService struct {
	mu     sync.Mutex
	draft  *domain.OrderDraft
	store  DraftStore
	logger zerolog.Logger
}

// NewDraftService 啟動時從store還原上次的草稿
func NewDraftService(ctx context.Context, store DraftStore, logger zerolog.Logger) (*DraftService, error) {
	draft, err := store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return &DraftService{
		draft:  draft,
		store:  store,
		logger: logger,
	}, nil
}

// persist 變更後的side effect，失敗不影響呼叫端
func (d *DraftService) persist(ctx context.Context) {
	if err := d.store.Save(ctx, d.draft); err != nil {
		d.logger.Error().Err(err).Msg("failed to persist order draft")
	}
}

// Snapshot 回傳深拷貝，呼叫端可任意讀取
func (d *DraftService) Snapshot() *domain.OrderDraft {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.draft.Copy()
}

func (d *DraftService) AddCustomer(ctx context.Context, customer *dbmodel.Customer) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	err := d.draft.AddCustomer(domain.CustomerRef{
		CustomerID: customer.CustomerID,
		Name:       customer.Name,
		Phone:      customer.Phone,
		Address:    customer.Address,
	})
	if err != nil {
		return err
	}
	d.persist(ctx)
	return nil
}

func (d *DraftService) RemoveCustomer(ctx context.Context, customerID uint) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.draft.RemoveCustomer(customerID)
	d.persist(ctx)
}

func (d *DraftService) AddProduct(ctx context.Context, customerID uint, product *dbmodel.Product) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	err := d.draft.AddProduct(customerID, domain.ProductRef{
		ProductID: product.ProductID,
		Name:      product.Name,
		Price:     product.Price,
	})
	if err != nil {
		return err
	}
	d.persist(ctx)
	return nil
}

func (d *DraftService) RemoveLineItem(ctx context.Context, customerID, productID uint) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.draft.RemoveLineItem(customerID, productID)
	d.persist(ctx)
}

func (d *DraftService) SetQuantity(ctx context.Context, customerID, productID uint, quantity int) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.draft.SetQuantity(customerID, productID, quantity); err != nil {
		return err
	}
	d.persist(ctx)
	return nil
}

func (d *DraftService) SetPaymentMethod(ctx context.Context, customerID uint, method domain.PaymentMethod) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.draft.SetPaymentMethod(customerID, method); err != nil {
		return err
	}
	d.persist(ctx)
	return nil
}

// Clear 結單分享完成後整份重置，槽位一併清掉
func (d *DraftService) Clear(ctx context.Context) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.draft.Clear()
	if err := d.store.Clear(ctx); err != nil {
		d.logger.Error().Err(err).Msg("failed to clear order draft slot")
	}
}
