package service

import (
	"context"
	"errors"
	"time"

	domain "github.com/RoyceAzure/lab/storefront/internal/domain/model"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/db/model"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrEmptyDraft         = errors.New("draft has no customer orders")
	ErrEmptyCustomerOrder = errors.New("customer order has no line items")
	ErrOrderNotFound      = errors.New("order not found")
	ErrInvalidStatus      = errors.New("invalid order status")
)

// IOrderRepository OrderService需要的db操作
type IOrderRepository interface {
	CreateOrder(order *model.Order) error
	GetOrderByID(id uint) (*model.Order, error)
	GetAllOrders() ([]model.Order, error)
	UpdateOrderStatus(id uint, status string) error
}

// ICustomerDateUpdater 結單第三步：更新客戶最後下單時間
type ICustomerDateUpdater interface {
	UpdateLastOrderDate(id uint, orderDate time.Time) error
}

// IOrderEventEmitter 結單成功後的事件發佈，可為nil
type IOrderEventEmitter interface {
	ProduceOrderCreated(ctx context.Context, order *model.Order) error
}

type OrderService struct {
	orderRepo    IOrderRepository
	customerRepo ICustomerDateUpdater
	drafts       *DraftService
	emitter      IOrderEventEmitter
	logger       zerolog.Logger
}

func NewOrderService(
	orderRepo IOrderRepository,
	customerRepo ICustomerDateUpdater,
	drafts *DraftService,
	emitter IOrderEventEmitter,
	logger zerolog.Logger,
) *OrderService {
	return &OrderService{
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		drafts:       drafts,
		emitter:      emitter,
		logger:       logger,
	}
}

// FinalizeDraft 把草稿內每個客戶的子訂單落地成正式訂單
// 空草稿與沒有明細的子訂單在任何遠端呼叫前就會被拒絕，驗證失敗時草稿不動
// 每結完一個客戶就從草稿移除，中途失敗時已結單的客戶不會重複落地
// 全部結完後清空草稿槽位
func (o *OrderService) FinalizeDraft(ctx context.Context) ([]model.Order, error) {
	draft := o.drafts.Snapshot()
	if draft.IsEmpty() {
		return nil, ErrEmptyDraft
	}
	for i := range draft.Orders {
		if len(draft.Orders[i].Items) == 0 {
			return nil, ErrEmptyCustomerOrder
		}
	}

	created := make([]model.Order, 0, len(draft.Orders))
	for i := range draft.Orders {
		order, err := o.finalizeCustomerOrder(ctx, &draft.Orders[i])
		if err != nil {
			return created, err
		}
		o.drafts.RemoveCustomer(ctx, draft.Orders[i].Customer.CustomerID)
		created = append(created, *order)
	}

	o.drafts.Clear(ctx)
	return created, nil
}

// 三步驟結單，步驟間沒有補償
// 主檔與明細在同一個gorm交易寫入，客戶時間戳是獨立的第三步
// 時間戳更新失敗時訂單已經落地，這段不一致視為可接受
func (o *OrderService) finalizeCustomerOrder(ctx context.Context, co *domain.CustomerOrder) (*model.Order, error) {
	now := time.Now()
	order := &model.Order{
		CustomerID:    co.Customer.CustomerID,
		PaymentMethod: string(co.PaymentMethod),
		Status:        model.OrderStatusPendiente,
		Amount:        co.Total(),
		OrderDate:     now,
		OrderItems:    make([]model.OrderItem, 0, len(co.Items)),
	}
	for _, item := range co.Items {
		order.OrderItems = append(order.OrderItems, model.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Subtotal:  item.Subtotal(),
		})
	}

	if err := o.orderRepo.CreateOrder(order); err != nil {
		return nil, err
	}

	if err := o.customerRepo.UpdateLastOrderDate(co.Customer.CustomerID, now); err != nil {
		return nil, err
	}

	if o.emitter != nil {
		if err := o.emitter.ProduceOrderCreated(ctx, order); err != nil {
			// 事件只是下游通知，失敗不影響結單
			o.logger.Error().Err(err).Uint("order_id", order.OrderID).Msg("failed to produce order created event")
		}
	}

	return order, nil
}

func (o *OrderService) GetOrder(ctx context.Context, id uint) (*model.Order, error) {
	order, err := o.orderRepo.GetOrderByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return order, nil
}

// ListOrders 巢狀讀取：訂單+客戶+明細+商品
func (o *OrderService) ListOrders(ctx context.Context) ([]model.Order, error) {
	return o.orderRepo.GetAllOrders()
}

func (o *OrderService) UpdateOrderStatus(ctx context.Context, id uint, status string) error {
	switch status {
	case model.OrderStatusPendiente, model.OrderStatusEntregado, model.OrderStatusCancelado:
	default:
		return ErrInvalidStatus
	}

	err := o.orderRepo.UpdateOrderStatus(id, status)
	if errors.Is(err, db.ErrRecordNotFound) {
		return ErrOrderNotFound
	}
	return err
}

// CalculateOrderAmount 明細小計加總，報表用
func (o *OrderService) CalculateOrderAmount(items ...model.OrderItem) decimal.Decimal {
	amount := decimal.NewFromInt(0)
	for _, item := range items {
		amount = amount.Add(item.Subtotal)
	}
	return amount
}
