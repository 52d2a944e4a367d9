package producer

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/db/model"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
)

// OrderCreatedEvent 結單成功後發佈，下游報表/通知用
type OrderCreatedEvent struct {
	OrderID       uint            `json:"order_id"`
	CustomerID    uint            `json:"customer_id"`
	PaymentMethod string          `json:"payment_method"`
	Amount        decimal.Decimal `json:"amount"`
	OrderDate     time.Time       `json:"order_date"`
}

type IOrderEventProducer interface {
	ProduceOrderCreated(ctx context.Context, order *model.Order) error
	Close() error
}

// 需要根據customer id做key分區，同一客戶的事件保持順序
type OrderEventProducer struct {
	writer *kafka.Writer
}

func NewOrderEventProducer(brokers []string, topic string) *OrderEventProducer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 100 * time.Millisecond,
		// 設置較短的超時時間以快速發現問題
		WriteTimeout: 5 * time.Second,
		// 設置重試
		MaxAttempts: 3,
	}
	return &OrderEventProducer{writer: writer}
}

var _ IOrderEventProducer = (*OrderEventProducer)(nil)

func (p *OrderEventProducer) ProduceOrderCreated(ctx context.Context, order *model.Order) error {
	event := OrderCreatedEvent{
		OrderID:       order.OrderID,
		CustomerID:    order.CustomerID,
		PaymentMethod: order.PaymentMethod,
		Amount:        order.Amount,
		OrderDate:     order.OrderDate,
	}

	value, err := json.Marshal(&event)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(fmt.Sprintf("%d", order.CustomerID)),
		Value: value,
		Headers: []kafka.Header{
			{
				Key:   "event_type",
				Value: []byte("order_created"),
			},
		},
	})
}

func (p *OrderEventProducer) Close() error {
	return p.writer.Close()
}
