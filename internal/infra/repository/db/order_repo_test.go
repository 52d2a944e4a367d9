package db

import (
	"fmt"
	"testing"
	"time"

	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/db/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type OrderRepoTestSuite struct {
	suite.Suite
	db           *gorm.DB
	orderRepo    *OrderRepo
	customerRepo *CustomerRepo
	productRepo  *ProductRepo
}

// SetupSuite 在測試套件開始前執行
func (suite *OrderRepoTestSuite) SetupSuite() {
	db, err := GetDbConn("lab_storefront", "localhost", "5432", "royce", "password")
	require.NoError(suite.T(), err)
	dbDao := NewDbDao(db)
	require.NoError(suite.T(), dbDao.InitMigrate())

	suite.db = db
	suite.orderRepo = NewOrderRepo(dbDao)
	suite.customerRepo = NewCustomerRepo(dbDao)
	suite.productRepo = NewProductRepo(dbDao)
}

// SetupTest 在每個測試前執行
func (suite *OrderRepoTestSuite) SetupTest() {
	// 清空資料表
	suite.db.Exec("DELETE FROM daily_dispatches")
	suite.db.Exec("DELETE FROM order_items")
	suite.db.Exec("DELETE FROM orders")
	suite.db.Exec("DELETE FROM products")
	suite.db.Exec("DELETE FROM customers")
}

// TearDownSuite 在測試套件結束後執行
func (suite *OrderRepoTestSuite) TearDownSuite() {
	sqlDB, _ := suite.db.DB()
	sqlDB.Close()
}

func TestOrderRepoTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepoTestSuite))
}

func (suite *OrderRepoTestSuite) createOrderCustomer() *model.Customer {
	customer, err := suite.customerRepo.CreateCustomer(&model.Customer{
		Name:    "Ana",
		Phone:   "3001234567",
		Address: "Calle 10 #5-23",
	})
	require.NoError(suite.T(), err)
	return customer
}

func (suite *OrderRepoTestSuite) createTestProducts(count int) []*model.Product {
	products := make([]*model.Product, count)
	for i := 0; i < count; i++ {
		product := &model.Product{
			Name:  fmt.Sprintf("Producto %d", i+1),
			Price: decimal.NewFromInt(int64((i + 1) * 1000)),
		}
		require.NoError(suite.T(), suite.db.Create(product).Error)
		products[i] = product
	}
	return products
}

func (suite *OrderRepoTestSuite) TestCreateOrder() {
	customer := suite.createOrderCustomer()
	products := suite.createTestProducts(2)

	order := &model.Order{
		CustomerID:    customer.CustomerID,
		PaymentMethod: "efectivo",
		Status:        model.OrderStatusPendiente,
		Amount:        decimal.NewFromInt(4000),
		OrderDate:     time.Now(),
		OrderItems: []model.OrderItem{
			{ProductID: products[0].ProductID, Quantity: 2, Subtotal: decimal.NewFromInt(2000)},
			{ProductID: products[1].ProductID, Quantity: 1, Subtotal: decimal.NewFromInt(2000)},
		},
	}

	err := suite.orderRepo.CreateOrder(order)
	require.NoError(suite.T(), err)
	require.NotZero(suite.T(), order.OrderID)

	// 主檔與明細一起落地
	items, err := suite.orderRepo.GetOrderItems(order.OrderID)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), items, 2)
}

func (suite *OrderRepoTestSuite) TestGetOrderByID() {
	customer := suite.createOrderCustomer()
	products := suite.createTestProducts(1)

	order := &model.Order{
		CustomerID: customer.CustomerID,
		Status:     model.OrderStatusPendiente,
		Amount:     decimal.NewFromInt(1000),
		OrderDate:  time.Now(),
		OrderItems: []model.OrderItem{
			{ProductID: products[0].ProductID, Quantity: 1, Subtotal: decimal.NewFromInt(1000)},
		},
	}
	require.NoError(suite.T(), suite.orderRepo.CreateOrder(order))

	got, err := suite.orderRepo.GetOrderByID(order.OrderID)
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), "Ana", got.Customer.Name)
	require.Len(suite.T(), got.OrderItems, 1)
	require.Equal(suite.T(), "Producto 1", got.OrderItems[0].Product.Name)
}

func (suite *OrderRepoTestSuite) TestGetAllOrders() {
	customer := suite.createOrderCustomer()
	products := suite.createTestProducts(1)

	old := &model.Order{
		CustomerID: customer.CustomerID,
		Status:     model.OrderStatusPendiente,
		Amount:     decimal.NewFromInt(1000),
		OrderDate:  time.Now().Add(-24 * time.Hour),
		OrderItems: []model.OrderItem{
			{ProductID: products[0].ProductID, Quantity: 1, Subtotal: decimal.NewFromInt(1000)},
		},
	}
	require.NoError(suite.T(), suite.orderRepo.CreateOrder(old))

	recent := &model.Order{
		CustomerID: customer.CustomerID,
		Status:     model.OrderStatusPendiente,
		Amount:     decimal.NewFromInt(2000),
		OrderDate:  time.Now(),
		OrderItems: []model.OrderItem{
			{ProductID: products[0].ProductID, Quantity: 2, Subtotal: decimal.NewFromInt(2000)},
		},
	}
	require.NoError(suite.T(), suite.orderRepo.CreateOrder(recent))

	orders, err := suite.orderRepo.GetAllOrders()
	require.NoError(suite.T(), err)
	require.Len(suite.T(), orders, 2)

	// 日期新到舊
	require.Equal(suite.T(), recent.OrderID, orders[0].OrderID)
	require.Equal(suite.T(), old.OrderID, orders[1].OrderID)
}

func (suite *OrderRepoTestSuite) TestUpdateOrderStatus() {
	customer := suite.createOrderCustomer()
	products := suite.createTestProducts(1)

	order := &model.Order{
		CustomerID: customer.CustomerID,
		Status:     model.OrderStatusPendiente,
		Amount:     decimal.NewFromInt(1000),
		OrderDate:  time.Now(),
		OrderItems: []model.OrderItem{
			{ProductID: products[0].ProductID, Quantity: 1, Subtotal: decimal.NewFromInt(1000)},
		},
	}
	require.NoError(suite.T(), suite.orderRepo.CreateOrder(order))

	require.NoError(suite.T(), suite.orderRepo.UpdateOrderStatus(order.OrderID, model.OrderStatusEntregado))

	got, err := suite.orderRepo.GetOrderByID(order.OrderID)
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), model.OrderStatusEntregado, got.Status)

	require.ErrorIs(suite.T(), suite.orderRepo.UpdateOrderStatus(99999, model.OrderStatusCancelado), ErrRecordNotFound)
}
