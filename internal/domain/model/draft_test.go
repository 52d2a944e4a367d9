package model

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func testCustomer(id uint, name string) CustomerRef {
	return CustomerRef{
		CustomerID: id,
		Name:       name,
		Phone:      "3001234567",
		Address:    "Calle 10 #5-23",
	}
}

func testProduct(id uint, name string, price int64) ProductRef {
	return ProductRef{
		ProductID: id,
		Name:      name,
		Price:     decimal.NewFromInt(price),
	}
}

func TestOrderDraft_AddCustomer(t *testing.T) {
	draft := NewOrderDraft()

	err := draft.AddCustomer(testCustomer(1, "Ana"))
	require.NoError(t, err)
	require.Len(t, draft.Orders, 1)
	require.Equal(t, PaymentNone, draft.Orders[0].PaymentMethod)
	require.Empty(t, draft.Orders[0].Items)

	// 重複加入同一客戶應被拒絕且草稿不變
	err = draft.AddCustomer(testCustomer(1, "Ana"))
	require.ErrorIs(t, err, ErrCustomerAlreadyInDraft)
	require.Len(t, draft.Orders, 1)
}

func TestOrderDraft_AddCustomer_Order(t *testing.T) {
	draft := NewOrderDraft()
	require.NoError(t, draft.AddCustomer(testCustomer(2, "Berta")))
	require.NoError(t, draft.AddCustomer(testCustomer(1, "Ana")))
	require.NoError(t, draft.AddCustomer(testCustomer(3, "Camila")))

	// 客戶順序是加入順序，不做排序
	require.Equal(t, "Berta", draft.Orders[0].Customer.Name)
	require.Equal(t, "Ana", draft.Orders[1].Customer.Name)
	require.Equal(t, "Camila", draft.Orders[2].Customer.Name)
}

func TestOrderDraft_RemoveCustomer(t *testing.T) {
	draft := NewOrderDraft()
	require.NoError(t, draft.AddCustomer(testCustomer(1, "Ana")))
	require.NoError(t, draft.AddCustomer(testCustomer(2, "Berta")))

	draft.RemoveCustomer(1)
	require.Len(t, draft.Orders, 1)
	require.Equal(t, uint(2), draft.Orders[0].Customer.CustomerID)

	// 不存在的客戶不動作
	draft.RemoveCustomer(99)
	require.Len(t, draft.Orders, 1)
}

func TestOrderDraft_AddProduct(t *testing.T) {
	draft := NewOrderDraft()
	require.NoError(t, draft.AddCustomer(testCustomer(1, "Ana")))

	pan := testProduct(10, "Pan", 1000)

	// 重複加入同商品累加數量，不產生新條目
	for i := 0; i < 3; i++ {
		require.NoError(t, draft.AddProduct(1, pan))
	}
	require.Len(t, draft.Orders[0].Items, 1)
	require.Equal(t, 3, draft.Orders[0].Items[0].Quantity)

	// 客戶不在草稿內
	err := draft.AddProduct(99, pan)
	require.ErrorIs(t, err, ErrCustomerNotInDraft)
}

func TestOrderDraft_SetQuantity(t *testing.T) {
	draft := NewOrderDraft()
	require.NoError(t, draft.AddCustomer(testCustomer(1, "Ana")))
	require.NoError(t, draft.AddProduct(1, testProduct(10, "Pan", 1000)))

	require.NoError(t, draft.SetQuantity(1, 10, 5))
	require.Equal(t, 5, draft.Orders[0].Items[0].Quantity)

	// 低於1會拉回1
	require.NoError(t, draft.SetQuantity(1, 10, 0))
	require.Equal(t, 1, draft.Orders[0].Items[0].Quantity)

	require.NoError(t, draft.SetQuantity(1, 10, -7))
	require.Equal(t, 1, draft.Orders[0].Items[0].Quantity)

	// 不存在的商品不動作
	require.NoError(t, draft.SetQuantity(1, 99, 3))
	require.Len(t, draft.Orders[0].Items, 1)

	require.ErrorIs(t, draft.SetQuantity(99, 10, 3), ErrCustomerNotInDraft)
}

func TestOrderDraft_RemoveLineItem(t *testing.T) {
	draft := NewOrderDraft()
	require.NoError(t, draft.AddCustomer(testCustomer(1, "Ana")))
	require.NoError(t, draft.AddProduct(1, testProduct(10, "Pan", 1000)))

	// 刪掉唯一商品後客戶仍留在草稿內
	draft.RemoveLineItem(1, 10)
	require.Len(t, draft.Orders, 1)
	require.Empty(t, draft.Orders[0].Items)

	// 不存在的商品或客戶不動作
	draft.RemoveLineItem(1, 10)
	draft.RemoveLineItem(99, 10)
	require.Len(t, draft.Orders, 1)
}

func TestOrderDraft_SetPaymentMethod(t *testing.T) {
	draft := NewOrderDraft()
	require.NoError(t, draft.AddCustomer(testCustomer(1, "Ana")))

	require.NoError(t, draft.SetPaymentMethod(1, PaymentEfectivo))
	require.Equal(t, PaymentEfectivo, draft.Orders[0].PaymentMethod)

	// 改回未選擇是合法的
	require.NoError(t, draft.SetPaymentMethod(1, PaymentNone))
	require.Equal(t, PaymentNone, draft.Orders[0].PaymentMethod)

	require.ErrorIs(t, draft.SetPaymentMethod(1, PaymentMethod("cheque")), ErrInvalidPaymentMethod)
	require.ErrorIs(t, draft.SetPaymentMethod(99, PaymentTarjeta), ErrCustomerNotInDraft)
}

func TestOrderDraft_Totals(t *testing.T) {
	draft := NewOrderDraft()
	require.NoError(t, draft.AddCustomer(testCustomer(1, "Ana")))
	require.NoError(t, draft.AddCustomer(testCustomer(2, "Berta")))

	require.NoError(t, draft.AddProduct(1, testProduct(10, "Pan", 1000)))
	require.NoError(t, draft.AddProduct(1, testProduct(10, "Pan", 1000)))
	require.NoError(t, draft.AddProduct(1, testProduct(11, "Leche", 1200)))
	require.NoError(t, draft.AddProduct(2, testProduct(12, "Queso", 4500)))

	require.True(t, draft.Orders[0].Total().Equal(decimal.NewFromInt(3200)))
	require.True(t, draft.Orders[1].Total().Equal(decimal.NewFromInt(4500)))
	require.True(t, draft.GrandTotal().Equal(decimal.NewFromInt(7700)))
}

func TestOrderDraft_Clear(t *testing.T) {
	draft := NewOrderDraft()
	require.NoError(t, draft.AddCustomer(testCustomer(1, "Ana")))
	oldID := draft.DraftID

	draft.Clear()
	require.True(t, draft.IsEmpty())
	require.NotEqual(t, oldID, draft.DraftID)
	require.NotNil(t, draft.Orders)
}

func TestOrderDraft_Copy(t *testing.T) {
	draft := NewOrderDraft()
	require.NoError(t, draft.AddCustomer(testCustomer(1, "Ana")))
	require.NoError(t, draft.AddProduct(1, testProduct(10, "Pan", 1000)))

	cp := draft.Copy()
	require.Equal(t, draft.DraftID, cp.DraftID)

	// 修改副本不影響原本
	require.NoError(t, cp.AddProduct(1, testProduct(10, "Pan", 1000)))
	require.NoError(t, cp.AddCustomer(testCustomer(2, "Berta")))
	require.Equal(t, 1, draft.Orders[0].Items[0].Quantity)
	require.Len(t, draft.Orders, 1)
}

func TestOrderDraft_JSONRoundTrip(t *testing.T) {
	draft := NewOrderDraft()
	require.NoError(t, draft.AddCustomer(testCustomer(1, "Ana")))
	require.NoError(t, draft.AddProduct(1, testProduct(10, "Pan", 1000)))
	require.NoError(t, draft.SetQuantity(1, 10, 2))
	require.NoError(t, draft.SetPaymentMethod(1, PaymentTransferencia))

	data, err := json.Marshal(draft)
	require.NoError(t, err)

	var restored OrderDraft
	require.NoError(t, json.Unmarshal(data, &restored))

	require.Equal(t, draft.DraftID, restored.DraftID)
	require.Len(t, restored.Orders, 1)
	require.Equal(t, PaymentTransferencia, restored.Orders[0].PaymentMethod)
	require.Equal(t, 2, restored.Orders[0].Items[0].Quantity)
	require.True(t, restored.GrandTotal().Equal(draft.GrandTotal()))
}
