package export

import (
	"fmt"
	"strings"

	domain "github.com/RoyceAzure/lab/storefront/internal/domain/model"
	"github.com/shopspring/decimal"
)

// groupThousands 整數部分每三位插入千分點
func groupThousands(digits string) string {
	var builder strings.Builder
	builder.Grow(len(digits) + len(digits)/3)
	lead := len(digits) % 3
	if lead > 0 {
		builder.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if builder.Len() > 0 {
			builder.WriteString(".")
		}
		builder.WriteString(digits[i : i+3])
	}
	return builder.String()
}

// FormatCurrency 哥倫比亞比索格式：千分點用「.」、小數用「,」
// 整數金額不顯示小數，例如 2000 -> "$ 2.000"
func FormatCurrency(amount decimal.Decimal) string {
	negative := amount.IsNegative()
	if negative {
		amount = amount.Neg()
	}

	var formatted string
	if amount.IsInteger() {
		formatted = groupThousands(amount.StringFixed(0))
	} else {
		fixed := amount.StringFixed(2)
		dot := strings.LastIndex(fixed, ".")
		formatted = groupThousands(fixed[:dot]) + "," + fixed[dot+1:]
	}

	if negative {
		return "$ -" + formatted
	}
	return "$ " + formatted
}

// FormatText 把草稿轉成可分享的純文字摘要
// 每個客戶一個區塊：名稱、地址、各商品行、小計，最後是總計
// 相同輸入永遠產生相同輸出
func FormatText(draft *domain.OrderDraft) string {
	var builder strings.Builder
	builder.WriteString("Pedidos del Día\n")

	for i := range draft.Orders {
		order := &draft.Orders[i]
		builder.WriteString("\n")
		builder.WriteString(order.Customer.Name)
		builder.WriteString("\n")
		if order.Customer.Address != "" {
			builder.WriteString(order.Customer.Address)
			builder.WriteString("\n")
		}
		for _, item := range order.Items {
			builder.WriteString(fmt.Sprintf("%s x%d - %s\n", item.ProductName, item.Quantity, FormatCurrency(item.Subtotal())))
		}
		if order.PaymentMethod != domain.PaymentNone {
			builder.WriteString(fmt.Sprintf("Pago: %s\n", order.PaymentMethod))
		}
		builder.WriteString(fmt.Sprintf("Subtotal: %s\n", FormatCurrency(order.Total())))
	}

	builder.WriteString(fmt.Sprintf("\nTotal: %s\n", FormatCurrency(draft.GrandTotal())))
	return builder.String()
}
