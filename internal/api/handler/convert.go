package handler

import (
	"github.com/RoyceAzure/lab/storefront/internal/api/dto"
	"github.com/RoyceAzure/lab/storefront/internal/constants"
	domain "github.com/RoyceAzure/lab/storefront/internal/domain/model"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/db/model"
	"github.com/RoyceAzure/lab/storefront/internal/service"
)

func convertCustomerToDTO(customer *model.Customer) dto.CustomerDTO {
	return dto.CustomerDTO{
		ID:            customer.CustomerID,
		Name:          customer.Name,
		Phone:         customer.Phone,
		Address:       customer.Address,
		LastOrderDate: customer.LastOrderDate,
	}
}

func convertCustomersToDTO(customers []model.Customer) []dto.CustomerDTO {
	result := make([]dto.CustomerDTO, 0, len(customers))
	for i := range customers {
		result = append(result, convertCustomerToDTO(&customers[i]))
	}
	return result
}

func convertSectionsToDTO(sections []service.CustomerSection) []dto.CustomerSectionDTO {
	result := make([]dto.CustomerSectionDTO, 0, len(sections))
	for _, section := range sections {
		result = append(result, dto.CustomerSectionDTO{
			Title:     section.Title,
			Customers: convertCustomersToDTO(section.Customers),
		})
	}
	return result
}

func convertProductToDTO(product *model.Product) dto.ProductDTO {
	return dto.ProductDTO{
		ID:    product.ProductID,
		Name:  product.Name,
		Price: product.Price.String(),
	}
}

func convertProductsToDTO(products []model.Product) []dto.ProductDTO {
	result := make([]dto.ProductDTO, 0, len(products))
	for i := range products {
		result = append(result, convertProductToDTO(&products[i]))
	}
	return result
}

func convertDraftToDTO(draft *domain.OrderDraft) dto.DraftDTO {
	orders := make([]dto.DraftCustomerOrderDTO, 0, len(draft.Orders))
	for i := range draft.Orders {
		order := &draft.Orders[i]
		items := make([]dto.DraftLineItemDTO, 0, len(order.Items))
		for _, item := range order.Items {
			items = append(items, dto.DraftLineItemDTO{
				ProductID:   item.ProductID,
				ProductName: item.ProductName,
				Price:       item.Price.String(),
				Quantity:    item.Quantity,
				Subtotal:    item.Subtotal().String(),
			})
		}
		orders = append(orders, dto.DraftCustomerOrderDTO{
			Customer: dto.CustomerDTO{
				ID:      order.Customer.CustomerID,
				Name:    order.Customer.Name,
				Phone:   order.Customer.Phone,
				Address: order.Customer.Address,
			},
			PaymentMethod: string(order.PaymentMethod),
			Items:         items,
			Total:         order.Total().String(),
		})
	}
	return dto.DraftDTO{
		DraftID:    draft.DraftID.String(),
		Orders:     orders,
		GrandTotal: draft.GrandTotal().String(),
	}
}

func convertOrderToDTO(order *model.Order) dto.OrderDTO {
	items := make([]dto.OrderItemDTO, 0, len(order.OrderItems))
	for _, item := range order.OrderItems {
		itemDTO := dto.OrderItemDTO{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Subtotal:  item.Subtotal.String(),
		}
		if item.Product != nil {
			itemDTO.ProductName = item.Product.Name
			itemDTO.Price = item.Product.Price.String()
		}
		items = append(items, itemDTO)
	}

	orderDTO := dto.OrderDTO{
		ID:            order.OrderID,
		PaymentMethod: order.PaymentMethod,
		Status:        order.Status,
		Amount:        order.Amount.String(),
		OrderDate:     order.OrderDate,
		Items:         items,
	}
	if order.Customer != nil {
		customerDTO := convertCustomerToDTO(order.Customer)
		orderDTO.Customer = &customerDTO
	}
	return orderDTO
}

func convertOrdersToDTO(orders []model.Order) []dto.OrderDTO {
	result := make([]dto.OrderDTO, 0, len(orders))
	for i := range orders {
		result = append(result, convertOrderToDTO(&orders[i]))
	}
	return result
}

func convertDispatchToDTO(dispatch *model.DailyDispatch) dto.DispatchDTO {
	dispatchDTO := dto.DispatchDTO{
		ID:           dispatch.DispatchID,
		DispatchDate: dispatch.DispatchDate.Format(constants.DateLayout),
		Dispatched:   dispatch.Dispatched,
	}
	if dispatch.Order != nil {
		orderDTO := convertOrderToDTO(dispatch.Order)
		dispatchDTO.Order = &orderDTO
	}
	return dispatchDTO
}

func convertDispatchesToDTO(dispatches []model.DailyDispatch) []dto.DispatchDTO {
	result := make([]dto.DispatchDTO, 0, len(dispatches))
	for i := range dispatches {
		result = append(result, convertDispatchToDTO(&dispatches[i]))
	}
	return result
}
