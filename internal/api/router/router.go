package router

import (
	"github.com/RoyceAzure/lab/storefront/internal/api/handler"
	m "github.com/RoyceAzure/lab/storefront/internal/api/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

type Server struct {
	CustomerHandler *handler.CustomerHandler
	ProductHandler  *handler.ProductHandler
	DraftHandler    *handler.DraftHandler
	OrderHandler    *handler.OrderHandler
	DispatchHandler *handler.DispatchHandler
}

func NewServer(
	customerHandler *handler.CustomerHandler,
	productHandler *handler.ProductHandler,
	draftHandler *handler.DraftHandler,
	orderHandler *handler.OrderHandler,
	dispatchHandler *handler.DispatchHandler,
) *Server {
	return &Server{
		CustomerHandler: customerHandler,
		ProductHandler:  productHandler,
		DraftHandler:    draftHandler,
		OrderHandler:    orderHandler,
		DispatchHandler: dispatchHandler,
	}
}

func SetupRouter(server *Server, logger *zerolog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// 全局中間件
	r.Use(m.RequestIdMiddleware)
	r.Use(middleware.RealIP)
	r.Use(m.LoggerMiddleware(logger))
	r.Use(m.RecoverMiddleware)

	// API 路由
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/customers", func(r chi.Router) {
			r.Get("/", server.CustomerHandler.ListCustomers)
			r.Get("/sections", server.CustomerHandler.ListCustomerSections)
			r.Post("/", server.CustomerHandler.CreateCustomer)
			r.Get("/{id}", server.CustomerHandler.GetCustomer)
			r.Put("/{id}", server.CustomerHandler.UpdateCustomer)
			r.Delete("/{id}", server.CustomerHandler.DeleteCustomer)
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", server.ProductHandler.ListProducts)
			r.Post("/", server.ProductHandler.CreateProduct)
			r.Get("/{id}", server.ProductHandler.GetProduct)
			r.Put("/{id}", server.ProductHandler.UpdateProduct)
			r.Delete("/{id}", server.ProductHandler.DeleteProduct)
		})

		// 草稿操作，一個UI動作對應一個端點
		r.Route("/draft", func(r chi.Router) {
			r.Get("/", server.DraftHandler.GetDraft)
			r.Delete("/", server.DraftHandler.ClearDraft)
			r.Post("/customers", server.DraftHandler.AddCustomer)
			r.Delete("/customers/{id}", server.DraftHandler.RemoveCustomer)
			r.Post("/items", server.DraftHandler.AddProduct)
			r.Put("/items/quantity", server.DraftHandler.SetQuantity)
			r.Delete("/customers/{id}/items/{productId}", server.DraftHandler.RemoveLineItem)
			r.Put("/payment-method", server.DraftHandler.SetPaymentMethod)
			r.Get("/summary", server.DraftHandler.GetSummary)
			r.Post("/share", server.DraftHandler.ShareSummary)
			r.Post("/export", server.DraftHandler.ExportSnapshot)
			r.Post("/finalize", server.OrderHandler.FinalizeDraft)
		})

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", server.OrderHandler.ListOrders)
			r.Get("/{id}", server.OrderHandler.GetOrder)
			r.Put("/{id}/status", server.OrderHandler.UpdateOrderStatus)
		})

		r.Route("/dispatches", func(r chi.Router) {
			r.Get("/", server.DispatchHandler.ListDispatches)
			r.Post("/", server.DispatchHandler.CreateDispatch)
			r.Put("/{id}/dispatched", server.DispatchHandler.UpdateDispatched)
		})
	})

	return r
}
