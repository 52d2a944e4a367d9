package handler

import (
	"encoding/json"
	"net/http"

	"github.com/RoyceAzure/lab/storefront/internal/api"
	"github.com/RoyceAzure/lab/storefront/internal/api/dto"
	domain "github.com/RoyceAzure/lab/storefront/internal/domain/model"
	"github.com/RoyceAzure/lab/storefront/internal/export"
	"github.com/RoyceAzure/lab/storefront/internal/service"
)

// DraftHandler 草稿的每個UI動作對應一個聚合操作
type DraftHandler struct {
	drafts          *service.DraftService
	customerService service.ICustomerService
	productService  service.IProductService
	exporter        *export.Exporter
}

func NewDraftHandler(
	drafts *service.DraftService,
	customerService service.ICustomerService,
	productService service.IProductService,
	exporter *export.Exporter,
) *DraftHandler {
	if drafts == nil {
		panic("drafts cannot be nil")
	}
	return &DraftHandler{
		drafts:          drafts,
		customerService: customerService,
		productService:  productService,
		exporter:        exporter,
	}
}

func (h *DraftHandler) GetDraft(w http.ResponseWriter, r *http.Request) {
	api.SuccessJSON(w, convertDraftToDTO(h.drafts.Snapshot()))
}

// AddCustomer 加入客戶時抓當下的客戶資料快照進草稿
func (h *DraftHandler) AddCustomer(w http.ResponseWriter, r *http.Request) {
	var addDTO dto.DraftAddCustomerDTO
	if err := json.NewDecoder(r.Body).Decode(&addDTO); err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, errBadRequest)
		return
	}

	customer, err := h.customerService.GetCustomer(r.Context(), addDTO.CustomerID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if err := h.drafts.AddCustomer(r.Context(), customer); err != nil {
		writeServiceError(w, err)
		return
	}

	api.SuccessJSON(w, convertDraftToDTO(h.drafts.Snapshot()))
}

func (h *DraftHandler) RemoveCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := parseUintParam(r, "id")
	if err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, errBadRequest)
		return
	}

	h.drafts.RemoveCustomer(r.Context(), id)
	api.SuccessJSON(w, convertDraftToDTO(h.drafts.Snapshot()))
}

func (h *DraftHandler) AddProduct(w http.ResponseWriter, r *http.Request) {
	var addDTO dto.DraftAddProductDTO
	if err := json.NewDecoder(r.Body).Decode(&addDTO); err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, errBadRequest)
		return
	}

	product, err := h.productService.GetProduct(r.Context(), addDTO.ProductID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if err := h.drafts.AddProduct(r.Context(), addDTO.CustomerID, product); err != nil {
		writeServiceError(w, err)
		return
	}

	api.SuccessJSON(w, convertDraftToDTO(h.drafts.Snapshot()))
}

func (h *DraftHandler) RemoveLineItem(w http.ResponseWriter, r *http.Request) {
	customerID, err := parseUintParam(r, "id")
	if err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, errBadRequest)
		return
	}
	productID, err := parseUintParam(r, "productId")
	if err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, errBadRequest)
		return
	}

	h.drafts.RemoveLineItem(r.Context(), customerID, productID)
	api.SuccessJSON(w, convertDraftToDTO(h.drafts.Snapshot()))
}

func (h *DraftHandler) SetQuantity(w http.ResponseWriter, r *http.Request) {
	var setDTO dto.DraftSetQuantityDTO
	if err := json.NewDecoder(r.Body).Decode(&setDTO); err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, errBadRequest)
		return
	}

	if err := h.drafts.SetQuantity(r.Context(), setDTO.CustomerID, setDTO.ProductID, setDTO.Quantity); err != nil {
		writeServiceError(w, err)
		return
	}

	api.SuccessJSON(w, convertDraftToDTO(h.drafts.Snapshot()))
}

func (h *DraftHandler) SetPaymentMethod(w http.ResponseWriter, r *http.Request) {
	var setDTO dto.DraftSetPaymentMethodDTO
	if err := json.NewDecoder(r.Body).Decode(&setDTO); err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, errBadRequest)
		return
	}

	err := h.drafts.SetPaymentMethod(r.Context(), setDTO.CustomerID, domain.PaymentMethod(setDTO.PaymentMethod))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	api.SuccessJSON(w, convertDraftToDTO(h.drafts.Snapshot()))
}

func (h *DraftHandler) ClearDraft(w http.ResponseWriter, r *http.Request) {
	h.drafts.Clear(r.Context())
	api.SuccessJSON(w, convertDraftToDTO(h.drafts.Snapshot()))
}

// GetSummary 草稿的純文字摘要
func (h *DraftHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	api.SuccessJSON(w, dto.SummaryDTO{
		Text: export.FormatText(h.drafts.Snapshot()),
	})
}

// ShareSummary 把文字摘要交給分享服務
func (h *DraftHandler) ShareSummary(w http.ResponseWriter, r *http.Request) {
	if err := h.exporter.ShareSummary(r.Context(), h.drafts.Snapshot()); err != nil {
		api.ErrorJSON(w, http.StatusInternalServerError, err)
		return
	}
	api.SuccessJSON(w, nil)
}

// ExportSnapshot 渲染快照圖檔後交給分享服務
func (h *DraftHandler) ExportSnapshot(w http.ResponseWriter, r *http.Request) {
	if err := h.exporter.ExportSnapshot(r.Context()); err != nil {
		api.ErrorJSON(w, http.StatusInternalServerError, err)
		return
	}
	api.SuccessJSON(w, nil)
}
