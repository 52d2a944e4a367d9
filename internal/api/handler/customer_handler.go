package handler

import (
	"encoding/json"
	"net/http"

	"github.com/RoyceAzure/lab/storefront/internal/api"
	"github.com/RoyceAzure/lab/storefront/internal/api/dto"
	"github.com/RoyceAzure/lab/storefront/internal/service"
)

type CustomerHandler struct {
	customerService service.ICustomerService
}

func NewCustomerHandler(customerService service.ICustomerService) *CustomerHandler {
	if customerService == nil {
		panic("customerService cannot be nil")
	}
	return &CustomerHandler{
		customerService: customerService,
	}
}

func (h *CustomerHandler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var createDTO dto.CreateCustomerDTO
	if err := json.NewDecoder(r.Body).Decode(&createDTO); err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, errBadRequest)
		return
	}

	customer, err := h.customerService.CreateCustomer(r.Context(), createDTO.Name, createDTO.Phone, createDTO.Address)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	api.SuccessJSON(w, convertCustomerToDTO(customer))
}

func (h *CustomerHandler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := parseUintParam(r, "id")
	if err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, errBadRequest)
		return
	}

	customer, err := h.customerService.GetCustomer(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	api.SuccessJSON(w, convertCustomerToDTO(customer))
}

// ListCustomers 依名稱排序的完整清單
func (h *CustomerHandler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.customerService.ListCustomers(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	api.SuccessJSON(w, convertCustomersToDTO(customers))
}

// ListCustomerSections 依首字母分組的清單，給前端section list用
func (h *CustomerHandler) ListCustomerSections(w http.ResponseWriter, r *http.Request) {
	sections, err := h.customerService.ListCustomerSections(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	api.SuccessJSON(w, convertSectionsToDTO(sections))
}

func (h *CustomerHandler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := parseUintParam(r, "id")
	if err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, errBadRequest)
		return
	}

	var updateDTO dto.CreateCustomerDTO
	if err := json.NewDecoder(r.Body).Decode(&updateDTO); err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, errBadRequest)
		return
	}

	if err := h.customerService.UpdateCustomer(r.Context(), id, updateDTO.Name, updateDTO.Phone, updateDTO.Address); err != nil {
		writeServiceError(w, err)
		return
	}

	api.SuccessJSON(w, nil)
}

func (h *CustomerHandler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := parseUintParam(r, "id")
	if err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, errBadRequest)
		return
	}

	if err := h.customerService.DeleteCustomer(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}

	api.SuccessJSON(w, nil)
}
