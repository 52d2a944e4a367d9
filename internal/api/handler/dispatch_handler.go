package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/RoyceAzure/lab/storefront/internal/api"
	"github.com/RoyceAzure/lab/storefront/internal/api/dto"
	"github.com/RoyceAzure/lab/storefront/internal/constants"
	"github.com/RoyceAzure/lab/storefront/internal/service"
)

type DispatchHandler struct {
	dispatchService service.IDispatchService
}

func NewDispatchHandler(dispatchService service.IDispatchService) *DispatchHandler {
	if dispatchService == nil {
		panic("dispatchService cannot be nil")
	}
	return &DispatchHandler{
		dispatchService: dispatchService,
	}
}

func (h *DispatchHandler) CreateDispatch(w http.ResponseWriter, r *http.Request) {
	var createDTO dto.CreateDispatchDTO
	if err := json.NewDecoder(r.Body).Decode(&createDTO); err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, errBadRequest)
		return
	}

	dispatchDate, err := time.Parse(constants.DateLayout, createDTO.DispatchDate)
	if err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, errBadRequest)
		return
	}

	dispatch, err := h.dispatchService.CreateDispatch(r.Context(), createDTO.OrderID, dispatchDate)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	api.SuccessJSON(w, convertDispatchToDTO(dispatch))
}

// ListDispatches 某一天的配送清單，巢狀帶出訂單內容
func (h *DispatchHandler) ListDispatches(w http.ResponseWriter, r *http.Request) {
	date, err := time.Parse(constants.DateLayout, r.URL.Query().Get("date"))
	if err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, errBadRequest)
		return
	}

	dispatches, err := h.dispatchService.ListDispatchesByDate(r.Context(), date)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	api.SuccessJSON(w, convertDispatchesToDTO(dispatches))
}

func (h *DispatchHandler) UpdateDispatched(w http.ResponseWriter, r *http.Request) {
	id, err := parseUintParam(r, "id")
	if err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, errBadRequest)
		return
	}

	var updateDTO dto.UpdateDispatchedDTO
	if err := json.NewDecoder(r.Body).Decode(&updateDTO); err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, errBadRequest)
		return
	}

	if err := h.dispatchService.SetDispatched(r.Context(), id, updateDTO.Dispatched); err != nil {
		writeServiceError(w, err)
		return
	}

	api.SuccessJSON(w, nil)
}
