package deliveries_get

import (
	"encoding/json"
	"net/http"
	"time"

	"sevenfour/internal/dto"
	"sevenfour/internal/entities"
	"sevenfour/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		writeJSON(w, h.log, http.StatusBadRequest, dto.Response{
			Success: false,
			Message: err.Error(),
		})
		return
	}

	orderEntities, err := h.service.ListDeliverableOrders(r.Context(), filter)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	orderDTOs := make([]dto.DeliverableOrder, len(orderEntities))
	for i := range orderEntities {
		orderDTOs[i] = dto.FromOrder(&orderEntities[i])
	}

	writeJSON(w, h.log, http.StatusOK, dto.Response{
		Success: true,
		Data:    orderDTOs,
	})
}

func parseFilter(r *http.Request) (entities.OrderFilter, error) {
	var filter entities.OrderFilter

	query := r.URL.Query()
	if status := query.Get("status"); status != "" {
		filter.Status = &status
	}
	if search := query.Get("search"); search != "" {
		filter.Search = &search
	}
	if date := query.Get("date"); date != "" {
		parsed, err := time.Parse(time.DateOnly, date)
		if err != nil {
			return entities.OrderFilter{}, err
		}
		filter.DeliveryDate = &parsed
	}

	return filter, nil
}

func writeJSON(w http.ResponseWriter, log handlerLogger, code int, response dto.Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
