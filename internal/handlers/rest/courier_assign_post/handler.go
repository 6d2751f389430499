package courier_assign_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"sevenfour/internal/dto"
	"sevenfour/internal/entities"
	"sevenfour/internal/service/courier"
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
	var requestDTO dto.CourierAssignRequest
	err := json.NewDecoder(r.Body).Decode(&requestDTO)
	if err != nil {
		writeJSON(w, h.log, http.StatusBadRequest, dto.Response{
			Success: false,
			Message: "invalid request body",
		})
		return
	}

	ref := entities.OrderRef{
		Origin: entities.OriginType(requestDTO.OriginType),
		ID:     requestDTO.OrderID,
	}

	scheduleEntity, err := h.service.AssignCourier(r.Context(), ref, requestDTO.CourierID)
	if err != nil {
		switch {
		case errors.Is(err, courier.ErrInvalidCourierID):
			writeJSON(w, h.log, http.StatusBadRequest, dto.Response{
				Success: false,
				Message: err.Error(),
			})
		case errors.Is(err, courier.ErrCourierNotFound),
			errors.Is(err, courier.ErrNoActiveSchedule):
			writeJSON(w, h.log, http.StatusNotFound, dto.Response{
				Success: false,
				Message: err.Error(),
			})
		case errors.Is(err, courier.ErrCourierInactive):
			writeJSON(w, h.log, http.StatusConflict, dto.Response{
				Success: false,
				Message: err.Error(),
			})
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, h.log, http.StatusOK, dto.Response{
		Success: true,
		Data:    dto.FromSchedule(scheduleEntity),
	})
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
