package status_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"sevenfour/internal/dto"
	"sevenfour/internal/entities"
	"sevenfour/internal/service/capacity"
	"sevenfour/internal/service/scheduling"
	"sevenfour/internal/service/status"
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
	var requestDTO dto.StatusRequest
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

	var notes *string
	if requestDTO.Notes != "" {
		notes = &requestDTO.Notes
	}

	scheduleEntity, err := h.service.Transition(
		r.Context(),
		ref,
		entities.DeliveryStatusType(requestDTO.Status),
		notes,
	)
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, h.log, http.StatusOK, dto.Response{
		Success: true,
		Data:    dto.FromSchedule(scheduleEntity),
	})
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var capacityErr *capacity.CapacityExceededError
	if errors.As(err, &capacityErr) {
		writeJSON(w, h.log, http.StatusConflict, dto.Response{
			Success: false,
			Data: dto.CapacityExceededData{
				CapacityExceeded:  true,
				CurrentDeliveries: capacityErr.Current,
				MaxDeliveries:     capacityErr.Max,
			},
			Message: capacityErr.Error(),
		})
		return
	}

	switch {
	case errors.Is(err, status.ErrUndefinedStatus):
		writeJSON(w, h.log, http.StatusBadRequest, dto.Response{
			Success: false,
			Message: err.Error(),
		})
	case errors.Is(err, scheduling.ErrScheduleNotFound):
		writeJSON(w, h.log, http.StatusNotFound, dto.Response{
			Success: false,
			Message: err.Error(),
		})
	case errors.Is(err, status.ErrInvalidTransition):
		writeJSON(w, h.log, http.StatusConflict, dto.Response{
			Success: false,
			Message: err.Error(),
		})
	default:
		w.WriteHeader(http.StatusInternalServerError)
	}
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
