package calendar_get

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"sevenfour/internal/dto"
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
	now := time.Now().UTC()
	year, month := now.Year(), now.Month()

	query := r.URL.Query()
	if rawYear := query.Get("year"); rawYear != "" {
		parsed, err := strconv.Atoi(rawYear)
		if err != nil {
			writeJSON(w, h.log, http.StatusBadRequest, dto.Response{
				Success: false,
				Message: "year must be an integer",
			})
			return
		}
		year = parsed
	}
	if rawMonth := query.Get("month"); rawMonth != "" {
		parsed, err := strconv.Atoi(rawMonth)
		if err != nil || parsed < 1 || parsed > 12 {
			writeJSON(w, h.log, http.StatusBadRequest, dto.Response{
				Success: false,
				Message: "month must be an integer between 1 and 12",
			})
			return
		}
		month = time.Month(parsed)
	}

	days, err := h.service.Calendar(r.Context(), year, month)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	// The ledger count is exact; the "3+" cap is display-only.
	maxPerDay := h.service.MaxPerDay()
	dayDTOs := make([]dto.CalendarDay, len(days))
	for i, day := range days {
		dayDTOs[i] = dto.CalendarDay{
			Date: day.Date.Format(time.DateOnly),
			Full: day.Count >= maxPerDay,
		}
		if day.Count >= maxPerDay {
			dayDTOs[i].Count = strconv.Itoa(maxPerDay) + "+"
		} else {
			dayDTOs[i].Count = strconv.Itoa(day.Count)
		}
	}

	writeJSON(w, h.log, http.StatusOK, dto.Response{
		Success: true,
		Data:    dayDTOs,
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
