package scheduling

import (
	"strings"

	"sevenfour/internal/entities"
)

func isValidRequest(req entities.ScheduleRequest) bool {
	if req.OrderRef.ID <= 0 || req.DeliveryDate.IsZero() {
		return false
	}
	return isValidAddress(req.Address)
}

func isValidAddress(addr entities.Address) bool {
	return strings.TrimSpace(addr.Street) != "" && strings.TrimSpace(addr.City) != ""
}
