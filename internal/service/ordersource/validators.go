package ordersource

import "sevenfour/internal/entities"

func isValidRef(ref entities.OrderRef) bool {
	if ref.ID <= 0 {
		return false
	}
	switch ref.Origin {
	case entities.OriginRegular, entities.OriginCustomOrder, entities.OriginCustomDesign:
		return true
	default:
		return false
	}
}
