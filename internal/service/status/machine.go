package status

import "sevenfour/internal/entities"

// transitions is the full legality table. A pending order can only move
// forward into scheduled; delivered and removed are terminal; cancelled
// can be restored to scheduled or hard-hidden as removed; delayed
// deliveries keep their slot until rescheduled or cancelled.
var transitions = map[entities.DeliveryStatusType][]entities.DeliveryStatusType{
	entities.DeliveryPending:   {entities.DeliveryScheduled},
	entities.DeliveryScheduled: {entities.DeliveryInTransit, entities.DeliveryDelayed, entities.DeliveryCancelled},
	entities.DeliveryInTransit: {entities.DeliveryDelivered, entities.DeliveryDelayed, entities.DeliveryCancelled},
	entities.DeliveryDelayed:   {entities.DeliveryScheduled, entities.DeliveryCancelled},
	entities.DeliveryCancelled: {entities.DeliveryScheduled, entities.DeliveryRemoved},
	entities.DeliveryDelivered: {},
	entities.DeliveryRemoved:   {},
}

func isKnownStatus(s entities.DeliveryStatusType) bool {
	_, ok := transitions[s]
	return ok
}

func isLegalTransition(from, to entities.DeliveryStatusType) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
