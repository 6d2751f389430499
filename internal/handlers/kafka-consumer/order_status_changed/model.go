package order_status_changed

// statusChangedEvent is the shop backend's order lifecycle event.
type statusChangedEvent struct {
	OriginType string `json:"originType"`
	OrderID    int64  `json:"orderId"`
	Status     string `json:"status"`
}

// upstream statuses that cancel the active delivery schedule
const upstreamCancelled = "cancelled"
