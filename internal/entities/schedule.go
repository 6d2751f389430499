package entities

import "time"

type DeliveryStatusType string

const (
	DeliveryPending   DeliveryStatusType = "pending"
	DeliveryScheduled DeliveryStatusType = "scheduled"
	DeliveryInTransit DeliveryStatusType = "in_transit"
	DeliveryDelivered DeliveryStatusType = "delivered"
	DeliveryDelayed   DeliveryStatusType = "delayed"
	DeliveryCancelled DeliveryStatusType = "cancelled"
	DeliveryRemoved   DeliveryStatusType = "removed"
)

func (s DeliveryStatusType) String() string {
	return string(s)
}

// Terminal reports whether no further transitions are accepted from s.
func (s DeliveryStatusType) Terminal() bool {
	return s == DeliveryDelivered || s == DeliveryRemoved
}

// Active reports whether s counts against the daily capacity cap.
// Cancelled and removed rows keep history but free their slot.
func (s DeliveryStatusType) Active() bool {
	return s != DeliveryCancelled && s != DeliveryRemoved
}

// Schedule is the mutable scheduling record for one DeliverableOrder.
// Rows are never physically deleted; cancelled/removed mark logical deletion.
type Schedule struct {
	ID           int64
	OrderRef     OrderRef
	OrderNumber  string
	DeliveryDate time.Time
	TimeSlot     *string
	Status       DeliveryStatusType
	CourierID    *int64
	Address      Address
	Notes        string
	DeliveredAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type ScheduleModify struct {
	ID           *int64
	OrderRef     *OrderRef
	OrderNumber  *string
	DeliveryDate *time.Time
	TimeSlot     *string
	Status       *DeliveryStatusType
	CourierID    *int64
	ClearCourier bool
	Address      *Address
	Notes        *string
	DeliveredAt  *time.Time
}

// ScheduleRequest carries everything needed to book or rebook a delivery.
type ScheduleRequest struct {
	OrderRef     OrderRef
	DeliveryDate time.Time
	TimeSlot     *string
	Address      Address
	CourierID    *int64
	Notes        string
}

// CapacityDay is the derived per-date count of active schedules.
type CapacityDay struct {
	Date  time.Time
	Count int
	Max   int
}

// DateOnly truncates t to calendar-date precision in UTC. Capacity
// accounting and date comparisons work on this form only.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
