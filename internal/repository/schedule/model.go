package schedule

import "time"

type ScheduleDB struct {
	ID             int64
	OriginType     string
	OrderID        int64
	OrderNumber    string
	DeliveryDate   time.Time
	TimeSlot       *string
	DeliveryStatus string
	CourierID      *int64
	Street         string
	City           string
	Province       string
	PostalCode     *string
	Notes          *string
	DeliveredAt    *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
