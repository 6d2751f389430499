package entities

import "time"

// Courier is owned by the shop backend; this service only reads and
// assigns couriers by reference.
type Courier struct {
	ID          int64
	Name        string
	Phone       string
	VehicleType VehicleType
	Status      CourierStatusType
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type VehicleType string

const (
	Motorcycle VehicleType = "motorcycle"
	Van        VehicleType = "van"
	Bicycle    VehicleType = "bicycle"
)

func (t VehicleType) String() string {
	return string(t)
}

type CourierStatusType string

const (
	CourierActive   CourierStatusType = "active"
	CourierInactive CourierStatusType = "inactive"
)

func (t CourierStatusType) String() string {
	return string(t)
}
