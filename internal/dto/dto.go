// Package dto holds the JSON types of the delivery API. The envelope shape
// {success, data, message} matches what the shop frontend already consumes.
package dto

import "github.com/shopspring/decimal"

type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

type Address struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	Province   string `json:"province"`
	PostalCode string `json:"postalCode,omitempty"`
}

type DeliverableOrder struct {
	OriginType    string          `json:"originType"`
	OrderID       int64           `json:"orderId"`
	OrderNumber   string          `json:"orderNumber"`
	CustomerName  string          `json:"customerName"`
	CustomerEmail string          `json:"customerEmail,omitempty"`
	CustomerPhone string          `json:"customerPhone,omitempty"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	Address       Address         `json:"deliveryAddress"`
	Status        string          `json:"status"`
	Notes         string          `json:"notes,omitempty"`
	CreatedAt     string          `json:"createdAt"`
}

type Schedule struct {
	ID           int64   `json:"id"`
	OriginType   string  `json:"originType"`
	OrderID      int64   `json:"orderId"`
	OrderNumber  string  `json:"orderNumber"`
	DeliveryDate string  `json:"deliveryDate"`
	TimeSlot     *string `json:"deliveryTimeSlot,omitempty"`
	Status       string  `json:"deliveryStatus"`
	CourierID    *int64  `json:"courierId,omitempty"`
	Address      Address `json:"deliveryAddress"`
	Notes        string  `json:"deliveryNotes,omitempty"`
	DeliveredAt  *string `json:"deliveredAt,omitempty"`
	CreatedAt    string  `json:"createdAt"`
	UpdatedAt    string  `json:"updatedAt"`
}

type ScheduleRequest struct {
	OriginType   string  `json:"originType"`
	OrderID      int64   `json:"orderId"`
	DeliveryDate string  `json:"deliveryDate"`
	TimeSlot     *string `json:"deliveryTimeSlot,omitempty"`
	Address      Address `json:"deliveryAddress"`
	CourierID    *int64  `json:"courierId,omitempty"`
	Notes        string  `json:"deliveryNotes,omitempty"`
}

type StatusRequest struct {
	OriginType string `json:"originType"`
	OrderID    int64  `json:"orderId"`
	Status     string `json:"deliveryStatus"`
	Notes      string `json:"deliveryNotes,omitempty"`
}

type CourierAssignRequest struct {
	OriginType string `json:"originType"`
	OrderID    int64  `json:"orderId"`
	CourierID  int64  `json:"courierId"`
}

type CourierUnassignRequest struct {
	OriginType string `json:"originType"`
	OrderID    int64  `json:"orderId"`
}

type Courier struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	VehicleType string `json:"vehicleType"`
	Status      string `json:"status"`
}

// CapacityExceededData is the 409 payload for a fully booked date.
type CapacityExceededData struct {
	CapacityExceeded  bool `json:"capacityExceeded"`
	CurrentDeliveries int  `json:"currentDeliveries"`
	MaxDeliveries     int  `json:"maxDeliveries"`
}

// CalendarDay carries the display-capped count ("3+" when the cap is hit);
// the exact count never leaves the ledger.
type CalendarDay struct {
	Date  string `json:"date"`
	Count string `json:"count"`
	Full  bool   `json:"full"`
}
