package order

import (
	"time"

	"github.com/shopspring/decimal"
)

// Each origin table stores customer and address data under its own column
// names; one DB model per table keeps the mapping explicit.

type RegularOrderDB struct {
	ID             int64
	OrderNumber    string
	CustomerName   string
	Email          *string
	ContactNumber  *string
	TotalAmount    decimal.Decimal
	Status         string
	ShippingAddr   string
	City           string
	Province       string
	ZipCode        *string
	Notes          *string
	CustomOrderRef *string
	CreatedAt      time.Time
}

type CustomOrderDB struct {
	ID                int64
	CustomOrderNumber string
	CustomerName      string
	CustomerEmail     *string
	CustomerPhone     *string
	FinalPrice        decimal.Decimal
	Status            string
	StreetAddress     string
	CityMunicipality  string
	Province          string
	PostalCode        *string
	CreatedAt         time.Time
}

type CustomDesignDB struct {
	ID               int64
	DesignNumber     string
	ClientName       string
	ClientEmail      *string
	ClientPhone      *string
	QuotedPrice      decimal.Decimal
	Status           string
	DeliveryStreet   string
	DeliveryCity     string
	DeliveryProvince string
	DeliveryPostcode *string
	CreatedAt        time.Time
}
