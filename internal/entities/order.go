package entities

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// OriginType names the table that owns the authoritative order record.
type OriginType string

const (
	OriginRegular      OriginType = "regular"
	OriginCustomOrder  OriginType = "custom_order"
	OriginCustomDesign OriginType = "custom_design"
)

func (t OriginType) String() string {
	return string(t)
}

// OrderRef is the global key of an order: origin table plus row id.
type OrderRef struct {
	Origin OriginType
	ID     int64
}

func (r OrderRef) String() string {
	return fmt.Sprintf("%s/%d", r.Origin, r.ID)
}

type Address struct {
	Street     string
	City       string
	Province   string
	PostalCode string
}

// DeliverableOrder is the normalized view of an order eligible for delivery,
// merged from the three origin tables.
type DeliverableOrder struct {
	Ref            OrderRef
	OrderNumber    string
	CustomerName   string
	CustomerEmail  string
	CustomerPhone  string
	TotalAmount    decimal.Decimal
	Address        Address
	Status         string
	Notes          string
	CustomOrderRef *string
	CreatedAt      time.Time
}

type OrderFilter struct {
	Status       *string
	DeliveryDate *time.Time
	Search       *string
}
