package dto

import (
	"time"

	"sevenfour/internal/entities"
)

func FromOrder(o *entities.DeliverableOrder) DeliverableOrder {
	return DeliverableOrder{
		OriginType:    o.Ref.Origin.String(),
		OrderID:       o.Ref.ID,
		OrderNumber:   o.OrderNumber,
		CustomerName:  o.CustomerName,
		CustomerEmail: o.CustomerEmail,
		CustomerPhone: o.CustomerPhone,
		TotalAmount:   o.TotalAmount,
		Address:       fromAddress(o.Address),
		Status:        o.Status,
		Notes:         o.Notes,
		CreatedAt:     o.CreatedAt.Format(time.RFC3339),
	}
}

func FromSchedule(s *entities.Schedule) Schedule {
	schedule := Schedule{
		ID:           s.ID,
		OriginType:   s.OrderRef.Origin.String(),
		OrderID:      s.OrderRef.ID,
		OrderNumber:  s.OrderNumber,
		DeliveryDate: s.DeliveryDate.Format(time.DateOnly),
		TimeSlot:     s.TimeSlot,
		Status:       s.Status.String(),
		CourierID:    s.CourierID,
		Address:      fromAddress(s.Address),
		Notes:        s.Notes,
		CreatedAt:    s.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    s.UpdatedAt.Format(time.RFC3339),
	}
	if s.DeliveredAt != nil {
		deliveredAt := s.DeliveredAt.Format(time.RFC3339)
		schedule.DeliveredAt = &deliveredAt
	}
	return schedule
}

func FromCourier(c *entities.Courier) Courier {
	return Courier{
		ID:          c.ID,
		Name:        c.Name,
		Phone:       c.Phone,
		VehicleType: c.VehicleType.String(),
		Status:      c.Status.String(),
	}
}

func fromAddress(a entities.Address) Address {
	return Address{
		Street:     a.Street,
		City:       a.City,
		Province:   a.Province,
		PostalCode: a.PostalCode,
	}
}
