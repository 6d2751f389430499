package schedule

import "sevenfour/internal/entities"

func ToDomain(s *ScheduleDB) *entities.Schedule {
	if s == nil {
		return nil
	}
	schedule := &entities.Schedule{
		ID: s.ID,
		OrderRef: entities.OrderRef{
			Origin: entities.OriginType(s.OriginType),
			ID:     s.OrderID,
		},
		OrderNumber:  s.OrderNumber,
		DeliveryDate: entities.DateOnly(s.DeliveryDate),
		TimeSlot:     s.TimeSlot,
		Status:       entities.DeliveryStatusType(s.DeliveryStatus),
		CourierID:    s.CourierID,
		Address: entities.Address{
			Street:   s.Street,
			City:     s.City,
			Province: s.Province,
		},
		DeliveredAt: s.DeliveredAt,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
	if s.PostalCode != nil {
		schedule.Address.PostalCode = *s.PostalCode
	}
	if s.Notes != nil {
		schedule.Notes = *s.Notes
	}
	return schedule
}
