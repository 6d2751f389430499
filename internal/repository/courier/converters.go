package courier

import "sevenfour/internal/entities"

func ToDomain(c *CourierDB) *entities.Courier {
	if c == nil {
		return nil
	}
	return &entities.Courier{
		ID:          c.ID,
		Name:        c.Name,
		Phone:       c.Phone,
		VehicleType: entities.VehicleType(c.VehicleType),
		Status:      entities.CourierStatusType(c.Status),
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
