package order

import "sevenfour/internal/entities"

func ToRegularDomain(o *RegularOrderDB) entities.DeliverableOrder {
	return entities.DeliverableOrder{
		Ref: entities.OrderRef{
			Origin: entities.OriginRegular,
			ID:     o.ID,
		},
		OrderNumber:   o.OrderNumber,
		CustomerName:  o.CustomerName,
		CustomerEmail: deref(o.Email),
		CustomerPhone: deref(o.ContactNumber),
		TotalAmount:   o.TotalAmount,
		Address: entities.Address{
			Street:     o.ShippingAddr,
			City:       o.City,
			Province:   o.Province,
			PostalCode: deref(o.ZipCode),
		},
		Status:         o.Status,
		Notes:          deref(o.Notes),
		CustomOrderRef: o.CustomOrderRef,
		CreatedAt:      o.CreatedAt,
	}
}

func ToCustomOrderDomain(o *CustomOrderDB) entities.DeliverableOrder {
	return entities.DeliverableOrder{
		Ref: entities.OrderRef{
			Origin: entities.OriginCustomOrder,
			ID:     o.ID,
		},
		OrderNumber:   o.CustomOrderNumber,
		CustomerName:  o.CustomerName,
		CustomerEmail: deref(o.CustomerEmail),
		CustomerPhone: deref(o.CustomerPhone),
		TotalAmount:   o.FinalPrice,
		Address: entities.Address{
			Street:     o.StreetAddress,
			City:       o.CityMunicipality,
			Province:   o.Province,
			PostalCode: deref(o.PostalCode),
		},
		Status:    o.Status,
		CreatedAt: o.CreatedAt,
	}
}

func ToCustomDesignDomain(o *CustomDesignDB) entities.DeliverableOrder {
	return entities.DeliverableOrder{
		Ref: entities.OrderRef{
			Origin: entities.OriginCustomDesign,
			ID:     o.ID,
		},
		OrderNumber:   o.DesignNumber,
		CustomerName:  o.ClientName,
		CustomerEmail: deref(o.ClientEmail),
		CustomerPhone: deref(o.ClientPhone),
		TotalAmount:   o.QuotedPrice,
		Address: entities.Address{
			Street:     o.DeliveryStreet,
			City:       o.DeliveryCity,
			Province:   o.DeliveryProvince,
			PostalCode: deref(o.DeliveryPostcode),
		},
		Status:    o.Status,
		CreatedAt: o.CreatedAt,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
