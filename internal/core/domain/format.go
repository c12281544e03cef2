package domain

import "strings"

// FullName собирает ФИО из непустых частей.
func FullName(lastName, firstName, middleName *string) string {
	parts := make([]string, 0, 3)
	for _, p := range []*string{lastName, firstName, middleName} {
		if p != nil && *p != "" {
			parts = append(parts, *p)
		}
	}
	if len(parts) == 0 {
		return "Без имени"
	}
	return strings.Join(parts, " ")
}

// ShortAddress формирует короткую строку адреса вида "Москва, Ленина, д.10, кв.25".
func ShortAddress(addr Address) string {
	parts := make([]string, 0, 4)
	if addr.City != nil && *addr.City != "" {
		parts = append(parts, *addr.City)
	}
	if addr.Street != nil && *addr.Street != "" {
		parts = append(parts, *addr.Street)
	}
	if addr.HouseNumber != nil && *addr.HouseNumber != "" {
		parts = append(parts, "д."+*addr.HouseNumber)
	}
	if addr.ApartmentNumber != nil && *addr.ApartmentNumber != "" {
		parts = append(parts, "кв."+*addr.ApartmentNumber)
	}
	if len(parts) == 0 {
		return "Адрес не указан"
	}
	return strings.Join(parts, ", ")
}
