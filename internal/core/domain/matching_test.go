package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func apartmentProperty(city, street string, floor, rooms, area *float64) Property {
	return Property{
		Type: PropertyTypeApartment,
		Address: Address{
			City:   strPtr(city),
			Street: strPtr(street),
		},
		Details: &ApartmentDetails{Floor: floor, Rooms: rooms, Area: area},
	}
}

func TestOfferMatchesNeed_TypeAndPrice(t *testing.T) {
	property := apartmentProperty("Москва", "Ленина", f64Ptr(5), f64Ptr(2), f64Ptr(54))
	offer := Offer{Price: 8500000}

	t.Run("несовпадение типа обрывает подбор", func(t *testing.T) {
		need := Need{PropertyType: PropertyTypeHouse, Details: &HouseNeedDetails{}}
		assert.False(t, OfferMatchesNeed(offer, need, property))
	})

	t.Run("цена внутри диапазона", func(t *testing.T) {
		need := Need{
			PropertyType: PropertyTypeApartment,
			PriceRange:   &Range{Min: f64Ptr(7000000), Max: f64Ptr(10000000)},
			Details:      &ApartmentNeedDetails{},
		}
		assert.True(t, OfferMatchesNeed(offer, need, property))
	})

	t.Run("цена ниже минимума", func(t *testing.T) {
		need := Need{
			PropertyType: PropertyTypeApartment,
			PriceRange:   &Range{Min: f64Ptr(9000000)},
			Details:      &ApartmentNeedDetails{},
		}
		assert.False(t, OfferMatchesNeed(offer, need, property))
	})

	t.Run("цена выше максимума", func(t *testing.T) {
		need := Need{
			PropertyType: PropertyTypeApartment,
			PriceRange:   &Range{Max: f64Ptr(8000000)},
			Details:      &ApartmentNeedDetails{},
		}
		assert.False(t, OfferMatchesNeed(offer, need, property))
	})

	t.Run("нулевая граница тоже ограничивает", func(t *testing.T) {
		need := Need{
			PropertyType: PropertyTypeApartment,
			PriceRange:   &Range{Max: f64Ptr(0)},
			Details:      &ApartmentNeedDetails{},
		}
		assert.False(t, OfferMatchesNeed(offer, need, property))
	})
}

func TestOfferMatchesNeed_Address(t *testing.T) {
	property := apartmentProperty("Москва", "Ленина", nil, nil, nil)
	offer := Offer{Price: 1000000}

	tests := []struct {
		name     string
		address  *Address
		expected bool
	}{
		{"адрес не задан - не фильтрует", nil, true},
		{"город совпал", &Address{City: strPtr("Москва")}, true},
		{"город не совпал", &Address{City: strPtr("Подольск")}, false},
		{"улица не совпала", &Address{City: strPtr("Москва"), Street: strPtr("Пушкина")}, false},
		{"город и улица совпали", &Address{City: strPtr("Москва"), Street: strPtr("Ленина")}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			need := Need{
				PropertyType: PropertyTypeApartment,
				Address:      tt.address,
				Details:      &ApartmentNeedDetails{},
			}
			assert.Equal(t, tt.expected, OfferMatchesNeed(offer, need, property))
		})
	}
}

func TestOfferMatchesNeed_AddressRequiredButMissing(t *testing.T) {
	// У объекта город не заполнен, а потребность его требует.
	property := Property{
		Type:    PropertyTypeApartment,
		Details: &ApartmentDetails{},
	}
	need := Need{
		PropertyType: PropertyTypeApartment,
		Address:      &Address{City: strPtr("Москва")},
		Details:      &ApartmentNeedDetails{},
	}

	assert.False(t, OfferMatchesNeed(Offer{Price: 1}, need, property))
}

func TestOfferMatchesNeed_ApartmentDetails(t *testing.T) {
	offer := Offer{Price: 8500000}

	tests := []struct {
		name     string
		property Property
		details  *ApartmentNeedDetails
		expected bool
	}{
		{
			"все диапазоны удовлетворены",
			apartmentProperty("Москва", "Ленина", f64Ptr(5), f64Ptr(2), f64Ptr(54)),
			&ApartmentNeedDetails{
				AreaRange:  &Range{Min: f64Ptr(45), Max: f64Ptr(70)},
				RoomsRange: &Range{Min: f64Ptr(2), Max: f64Ptr(3)},
			},
			true,
		},
		{
			"площадь меньше минимума",
			apartmentProperty("Москва", "Ленина", f64Ptr(5), f64Ptr(2), f64Ptr(38)),
			&ApartmentNeedDetails{AreaRange: &Range{Min: f64Ptr(45)}},
			false,
		},
		{
			"этаж выше максимума",
			apartmentProperty("Москва", "Ленина", f64Ptr(10), f64Ptr(1), f64Ptr(38)),
			&ApartmentNeedDetails{FloorRange: &Range{Max: f64Ptr(9)}},
			false,
		},
		{
			"незаполненная характеристика объекта не отсеивает",
			apartmentProperty("Москва", "Ленина", nil, nil, nil),
			&ApartmentNeedDetails{
				AreaRange:  &Range{Min: f64Ptr(45)},
				RoomsRange: &Range{Min: f64Ptr(2)},
				FloorRange: &Range{Min: f64Ptr(2)},
			},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			need := Need{PropertyType: PropertyTypeApartment, Details: tt.details}
			assert.Equal(t, tt.expected, OfferMatchesNeed(offer, need, tt.property))
		})
	}
}

func TestOfferMatchesNeed_HouseRangesDoNotFilter(t *testing.T) {
	// Диапазоны в потребности-доме заданы и заведомо не выполняются,
	// но подбор для домов фильтрует только тип, цену и адрес.
	property := Property{
		Type:    PropertyTypeHouse,
		Address: Address{City: strPtr("Подольск")},
		Details: &HouseDetails{Floors: f64Ptr(2), Rooms: f64Ptr(5), Area: f64Ptr(150)},
	}
	need := Need{
		PropertyType: PropertyTypeHouse,
		Details: &HouseNeedDetails{
			AreaRange:  &Range{Min: f64Ptr(500)},
			RoomsRange: &Range{Min: f64Ptr(10)},
		},
	}

	assert.True(t, OfferMatchesNeed(Offer{Price: 15000000}, need, property))
}

func TestInRange(t *testing.T) {
	tests := []struct {
		name     string
		value    *float64
		r        *Range
		expected bool
	}{
		{"nil диапазон", f64Ptr(5), nil, true},
		{"nil значение", nil, &Range{Min: f64Ptr(1)}, true},
		{"внутри", f64Ptr(5), &Range{Min: f64Ptr(1), Max: f64Ptr(10)}, true},
		{"на границе", f64Ptr(10), &Range{Max: f64Ptr(10)}, true},
		{"ниже минимума", f64Ptr(0.5), &Range{Min: f64Ptr(1)}, false},
		{"выше максимума", f64Ptr(11), &Range{Max: f64Ptr(10)}, false},
		{"нулевой минимум ограничивает", f64Ptr(-1), &Range{Min: f64Ptr(0)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, inRange(tt.value, tt.r))
		})
	}
}
