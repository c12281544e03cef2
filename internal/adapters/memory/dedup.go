package memory

import (
	"fmt"
	"strings"

	"brokerage-service/internal/core/domain"

	"github.com/mmcloughlin/geohash"
)

const geohashPrecision = 5

// buildDedupKey строит стабильный ключ дедупликации объекта:
// усеченный геохэш координат + тип + ключевые характеристики.
// Площадь нормализуется в корзины, чтобы мелкие расхождения
// в объявлениях не ломали сравнение.
func buildDedupKey(p domain.Property) (string, bool) {
	if p.Coordinates == nil || p.Coordinates.Latitude == nil || p.Coordinates.Longitude == nil {
		return "", false
	}

	geohsh := geohash.Encode(*p.Coordinates.Latitude, *p.Coordinates.Longitude)

	parts := []string{
		geohsh[:geohashPrecision],
		string(p.Type),
	}

	addFloat := func(val *float64) {
		if val != nil {
			parts = append(parts, fmt.Sprintf("%g", *val))
		} else {
			parts = append(parts, "null")
		}
	}

	switch d := p.Details.(type) {
	// Квартира: площадь (корзинами), комнаты, этаж.
	case *domain.ApartmentDetails:
		parts = append(parts, areaBucket(d.Area, 2.0))
		addFloat(d.Rooms)
		addFloat(d.Floor)

	// Дом: площадь (корзинами), комнаты, этажность.
	case *domain.HouseDetails:
		parts = append(parts, areaBucket(d.Area, 2.0))
		addFloat(d.Rooms)
		addFloat(d.Floors)

	// Участок: площадь - его главная и самая стабильная характеристика.
	case *domain.LandDetails:
		parts = append(parts, areaBucket(d.Area, 10.0))
	}

	return strings.Join(parts, "|"), true
}

// areaBucket нормализует площадь в корзину заданного размера.
func areaBucket(area *float64, bucketSize float64) string {
	if area == nil {
		return "null"
	}
	if bucketSize <= 0 {
		bucketSize = 1.0
	}
	return fmt.Sprintf("%d", int(*area/bucketSize))
}
