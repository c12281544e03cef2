package domain

// inRange проверяет значение объекта против диапазона потребности.
// Отсутствующий диапазон или отсутствующая граница не накладывают ограничений.
// Если граница задана, а значение у объекта отсутствует - проверка
// пропускается, это НЕ отказ. Такая мягкость сохранена намеренно:
// объект с незаполненной характеристикой остается кандидатом.
func inRange(value *float64, r *Range) bool {
	if r == nil || value == nil {
		return true
	}
	if r.Min != nil && *value < *r.Min {
		return false
	}
	if r.Max != nil && *value > *r.Max {
		return false
	}
	return true
}

// OfferMatchesNeed решает, является ли предложение кандидатом на
// удовлетворение потребности. Проверки идут по порядку и обрываются
// на первом несовпадении:
//  1. тип объекта должен точно совпадать с типом потребности;
//  2. цена предложения должна попадать в ценовой диапазон;
//  3. если в потребности указан город/улица - они должны совпасть с адресом объекта;
//  4. для квартир дополнительно проверяются диапазоны площади, комнат и этажа.
//
// Диапазоны для домов и участков в модели есть, но здесь не фильтруют -
// так ведет себя исходная логика подбора, и это поведение сохранено
// (см. DESIGN.md, открытый вопрос о генерализации).
func OfferMatchesNeed(offer Offer, need Need, property Property) bool {
	if property.Type != need.PropertyType {
		return false
	}

	if need.PriceRange != nil {
		if need.PriceRange.Min != nil && offer.Price < *need.PriceRange.Min {
			return false
		}
		if need.PriceRange.Max != nil && offer.Price > *need.PriceRange.Max {
			return false
		}
	}

	if need.Address != nil {
		if need.Address.City != nil && !equalStr(property.Address.City, need.Address.City) {
			return false
		}
		if need.Address.Street != nil && !equalStr(property.Address.Street, need.Address.Street) {
			return false
		}
	}

	needDetails, okNeed := need.Details.(*ApartmentNeedDetails)
	propDetails, okProp := property.Details.(*ApartmentDetails)
	if okNeed && okProp && needDetails != nil && propDetails != nil {
		if !inRange(propDetails.Area, needDetails.AreaRange) {
			return false
		}
		if !inRange(propDetails.Rooms, needDetails.RoomsRange) {
			return false
		}
		if !inRange(propDetails.Floor, needDetails.FloorRange) {
			return false
		}
	}

	return true
}

// equalStr сравнивает указатель на строку объекта с заданным значением.
// nil у объекта при заданном требовании означает несовпадение.
func equalStr(actual, required *string) bool {
	return actual != nil && required != nil && *actual == *required
}
