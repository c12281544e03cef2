package domain

import (
	"strings"

	"golang.org/x/text/cases"
)

// Пороги нечеткого поиска. Подобраны под опечатки в одно-два исправления
// для кириллических фамилий и названий улиц.
const (
	nameMatchThreshold   = 3
	cityMatchThreshold   = 3
	streetMatchThreshold = 3
	houseMatchThreshold  = 1
)

// fold приводит строку к регистронезависимой форме (Unicode case folding,
// корректно работает и для кириллицы).
func fold(s string) string {
	return cases.Fold().String(s)
}

// Levenshtein вычисляет классическое редакционное расстояние между
// двумя строками без учета регистра. Работает по рунам, а не по байтам.
// Стоимость вставки, удаления и замены - 1; транспозиции не учитываются.
func Levenshtein(a, b string) int {
	ra := []rune(fold(a))
	rb := []rune(fold(b))

	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	// Храним только предыдущую и текущую строки матрицы.
	prev := make([]int, len(ra)+1)
	curr := make([]int, len(ra)+1)
	for j := 0; j <= len(ra); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(rb); i++ {
		curr[0] = i
		for j := 1; j <= len(ra); j++ {
			if rb[i-1] == ra[j-1] {
				curr[j] = prev[j-1]
			} else {
				curr[j] = min(prev[j-1]+1, curr[j-1]+1, prev[j]+1)
			}
		}
		prev, curr = curr, prev
	}

	return prev[len(ra)]
}

// MatchesName - нечеткое совпадение запроса с частями ФИО.
// Запрос разбивается по пробелам; персона подходит, если хотя бы один
// токен запроса находится на расстоянии <= 3 от хотя бы одной из
// непустых частей имени. Пустой запрос совпадает со всеми.
func MatchesName(query string, lastName, firstName, middleName *string) bool {
	tokens := strings.Fields(query)
	if len(tokens) == 0 {
		return true
	}

	nameParts := make([]string, 0, 3)
	for _, p := range []*string{lastName, firstName, middleName} {
		if p != nil && *p != "" {
			nameParts = append(nameParts, *p)
		}
	}

	for _, token := range tokens {
		for _, part := range nameParts {
			if Levenshtein(token, part) <= nameMatchThreshold {
				return true
			}
		}
	}
	return false
}

// MatchesAddress - нечеткое совпадение запроса с адресом объекта.
// Совпадением считается близость к городу или улице (<= 3), к номеру
// дома (<= 1), либо вхождение запроса в короткий адрес как подстроки
// (более мягкий запасной вариант). Пустой запрос совпадает со всеми.
func MatchesAddress(query string, addr Address) bool {
	if strings.TrimSpace(query) == "" {
		return true
	}

	if addr.City != nil && *addr.City != "" && Levenshtein(query, *addr.City) <= cityMatchThreshold {
		return true
	}
	if addr.Street != nil && *addr.Street != "" && Levenshtein(query, *addr.Street) <= streetMatchThreshold {
		return true
	}
	if addr.HouseNumber != nil && *addr.HouseNumber != "" && Levenshtein(query, *addr.HouseNumber) <= houseMatchThreshold {
		return true
	}

	return strings.Contains(fold(ShortAddress(addr)), fold(query))
}
