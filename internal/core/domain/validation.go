package domain

import "regexp"

var (
	emailRegexp = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRegexp = regexp.MustCompile(`^\+?[\d\s\-()]{10,}$`)
)

// ValidEmail - простая проверка формата: непустая локальная часть, @ и домен с точкой.
func ValidEmail(email string) bool {
	return emailRegexp.MatchString(email)
}

// ValidPhone - не менее 10 символов из цифр, пробелов, дефисов и скобок,
// опционально ведущий "+".
func ValidPhone(phone string) bool {
	return phoneRegexp.MatchString(phone)
}
