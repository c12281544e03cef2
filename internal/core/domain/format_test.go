package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFullName(t *testing.T) {
	tests := []struct {
		name   string
		last   *string
		first  *string
		middle *string
		want   string
	}{
		{"все части", strPtr("Иванов"), strPtr("Иван"), strPtr("Иванович"), "Иванов Иван Иванович"},
		{"без отчества", strPtr("Козлова"), strPtr("Елена"), nil, "Козлова Елена"},
		{"только фамилия", strPtr("Сидоров"), nil, nil, "Сидоров"},
		{"пустая строка пропускается", strPtr("Петров"), strPtr(""), strPtr("Сергеевич"), "Петров Сергеевич"},
		{"совсем без имени", nil, nil, nil, "Без имени"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FullName(tt.last, tt.first, tt.middle))
		})
	}
}

func TestShortAddress(t *testing.T) {
	tests := []struct {
		name string
		addr Address
		want string
	}{
		{
			"полный адрес",
			Address{City: strPtr("Москва"), Street: strPtr("Ленина"), HouseNumber: strPtr("10"), ApartmentNumber: strPtr("25")},
			"Москва, Ленина, д.10, кв.25",
		},
		{
			"без квартиры",
			Address{City: strPtr("Подольск"), Street: strPtr("Садовая"), HouseNumber: strPtr("5")},
			"Подольск, Садовая, д.5",
		},
		{
			"только город",
			Address{City: strPtr("Дмитров")},
			"Дмитров",
		},
		{
			"пустой адрес",
			Address{},
			"Адрес не указан",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShortAddress(tt.addr))
		})
	}
}

func TestValidEmail(t *testing.T) {
	assert.True(t, ValidEmail("ivanov@mail.ru"))
	assert.True(t, ValidEmail("a.b+c@example.co.uk"))
	assert.False(t, ValidEmail("ivanov"))
	assert.False(t, ValidEmail("ivanov@mail"))
	assert.False(t, ValidEmail("иванов @mail.ru"))
}

func TestValidPhone(t *testing.T) {
	assert.True(t, ValidPhone("+7 (999) 123-45-67"))
	assert.True(t, ValidPhone("89991234567"))
	assert.False(t, ValidPhone("12345"))
	assert.False(t, ValidPhone("телефон"))
}
