package domain

// PropertyFilters - фильтры для поиска объектов недвижимости.
type PropertyFilters struct {
	Type         *PropertyType
	AddressQuery string
}

// SearchResult - результат глобального нечеткого поиска.
type SearchResult struct {
	Clients    []Client
	Realtors   []Realtor
	Properties []Property
}

// DashboardStats - счетчики для главного экрана.
type DashboardStats struct {
	Clients      int
	Realtors     int
	Properties   int
	ActiveOffers int
	ActiveNeeds  int
	Deals        int
}
