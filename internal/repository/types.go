package repository

// FoodListFilter filter conditions for catalog listing queries
type FoodListFilter struct {
	Page          int
	PageSize      int
	Category      string
	Search        string
	OnlyAvailable bool
	WithOwner     bool
}

// OrderListFilter filter conditions for order listing queries
type OrderListFilter struct {
	Page      int
	PageSize  int
	UserID    uint
	Status    string
	OrderNo   string
	WithItems bool
}
