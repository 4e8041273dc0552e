package enum

// ProductCategory groups catalog products on the register grid.
type ProductCategory string

const (
	CategoryTacos      ProductCategory = "tacos"
	CategoryMenu       ProductCategory = "menu"
	CategorySupplement ProductCategory = "supplement"
	CategoryBoisson    ProductCategory = "boisson"
	CategorySpecial    ProductCategory = "special"
)

// Valid reports whether c is one of the known categories.
func (c ProductCategory) Valid() bool {
	switch c {
	case CategoryTacos, CategoryMenu, CategorySupplement, CategoryBoisson, CategorySpecial:
		return true
	}
	return false
}

func (c ProductCategory) String() string {
	return string(c)
}
