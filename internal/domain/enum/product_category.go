package enum

// ProductCategory represents a catalog category.
type ProductCategory string

const (
	CategoryUAV        ProductCategory = "БПЛА"
	CategoryAvionics   ProductCategory = "Авионика"
	CategoryComms      ProductCategory = "Системы связи"
	CategoryPayload    ProductCategory = "Полезная нагрузка"
	CategoryPropulsion ProductCategory = "Двигатели и механизмы"
	CategorySoftware   ProductCategory = "Системы анализа и ПО"
)

// AllProductCategories lists every catalog category.
var AllProductCategories = []ProductCategory{
	CategoryUAV,
	CategoryAvionics,
	CategoryComms,
	CategoryPayload,
	CategoryPropulsion,
	CategorySoftware,
}

func (c ProductCategory) String() string {
	return string(c)
}

// IsValid reports whether the category is one of the recognized values.
func (c ProductCategory) IsValid() bool {
	for _, v := range AllProductCategories {
		if c == v {
			return true
		}
	}
	return false
}
