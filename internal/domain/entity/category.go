package entity

// Category categoría de productos del catálogo.
type Category struct {
	ID   int64
	Name string
}

// Brand marca de productos del catálogo.
type Brand struct {
	ID   int64
	Name string
}
