package dto

// CreateCategoryRequest entrada para crear una categoría o marca.
type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// CategoryResponse salida de categoría o marca.
type CategoryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
