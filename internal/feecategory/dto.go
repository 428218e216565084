package feecategory

// CategoryCreateDTO is the body of POST /fee-categories.
type CategoryCreateDTO struct {
	CategoryName string  `json:"categoryName" validate:"required,max=100"`
	BaseAmount   float64 `json:"baseAmount" validate:"gte=0"`
	Description  string  `json:"description" validate:"max=255"`
}

// CategoryUpdateDTO is the body of PUT /fee-categories/{id}.
type CategoryUpdateDTO struct {
	CategoryName string  `json:"categoryName" validate:"required,max=100"`
	BaseAmount   float64 `json:"baseAmount" validate:"gte=0"`
	Description  string  `json:"description" validate:"max=255"`
}
