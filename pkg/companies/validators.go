package companies

type CreateCompanyPayload struct {
	Handle       string  `json:"handle" mod:"trim,lcase" validate:"required,min=1,max=25,handle"`
	Name         string  `json:"name" mod:"trim" validate:"required,min=1,max=100"`
	Description  string  `json:"description" mod:"trim" validate:"max=1000"`
	NumEmployees *int    `json:"numEmployees" validate:"omitnil,min=0"`
	LogoURL      *string `json:"logoUrl" mod:"trim" validate:"omitnil,url,max=300"`
}

type ListCompaniesQuery struct {
	Name         *string `query:"name" validate:"omitnil,min=1,max=100"`
	MinEmployees *int    `query:"minEmployees" validate:"omitnil,min=0"`
	MaxEmployees *int    `query:"maxEmployees" validate:"omitnil,min=0"`
}

type UpdateCompanyPayload struct {
	Name         *string `json:"name" mod:"trim" validate:"omitnil,min=1,max=100"`
	Description  *string `json:"description" mod:"trim" validate:"omitnil,max=1000"`
	NumEmployees *int    `json:"numEmployees" validate:"omitnil,min=0"`
	LogoURL      *string `json:"logoUrl" mod:"trim" validate:"omitnil,url,max=300"`
}
