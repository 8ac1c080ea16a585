package jobs

type CreateJobPayload struct {
	Title         string  `json:"title" mod:"trim" validate:"required,min=1,max=200"`
	Salary        *int    `json:"salary" validate:"omitnil,min=0"`
	Equity        *string `json:"equity" mod:"trim" validate:"omitnil,equity"`
	CompanyHandle string  `json:"companyHandle" mod:"trim,lcase" validate:"required,max=25,handle"`
}

// ListJobsQuery holds the raw search filters. HasEquity stays a string so any
// value other than "true" can be read as false.
type ListJobsQuery struct {
	Title     *string `query:"title" validate:"omitnil,max=200"`
	MinSalary *int    `query:"minSalary" validate:"omitnil,min=0"`
	HasEquity string  `query:"hasEquity"`
}

// UpdateJobPayload doesn't carry id or companyHandle, so the binder rejects
// both as unknown fields.
type UpdateJobPayload struct {
	Title  *string `json:"title" mod:"trim" validate:"omitnil,min=1,max=200"`
	Salary *int    `json:"salary" validate:"omitnil,min=0"`
	Equity *string `json:"equity" mod:"trim" validate:"omitnil,equity"`
}
