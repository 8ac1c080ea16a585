package models

import (
	"time"

	"github.com/uptrace/bun"
)

type Job struct {
	bun.BaseModel `bun:"table:jobs,alias:j"`

	ID            int       `bun:",pk,nullzero" json:"id"`
	CreatedAt     time.Time `json:"-"`
	UpdatedAt     time.Time `json:"-"`
	Title         string    `bun:",nullzero" json:"title"`
	Salary        *int      `json:"salary"`
	Equity        *string   `json:"equity"` // decimal string between 0 and 1, e.g. "0.05"
	CompanyHandle string    `bun:",nullzero" json:"companyHandle"`

	// Relations
	Company *Company `bun:"rel:belongs-to,join:company_handle=handle" json:"company,omitempty"`
}
