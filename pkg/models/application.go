package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Application records a user applying to a job.
type Application struct {
	bun.BaseModel `bun:"table:applications,alias:a"`

	UserID    int       `bun:",pk" json:"userId"`
	JobID     int       `bun:",pk" json:"jobId"`
	CreatedAt time.Time `json:"createdAt"`
}
