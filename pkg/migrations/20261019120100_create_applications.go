package migrations

import (
	"context"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

func init() {
	up := func(_ context.Context, db *bun.DB) error {
		_, err := db.Exec(`
			CREATE TABLE applications (
				user_id INTEGER REFERENCES users (id) ON DELETE CASCADE NOT NULL,
				job_id INTEGER REFERENCES jobs (id) ON DELETE CASCADE NOT NULL,
				created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
				PRIMARY KEY (user_id, job_id)
			)
`)
		if err != nil {
			return errors.WithStack(err)
		}
		_, err = db.Exec(`CREATE INDEX ix_applications_job_id ON applications (job_id)`)
		return errors.WithStack(err)
	}

	down := func(_ context.Context, db *bun.DB) error {
		_, err := db.Exec(`DROP TABLE IF EXISTS applications`)
		return errors.WithStack(err)
	}

	Migrations.MustRegister(up, down)
}
