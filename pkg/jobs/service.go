package jobs

import (
	"context"
	"database/sql"
	"slices"
	"strings"
	"time"

	"github.com/joblyhq/jobly/pkg/database"
	"github.com/joblyhq/jobly/pkg/errcodes"
	"github.com/joblyhq/jobly/pkg/models"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

type RetrieveJobOptions struct {
	ID             *int
	IncludeCompany bool
}

type ListJobsOptions struct {
	Title     *string
	MinSalary *int
	HasEquity bool
}

type UpdateJobOptions struct {
	Columns []string
}

type Service struct {
	db *bun.DB
}

func NewService(db *bun.DB) *Service {
	return &Service{db}
}

// CreateJob inserts a job for an existing company.
func (svc *Service) CreateJob(ctx context.Context, job *models.Job) error {
	exists, err := svc.db.
		NewSelect().
		Model((*models.Company)(nil)).
		Where("c.handle = ?", job.CompanyHandle).
		Exists(ctx)
	if err != nil {
		return errors.WithStack(err)
	}
	if !exists {
		return errcodes.BadRequest("Company " + job.CompanyHandle + " does not exist.")
	}

	now := time.Now()
	if job.CreatedAt.IsZero() {
		job.CreatedAt = now
	}
	job.UpdatedAt = job.CreatedAt

	_, err = svc.db.
		NewInsert().
		Model(job).
		Returning("*").
		Exec(ctx)
	if err != nil {
		// The company may have been deleted since the check above.
		if isForeignKeyViolation(err) {
			return errcodes.BadRequest("Company " + job.CompanyHandle + " does not exist.")
		}
		return errors.WithStack(err)
	}

	return nil
}

func (svc *Service) RetrieveJob(ctx context.Context, opts RetrieveJobOptions) (*models.Job, error) {
	job := &models.Job{}

	q := svc.db.
		NewSelect().
		Model(job)

	if opts.ID != nil {
		q = q.Where("j.id = ?", *opts.ID)
	}
	if opts.IncludeCompany {
		q = q.Relation("Company")
	}

	err := q.Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errcodes.NotFound("Job")
		}
		return nil, errors.WithStack(err)
	}

	return job, nil
}

// ListJobs returns the jobs matching every filter that is set, ordered by
// title. An empty filter returns every job.
func (svc *Service) ListJobs(ctx context.Context, opts ListJobsOptions) ([]*models.Job, error) {
	jobs := []*models.Job{}

	q := svc.db.
		NewSelect().
		Model(&jobs).
		Order("j.title ASC", "j.id ASC")

	if opts.Title != nil && *opts.Title != "" {
		q = q.Where("LOWER(j.title) LIKE ? ESCAPE '"+database.LikeEscape+"'", database.ContainsPattern(*opts.Title))
	}
	if opts.MinSalary != nil {
		q = q.Where("j.salary >= ?", *opts.MinSalary)
	}
	if opts.HasEquity {
		q = q.Where("CAST(j.equity AS REAL) > 0")
	}

	err := q.Scan(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return jobs, nil
}

func (svc *Service) UpdateJob(ctx context.Context, job *models.Job, opts UpdateJobOptions) error {
	if len(opts.Columns) == 0 {
		return nil
	}

	// Update updated_at.
	now := time.Now()
	job.UpdatedAt = now
	columns := slices.Concat(opts.Columns, []string{"updated_at"})

	res, err := svc.db.
		NewUpdate().
		Model(job).
		Column(columns...).
		WherePK().
		Exec(ctx)
	if err != nil {
		return errors.WithStack(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errcodes.NotFound("Job")
	}

	return nil
}

func (svc *Service) DeleteJob(ctx context.Context, id int) error {
	res, err := svc.db.
		NewDelete().
		Model((*models.Job)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return errors.WithStack(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errcodes.NotFound("Job")
	}
	return nil
}

func isForeignKeyViolation(err error) bool {
	return strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}
