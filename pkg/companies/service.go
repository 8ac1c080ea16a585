package companies

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

type RetrieveCompanyOptions struct {
	Handle      string
	IncludeJobs bool
}

type ListCompaniesOptions struct {
	Name         *string
	MinEmployees *int
	MaxEmployees *int
}

type UpdateCompanyOptions struct {
	Columns []string
}

type Service struct {
	db *bun.DB
}

func NewService(db *bun.DB) *Service {
	return &Service{db}
}

func (svc *Service) CreateCompany(ctx context.Context, company *models.Company) error {
	exists, err := svc.db.
		NewSelect().
		Model((*models.Company)(nil)).
		Where("c.handle = ?", company.Handle).
		Exists(ctx)
	if err != nil {
		return errors.WithStack(err)
	}
	if exists {
		return errcodes.Conflict("Company " + company.Handle + " already exists.")
	}

	now := time.Now()
	if company.CreatedAt.IsZero() {
		company.CreatedAt = now
	}
	company.UpdatedAt = company.CreatedAt

	_, err = svc.db.
		NewInsert().
		Model(company).
		Returning("*").
		Exec(ctx)
	if err != nil {
		if isUniqueViolation(err) {
			return errcodes.Conflict("A company named " + company.Name + " already exists.")
		}
		return errors.WithStack(err)
	}
	return nil
}

func (svc *Service) RetrieveCompany(ctx context.Context, opts RetrieveCompanyOptions) (*models.Company, error) {
	company := &models.Company{}

	q := svc.db.
		NewSelect().
		Model(company).
		Where("c.handle = ?", opts.Handle)

	if opts.IncludeJobs {
		q = q.Relation("Jobs", func(sq *bun.SelectQuery) *bun.SelectQuery {
			return sq.Order("j.id ASC")
		})
	}

	err := q.Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errcodes.NotFound("Company")
		}
		return nil, errors.WithStack(err)
	}

	return company, nil
}

func (svc *Service) ListCompanies(ctx context.Context, opts ListCompaniesOptions) ([]*models.Company, error) {
	if opts.MinEmployees != nil && opts.MaxEmployees != nil && *opts.MinEmployees > *opts.MaxEmployees {
		return nil, errcodes.BadRequest("minEmployees cannot be greater than maxEmployees")
	}

	companies := []*models.Company{}

	q := svc.db.
		NewSelect().
		Model(&companies).
		Order("c.name ASC")

	if opts.Name != nil && *opts.Name != "" {
		q = q.Where("LOWER(c.name) LIKE ? ESCAPE '"+database.LikeEscape+"'", database.ContainsPattern(*opts.Name))
	}
	if opts.MinEmployees != nil {
		q = q.Where("c.num_employees >= ?", *opts.MinEmployees)
	}
	if opts.MaxEmployees != nil {
		q = q.Where("c.num_employees <= ?", *opts.MaxEmployees)
	}

	err := q.Scan(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return companies, nil
}

func (svc *Service) UpdateCompany(ctx context.Context, company *models.Company, opts UpdateCompanyOptions) error {
	if len(opts.Columns) == 0 {
		return nil
	}

	company.UpdatedAt = time.Now()
	columns := slices.Concat(opts.Columns, []string{"updated_at"})

	res, err := svc.db.
		NewUpdate().
		Model(company).
		Column(columns...).
		WherePK().
		Exec(ctx)
	if err != nil {
		if isUniqueViolation(err) {
			return errcodes.Conflict("A company named " + company.Name + " already exists.")
		}
		return errors.WithStack(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errcodes.NotFound("Company")
	}
	return nil
}

// DeleteCompany deletes a company along with all of its jobs.
func (svc *Service) DeleteCompany(ctx context.Context, handle string) error {
	return svc.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewDelete().
			Model((*models.Job)(nil)).
			Where("company_handle = ?", handle).
			Exec(ctx)
		if err != nil {
			return errors.WithStack(err)
		}

		res, err := tx.NewDelete().
			Model((*models.Company)(nil)).
			Where("handle = ?", handle).
			Exec(ctx)
		if err != nil {
			return errors.WithStack(err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return errcodes.NotFound("Company")
		}
		return nil
	})
}

func isUniqueViolation(err error) bool {
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
