package users

import (
	"context"
	"database/sql"
	"time"

	"github.com/joblyhq/jobly/pkg/errcodes"
	"github.com/joblyhq/jobly/pkg/models"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

// Service handles user operations.
type Service struct {
	db *bun.DB
}

// NewService creates a new users service.
func NewService(db *bun.DB) *Service {
	return &Service{db: db}
}

// Retrieve gets a user by username, ignoring case.
func (s *Service) Retrieve(ctx context.Context, username string) (*models.User, error) {
	user := &models.User{}
	err := s.db.NewSelect().
		Model(user).
		Where("u.username = ? COLLATE NOCASE", username).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errcodes.NotFound("User")
		}
		return nil, errors.WithStack(err)
	}
	return user, nil
}

// List returns every user ordered by username.
func (s *Service) List(ctx context.Context) ([]*models.User, error) {
	users := []*models.User{}

	err := s.db.NewSelect().
		Model(&users).
		Order("u.username ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return users, nil
}

// UpdateOptions contains options for updating a user.
type UpdateOptions struct {
	Columns []string
}

// Update updates a user.
func (s *Service) Update(ctx context.Context, user *models.User, opts UpdateOptions) error {
	if len(opts.Columns) == 0 {
		return nil
	}

	user.UpdatedAt = time.Now()
	opts.Columns = append(opts.Columns, "updated_at")
	_, err := s.db.NewUpdate().
		Model(user).
		Column(opts.Columns...).
		WherePK().
		Exec(ctx)
	return errors.WithStack(err)
}

// Delete removes a user along with their applications.
func (s *Service) Delete(ctx context.Context, username string) error {
	res, err := s.db.NewDelete().
		Model((*models.User)(nil)).
		Where("username = ? COLLATE NOCASE", username).
		Exec(ctx)
	if err != nil {
		return errors.WithStack(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errcodes.NotFound("User")
	}
	return nil
}

// Apply records that the user applied to the job.
func (s *Service) Apply(ctx context.Context, userID, jobID int) error {
	exists, err := s.db.NewSelect().
		Model((*models.Job)(nil)).
		Where("j.id = ?", jobID).
		Exists(ctx)
	if err != nil {
		return errors.WithStack(err)
	}
	if !exists {
		return errcodes.NotFound("Job")
	}

	res, err := s.db.NewInsert().
		Model(&models.Application{UserID: userID, JobID: jobID, CreatedAt: time.Now()}).
		On("CONFLICT DO NOTHING").
		Exec(ctx)
	if err != nil {
		return errors.WithStack(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errcodes.Conflict("Already applied to this job.")
	}
	return nil
}

// AppliedJobIDs returns the ids of the jobs the user applied to.
func (s *Service) AppliedJobIDs(ctx context.Context, userID int) ([]int, error) {
	ids := []int{}
	err := s.db.NewSelect().
		Model((*models.Application)(nil)).
		Column("job_id").
		Where("a.user_id = ?", userID).
		Order("a.job_id ASC").
		Scan(ctx, &ids)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return ids, nil
}
