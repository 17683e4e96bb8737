package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"sfg_core/internal/domain/entities"
	"sfg_core/internal/usecase/interfaces"
)

var (
	ErrJobNotFound      = errors.New("job not found")
	ErrInvalidJobID     = errors.New("invalid job id")
	ErrInvalidJobStatus = errors.New("invalid job status")
	ErrInvalidJobTitle  = errors.New("job title is required")
	ErrCustomerRequired = errors.New("customer id is required")
)

// CreateJobInput is the create payload after DTO resolution.
type CreateJobInput struct {
	CustomerID    string
	Title         string
	Status        string
	Notes         string
	ScheduledDay  string
	TimeBlock     string
}

// UpdateJobInput patches a job; nil pointer fields are left untouched.
// Schedule handling: SetSchedule=true applies ScheduledDay/TimeBlock, where
// an empty day clears the schedule.
type UpdateJobInput struct {
	Title        *string
	Notes        *string
	Status       *string
	SetSchedule  bool
	ScheduledDay string
	TimeBlock    string
}

// JobFilter narrows List.
type JobFilter struct {
	Status string
	Query  string
}

// JobBoardColumn is one status lane of the board view.
type JobBoardColumn struct {
	Status entities.JobStatus `json:"status"`
	Jobs   []entities.Job     `json:"jobs"`
}

// IJobUseCase exposes job CRUD, the status state machine and the board view.
type IJobUseCase interface {
	Create(ctx context.Context, in CreateJobInput) (entities.Job, error)
	GetByID(ctx context.Context, id string) (entities.Job, error)
	List(ctx context.Context, f JobFilter) ([]entities.Job, error)
	Update(ctx context.Context, id string, in UpdateJobInput) (entities.Job, error)
	Board(ctx context.Context) ([]JobBoardColumn, error)
}

type JobUseCase struct {
	repo      interfaces.IJobRepository
	customers interfaces.ICustomerRepository
}

var _ IJobUseCase = (*JobUseCase)(nil)

func NewJobUseCase(repo interfaces.IJobRepository, customers interfaces.ICustomerRepository) *JobUseCase {
	return &JobUseCase{repo: repo, customers: customers}
}

func (u *JobUseCase) Create(ctx context.Context, in CreateJobInput) (entities.Job, error) {
	customerID := strings.TrimSpace(in.CustomerID)
	if customerID == "" {
		return entities.Job{}, ErrCustomerRequired
	}
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return entities.Job{}, ErrInvalidJobTitle
	}

	status := entities.JobStatusCreated
	if in.Status != "" {
		parsed, ok := entities.ParseJobStatus(in.Status)
		if !ok {
			return entities.Job{}, ErrInvalidJobStatus
		}
		status = parsed
	}

	customer, err := u.customers.GetByID(ctx, customerID)
	if err != nil {
		return entities.Job{}, err
	}
	if customer.ID == "" {
		return entities.Job{}, ErrCustomerNotFound
	}

	scheduled, err := entities.CombineSchedule(in.ScheduledDay, in.TimeBlock)
	if err != nil {
		return entities.Job{}, err
	}
	if status == entities.JobStatusScheduled && scheduled == nil {
		return entities.Job{}, entities.ErrInvalidTransition
	}

	now := time.Now().UTC()
	j := entities.Job{
		ID:            uuid.NewString(),
		CustomerID:    customerID,
		Title:         title,
		Status:        status,
		Notes:         in.Notes,
		ScheduledDate: scheduled,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	return u.repo.Create(ctx, j)
}

func (u *JobUseCase) GetByID(ctx context.Context, id string) (entities.Job, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Job{}, ErrInvalidJobID
	}

	j, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Job{}, err
	}
	if j.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}
	return j, nil
}

func (u *JobUseCase) List(ctx context.Context, f JobFilter) ([]entities.Job, error) {
	jobs, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	var status entities.JobStatus
	if f.Status != "" && f.Status != "all" {
		parsed, ok := entities.ParseJobStatus(f.Status)
		if !ok {
			return nil, ErrInvalidJobStatus
		}
		status = parsed
	}

	q := strings.ToLower(strings.TrimSpace(f.Query))
	out := make([]entities.Job, 0, len(jobs))
	for _, j := range jobs {
		if status != "" && j.Status != status {
			continue
		}
		if q != "" {
			hay := strings.ToLower(j.Title + " " + j.Notes)
			if !strings.Contains(hay, q) {
				continue
			}
		}
		out = append(out, j)
	}

	sortJobs(out)
	return out, nil
}

// Update applies field edits, resolves the schedule pair and drives status
// changes through the transition table. The schedule is applied before the
// transition so created -> scheduled with a date in the same request works.
func (u *JobUseCase) Update(ctx context.Context, id string, in UpdateJobInput) (entities.Job, error) {
	j, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Job{}, err
	}

	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if title == "" {
			return entities.Job{}, ErrInvalidJobTitle
		}
		j.Title = title
	}
	if in.Notes != nil {
		j.Notes = *in.Notes
	}

	if in.SetSchedule {
		scheduled, err := entities.CombineSchedule(in.ScheduledDay, in.TimeBlock)
		if err != nil {
			return entities.Job{}, err
		}
		j.ScheduledDate = scheduled
	}

	if in.Status != nil {
		next, ok := entities.ParseJobStatus(*in.Status)
		if !ok {
			return entities.Job{}, ErrInvalidJobStatus
		}
		if err := j.Transition(next); err != nil {
			return entities.Job{}, err
		}
	}

	j.UpdatedAt = time.Now().UTC()
	saved, err := u.repo.Save(ctx, j)
	if errors.Is(err, interfaces.ErrRecordNotFound) {
		return entities.Job{}, ErrJobNotFound
	}
	return saved, err
}

// Board groups jobs by status in lifecycle order. Each lane is sorted by
// scheduled date ascending (unscheduled last), then newest first.
func (u *JobUseCase) Board(ctx context.Context) ([]JobBoardColumn, error) {
	jobs, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	byStatus := map[entities.JobStatus][]entities.Job{}
	for _, j := range jobs {
		byStatus[j.Status] = append(byStatus[j.Status], j)
	}

	order := []entities.JobStatus{
		entities.JobStatusCreated, entities.JobStatusEstimate, entities.JobStatusScheduled,
		entities.JobStatusInProgress, entities.JobStatusCompleted, entities.JobStatusCanceled,
		entities.JobStatusArchived,
	}
	columns := make([]JobBoardColumn, 0, len(order))
	for _, s := range order {
		lane := byStatus[s]
		sortJobs(lane)
		if lane == nil {
			lane = []entities.Job{}
		}
		columns = append(columns, JobBoardColumn{Status: s, Jobs: lane})
	}
	return columns, nil
}

func sortJobs(jobs []entities.Job) {
	sort.SliceStable(jobs, func(i, k int) bool {
		a, b := jobs[i], jobs[k]
		switch {
		case a.ScheduledDate != nil && b.ScheduledDate != nil:
			if !a.ScheduledDate.Equal(*b.ScheduledDate) {
				return a.ScheduledDate.Before(*b.ScheduledDate)
			}
		case a.ScheduledDate != nil:
			return true
		case b.ScheduledDate != nil:
			return false
		}
		return a.CreatedAt.After(b.CreatedAt)
	})
}
