package response

import (
	"time"

	"sfg_core/internal/domain/entities"
	"sfg_core/internal/usecase"
)

type JobResponse struct {
	ID            string     `json:"id"`
	CustomerID    string     `json:"customerId"`
	Title         string     `json:"title"`
	Status        string     `json:"status"`
	Notes         string     `json:"notes"`
	ScheduledDate *time.Time `json:"scheduledDate"`
	EstimateID    string     `json:"estimateId"`
	NextStatuses  []string   `json:"nextStatuses"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

func FromJob(j entities.Job) JobResponse {
	next := entities.NextStatuses(j.Status)
	statuses := make([]string, 0, len(next))
	for _, s := range next {
		statuses = append(statuses, string(s))
	}
	return JobResponse{
		ID:            j.ID,
		CustomerID:    j.CustomerID,
		Title:         j.Title,
		Status:        string(j.Status),
		Notes:         j.Notes,
		ScheduledDate: j.ScheduledDate,
		EstimateID:    j.EstimateID,
		NextStatuses:  statuses,
		CreatedAt:     j.CreatedAt,
		UpdatedAt:     j.UpdatedAt,
	}
}

type JobListResponse struct {
	Jobs []JobResponse `json:"jobs"`
}

func FromJobs(jobs []entities.Job) JobListResponse {
	out := JobListResponse{Jobs: make([]JobResponse, 0, len(jobs))}
	for _, j := range jobs {
		out.Jobs = append(out.Jobs, FromJob(j))
	}
	return out
}

// BoardColumnResponse is one status lane of the pipeline board.
type BoardColumnResponse struct {
	Status string        `json:"status"`
	Jobs   []JobResponse `json:"jobs"`
}

type BoardResponse struct {
	Columns []BoardColumnResponse `json:"columns"`
}

func FromBoard(columns []usecase.JobBoardColumn) BoardResponse {
	out := BoardResponse{Columns: make([]BoardColumnResponse, 0, len(columns))}
	for _, col := range columns {
		out.Columns = append(out.Columns, BoardColumnResponse{
			Status: string(col.Status),
			Jobs:   FromJobs(col.Jobs).Jobs,
		})
	}
	return out
}
