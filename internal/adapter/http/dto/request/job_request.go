package request

import (
	"sfg_core/internal/usecase"
)

// JobCreateRequest is the add-job payload. The schedule arrives as the
// dashboard's (day, time block) pair and is collapsed server-side.
type JobCreateRequest struct {
	CustomerID   string `json:"customerId" binding:"required"`
	Title        string `json:"title" binding:"required"`
	Status       string `json:"status"`
	Notes        string `json:"notes"`
	ScheduledDay string `json:"scheduledDay"`
	TimeBlock    string `json:"timeBlock"`
}

func (r JobCreateRequest) ToInput() usecase.CreateJobInput {
	return usecase.CreateJobInput{
		CustomerID:   r.CustomerID,
		Title:        r.Title,
		Status:       r.Status,
		Notes:        r.Notes,
		ScheduledDay: r.ScheduledDay,
		TimeBlock:    r.TimeBlock,
	}
}

// JobUpdateRequest patches a job. ScheduledDay nil leaves the schedule
// untouched; an explicit empty string clears it.
type JobUpdateRequest struct {
	Title        *string `json:"title"`
	Notes        *string `json:"notes"`
	Status       *string `json:"status"`
	ScheduledDay *string `json:"scheduledDay"`
	TimeBlock    string  `json:"timeBlock"`
}

func (r JobUpdateRequest) ToInput() usecase.UpdateJobInput {
	in := usecase.UpdateJobInput{
		Title:     r.Title,
		Notes:     r.Notes,
		Status:    r.Status,
		TimeBlock: r.TimeBlock,
	}
	if r.ScheduledDay != nil {
		in.SetSchedule = true
		in.ScheduledDay = *r.ScheduledDay
	}
	return in
}
