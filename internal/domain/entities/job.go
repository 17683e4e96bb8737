package entities

import (
	"errors"
	"time"
)

// JobStatus is the job lifecycle state. Transitions only move forward, see
// AllowedTransitions.
type JobStatus string

const (
	JobStatusCreated    JobStatus = "created"
	JobStatusEstimate   JobStatus = "estimate"
	JobStatusScheduled  JobStatus = "scheduled"
	JobStatusInProgress JobStatus = "in-progress"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusCanceled   JobStatus = "canceled"
	JobStatusArchived   JobStatus = "archived"
)

// ErrInvalidTransition is returned when a requested status change is not in
// the allowed set for the job's current status.
var ErrInvalidTransition = errors.New("invalid status transition")

// allowedTransitions is the authoritative next-state table.
var allowedTransitions = map[JobStatus][]JobStatus{
	JobStatusCreated:    {JobStatusEstimate, JobStatusScheduled, JobStatusCanceled},
	JobStatusEstimate:   {JobStatusScheduled, JobStatusCanceled},
	JobStatusScheduled:  {JobStatusInProgress, JobStatusCanceled},
	JobStatusInProgress: {JobStatusCompleted, JobStatusCanceled},
	JobStatusCompleted:  {JobStatusArchived},
	JobStatusCanceled:   {JobStatusArchived},
	JobStatusArchived:   {},
}

// ParseJobStatus validates a status string.
func ParseJobStatus(s string) (JobStatus, bool) {
	switch JobStatus(s) {
	case JobStatusCreated, JobStatusEstimate, JobStatusScheduled,
		JobStatusInProgress, JobStatusCompleted, JobStatusCanceled, JobStatusArchived:
		return JobStatus(s), true
	}
	return "", false
}

// NextStatuses returns the allowed next states for a status.
func NextStatuses(from JobStatus) []JobStatus {
	return allowedTransitions[from]
}

// CanTransition reports whether from -> to is in the transition table.
func CanTransition(from, to JobStatus) bool {
	for _, s := range allowedTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Job is a unit of work for a customer.
//
// Storage model (DynamoDB):
//   - PK: id
//
// ScheduledDate collapses the dashboard's (day, time block) pair into a
// single instant, see CombineSchedule.
type Job struct {
	ID            string     `json:"id"`
	CustomerID    string     `json:"customerId"`
	Title         string     `json:"title"`
	Status        JobStatus  `json:"status"`
	Notes         string     `json:"notes"`
	ScheduledDate *time.Time `json:"scheduledDate"`
	EstimateID    string     `json:"estimateId"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// Transition validates and applies a status change. Entering scheduled
// requires a schedule to already be set (or be set in the same update).
func (j *Job) Transition(next JobStatus) error {
	if next == j.Status {
		return nil
	}
	if !CanTransition(j.Status, next) {
		return ErrInvalidTransition
	}
	if next == JobStatusScheduled && j.ScheduledDate == nil {
		return ErrInvalidTransition
	}
	j.Status = next
	return nil
}

// IsLocked reports whether the job is in a terminal state. A locked job's
// estimate is read-only.
func (j Job) IsLocked() bool {
	switch j.Status {
	case JobStatusCompleted, JobStatusArchived, JobStatusCanceled:
		return true
	}
	return false
}

// TimeBlock is one of the schedulable arrival windows offered by the
// dashboard. Start is the window's canonical start ("08:00").
type TimeBlock struct {
	Label string
	Start string
}

// TimeBlocks lists the offered arrival windows.
var TimeBlocks = []TimeBlock{
	{Label: "8:00 AM - 10:00 AM", Start: "08:00"},
	{Label: "9:00 AM - 11:00 AM", Start: "09:00"},
	{Label: "10:00 AM - 12:00 PM", Start: "10:00"},
	{Label: "12:00 PM - 2:00 PM", Start: "12:00"},
	{Label: "1:00 PM - 3:00 PM", Start: "13:00"},
	{Label: "3:00 PM - 5:00 PM", Start: "15:00"},
}

// TimeBlockStart resolves a block label to its start time. Unknown or empty
// labels fall back to midnight, matching the dashboard's behavior.
func TimeBlockStart(label string) string {
	for _, b := range TimeBlocks {
		if b.Label == label {
			return b.Start
		}
	}
	return "00:00"
}

// CombineSchedule builds the stored instant from a day ("2006-01-02") and a
// time-block label, interpreted in local time. An empty day clears the
// schedule (nil, no error).
func CombineSchedule(day, blockLabel string) (*time.Time, error) {
	if day == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation("2006-01-02 15:04", day+" "+TimeBlockStart(blockLabel), time.Local)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
