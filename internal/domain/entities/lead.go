package entities

import (
	"strings"
	"time"
)

// LeadStatus is the intake lifecycle state.
type LeadStatus string

const (
	LeadStatusNew           LeadStatus = "New"
	LeadStatusContacted     LeadStatus = "Contacted"
	LeadStatusConverted     LeadStatus = "Converted"
	LeadStatusNotInterested LeadStatus = "Not interested"
	LeadStatusClosed        LeadStatus = "Closed"
)

// ParseLeadStatus validates a status string. "Booked" is the legacy name for
// Converted and is normalized on input.
func ParseLeadStatus(s string) (LeadStatus, bool) {
	switch LeadStatus(s) {
	case LeadStatusNew, LeadStatusContacted, LeadStatusConverted,
		LeadStatusNotInterested, LeadStatusClosed:
		return LeadStatus(s), true
	}
	if s == "Booked" {
		return LeadStatusConverted, true
	}
	return "", false
}

// Lead is an inbound contact request (intake message).
//
// Storage model (DynamoDB):
//   - PK: id
//
// ConvertedToCustomerID is stamped exactly once by the conversion workflow;
// a converted lead never converts again.
type Lead struct {
	ID                    string     `json:"id"`
	Name                  string     `json:"name"`
	Email                 string     `json:"email"`
	Phone                 string     `json:"phone"`
	Zip                   string     `json:"zip"`
	Address               Address    `json:"address"`
	Message               string     `json:"message"`
	Status                LeadStatus `json:"status"`
	Source                string     `json:"source"`
	ContactMethod         string     `json:"contactMethod"`
	ConvertedToCustomerID string     `json:"convertedToCustomerId"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"`
}

// IsConverted reports whether the lead already produced a customer/job pair.
func (l Lead) IsConverted() bool {
	return l.Status == LeadStatusConverted || l.ConvertedToCustomerID != ""
}

// SplitName derives customer name parts from the lead's free-form name.
// No tokens => ("Unknown","Customer"); one token => (token,"Customer");
// two or more => (first, rest joined).
func (l Lead) SplitName() (firstName, lastName string) {
	parts := strings.Fields(l.Name)
	switch len(parts) {
	case 0:
		return "Unknown", "Customer"
	case 1:
		return parts[0], "Customer"
	default:
		return parts[0], strings.Join(parts[1:], " ")
	}
}

// JobTitle derives the converted job's title: the first 60 characters of the
// message, or a zip-tagged fallback when the message is empty.
func (l Lead) JobTitle() string {
	msg := strings.TrimSpace(l.Message)
	if msg != "" {
		// Counted in runes so a multi-byte character never gets cut in half.
		if runes := []rune(msg); len(runes) > 60 {
			return string(runes[:60])
		}
		return msg
	}
	zip := l.Zip
	if zip == "" {
		zip = "no zip"
	}
	return "Service Estimate (" + zip + ")"
}

// MatchesSearch reports a case-insensitive substring match over the lead's
// contact fields and message.
func (l Lead) MatchesSearch(q string) bool {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return true
	}
	hay := strings.ToLower(strings.Join([]string{
		l.Name, l.Email, l.Phone, l.Zip, l.Message, string(l.Status),
	}, " "))
	return strings.Contains(hay, q)
}
