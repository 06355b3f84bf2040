package models

import "time"

// ApplicationStatus is the canonical status of an application.
// The historical API accepted REVIEWING and ACCEPTED as spellings of
// SHORTLISTED and SELECTED; those aliases are still normalized on input
// but never stored or returned.
type ApplicationStatus string

const (
	StatusApplied     ApplicationStatus = "APPLIED"
	StatusShortlisted ApplicationStatus = "SHORTLISTED"
	StatusSelected    ApplicationStatus = "SELECTED"
	StatusRejected    ApplicationStatus = "REJECTED"
	StatusCompleted   ApplicationStatus = "COMPLETED"
)

// statusAliases maps legacy spellings to their canonical status
var statusAliases = map[ApplicationStatus]ApplicationStatus{
	"REVIEWING": StatusShortlisted,
	"ACCEPTED":  StatusSelected,
}

// NormalizeStatus resolves aliases to the canonical status. The second
// return value reports whether the input named a known status at all.
func NormalizeStatus(s ApplicationStatus) (ApplicationStatus, bool) {
	if canonical, ok := statusAliases[s]; ok {
		return canonical, true
	}
	switch s {
	case StatusApplied, StatusShortlisted, StatusSelected, StatusRejected, StatusCompleted:
		return s, true
	}
	return s, false
}

// StatusCategory is the display bucket an application status falls into
type StatusCategory string

const (
	CategoryPending    StatusCategory = "PENDING"
	CategorySuccessful StatusCategory = "SUCCESSFUL"
	CategoryNegative   StatusCategory = "NEGATIVE"
	CategoryNeutral    StatusCategory = "NEUTRAL" // Fallback for unknown status strings
)

// CategoryOf maps any status string, known or not, to a display category.
// Unknown values yield CategoryNeutral rather than an error so that a
// backend returning a new status never breaks rendering.
func CategoryOf(s ApplicationStatus) StatusCategory {
	canonical, known := NormalizeStatus(s)
	if !known {
		return CategoryNeutral
	}
	switch canonical {
	case StatusSelected, StatusCompleted:
		return CategorySuccessful
	case StatusRejected:
		return CategoryNegative
	default:
		return CategoryPending
	}
}

// IsTerminal reports whether no further transition is allowed from s
func (s ApplicationStatus) IsTerminal() bool {
	canonical, known := NormalizeStatus(s)
	if !known {
		return false
	}
	return canonical == StatusRejected || canonical == StatusCompleted
}

// allowedTransitions describes the forward path of the status machine:
// APPLIED -> SHORTLISTED -> {SELECTED, REJECTED} -> (SELECTED) COMPLETED.
// Rejection is reachable from any non-terminal state.
var allowedTransitions = map[ApplicationStatus][]ApplicationStatus{
	StatusApplied:     {StatusShortlisted, StatusSelected, StatusRejected},
	StatusShortlisted: {StatusSelected, StatusRejected},
	StatusSelected:    {StatusCompleted, StatusRejected},
}

// CanTransition reports whether moving from one status to another is allowed
func CanTransition(from, to ApplicationStatus) bool {
	fromCanonical, known := NormalizeStatus(from)
	if !known {
		return false
	}
	toCanonical, known := NormalizeStatus(to)
	if !known {
		return false
	}
	for _, next := range allowedTransitions[fromCanonical] {
		if next == toCanonical {
			return true
		}
	}
	return false
}

// Application relates one student to one internship (and transitively to
// one startup). Display paths must tolerate the referenced internship or
// student being absent.
type Application struct {
	ID             int64             `json:"id" db:"id" example:"1"`
	StudentID      int64             `json:"studentId" db:"student_id" example:"4"`
	InternshipID   int64             `json:"internshipId" db:"internship_id" example:"7"`
	Status         ApplicationStatus `json:"status" db:"status" example:"APPLIED"`
	CertificateURL *string           `json:"certificateUrl,omitempty" db:"certificate_url"` // Set only once COMPLETED and issued
	CreatedAt      time.Time         `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time         `json:"updatedAt" db:"updated_at"`

	// Relations (populated when needed)
	Student    *Student    `json:"student,omitempty"`
	Internship *Internship `json:"internship,omitempty"`
}
