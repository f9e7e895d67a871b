package entity

// Status is the publication state shared by packages, projects and services.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

func ValidStatus(s string) bool {
	return Status(s) == StatusActive || Status(s) == StatusInactive
}
