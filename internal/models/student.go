package models

// StudentStatus represents the enrollment status of a student
type StudentStatus string

const (
	StudentStatusActive   StudentStatus = "Active"
	StudentStatusInactive StudentStatus = "Inactive"
)

// Student represents a student record in the system.
// AttendanceNumber is nominally numeric but stored as text; legacy data
// contains non-numeric values, so it must never be parsed unconditionally.
type Student struct {
	Base
	Name             string        `gorm:"not null" json:"name"`
	AttendanceNumber string        `json:"attendance_number"`
	ClassName        string        `gorm:"not null" json:"class_name"`
	ParentContact    string        `json:"parent_contact"`
	Status           StudentStatus `gorm:"not null;default:Active" json:"status"`
}

// IsActive reports whether the student is currently enrolled.
func (s *Student) IsActive() bool {
	return s.Status == StudentStatusActive
}
