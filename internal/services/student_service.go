package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "kasiswa/internal/errors"
	"kasiswa/internal/models"
	"kasiswa/internal/pagination"
)

// studentService handles student-related business logic.
type studentService struct {
	db *gorm.DB
}

// NewStudentService creates a new StudentServicer.
func NewStudentService(db *gorm.DB) StudentServicer {
	return &studentService{db: db}
}

// CreateStudent creates a new student with Active status.
func (s *studentService) CreateStudent(name, attendanceNumber, className, parentContact string) (*models.Student, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "student name is required")
	}
	if className == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "class name is required")
	}

	student := &models.Student{
		Name:             name,
		AttendanceNumber: attendanceNumber,
		ClassName:        className,
		ParentContact:    parentContact,
		Status:           models.StudentStatusActive,
	}

	if err := s.db.Create(student).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return student, nil
}

// ListStudents retrieves a paginated list of students ordered by name.
func (s *studentService) ListStudents(page pagination.PageRequest) (*pagination.PageResponse[models.Student], error) {
	page.Defaults()

	base := s.db.Model(&models.Student{})

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var students []models.Student
	if err := base.Scopes(pagination.Paginate(page)).
		Order("name ASC").
		Find(&students).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(students, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// ListAllStudents retrieves every student ordered by name. This is the data
// feed for the recap and dashboard engines; volumes are tens to low hundreds
// of rows.
func (s *studentService) ListAllStudents() ([]models.Student, error) {
	var students []models.Student
	if err := s.db.Order("name ASC").Find(&students).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return students, nil
}

// GetStudentByID retrieves a student by ID.
func (s *studentService) GetStudentByID(studentID uint) (*models.Student, error) {
	var student models.Student
	if err := s.db.First(&student, studentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &student, nil
}

// UpdateStudent updates a student in place. Nil fields are left unchanged.
func (s *studentService) UpdateStudent(studentID uint, fields StudentUpdateFields) (*models.Student, error) {
	student, err := s.GetStudentByID(studentID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if fields.Name != nil {
		if *fields.Name == "" {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "student name cannot be empty")
		}
		updates["name"] = *fields.Name
	}
	if fields.AttendanceNumber != nil {
		updates["attendance_number"] = *fields.AttendanceNumber
	}
	if fields.ClassName != nil {
		if *fields.ClassName == "" {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "class name cannot be empty")
		}
		updates["class_name"] = *fields.ClassName
	}
	if fields.ParentContact != nil {
		updates["parent_contact"] = *fields.ParentContact
	}
	if fields.Status != nil {
		switch *fields.Status {
		case models.StudentStatusActive, models.StudentStatusInactive:
			updates["status"] = *fields.Status
		default:
			return nil, apperrors.ErrInvalidStudentStatus
		}
	}

	if len(updates) == 0 {
		return student, nil
	}

	if err := s.db.Model(student).Updates(updates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return student, nil
}

// DeleteStudent deletes a student. The student's transactions are neither
// deleted nor reassigned; their rows keep the now-dangling student reference.
func (s *studentService) DeleteStudent(studentID uint) error {
	student, err := s.GetStudentByID(studentID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(student).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return nil
}
