package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "kasiswa/internal/errors"
	"kasiswa/internal/models"
	"kasiswa/internal/pagination"
	"kasiswa/internal/services"
)

// StudentHandler handles student-related requests.
type StudentHandler struct {
	studentService services.StudentServicer
}

// NewStudentHandler creates a new StudentHandler.
func NewStudentHandler(studentService services.StudentServicer) *StudentHandler {
	return &StudentHandler{studentService: studentService}
}

// CreateStudentRequest represents the request payload for creating a student
type CreateStudentRequest struct {
	Name             string `json:"name" binding:"required,max=200"`
	AttendanceNumber string `json:"attendance_number" binding:"max=20"`
	ClassName        string `json:"class_name" binding:"required,max=100"`
	ParentContact    string `json:"parent_contact" binding:"max=100"`
}

// CreateStudent handles the creation of a new student
func (h *StudentHandler) CreateStudent(c *gin.Context) {
	var req CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	student, err := h.studentService.CreateStudent(req.Name, req.AttendanceNumber, req.ClassName, req.ParentContact)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"student": student})
}

// ListStudents handles the paginated listing of students ordered by name
func (h *StudentHandler) ListStudents(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.studentService.ListStudents(page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetStudentByID handles the retrieval of a specific student
func (h *StudentHandler) GetStudentByID(c *gin.Context) {
	studentID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	student, err := h.studentService.GetStudentByID(studentID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"student": student})
}

// UpdateStudentRequest represents the request payload for updating a student.
type UpdateStudentRequest struct {
	Name             *string `json:"name" binding:"omitempty,max=200"`
	AttendanceNumber *string `json:"attendance_number" binding:"omitempty,max=20"`
	ClassName        *string `json:"class_name" binding:"omitempty,max=100"`
	ParentContact    *string `json:"parent_contact" binding:"omitempty,max=100"`
	Status           *string `json:"status" binding:"omitempty,student_status"`
}

// UpdateStudent handles updating an existing student in place
func (h *StudentHandler) UpdateStudent(c *gin.Context) {
	studentID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	fields := services.StudentUpdateFields{
		Name:             req.Name,
		AttendanceNumber: req.AttendanceNumber,
		ClassName:        req.ClassName,
		ParentContact:    req.ParentContact,
	}
	if req.Status != nil {
		status := models.StudentStatus(*req.Status)
		fields.Status = &status
	}

	student, err := h.studentService.UpdateStudent(studentID, fields)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"student": student})
}

// DeleteStudent handles the deletion of a student. The student's
// transactions are left untouched.
func (h *StudentHandler) DeleteStudent(c *gin.Context) {
	studentID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.studentService.DeleteStudent(studentID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Student deleted successfully"})
}
