package response

import (
	"time"

	"course-platform/internal/data/entity"
)

// EnrollmentResponse reports the course name as it was when the user
// enrolled, not the current catalog name.
type EnrollmentResponse struct {
	ID                int64     `json:"id"`
	UserID            int64     `json:"user_id"`
	CourseID          int64     `json:"course_id"`
	CourseName        string    `json:"course_name"`
	CourseDescription *string   `json:"course_description,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

// Helper converter
func EnrollmentToResponse(enrollment *entity.Enrollment) EnrollmentResponse {
	return EnrollmentResponse{
		ID:                enrollment.ID,
		UserID:            enrollment.UserID,
		CourseID:          enrollment.CourseID,
		CourseName:        enrollment.CourseName,
		CourseDescription: enrollment.CourseDescription,
		CreatedAt:         enrollment.CreatedAt,
	}
}
