package response

import (
	"time"

	"course-platform/internal/data/entity"
)

type CourseResponse struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Description  *string   `json:"description,omitempty"`
	ThumbnailURL *string   `json:"thumbnail_url,omitempty"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

// Helper converter
func CourseToResponse(course *entity.Course) CourseResponse {
	return CourseResponse{
		ID:           course.ID,
		Name:         course.Name,
		Description:  course.Description,
		ThumbnailURL: course.ThumbnailURL,
		IsActive:     course.IsActive,
		CreatedAt:    course.CreatedAt,
	}
}
