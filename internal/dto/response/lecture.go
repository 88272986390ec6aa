package response

import (
	"time"

	"course-platform/internal/data/entity"
)

type LectureResponse struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Position     int       `json:"position"`
	ThumbnailURL *string   `json:"thumbnail_url,omitempty"`
	VideoURL     *string   `json:"video_url,omitempty"`
	IsActive     bool      `json:"is_active"`
	CourseID     int64     `json:"course_id"`
	CreatedAt    time.Time `json:"created_at"`
}

// Helper converter
func LectureToResponse(lecture *entity.Lecture) LectureResponse {
	return LectureResponse{
		ID:           lecture.ID,
		Title:        lecture.Title,
		Description:  lecture.Description,
		Position:     lecture.Position,
		ThumbnailURL: lecture.ThumbnailURL,
		VideoURL:     lecture.VideoURL,
		IsActive:     lecture.IsActive,
		CourseID:     lecture.CourseID,
		CreatedAt:    lecture.CreatedAt,
	}
}
