package request

type CourseRequest struct {
	Name         string  `json:"name" validate:"required,min=1,max=255"`
	Description  *string `json:"description,omitempty" validate:"omitempty,max=1000"`
	ThumbnailURL *string `json:"thumbnail_url,omitempty" validate:"omitempty,max=255"`
	IsActive     *bool   `json:"is_active,omitempty"`
}

type AssignCourseRequest struct {
	UserID int64 `json:"user_id" validate:"required,gte=1"`
}
