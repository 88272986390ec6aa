package request

// LectureRequest carries the multipart form fields of lecture create and
// update. Media files are handled separately by the handler; description
// is required on creation.
type LectureRequest struct {
	Title       string `json:"title" validate:"required,min=1,max=255"`
	Description string `json:"description" validate:"required,max=1000"`
	Position    int    `json:"position" validate:"omitempty,gte=0"`
	IsActive    bool   `json:"is_active"`
}
