package entity

type Lecture struct {
	Base
	Title        string  `db:"title"`
	Description  string  `db:"description"`
	Position     int     `db:"position"`
	ThumbnailURL *string `db:"thumbnail_url"`
	VideoURL     *string `db:"video_url"`
	IsActive     bool    `db:"is_active"`
	CourseID     int64   `db:"course_id"`
}
