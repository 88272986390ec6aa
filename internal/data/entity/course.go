package entity

type Course struct {
	Base
	Name         string  `db:"name"`
	Description  *string `db:"description"`
	ThumbnailURL *string `db:"thumbnail_url"`
	IsActive     bool    `db:"is_active"`
}
