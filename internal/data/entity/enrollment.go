package entity

// Enrollment links a user to a course. CourseName and CourseDescription
// are snapshots taken at enroll time; later course renames do not touch
// them (display name frozen at enroll time).
type Enrollment struct {
	Base
	UserID            int64   `db:"user_id"`
	CourseID          int64   `db:"course_id"`
	CourseName        string  `db:"course_name"`
	CourseDescription *string `db:"course_description"`
}
