package repository

import (
	"course-platform/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User       UserRepository
	Course     CourseRepository
	Lecture    LectureRepository
	Enrollment EnrollmentRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:       NewUserRepository(db, log),
		Course:     NewCourseRepository(db, log),
		Lecture:    NewLectureRepository(db, log),
		Enrollment: NewEnrollmentRepository(db, log),
	}
}
