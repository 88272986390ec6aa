package usecase

import (
	"course-platform/internal/data/repository"
	"course-platform/pkg/mailer"
	"course-platform/pkg/utils"

	"github.com/casdoor/oss"
	"go.uber.org/zap"
)

type Service struct {
	Auth       AuthService
	User       UserService
	Course     CourseService
	Lecture    LectureService
	Enrollment EnrollmentService
}

func NewService(
	repo *repository.Repository,
	config *utils.Config,
	mail mailer.Mailer,
	store oss.StorageInterface,
	log *zap.Logger,
) *Service {
	return &Service{
		Auth:       NewAuthService(repo, config, log),
		User:       NewUserService(repo, config, mail, log),
		Course:     NewCourseService(repo, log),
		Lecture:    NewLectureService(repo, store, log),
		Enrollment: NewEnrollmentService(repo, mail, log),
	}
}
