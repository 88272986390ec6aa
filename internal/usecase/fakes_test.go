package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"course-platform/internal/data/entity"
	"course-platform/internal/data/repository"
	"course-platform/pkg/apperr"
	"course-platform/pkg/utils"

	"github.com/casdoor/oss"
	"go.uber.org/zap"
)

// In-memory repository fakes. They mirror the behavior the postgres
// repositories get from the schema: (nil, nil) on a missing row and a
// conflict error from the enrollment unique constraint.

type fakeUserRepo struct {
	nextID int64
	users  map[int64]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*entity.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	r.nextID++
	user.ID = r.nextID
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id int64) (*entity.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindAll(_ context.Context, limit, offset int) ([]*entity.User, error) {
	var out []*entity.User
	for id := int64(1); id <= r.nextID; id++ {
		if user, ok := r.users[id]; ok {
			copied := *user
			out = append(out, &copied)
		}
	}
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeUserRepo) CountAll(_ context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

func (r *fakeUserRepo) CountAdmins(_ context.Context) (int64, error) {
	var count int64
	for _, user := range r.users {
		if user.IsAdmin() {
			count++
		}
	}
	return count, nil
}

func (r *fakeUserRepo) UpdatePassword(_ context.Context, id int64, passwordHash string) error {
	user, ok := r.users[id]
	if !ok {
		return fmt.Errorf("user: %w", apperr.ErrNotFound)
	}
	user.PasswordHash = passwordHash
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id int64) error {
	delete(r.users, id)
	return nil
}

type fakeCourseRepo struct {
	nextID  int64
	courses map[int64]*entity.Course
}

func newFakeCourseRepo() *fakeCourseRepo {
	return &fakeCourseRepo{courses: make(map[int64]*entity.Course)}
}

func (r *fakeCourseRepo) Create(_ context.Context, course *entity.Course) error {
	r.nextID++
	course.ID = r.nextID
	copied := *course
	r.courses[course.ID] = &copied
	return nil
}

func (r *fakeCourseRepo) FindByID(_ context.Context, id int64) (*entity.Course, error) {
	course, ok := r.courses[id]
	if !ok {
		return nil, nil
	}
	copied := *course
	return &copied, nil
}

func (r *fakeCourseRepo) FindAll(_ context.Context) ([]*entity.Course, error) {
	var out []*entity.Course
	for id := int64(1); id <= r.nextID; id++ {
		if course, ok := r.courses[id]; ok {
			copied := *course
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeCourseRepo) Update(_ context.Context, course *entity.Course) error {
	if _, ok := r.courses[course.ID]; !ok {
		return fmt.Errorf("course: %w", apperr.ErrNotFound)
	}
	copied := *course
	r.courses[course.ID] = &copied
	return nil
}

func (r *fakeCourseRepo) Delete(_ context.Context, id int64) error {
	delete(r.courses, id)
	return nil
}

type fakeLectureRepo struct {
	nextID   int64
	lectures map[int64]*entity.Lecture
}

func newFakeLectureRepo() *fakeLectureRepo {
	return &fakeLectureRepo{lectures: make(map[int64]*entity.Lecture)}
}

func (r *fakeLectureRepo) Create(_ context.Context, lecture *entity.Lecture) error {
	r.nextID++
	lecture.ID = r.nextID
	copied := *lecture
	r.lectures[lecture.ID] = &copied
	return nil
}

func (r *fakeLectureRepo) FindByID(_ context.Context, id int64) (*entity.Lecture, error) {
	lecture, ok := r.lectures[id]
	if !ok {
		return nil, nil
	}
	copied := *lecture
	return &copied, nil
}

func (r *fakeLectureRepo) FindByCourseID(_ context.Context, courseID int64) ([]*entity.Lecture, error) {
	var out []*entity.Lecture
	for id := int64(1); id <= r.nextID; id++ {
		if lecture, ok := r.lectures[id]; ok && lecture.CourseID == courseID {
			copied := *lecture
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeLectureRepo) Update(_ context.Context, lecture *entity.Lecture) error {
	if _, ok := r.lectures[lecture.ID]; !ok {
		return fmt.Errorf("lecture: %w", apperr.ErrNotFound)
	}
	copied := *lecture
	r.lectures[lecture.ID] = &copied
	return nil
}

func (r *fakeLectureRepo) Delete(_ context.Context, id int64) error {
	delete(r.lectures, id)
	return nil
}

type fakeEnrollmentRepo struct {
	nextID      int64
	enrollments map[int64]*entity.Enrollment
}

func newFakeEnrollmentRepo() *fakeEnrollmentRepo {
	return &fakeEnrollmentRepo{enrollments: make(map[int64]*entity.Enrollment)}
}

func (r *fakeEnrollmentRepo) Create(_ context.Context, enrollment *entity.Enrollment) error {
	for _, existing := range r.enrollments {
		if existing.UserID == enrollment.UserID && existing.CourseID == enrollment.CourseID {
			return fmt.Errorf("enrollment exists: %w", apperr.ErrConflict)
		}
	}
	r.nextID++
	enrollment.ID = r.nextID
	copied := *enrollment
	r.enrollments[enrollment.ID] = &copied
	return nil
}

func (r *fakeEnrollmentRepo) FindByUserAndCourse(_ context.Context, userID, courseID int64) (*entity.Enrollment, error) {
	for _, enrollment := range r.enrollments {
		if enrollment.UserID == userID && enrollment.CourseID == courseID {
			copied := *enrollment
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeEnrollmentRepo) FindByUserID(_ context.Context, userID int64) ([]*entity.Enrollment, error) {
	var out []*entity.Enrollment
	for id := int64(1); id <= r.nextID; id++ {
		if enrollment, ok := r.enrollments[id]; ok && enrollment.UserID == userID {
			copied := *enrollment
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeEnrollmentRepo) FindByCourseID(_ context.Context, courseID int64) ([]*entity.Enrollment, error) {
	var out []*entity.Enrollment
	for id := int64(1); id <= r.nextID; id++ {
		if enrollment, ok := r.enrollments[id]; ok && enrollment.CourseID == courseID {
			copied := *enrollment
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeEnrollmentRepo) Delete(_ context.Context, userID, courseID int64) error {
	for id, enrollment := range r.enrollments {
		if enrollment.UserID == userID && enrollment.CourseID == courseID {
			delete(r.enrollments, id)
			return nil
		}
	}
	return fmt.Errorf("enrollment: %w", apperr.ErrNotFound)
}

type sentMail struct {
	To      string
	Subject string
	Body    string
}

type fakeMailer struct {
	sent []sentMail
	err  error
}

func (m *fakeMailer) Send(to, subject, body string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, sentMail{To: to, Subject: subject, Body: body})
	return nil
}

// fakeStorage records Put calls in memory.
type fakeStorage struct {
	files map[string][]byte
	err   error
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{files: make(map[string][]byte)}
}

func (s *fakeStorage) Get(path string) (*os.File, error) {
	return nil, errors.New("not supported")
}

func (s *fakeStorage) GetStream(path string) (io.ReadCloser, error) {
	data, ok := s.files[path]
	if !ok {
		return nil, errors.New("file not found")
	}
	return io.NopCloser(strings.NewReader(string(data))), nil
}

func (s *fakeStorage) Put(path string, reader io.Reader) (*oss.Object, error) {
	if s.err != nil {
		return nil, s.err
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}
	s.files[path] = data
	return &oss.Object{Path: path, Name: path}, nil
}

func (s *fakeStorage) Delete(path string) error {
	delete(s.files, path)
	return nil
}

func (s *fakeStorage) List(path string) ([]*oss.Object, error) {
	var out []*oss.Object
	for p := range s.files {
		if strings.HasPrefix(p, path) {
			out = append(out, &oss.Object{Path: p, Name: p})
		}
	}
	return out, nil
}

func (s *fakeStorage) GetURL(path string) (string, error) {
	return "/videos/" + path, nil
}

func (s *fakeStorage) GetEndpoint() string {
	return "/"
}

func newTestRepository() *repository.Repository {
	return &repository.Repository{
		User:       newFakeUserRepo(),
		Course:     newFakeCourseRepo(),
		Lecture:    newFakeLectureRepo(),
		Enrollment: newFakeEnrollmentRepo(),
	}
}

func newTestConfig() *utils.Config {
	return &utils.Config{
		JWT: utils.JWTConfig{
			Secret:      "test-secret",
			ExpiryHours: 72,
		},
		Admin: utils.AdminConfig{
			Email:    "admin@example.com",
			Password: "admin-secret",
		},
	}
}

func newTestLogger() *zap.Logger {
	return zap.NewNop()
}
