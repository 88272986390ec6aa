package repository

import (
	"context"
	"fmt"

	"course-platform/internal/data/entity"
	"course-platform/pkg/apperr"
	"course-platform/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type EnrollmentRepository interface {
	Create(ctx context.Context, enrollment *entity.Enrollment) error
	FindByUserAndCourse(ctx context.Context, userID, courseID int64) (*entity.Enrollment, error)
	FindByUserID(ctx context.Context, userID int64) ([]*entity.Enrollment, error)
	FindByCourseID(ctx context.Context, courseID int64) ([]*entity.Enrollment, error)
	Delete(ctx context.Context, userID, courseID int64) error
}

type enrollmentRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewEnrollmentRepository(db database.PgxIface, log *zap.Logger) EnrollmentRepository {
	return &enrollmentRepository{
		db:  db,
		log: log.With(zap.String("repository", "enrollment")),
	}
}

// Create inserts the enrollment in a single statement. The snapshot
// columns travel with the insert, so either the row and its frozen
// course name both exist or neither does. The unique (user_id, course_id)
// constraint arbitrates concurrent enrolls: the loser sees no returned
// row and gets a Conflict.
func (er *enrollmentRepository) Create(ctx context.Context, enrollment *entity.Enrollment) error {
	query := `
		INSERT INTO enrollments (user_id, course_id, course_name, course_description, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT ON CONSTRAINT enrollments_user_course_key DO NOTHING
		RETURNING id
	`

	err := er.db.QueryRow(ctx, query,
		enrollment.UserID,
		enrollment.CourseID,
		enrollment.CourseName,
		enrollment.CourseDescription,
		enrollment.CreatedAt,
	).Scan(&enrollment.ID)

	if err == pgx.ErrNoRows {
		return fmt.Errorf("user %d already enrolled in course %d: %w",
			enrollment.UserID, enrollment.CourseID, apperr.ErrConflict)
	}
	if err != nil {
		er.log.Error("Failed to create enrollment",
			zap.Error(err),
			zap.Int64("user_id", enrollment.UserID),
			zap.Int64("course_id", enrollment.CourseID),
		)
		return fmt.Errorf("create enrollment user %d course %d: %w",
			enrollment.UserID, enrollment.CourseID, err)
	}

	return nil
}

func (er *enrollmentRepository) FindByUserAndCourse(ctx context.Context, userID, courseID int64) (*entity.Enrollment, error) {
	query := `
		SELECT id, user_id, course_id, course_name, course_description, created_at
		FROM enrollments
		WHERE user_id = $1 AND course_id = $2
	`

	var enrollment entity.Enrollment
	err := er.db.QueryRow(ctx, query, userID, courseID).Scan(
		&enrollment.ID,
		&enrollment.UserID,
		&enrollment.CourseID,
		&enrollment.CourseName,
		&enrollment.CourseDescription,
		&enrollment.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		er.log.Error("Failed to find enrollment",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.Int64("course_id", courseID),
		)
		return nil, fmt.Errorf("find enrollment user %d course %d: %w", userID, courseID, err)
	}

	return &enrollment, nil
}

func (er *enrollmentRepository) FindByUserID(ctx context.Context, userID int64) ([]*entity.Enrollment, error) {
	query := `
		SELECT id, user_id, course_id, course_name, course_description, created_at
		FROM enrollments
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	return er.queryEnrollments(ctx, query, userID)
}

func (er *enrollmentRepository) FindByCourseID(ctx context.Context, courseID int64) ([]*entity.Enrollment, error) {
	query := `
		SELECT id, user_id, course_id, course_name, course_description, created_at
		FROM enrollments
		WHERE course_id = $1
		ORDER BY created_at DESC
	`

	return er.queryEnrollments(ctx, query, courseID)
}

func (er *enrollmentRepository) queryEnrollments(ctx context.Context, query string, arg any) ([]*entity.Enrollment, error) {
	rows, err := er.db.Query(ctx, query, arg)
	if err != nil {
		er.log.Error("Failed to query enrollments", zap.Error(err))
		return nil, fmt.Errorf("query enrollments: %w", err)
	}
	defer rows.Close()

	var enrollments []*entity.Enrollment
	for rows.Next() {
		var enrollment entity.Enrollment
		err := rows.Scan(
			&enrollment.ID,
			&enrollment.UserID,
			&enrollment.CourseID,
			&enrollment.CourseName,
			&enrollment.CourseDescription,
			&enrollment.CreatedAt,
		)
		if err != nil {
			er.log.Error("Failed to scan enrollment row", zap.Error(err))
			return nil, fmt.Errorf("scan enrollment row: %w", err)
		}
		enrollments = append(enrollments, &enrollment)
	}

	if err := rows.Err(); err != nil {
		er.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate enrollment rows: %w", err)
	}

	return enrollments, nil
}

func (er *enrollmentRepository) Delete(ctx context.Context, userID, courseID int64) error {
	query := `DELETE FROM enrollments WHERE user_id = $1 AND course_id = $2`

	result, err := er.db.Exec(ctx, query, userID, courseID)
	if err != nil {
		er.log.Error("Failed to delete enrollment",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.Int64("course_id", courseID),
		)
		return fmt.Errorf("delete enrollment user %d course %d: %w", userID, courseID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("enrollment for user %d course %d: %w", userID, courseID, apperr.ErrNotFound)
	}

	er.log.Info("Enrollment removed",
		zap.Int64("user_id", userID),
		zap.Int64("course_id", courseID),
	)
	return nil
}
