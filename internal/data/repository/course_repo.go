package repository

import (
	"context"
	"fmt"

	"course-platform/internal/data/entity"
	"course-platform/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type CourseRepository interface {
	Create(ctx context.Context, course *entity.Course) error
	FindByID(ctx context.Context, id int64) (*entity.Course, error)
	FindAll(ctx context.Context) ([]*entity.Course, error)
	Update(ctx context.Context, course *entity.Course) error
	Delete(ctx context.Context, id int64) error
}

type courseRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCourseRepository(db database.PgxIface, log *zap.Logger) CourseRepository {
	return &courseRepository{
		db:  db,
		log: log.With(zap.String("repository", "course")),
	}
}

func (cr *courseRepository) Create(ctx context.Context, course *entity.Course) error {
	query := `
		INSERT INTO courses (name, description, thumbnail_url, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := cr.db.QueryRow(ctx, query,
		course.Name,
		course.Description,
		course.ThumbnailURL,
		course.IsActive,
		course.CreatedAt,
	).Scan(&course.ID)

	if err != nil {
		cr.log.Error("Failed to create course",
			zap.Error(err),
			zap.String("name", course.Name),
		)
		return fmt.Errorf("create course %s: %w", course.Name, err)
	}

	return nil
}

func (cr *courseRepository) FindByID(ctx context.Context, id int64) (*entity.Course, error) {
	query := `
		SELECT id, name, description, thumbnail_url, is_active, created_at
		FROM courses
		WHERE id = $1
	`

	var course entity.Course
	err := cr.db.QueryRow(ctx, query, id).Scan(
		&course.ID,
		&course.Name,
		&course.Description,
		&course.ThumbnailURL,
		&course.IsActive,
		&course.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		cr.log.Error("Failed to find course by ID",
			zap.Error(err),
			zap.Int64("course_id", id),
		)
		return nil, fmt.Errorf("find course by ID %d: %w", id, err)
	}

	return &course, nil
}

func (cr *courseRepository) FindAll(ctx context.Context) ([]*entity.Course, error) {
	query := `
		SELECT id, name, description, thumbnail_url, is_active, created_at
		FROM courses
		ORDER BY created_at DESC
	`

	rows, err := cr.db.Query(ctx, query)
	if err != nil {
		cr.log.Error("Failed to get all courses", zap.Error(err))
		return nil, fmt.Errorf("find all courses: %w", err)
	}
	defer rows.Close()

	var courses []*entity.Course
	for rows.Next() {
		var course entity.Course
		err := rows.Scan(
			&course.ID,
			&course.Name,
			&course.Description,
			&course.ThumbnailURL,
			&course.IsActive,
			&course.CreatedAt,
		)
		if err != nil {
			cr.log.Error("Failed to scan course row", zap.Error(err))
			return nil, fmt.Errorf("scan course row: %w", err)
		}
		courses = append(courses, &course)
	}

	if err := rows.Err(); err != nil {
		cr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate courses rows: %w", err)
	}

	return courses, nil
}

func (cr *courseRepository) Update(ctx context.Context, course *entity.Course) error {
	query := `
		UPDATE courses
		SET name = $2, description = $3, thumbnail_url = $4, is_active = $5
		WHERE id = $1
	`

	result, err := cr.db.Exec(ctx, query,
		course.ID,
		course.Name,
		course.Description,
		course.ThumbnailURL,
		course.IsActive,
	)

	if err != nil {
		cr.log.Error("Failed to update course",
			zap.Error(err),
			zap.Int64("course_id", course.ID),
		)
		return fmt.Errorf("update course %d: %w", course.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("course %d not found", course.ID)
	}

	return nil
}

// Delete removes the course row only. Lectures and enrollments are left
// in place; whether they should cascade is an open product decision.
func (cr *courseRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM courses WHERE id = $1`

	result, err := cr.db.Exec(ctx, query, id)
	if err != nil {
		cr.log.Error("Failed to delete course",
			zap.Error(err),
			zap.Int64("id", id),
		)
		return fmt.Errorf("delete course %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("course %d not found", id)
	}

	cr.log.Info("Course deleted", zap.Int64("id", id))
	return nil
}
