package repository

import (
	"context"
	"fmt"

	"course-platform/internal/data/entity"
	"course-platform/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type LectureRepository interface {
	Create(ctx context.Context, lecture *entity.Lecture) error
	FindByID(ctx context.Context, id int64) (*entity.Lecture, error)
	FindByCourseID(ctx context.Context, courseID int64) ([]*entity.Lecture, error)
	Update(ctx context.Context, lecture *entity.Lecture) error
	Delete(ctx context.Context, id int64) error
}

type lectureRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewLectureRepository(db database.PgxIface, log *zap.Logger) LectureRepository {
	return &lectureRepository{
		db:  db,
		log: log.With(zap.String("repository", "lecture")),
	}
}

func (lr *lectureRepository) Create(ctx context.Context, lecture *entity.Lecture) error {
	query := `
		INSERT INTO lectures (title, description, position, thumbnail_url, video_url, is_active, course_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	err := lr.db.QueryRow(ctx, query,
		lecture.Title,
		lecture.Description,
		lecture.Position,
		lecture.ThumbnailURL,
		lecture.VideoURL,
		lecture.IsActive,
		lecture.CourseID,
		lecture.CreatedAt,
	).Scan(&lecture.ID)

	if err != nil {
		lr.log.Error("Failed to create lecture",
			zap.Error(err),
			zap.String("title", lecture.Title),
			zap.Int64("course_id", lecture.CourseID),
		)
		return fmt.Errorf("create lecture %s: %w", lecture.Title, err)
	}

	return nil
}

func (lr *lectureRepository) FindByID(ctx context.Context, id int64) (*entity.Lecture, error) {
	query := `
		SELECT id, title, description, position, thumbnail_url, video_url, is_active, course_id, created_at
		FROM lectures
		WHERE id = $1
	`

	var lecture entity.Lecture
	err := lr.db.QueryRow(ctx, query, id).Scan(
		&lecture.ID,
		&lecture.Title,
		&lecture.Description,
		&lecture.Position,
		&lecture.ThumbnailURL,
		&lecture.VideoURL,
		&lecture.IsActive,
		&lecture.CourseID,
		&lecture.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		lr.log.Error("Failed to find lecture by ID",
			zap.Error(err),
			zap.Int64("lecture_id", id),
		)
		return nil, fmt.Errorf("find lecture by ID %d: %w", id, err)
	}

	return &lecture, nil
}

func (lr *lectureRepository) FindByCourseID(ctx context.Context, courseID int64) ([]*entity.Lecture, error) {
	query := `
		SELECT id, title, description, position, thumbnail_url, video_url, is_active, course_id, created_at
		FROM lectures
		WHERE course_id = $1
		ORDER BY position ASC, created_at ASC
	`

	rows, err := lr.db.Query(ctx, query, courseID)
	if err != nil {
		lr.log.Error("Failed to get lectures by course",
			zap.Error(err),
			zap.Int64("course_id", courseID),
		)
		return nil, fmt.Errorf("find lectures for course %d: %w", courseID, err)
	}
	defer rows.Close()

	var lectures []*entity.Lecture
	for rows.Next() {
		var lecture entity.Lecture
		err := rows.Scan(
			&lecture.ID,
			&lecture.Title,
			&lecture.Description,
			&lecture.Position,
			&lecture.ThumbnailURL,
			&lecture.VideoURL,
			&lecture.IsActive,
			&lecture.CourseID,
			&lecture.CreatedAt,
		)
		if err != nil {
			lr.log.Error("Failed to scan lecture row", zap.Error(err))
			return nil, fmt.Errorf("scan lecture row: %w", err)
		}
		lectures = append(lectures, &lecture)
	}

	if err := rows.Err(); err != nil {
		lr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate lectures rows: %w", err)
	}

	return lectures, nil
}

func (lr *lectureRepository) Update(ctx context.Context, lecture *entity.Lecture) error {
	query := `
		UPDATE lectures
		SET title = $2, description = $3, position = $4, thumbnail_url = $5,
		    video_url = $6, is_active = $7
		WHERE id = $1
	`

	result, err := lr.db.Exec(ctx, query,
		lecture.ID,
		lecture.Title,
		lecture.Description,
		lecture.Position,
		lecture.ThumbnailURL,
		lecture.VideoURL,
		lecture.IsActive,
	)

	if err != nil {
		lr.log.Error("Failed to update lecture",
			zap.Error(err),
			zap.Int64("lecture_id", lecture.ID),
		)
		return fmt.Errorf("update lecture %d: %w", lecture.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("lecture %d not found", lecture.ID)
	}

	return nil
}

func (lr *lectureRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM lectures WHERE id = $1`

	result, err := lr.db.Exec(ctx, query, id)
	if err != nil {
		lr.log.Error("Failed to delete lecture",
			zap.Error(err),
			zap.Int64("id", id),
		)
		return fmt.Errorf("delete lecture %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("lecture %d not found", id)
	}

	lr.log.Info("Lecture deleted", zap.Int64("id", id))
	return nil
}
