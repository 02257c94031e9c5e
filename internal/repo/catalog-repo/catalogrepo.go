package catalogrepo

import (
	"context"

	"github.com/ab65ed/soaledu-finance/internal/domain"
	"github.com/ab65ed/soaledu-finance/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) GetExam(ctx context.Context, examID int) (*domain.Exam, error) {
	query := `
        SELECT id, title, designer_id, question_count, created_at
        FROM exams
        WHERE id = $1
    `
	var exam domain.Exam
	err := r.db.QueryRow(ctx, query, examID).Scan(
		&exam.ID,
		&exam.Title,
		&exam.DesignerID,
		&exam.QuestionCount,
		&exam.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find exam", zap.Error(err))
		return nil, err
	}
	return &exam, nil
}

func (r *Repository) GetFlashcards(ctx context.Context, ids []int) ([]domain.Flashcard, error) {
	query := `
        SELECT id, title, designer_id, price
        FROM flashcards
        WHERE id = ANY($1)
    `
	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		zap.L().Error("failed to list flashcards", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var cards []domain.Flashcard
	for rows.Next() {
		var card domain.Flashcard
		if err := rows.Scan(&card.ID, &card.Title, &card.DesignerID, &card.Price); err != nil {
			zap.L().Error("failed to scan flashcard", zap.Error(err))
			return nil, err
		}
		cards = append(cards, card)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return cards, nil
}
