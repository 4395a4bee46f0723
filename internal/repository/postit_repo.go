package repository

import (
	"context"
	"time"

	"aparthotel/internal/domain"

	"gorm.io/gorm"
)

type PostItRepository struct {
	db *gorm.DB
}

func NewPostItRepository(db *gorm.DB) *PostItRepository {
	return &PostItRepository{db: db}
}

type postItModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	AuthorID  int64     `gorm:"column:author_id"`
	Text      string    `gorm:"column:text"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (postItModel) TableName() string { return "post_its" }

type postItCommentModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	PostItID  int64     `gorm:"column:post_it_id;index"`
	AuthorID  int64     `gorm:"column:author_id"`
	Text      string    `gorm:"column:text"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (postItCommentModel) TableName() string { return "post_it_comments" }

func toDomainPostIt(m postItModel, comments []domain.PostItComment) *domain.PostIt {
	return &domain.PostIt{
		ID:        m.ID,
		AuthorID:  m.AuthorID,
		Text:      m.Text,
		Comments:  comments,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func (r *PostItRepository) List(ctx context.Context) ([]domain.PostIt, error) {
	var ms []postItModel
	if tx := r.db.WithContext(ctx).Order("created_at DESC").Find(&ms); tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.PostIt, 0, len(ms))
	for _, m := range ms {
		comments, err := r.commentsFor(ctx, m.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, *toDomainPostIt(m, comments))
	}
	return out, nil
}

func (r *PostItRepository) GetByID(ctx context.Context, id int64) (*domain.PostIt, error) {
	var m postItModel
	if tx := r.db.WithContext(ctx).First(&m, id); tx.Error != nil {
		return nil, tx.Error
	}
	comments, err := r.commentsFor(ctx, m.ID)
	if err != nil {
		return nil, err
	}
	return toDomainPostIt(m, comments), nil
}

func (r *PostItRepository) Create(ctx context.Context, p *domain.PostIt) error {
	m := postItModel{AuthorID: p.AuthorID, Text: p.Text}
	if tx := r.db.WithContext(ctx).Create(&m); tx.Error != nil {
		return tx.Error
	}
	*p = *toDomainPostIt(m, []domain.PostItComment{})
	return nil
}

func (r *PostItRepository) Update(ctx context.Context, p *domain.PostIt) error {
	m := postItModel{ID: p.ID, AuthorID: p.AuthorID, Text: p.Text, CreatedAt: p.CreatedAt}
	return r.db.WithContext(ctx).Save(&m).Error
}

func (r *PostItRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_it_id = ?", id).Delete(&postItCommentModel{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&postItModel{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *PostItRepository) AddComment(ctx context.Context, c *domain.PostItComment) error {
	m := postItCommentModel{PostItID: c.PostItID, AuthorID: c.AuthorID, Text: c.Text}
	if tx := r.db.WithContext(ctx).Create(&m); tx.Error != nil {
		return tx.Error
	}
	c.ID = m.ID
	c.CreatedAt = m.CreatedAt
	return nil
}

// commentsFor returns a note's comments in chronological order.
func (r *PostItRepository) commentsFor(ctx context.Context, postItID int64) ([]domain.PostItComment, error) {
	var ms []postItCommentModel
	tx := r.db.WithContext(ctx).
		Where("post_it_id = ?", postItID).
		Order("created_at, id").
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.PostItComment, 0, len(ms))
	for _, m := range ms {
		out = append(out, domain.PostItComment{
			ID:        m.ID,
			PostItID:  m.PostItID,
			AuthorID:  m.AuthorID,
			Text:      m.Text,
			CreatedAt: m.CreatedAt,
		})
	}
	return out, nil
}
