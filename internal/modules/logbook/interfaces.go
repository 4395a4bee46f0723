package logbook

import (
	"context"

	"aparthotel/internal/domain"
)

type LogbookRepository interface {
	List(ctx context.Context) ([]domain.LogbookEntry, error)
	GetByID(ctx context.Context, id int64) (*domain.LogbookEntry, error)
	Create(ctx context.Context, e *domain.LogbookEntry) error
	Update(ctx context.Context, e *domain.LogbookEntry) error
	Delete(ctx context.Context, id int64) error
}

type PostItRepository interface {
	List(ctx context.Context) ([]domain.PostIt, error)
	GetByID(ctx context.Context, id int64) (*domain.PostIt, error)
	Create(ctx context.Context, p *domain.PostIt) error
	Update(ctx context.Context, p *domain.PostIt) error
	Delete(ctx context.Context, id int64) error
	AddComment(ctx context.Context, c *domain.PostItComment) error
}

type SettingRepository interface {
	Get(ctx context.Context, key string) (*domain.Setting, error)
	Set(ctx context.Context, s *domain.Setting) error
}
