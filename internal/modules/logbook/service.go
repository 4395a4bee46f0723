package logbook

import (
	"context"
	"errors"
	"strings"

	"aparthotel/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	entries  LogbookRepository
	postIts  PostItRepository
	settings SettingRepository
}

func NewService(entries LogbookRepository, postIts PostItRepository, settings SettingRepository) *Service {
	return &Service{entries: entries, postIts: postIts, settings: settings}
}

func (s *Service) ListEntries(ctx context.Context) ([]domain.LogbookEntry, error) {
	return s.entries.List(ctx)
}

func (s *Service) CreateEntry(ctx context.Context, authorID int64, req EntryRequest) (*domain.LogbookEntry, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, ErrValidation
	}

	e := &domain.LogbookEntry{
		Date:        date,
		AuthorID:    authorID,
		ApartmentID: req.ApartmentID,
		Text:        req.Text,
	}

	if err := s.entries.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *Service) UpdateEntry(ctx context.Context, id int64, req EntryRequest) (*domain.LogbookEntry, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, ErrValidation
	}

	e, err := s.entries.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	e.Date = date
	e.ApartmentID = req.ApartmentID
	e.Text = req.Text

	if err := s.entries.Update(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *Service) DeleteEntry(ctx context.Context, id int64) error {
	if err := s.entries.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *Service) ListPostIts(ctx context.Context) ([]domain.PostIt, error) {
	return s.postIts.List(ctx)
}

func (s *Service) CreatePostIt(ctx context.Context, authorID int64, req PostItRequest) (*domain.PostIt, error) {
	p := &domain.PostIt{AuthorID: authorID, Text: req.Text, Comments: []domain.PostItComment{}}
	if err := s.postIts.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) DeletePostIt(ctx context.Context, id int64) error {
	if err := s.postIts.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *Service) AddComment(ctx context.Context, postItID, authorID int64, req CommentRequest) (*domain.PostIt, error) {
	if _, err := s.postIts.GetByID(ctx, postItID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	c := &domain.PostItComment{PostItID: postItID, AuthorID: authorID, Text: req.Text}
	if err := s.postIts.AddComment(ctx, c); err != nil {
		return nil, err
	}
	return s.postIts.GetByID(ctx, postItID)
}

func (s *Service) BuildingName(ctx context.Context) (string, error) {
	setting, err := s.settings.Get(ctx, domain.SettingBuildingName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", err
	}
	return setting.Value, nil
}

func (s *Service) SetBuildingName(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrValidation
	}
	return s.settings.Set(ctx, &domain.Setting{Key: domain.SettingBuildingName, Value: name})
}
