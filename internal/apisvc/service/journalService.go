package service

import (
	"context"
	"strings"

	"github.com/lifemon/lifemon-services/internal/apisvc/models"
)

type journalStore interface {
	List(ctx context.Context, userID int64) ([]*models.Journal, error)
	GetByID(ctx context.Context, userID, id int64) (*models.Journal, error)
	Create(ctx context.Context, j *models.Journal) (*models.Journal, error)
	Update(ctx context.Context, userID, id int64, judul, isi, mood *string) (*models.Journal, error)
	Delete(ctx context.Context, userID, id int64) error
}

// JournalService struct represents the journal service layer
type JournalService struct {
	journals journalStore
}

func NewJournalService(journals journalStore) *JournalService {
	return &JournalService{journals: journals}
}

func (s *JournalService) List(ctx context.Context, userID int64) ([]*models.Journal, error) {
	return s.journals.List(ctx, userID)
}

func (s *JournalService) GetByID(ctx context.Context, userID, id int64) (*models.Journal, error) {
	return s.journals.GetByID(ctx, userID, id)
}

func (s *JournalService) Create(ctx context.Context, j *models.Journal) (*models.Journal, error) {
	j.Judul = strings.TrimSpace(j.Judul)
	j.Isi = strings.TrimSpace(j.Isi)
	if j.Judul == "" {
		return nil, invalidf("judul wajib diisi")
	}
	if j.Isi == "" {
		return nil, invalidf("isi wajib diisi")
	}

	return s.journals.Create(ctx, j)
}

func (s *JournalService) Update(ctx context.Context, userID, id int64, judul, isi, mood *string) (*models.Journal, error) {
	if judul != nil && strings.TrimSpace(*judul) == "" {
		return nil, invalidf("judul tidak boleh kosong")
	}
	if isi != nil && strings.TrimSpace(*isi) == "" {
		return nil, invalidf("isi tidak boleh kosong")
	}

	return s.journals.Update(ctx, userID, id, judul, isi, mood)
}

func (s *JournalService) Delete(ctx context.Context, userID, id int64) error {
	return s.journals.Delete(ctx, userID, id)
}
