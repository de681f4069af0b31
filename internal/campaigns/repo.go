package campaigns

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/angelmondragon/salonadmin/pkg/db/models"
	"github.com/angelmondragon/salonadmin/pkg/enums"
)

// Repository persists campaign drafts.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, draft *models.CampaignDraft) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.CampaignDraft, error)
	ListByOwner(ctx context.Context, placeID, ownerID int64) ([]models.CampaignDraft, error)
	UpdateOpen(ctx context.Context, id uuid.UUID, fields map[string]any) (bool, error)
	UpdateFromStatus(ctx context.Context, id uuid.UUID, from enums.DraftStatus, fields map[string]any) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type repositoryImpl struct {
	db *gorm.DB
}

// NewRepository returns a draft repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repositoryImpl{db: db}
}

func (r *repositoryImpl) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repositoryImpl{db: tx}
}

func (r *repositoryImpl) Create(ctx context.Context, draft *models.CampaignDraft) error {
	return r.db.WithContext(ctx).Create(draft).Error
}

func (r *repositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*models.CampaignDraft, error) {
	var draft models.CampaignDraft
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&draft).Error; err != nil {
		return nil, err
	}
	return &draft, nil
}

func (r *repositoryImpl) ListByOwner(ctx context.Context, placeID, ownerID int64) ([]models.CampaignDraft, error) {
	var drafts []models.CampaignDraft
	err := r.db.WithContext(ctx).
		Where("place_id = ? AND owner_id = ?", placeID, ownerID).
		Order("updated_at DESC, id DESC").
		Find(&drafts).Error
	return drafts, err
}

// UpdateOpen applies fields only while the draft is still open. It reports whether a row
// changed.
func (r *repositoryImpl) UpdateOpen(ctx context.Context, id uuid.UUID, fields map[string]any) (bool, error) {
	return r.UpdateFromStatus(ctx, id, enums.DraftStatusOpen, fields)
}

// UpdateFromStatus applies fields only while the draft is in status from.
func (r *repositoryImpl) UpdateFromStatus(ctx context.Context, id uuid.UUID, from enums.DraftStatus, fields map[string]any) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&models.CampaignDraft{}).
		Where("id = ? AND status = ?", id, from).
		Updates(fields)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *repositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.CampaignDraft{}).Error
}
