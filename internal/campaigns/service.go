package campaigns

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/angelmondragon/salonadmin/pkg/db/models"
	"github.com/angelmondragon/salonadmin/pkg/enums"
	pkgerrors "github.com/angelmondragon/salonadmin/pkg/errors"
	"github.com/angelmondragon/salonadmin/pkg/logger"
	"github.com/angelmondragon/salonadmin/pkg/salon"
)

type campaignCreator interface {
	CreateCampaign(ctx context.Context, placeID int64, input salon.CampaignInput) (salon.Campaign, error)
}

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Service drives the campaign creation wizard. Drafts are private to their owner.
type Service interface {
	Start(ctx context.Context, placeID, ownerID int64) (*DraftDTO, error)
	List(ctx context.Context, placeID, ownerID int64) ([]DraftDTO, error)
	Get(ctx context.Context, ownerID int64, draftID uuid.UUID) (*DraftDTO, error)
	Save(ctx context.Context, ownerID int64, draftID uuid.UUID, data json.RawMessage) (*DraftDTO, error)
	Next(ctx context.Context, ownerID int64, draftID uuid.UUID) (*DraftDTO, error)
	Back(ctx context.Context, ownerID int64, draftID uuid.UUID) (*DraftDTO, error)
	Submit(ctx context.Context, ownerID int64, draftID uuid.UUID) (*DraftDTO, error)
	Delete(ctx context.Context, ownerID int64, draftID uuid.UUID) error
}

type service struct {
	repo     Repository
	tx       txRunner
	platform campaignCreator
	logg     *logger.Logger
	now      func() time.Time
}

func NewService(repo Repository, tx txRunner, platform campaignCreator, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("campaign draft repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	if platform == nil {
		return nil, fmt.Errorf("campaign platform client required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{
		repo:     repo,
		tx:       tx,
		platform: platform,
		logg:     logg,
		now:      time.Now,
	}, nil
}

func (s *service) Start(ctx context.Context, placeID, ownerID int64) (*DraftDTO, error) {
	if placeID <= 0 || ownerID <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "place and owner are required")
	}
	draft := &models.CampaignDraft{
		ID:      uuid.New(),
		PlaceID: placeID,
		OwnerID: ownerID,
		Step:    firstStep,
		Status:  enums.DraftStatusOpen,
		Payload: "{}",
	}
	if err := s.repo.Create(ctx, draft); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create campaign draft")
	}
	return FromModel(draft)
}

func (s *service) List(ctx context.Context, placeID, ownerID int64) ([]DraftDTO, error) {
	drafts, err := s.repo.ListByOwner(ctx, placeID, ownerID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list campaign drafts")
	}
	out := make([]DraftDTO, 0, len(drafts))
	for i := range drafts {
		dto, err := FromModel(&drafts[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *dto)
	}
	return out, nil
}

func (s *service) Get(ctx context.Context, ownerID int64, draftID uuid.UUID) (*DraftDTO, error) {
	draft, err := s.load(ctx, s.repo, ownerID, draftID)
	if err != nil {
		return nil, err
	}
	return FromModel(draft)
}

func (s *service) Save(ctx context.Context, ownerID int64, draftID uuid.UUID, data json.RawMessage) (*DraftDTO, error) {
	return s.change(ctx, ownerID, draftID, func(draft *models.CampaignDraft, payload Payload) (map[string]any, error) {
		target, ok := newStepData(draft.Step)
		if !ok {
			return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "the review step has no data to save")
		}
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(target); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid step data")
		}
		encoded, err := encodePayload(setStep(payload, draft.Step, target))
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode campaign draft")
		}
		return map[string]any{"payload": encoded}, nil
	})
}

func (s *service) Next(ctx context.Context, ownerID int64, draftID uuid.UUID) (*DraftDTO, error) {
	return s.change(ctx, ownerID, draftID, func(draft *models.CampaignDraft, payload Payload) (map[string]any, error) {
		next, err := advance(draft.Step, payload)
		if err != nil {
			return nil, err
		}
		return map[string]any{"step": next}, nil
	})
}

func (s *service) Back(ctx context.Context, ownerID int64, draftID uuid.UUID) (*DraftDTO, error) {
	return s.change(ctx, ownerID, draftID, func(draft *models.CampaignDraft, _ Payload) (map[string]any, error) {
		prev := retreat(draft.Step)
		if prev == draft.Step {
			return nil, nil
		}
		return map[string]any{"step": prev}, nil
	})
}

func (s *service) Submit(ctx context.Context, ownerID int64, draftID uuid.UUID) (*DraftDTO, error) {
	draft, err := s.load(ctx, s.repo, ownerID, draftID)
	if err != nil {
		return nil, err
	}
	if err := ensureOpen(draft); err != nil {
		return nil, err
	}
	if draft.Step != enums.CampaignStepReview {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "draft must reach review before submit").
			WithDetails(map[string]string{"step": string(draft.Step)})
	}
	payload, err := decodePayload(draft.Payload)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "decode campaign draft")
	}
	if err := validateStep(enums.CampaignStepReview, payload); err != nil {
		return nil, err
	}

	claimed, err := s.repo.UpdateOpen(ctx, draft.ID, map[string]any{"status": enums.DraftStatusSubmitting})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "claim campaign draft")
	}
	if !claimed {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "campaign draft is already being submitted")
	}

	logCtx := s.logg.WithFields(ctx, map[string]any{"draft_id": draft.ID.String()})
	campaign, err := s.platform.CreateCampaign(ctx, draft.PlaceID, toCampaignInput(payload))
	if err != nil {
		// Context may be cancelled already; release with a detached one.
		if _, relErr := s.repo.UpdateFromStatus(context.WithoutCancel(ctx), draft.ID, enums.DraftStatusSubmitting, map[string]any{
			"status": enums.DraftStatusOpen,
		}); relErr != nil {
			s.logg.Error(logCtx, "campaigns.release_claim_failed", relErr)
		}
		return nil, err
	}

	submittedAt := s.now().UTC()
	updated, err := s.repo.UpdateFromStatus(context.WithoutCancel(ctx), draft.ID, enums.DraftStatusSubmitting, map[string]any{
		"status":               enums.DraftStatusSubmitted,
		"platform_campaign_id": campaign.ID,
		"submitted_at":         submittedAt,
	})
	if err != nil || !updated {
		logCtx = s.logg.WithFields(logCtx, map[string]any{"campaign_id": campaign.ID})
		if err == nil {
			err = errors.New("draft claim lost")
		}
		s.logg.Error(logCtx, "campaigns.mark_submitted_failed", err)
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "mark campaign draft submitted")
	}

	draft.Status = enums.DraftStatusSubmitted
	draft.PlatformCampaignID = &campaign.ID
	draft.SubmittedAt = &submittedAt
	return FromModel(draft)
}

func (s *service) Delete(ctx context.Context, ownerID int64, draftID uuid.UUID) error {
	draft, err := s.load(ctx, s.repo, ownerID, draftID)
	if err != nil {
		return err
	}
	if draft.Status == enums.DraftStatusSubmitting {
		return pkgerrors.New(pkgerrors.CodeStateConflict, "campaign draft is being submitted")
	}
	if err := s.repo.Delete(ctx, draftID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete campaign draft")
	}
	return nil
}

type mutation func(draft *models.CampaignDraft, payload Payload) (map[string]any, error)

// change loads an open draft, computes the fields to store and writes them in one
// transaction. A nil field map leaves the draft untouched.
func (s *service) change(ctx context.Context, ownerID int64, draftID uuid.UUID, fn mutation) (*DraftDTO, error) {
	var result *models.CampaignDraft
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		draft, err := s.load(ctx, repo, ownerID, draftID)
		if err != nil {
			return err
		}
		if err := ensureOpen(draft); err != nil {
			return err
		}
		payload, err := decodePayload(draft.Payload)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "decode campaign draft")
		}

		fields, err := fn(draft, payload)
		if err != nil {
			return err
		}
		if len(fields) > 0 {
			updated, err := repo.UpdateOpen(ctx, draft.ID, fields)
			if err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update campaign draft")
			}
			if !updated {
				return pkgerrors.New(pkgerrors.CodeStateConflict, "campaign draft was already submitted")
			}
			if draft, err = repo.FindByID(ctx, draft.ID); err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "reload campaign draft")
			}
		}
		result = draft
		return nil
	})
	if err != nil {
		return nil, err
	}
	return FromModel(result)
}

func (s *service) load(ctx context.Context, repo Repository, ownerID int64, draftID uuid.UUID) (*models.CampaignDraft, error) {
	draft, err := repo.FindByID(ctx, draftID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "campaign draft not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load campaign draft")
	}
	if draft.OwnerID != ownerID {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "campaign draft not found")
	}
	return draft, nil
}

func ensureOpen(draft *models.CampaignDraft) error {
	switch draft.Status {
	case enums.DraftStatusOpen:
		return nil
	case enums.DraftStatusSubmitting:
		return pkgerrors.New(pkgerrors.CodeStateConflict, "campaign draft is being submitted").
			WithDetails(map[string]string{"status": string(draft.Status)})
	default:
		return pkgerrors.New(pkgerrors.CodeStateConflict, "campaign draft was already submitted").
			WithDetails(map[string]string{"status": string(draft.Status)})
	}
}
