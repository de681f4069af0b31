package campaigns

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/angelmondragon/salonadmin/pkg/db/models"
	"github.com/angelmondragon/salonadmin/pkg/enums"
	pkgerrors "github.com/angelmondragon/salonadmin/pkg/errors"
	"github.com/angelmondragon/salonadmin/pkg/salon"
)

// DraftDTO is the API view of a campaign draft.
type DraftDTO struct {
	ID                 uuid.UUID            `json:"id"`
	PlaceID            int64                `json:"place_id"`
	Step               enums.CampaignStep   `json:"step"`
	Steps              []enums.CampaignStep `json:"steps"`
	Status             enums.DraftStatus    `json:"status"`
	Payload            Payload              `json:"payload"`
	PlatformCampaignID *int64               `json:"platform_campaign_id,omitempty"`
	SubmittedAt        *time.Time           `json:"submitted_at,omitempty"`
	CreatedAt          time.Time            `json:"created_at"`
	UpdatedAt          time.Time            `json:"updated_at"`
}

// FromModel maps a persisted draft to its API view.
func FromModel(draft *models.CampaignDraft) (*DraftDTO, error) {
	payload, err := decodePayload(draft.Payload)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "decode campaign draft")
	}
	return &DraftDTO{
		ID:                 draft.ID,
		PlaceID:            draft.PlaceID,
		Step:               draft.Step,
		Steps:              enums.CampaignSteps(),
		Status:             draft.Status,
		Payload:            payload,
		PlatformCampaignID: draft.PlatformCampaignID,
		SubmittedAt:        draft.SubmittedAt,
		CreatedAt:          draft.CreatedAt,
		UpdatedAt:          draft.UpdatedAt,
	}, nil
}

func decodePayload(raw string) (Payload, error) {
	var payload Payload
	if raw == "" {
		return payload, nil
	}
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return Payload{}, err
	}
	return payload, nil
}

func encodePayload(payload Payload) (string, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// toCampaignInput flattens a fully validated payload into the platform body.
func toCampaignInput(p Payload) salon.CampaignInput {
	details := valueOrZero(p.Details)
	discount := valueOrZero(p.Discount)
	targeting := valueOrZero(p.Targeting)
	schedule := valueOrZero(p.Schedule)
	return salon.CampaignInput{
		Name:          details.Name,
		Description:   details.Description,
		Type:          details.Type,
		DiscountType:  discount.DiscountType,
		DiscountValue: discount.DiscountValue,
		ServiceIDs:    targeting.ServiceIDs,
		Tiers:         targeting.Tiers,
		NewCustomers:  targeting.NewCustomersOnly,
		StartDate:     schedule.StartDate,
		EndDate:       schedule.EndDate,
		DailyStart:    schedule.DailyStart,
		DailyEnd:      schedule.DailyEnd,
		Weekdays:      schedule.Weekdays,
		BannerMessage: details.BannerMessage,
		Terms:         details.Terms,
	}
}
