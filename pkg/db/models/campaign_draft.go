package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/angelmondragon/salonadmin/pkg/enums"
)

// CampaignDraft is an in-progress campaign wizard. Payload holds the JSON of every step
// entered so far.
type CampaignDraft struct {
	ID                 uuid.UUID          `gorm:"column:id;type:varchar(36);primaryKey"`
	PlaceID            int64              `gorm:"column:place_id;not null"`
	OwnerID            int64              `gorm:"column:owner_id;not null"`
	Step               enums.CampaignStep `gorm:"column:step;type:varchar(32);not null"`
	Status             enums.DraftStatus  `gorm:"column:status;type:varchar(16);not null"`
	Payload            string             `gorm:"column:payload;type:text;not null"`
	PlatformCampaignID *int64             `gorm:"column:platform_campaign_id"`
	SubmittedAt        *time.Time         `gorm:"column:submitted_at"`
	CreatedAt          time.Time          `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt          time.Time          `gorm:"column:updated_at;autoUpdateTime"`
}

func (CampaignDraft) TableName() string {
	return "campaign_drafts"
}
