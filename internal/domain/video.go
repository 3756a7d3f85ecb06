package domain

import (
	"time"

	"gorm.io/datatypes"
)

type VideoCategory struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"uniqueIndex;not null"`
	Description string `json:"description,omitempty"`
}

type VideoTutorial struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Title       string `json:"title" gorm:"index;not null"`
	Creator     string `json:"creator" gorm:"index"` // legacy display string, kept alongside CreatorRelationID
	URL         string `json:"url"`
	Description string `json:"description,omitempty"`
	VideoType   string `json:"video_type"` // "youtube" or "direct"
	KeyPoints   string `json:"key_points,omitempty"`

	UploadDate *time.Time `json:"upload_date,omitempty"`

	// Kemono import provenance
	KemonoID        string     `json:"kemono_id,omitempty" gorm:"index"`
	Service         string     `json:"service,omitempty"`
	KemonoCreatorID string     `json:"creator_id,omitempty"`
	AddedDate       *time.Time `json:"added_date,omitempty"`
	PublishedDate   *time.Time `json:"published_date,omitempty"`

	Tags datatypes.JSONSlice[string] `json:"tags"`

	CategoryID        *uint `json:"category_id,omitempty"`
	CreatorRelationID *uint `json:"creator_relation_id,omitempty"`

	// Relations, populated on reads
	Category   *VideoCategory `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	CreatorObj *Creator       `json:"creator_obj,omitempty" gorm:"foreignKey:CreatorRelationID"`

	// Per-user progress, attached by the video service for the requesting
	// user only. Not a column.
	ProgressData *VideoProgress `json:"progress_data,omitempty" gorm:"-"`
}

// VideoProgress is keyed by (user, video) and round-trips independently of
// the video it annotates.
type VideoProgress struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	IsWatched     bool      `json:"is_watched" gorm:"not null;default:false"`
	WatchProgress float64   `json:"watch_progress" gorm:"not null;default:0"` // seconds watched
	PersonalNotes string    `json:"personal_notes,omitempty"`
	IsBookmarked  bool      `json:"is_bookmarked" gorm:"not null;default:false"`
	LastWatched   time.Time `json:"last_watched"`
	UserID        uint      `json:"user_id" gorm:"index:idx_video_progress_user_video,unique;not null"`
	VideoID       uint      `json:"video_id" gorm:"index:idx_video_progress_user_video,unique;not null"`
}
