package domain

type Creator struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"uniqueIndex;not null"`
	Description string `json:"description,omitempty"`
	Platform    string `json:"platform,omitempty"`
	Website     string `json:"website,omitempty"`
}
