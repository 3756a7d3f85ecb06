package domain

type User struct {
	ID             uint   `json:"id" gorm:"primaryKey"`
	Email          string `json:"email" gorm:"uniqueIndex;not null"`
	Username       string `json:"username" gorm:"uniqueIndex;not null"`
	HashedPassword string `json:"-" gorm:"not null"`
	IsActive       bool   `json:"is_active" gorm:"not null;default:true"`
	IsAdmin        bool   `json:"is_admin" gorm:"not null;default:false"`
}
