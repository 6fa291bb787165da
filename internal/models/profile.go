package models

// Profile extends User with optional public information. Exactly one row
// per user, created together with the user row.
type Profile struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	UserID uint   `gorm:"uniqueIndex;not null" json:"user_id"`
	User   User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	Bio    string `gorm:"type:text" json:"bio"`
}
