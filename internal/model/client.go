package model

// Client represents a business account stored in the database.
// It is the unit of tenant isolation: every other row carries a client_id.
type Client struct {
	ID              string    `json:"id" gorm:"primaryKey;type:text"`
	BusinessName    string    `json:"business_name" gorm:"type:text;not null"`
	BusinessWebsite string    `json:"business_website" gorm:"type:text"`
	BusinessSector  string    `json:"business_sector" gorm:"type:text"`
	Revenue         string    `json:"revenue" gorm:"type:text"`
	Goals           string    `json:"goals" gorm:"type:text"`
	Email           string    `json:"email" gorm:"type:text"`
	JobTitle        string    `json:"job_title" gorm:"type:text"`
	Username        string    `json:"username" gorm:"type:text;uniqueIndex;not null"`
	PasswordHash    string    `json:"-" gorm:"column:password_hash;type:text;not null"` // Never expose the credential
	CreatedAt       Timestamp `json:"created_at" gorm:"type:text;not null;autoCreateTime:false"`
}

// ClientProfile holds the business attributes captured at onboarding
type ClientProfile struct {
	BusinessName    string
	BusinessWebsite string
	BusinessSector  string
	Revenue         string
	Goals           string
	Email           string
	JobTitle        string
}

// NewClient creates a client with a fresh id and creation time
func NewClient(profile ClientProfile, username, passwordHash string) *Client {
	return &Client{
		ID:              NewID(),
		BusinessName:    profile.BusinessName,
		BusinessWebsite: profile.BusinessWebsite,
		BusinessSector:  profile.BusinessSector,
		Revenue:         profile.Revenue,
		Goals:           profile.Goals,
		Email:           profile.Email,
		JobTitle:        profile.JobTitle,
		Username:        username,
		PasswordHash:    passwordHash,
		CreatedAt:       Now(),
	}
}
