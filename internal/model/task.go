package model

// Task belongs to exactly one client
type Task struct {
	ID        string    `json:"id" gorm:"primaryKey;type:text"`
	ClientID  string    `json:"client_id" gorm:"type:text;not null;index:idx_tasks_client"`
	Title     string    `json:"title" gorm:"type:text;not null"`
	Priority  string    `json:"priority" gorm:"type:text;not null"`
	Done      bool      `json:"done" gorm:"not null"`
	CreatedAt Timestamp `json:"created_at" gorm:"type:text;not null;autoCreateTime:false"`
}

// NewTask creates an open task owned by clientID
func NewTask(clientID, title, priority string) *Task {
	return &Task{
		ID:        NewID(),
		ClientID:  clientID,
		Title:     title,
		Priority:  priority,
		Done:      false,
		CreatedAt: Now(),
	}
}
