package model

// Event is a calendar entry belonging to exactly one client.
// Dates and times are kept as the client sent them.
type Event struct {
	ID          string    `json:"id" gorm:"primaryKey;type:text"`
	ClientID    string    `json:"client_id" gorm:"type:text;not null;index:idx_events_client"`
	Title       string    `json:"title" gorm:"type:text;not null"`
	Description string    `json:"description" gorm:"type:text"`
	StartDate   string    `json:"start_date" gorm:"type:text;not null"`
	StartTime   string    `json:"start_time" gorm:"type:text"`
	EndDate     string    `json:"end_date" gorm:"type:text;not null"`
	EndTime     string    `json:"end_time" gorm:"type:text"`
	Color       string    `json:"color" gorm:"type:text;not null"`
	CreatedAt   Timestamp `json:"created_at" gorm:"type:text;not null;autoCreateTime:false"`
}

// EventSchedule groups the date/time attributes of an event
type EventSchedule struct {
	StartDate string
	StartTime string
	EndDate   string
	EndTime   string
}

// NewEvent creates an event owned by clientID
func NewEvent(clientID, title, description string, schedule EventSchedule, color string) *Event {
	return &Event{
		ID:          NewID(),
		ClientID:    clientID,
		Title:       title,
		Description: description,
		StartDate:   schedule.StartDate,
		StartTime:   schedule.StartTime,
		EndDate:     schedule.EndDate,
		EndTime:     schedule.EndTime,
		Color:       color,
		CreatedAt:   Now(),
	}
}
