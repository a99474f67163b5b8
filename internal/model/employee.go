package model

// Employee belongs to exactly one client
type Employee struct {
	ID        string    `json:"id" gorm:"primaryKey;type:text"`
	ClientID  string    `json:"client_id" gorm:"type:text;not null;index:idx_employees_client"`
	Name      string    `json:"name" gorm:"type:text;not null"`
	Title     string    `json:"title" gorm:"type:text;not null"`
	Salary    float64   `json:"salary" gorm:"type:double precision;not null"`
	Status    string    `json:"status" gorm:"type:text;not null"`
	Paid      bool      `json:"paid" gorm:"not null"`
	CreatedAt Timestamp `json:"created_at" gorm:"type:text;not null;autoCreateTime:false"`
}

// NewEmployee creates an unpaid employee owned by clientID
func NewEmployee(clientID, name, title string, salary float64, status string) *Employee {
	return &Employee{
		ID:        NewID(),
		ClientID:  clientID,
		Name:      name,
		Title:     title,
		Salary:    salary,
		Status:    status,
		Paid:      false,
		CreatedAt: Now(),
	}
}
