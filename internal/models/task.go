package model

// Task is the single domain entity. All non-id fields are opaque text
// owned by clients; the store assigns the id on first insert.
type Task struct {
	ID          int32  `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string `json:"title"`
	Status      string `json:"status"`
	Description string `json:"description"`
	Deadline    string `json:"deadline"`
}

func (Task) TableName() string {
	return "tasks"
}
