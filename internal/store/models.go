package store

import "time"

// Category is a playable activity: a named set of questions.
type Category struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Description string    `gorm:"size:255" json:"description"`
	IconURL     string    `gorm:"size:500" json:"icon_url"`
	Color       string    `gorm:"size:50;default:'bg-gray-100'" json:"color"`
	CreatedAt   time.Time `json:"created_at"`
}

// Question is one stored quiz question within a category.
type Question struct {
	ID            uint             `gorm:"primaryKey" json:"id"`
	CategoryID    uint             `gorm:"not null;index" json:"category_id"`
	TargetItem    string           `gorm:"size:100;not null" json:"target_item"`
	CorrectAnswer string           `gorm:"size:100;not null" json:"correct_answer"`
	AudioURL      string           `gorm:"size:500" json:"audio_url"`
	CreatedAt     time.Time        `json:"-"`
	Options       []QuestionOption `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE" json:"options"`
}

// QuestionOption is one answer option of a stored question.
// ImageURL may hold a remote URL or an inline data URI.
type QuestionOption struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	QuestionID uint   `gorm:"not null;index" json:"-"`
	Label      string `gorm:"size:100;not null" json:"label"`
	ImageURL   string `gorm:"type:text" json:"image_url"`
}

// GameProgress records one completed play-through of a category.
type GameProgress struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	CategoryID     uint      `gorm:"not null;index" json:"category_id"`
	StudentSession string    `gorm:"size:100;not null;index" json:"student_session"`
	Score          int       `json:"score"`
	TotalQuestions int       `json:"total_questions"`
	CompletedAt    time.Time `gorm:"autoCreateTime" json:"completed_at"`
	CategoryName   string    `gorm:"-" json:"category_name,omitempty"`
}

// LLMRequestEvent records one outbound generation request for inspection.
type LLMRequestEvent struct {
	ID           uint      `gorm:"primaryKey"`
	Timestamp    time.Time `gorm:"autoCreateTime;index"`
	Provider     string    `gorm:"size:50"`
	Model        string    `gorm:"size:100"`
	Purpose      string    `gorm:"size:50;index"`
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string `gorm:"type:text"`
	RequestBody  string `gorm:"type:text"`
	ResponseBody string `gorm:"type:text"`
}
