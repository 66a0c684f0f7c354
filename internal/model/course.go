package model

// ContentItem 推荐内容摘要
type ContentItem struct {
	ID                uint       `json:"id"`
	Title             string     `json:"title"`
	Classification    SkillLevel `json:"difficulty"`
	EstimatedDuration int        `json:"estimatedDuration"` // Minutes
	IsPublished       bool       `json:"isPublished"`
}

// Course 课程目录，由内容管理侧维护，本服务只读
// swagger:model Course
type Course struct {
	BaseModel
	Title             string     `gorm:"size:255;not null" json:"title"`
	Description       string     `gorm:"type:text" json:"description"`
	Difficulty        SkillLevel `gorm:"size:20;index;not null" json:"difficulty"`
	Category          string     `gorm:"size:50" json:"category"`
	EstimatedDuration int        `gorm:"default:0" json:"estimatedDuration"`
	IsPublished       bool       `gorm:"default:false;index" json:"isPublished"`
}

func (Course) TableName() string {
	return "courses"
}

func (c Course) ContentItem() ContentItem {
	return ContentItem{
		ID:                c.ID,
		Title:             c.Title,
		Classification:    c.Difficulty,
		EstimatedDuration: c.EstimatedDuration,
		IsPublished:       c.IsPublished,
	}
}
