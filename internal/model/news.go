package model

type News struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"size:35;not null" json:"title"`
	Description string `gorm:"size:100;not null" json:"description"`
	Text        string `gorm:"size:1000;not null" json:"text"`
	Date        string `gorm:"size:10;not null" json:"date"`
	Type        string `gorm:"size:30;not null" json:"type"`
	ImagePath   string `gorm:"size:100;uniqueIndex;not null" json:"image_path"`
}
