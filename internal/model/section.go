package model

// Section is both a news category and a timetable row. Rows are seeded or
// inserted by hand; the application never writes them.
type Section struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:30;not null" json:"name"`
	Teacher     string `gorm:"size:30;not null" json:"teacher"`
	Description string `gorm:"type:text;not null" json:"description"`
}
