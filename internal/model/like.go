package model

import "time"

// NewsLike records one user liking one news item. The composite unique
// index keeps the pair from appearing twice; the like count of a news item
// is the number of its rows here.
type NewsLike struct {
	ID      uint      `gorm:"primaryKey" json:"id"`
	UserID  uint      `gorm:"not null;uniqueIndex:idx_news_like_pair" json:"user_id"`
	NewsID  uint      `gorm:"not null;uniqueIndex:idx_news_like_pair" json:"news_id"`
	LikedAt time.Time `gorm:"autoCreateTime" json:"liked_at"`

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	News *News `gorm:"foreignKey:NewsID;constraint:OnDelete:CASCADE" json:"news,omitempty"`
}

func (NewsLike) TableName() string {
	return "news_likes"
}
