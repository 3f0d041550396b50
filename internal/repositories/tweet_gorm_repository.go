package repositories

import (
	"fmt"
	"time"

	"tweeter/internal/models"

	"gorm.io/gorm"
)

// tweetRecord is the tweets table row. The author snapshot is stored as a
// JSON document so it never follows later edits of the users table.
type tweetRecord struct {
	Seq      uint        `gorm:"primaryKey;autoIncrement"`
	TweetID  string      `gorm:"type:varchar(36);index"`
	Content  string      `gorm:"type:varchar(256)"`
	PostedAt time.Time   `gorm:"column:created_at"`
	EditedAt *time.Time  `gorm:"column:updated_at"`
	By       models.User `gorm:"type:text;serializer:json"`
}

func (tweetRecord) TableName() string { return "tweets" }

// GORMTweetRepository is a GORM implementation of TweetRepository.
type GORMTweetRepository struct {
	db *gorm.DB
}

// NewGORMTweetRepository creates a new instance of GORMTweetRepository.
func NewGORMTweetRepository(db *gorm.DB) *GORMTweetRepository {
	return &GORMTweetRepository{
		db: db,
	}
}

// Create inserts a new tweet row.
func (r *GORMTweetRepository) Create(tweet *models.Tweet) error {
	rec := tweetRecord{
		TweetID:  tweet.TweetID,
		Content:  tweet.Content,
		PostedAt: tweet.CreatedAt,
		EditedAt: tweet.UpdatedAt,
		By:       tweet.By.Snapshot(),
	}
	if err := r.db.Create(&rec).Error; err != nil {
		return fmt.Errorf("failed to create tweet: %w", err)
	}
	return nil
}

// GetAll retrieves all tweets in insertion order.
func (r *GORMTweetRepository) GetAll() ([]models.Tweet, error) {
	var recs []tweetRecord
	if err := r.db.Order("seq").Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("failed to get all tweets: %w", err)
	}
	tweets := make([]models.Tweet, 0, len(recs))
	for _, rec := range recs {
		tweets = append(tweets, models.Tweet{
			TweetID:   rec.TweetID,
			Content:   rec.Content,
			CreatedAt: rec.PostedAt,
			UpdatedAt: rec.EditedAt,
			By:        rec.By,
		})
	}
	return tweets, nil
}
