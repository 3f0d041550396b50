package repositories

import "tweeter/internal/models"

// TweetRepository defines the interface for tweet data access.
type TweetRepository interface {
	Create(tweet *models.Tweet) error
	GetAll() ([]models.Tweet, error)
}
