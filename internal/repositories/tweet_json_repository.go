package repositories

import (
	"fmt"

	"tweeter/internal/models"
	"tweeter/pkg/jsonstore"
)

// JSONTweetRepository keeps tweets in a JSON collection file.
type JSONTweetRepository struct {
	tweets *jsonstore.Collection[models.Tweet]
}

// NewJSONTweetRepository creates a repository over the tweets file at path.
func NewJSONTweetRepository(path string) *JSONTweetRepository {
	return &JSONTweetRepository{
		tweets: jsonstore.Open[models.Tweet](path),
	}
}

// Create appends a tweet to the collection.
func (r *JSONTweetRepository) Create(tweet *models.Tweet) error {
	if _, err := r.tweets.Append(*tweet); err != nil {
		return fmt.Errorf("failed to create tweet: %w", err)
	}
	return nil
}

// GetAll returns every stored tweet in insertion order.
func (r *JSONTweetRepository) GetAll() ([]models.Tweet, error) {
	tweets, err := r.tweets.List()
	if err != nil {
		return nil, fmt.Errorf("failed to get all tweets: %w", err)
	}
	return tweets, nil
}
