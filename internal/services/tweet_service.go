package services

import (
	"fmt"
	"time"

	"tweeter/internal/models"
	"tweeter/internal/repositories"
	"tweeter/internal/validation"

	"github.com/sirupsen/logrus"
)

// TweetService handles posting and listing of tweets.
type TweetService struct {
	tweetRepo repositories.TweetRepository
	validator *validation.Validator
	events    notifier
	log       logrus.FieldLogger
	now       func() time.Time
}

// NewTweetService creates a new TweetService. publisher may be nil.
func NewTweetService(tweetRepo repositories.TweetRepository, publisher EventPublisher, logger logrus.FieldLogger) *TweetService {
	return &TweetService{
		tweetRepo: tweetRepo,
		validator: validation.New(),
		events:    notifier{publisher: publisher, log: logger},
		log:       logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// SetClock replaces the clock used to stamp created_at.
func (s *TweetService) SetClock(now func() time.Time) {
	s.now = now
}

// Post validates the tweet, including its embedded author, and stores it.
// created_at is stamped with the current time when the caller left it empty.
func (s *TweetService) Post(tweet models.Tweet) (*models.Tweet, error) {
	if tweet.CreatedAt.IsZero() {
		tweet.CreatedAt = s.now()
	}
	if err := s.validator.Struct(tweet); err != nil {
		return nil, err
	}

	tweet.TweetID = canonicalID(tweet.TweetID)
	tweet.By = tweet.By.Snapshot()
	tweet.By.UserID = canonicalID(tweet.By.UserID)

	if err := s.tweetRepo.Create(&tweet); err != nil {
		return nil, fmt.Errorf("failed to post tweet: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"tweet_id": tweet.TweetID,
		"user_id":  tweet.By.UserID,
	}).Info("tweet posted")
	s.events.notify(EventTweetPosted, tweet)
	return &tweet, nil
}

// ListTweets returns every stored tweet.
func (s *TweetService) ListTweets() ([]models.Tweet, error) {
	return s.tweetRepo.GetAll()
}
