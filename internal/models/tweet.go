package models

import "time"

// Tweet is a single published message.
//
// By holds a snapshot of the author taken when the tweet was posted, not a
// reference to the users collection. Later changes to the author's account
// never alter tweets that are already stored.
type Tweet struct {
	TweetID   string     `json:"tweet_id" validate:"required,uuid"`
	Content   string     `json:"content" validate:"required,min=1,max=256"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"` // Optional, null when never edited
	By        User       `json:"by"`
}

// NewTweet builds a tweet authored by the given user, stamped with now.
func NewTweet(id, content string, author User, now time.Time) Tweet {
	return Tweet{
		TweetID:   id,
		Content:   content,
		CreatedAt: now,
		By:        author.Snapshot(),
	}
}
