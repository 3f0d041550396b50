package repositories_test

import (
	"fmt"
	"testing"
	"time"

	"tweeter/internal/models"
	"tweeter/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := repositories.OpenGORM("sqlite", dsn)
	require.NoError(t, err)
	require.NoError(t, repositories.AutoMigrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func TestOpenGORM_UnsupportedDriver(t *testing.T) {
	_, err := repositories.OpenGORM("mysql", "")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported database driver")
}

func TestGORMUserRepository_CreateAndGetAll(t *testing.T) {
	repo := repositories.NewGORMUserRepository(setupDB(t))

	first := sampleUser()
	second := sampleUser()
	second.UserID = "33333333-3333-3333-3333-333333333333"
	second.BirthDate = nil

	require.NoError(t, repo.Create(&first))
	require.NoError(t, repo.Create(&second))

	users, err := repo.GetAll()
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, first.UserID, users[0].UserID)
	assert.Equal(t, first.Email, users[0].Email)
	require.NotNil(t, users[0].BirthDate)
	assert.Equal(t, "1990-05-01", users[0].BirthDate.String())
	assert.Equal(t, second.UserID, users[1].UserID)
	assert.Nil(t, users[1].BirthDate)
}

func TestGORMTweetRepository_KeepsAuthorSnapshot(t *testing.T) {
	repo := repositories.NewGORMTweetRepository(setupDB(t))

	author := sampleUser()
	created := time.Date(2024, time.January, 2, 3, 4, 5, 0, time.UTC)
	tweet := models.NewTweet("22222222-2222-2222-2222-222222222222", "hello", author, created)
	require.NoError(t, repo.Create(&tweet))

	// Editing the author afterwards must not leak into the stored tweet.
	author.FirstName = "Changed"

	tweets, err := repo.GetAll()
	require.NoError(t, err)
	require.Len(t, tweets, 1)
	got := tweets[0]
	assert.Equal(t, tweet.TweetID, got.TweetID)
	assert.Equal(t, "hello", got.Content)
	assert.True(t, created.Equal(got.CreatedAt), "created_at %v != %v", got.CreatedAt, created)
	assert.Nil(t, got.UpdatedAt)
	assert.Equal(t, "Ann", got.By.FirstName)
	assert.Equal(t, sampleUser(), got.By)
}
