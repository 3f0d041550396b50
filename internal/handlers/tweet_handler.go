package handlers

import (
	"tweeter/internal/models"
	"tweeter/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// TweetHandler handles HTTP requests for tweets.
type TweetHandler struct {
	service *services.TweetService
	log     logrus.FieldLogger
}

// NewTweetHandler creates a new TweetHandler.
func NewTweetHandler(service *services.TweetService, logger logrus.FieldLogger) *TweetHandler {
	return &TweetHandler{
		service: service,
		log:     logger,
	}
}

// RegisterRoutes registers the tweet routes. The home route lists tweets.
func (h *TweetHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/", h.HandleHome)
	router.Post("/post", h.HandlePostTweet)
	router.Get("/tweet/:tweet_id", notImplemented)
	router.Delete("/tweet/:tweet_id/delete", notImplemented)
	router.Put("/tweet/:tweet_id/update", notImplemented)
}

// HandleHome lists every tweet.
func (h *TweetHandler) HandleHome(c *fiber.Ctx) error {
	tweets, err := h.service.ListTweets()
	if err != nil {
		return serviceError(c, h.log, "retrieve tweets", err)
	}
	return c.JSON(tweets)
}

// HandlePostTweet stores a tweet and answers with the stored record.
func (h *TweetHandler) HandlePostTweet(c *fiber.Ctx) error {
	var tweet models.Tweet
	if err := c.BodyParser(&tweet); err != nil {
		return badRequest(c, h.log, err)
	}

	stored, err := h.service.Post(tweet)
	if err != nil {
		return serviceError(c, h.log, "post tweet", err)
	}
	return c.Status(fiber.StatusCreated).JSON(stored)
}
