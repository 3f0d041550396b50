package handlers

import (
	"tweeter/internal/models"
	"tweeter/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// UserHandler handles HTTP requests for users.
type UserHandler struct {
	service *services.UserService
	log     logrus.FieldLogger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service *services.UserService, logger logrus.FieldLogger) *UserHandler {
	return &UserHandler{
		service: service,
		log:     logger,
	}
}

// RegisterRoutes registers the user routes.
// Login and the single-user routes are declared but not implemented.
func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/signup", h.HandleSignUp)
	router.Post("/login", notImplemented)
	router.Get("/users", h.HandleGetUsers)
	router.Get("/users/:user_id", notImplemented)
	router.Delete("/users/:user_id/delete", notImplemented)
	router.Put("/users/:user_id/update", notImplemented)
}

// HandleSignUp registers a user and answers with the stored profile.
func (h *UserHandler) HandleSignUp(c *fiber.Ctx) error {
	var req models.UserRegister
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, h.log, err)
	}

	user, err := h.service.Register(req)
	if err != nil {
		return serviceError(c, h.log, "register user", err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// HandleGetUsers lists every registered user.
func (h *UserHandler) HandleGetUsers(c *fiber.Ctx) error {
	users, err := h.service.ListUsers()
	if err != nil {
		return serviceError(c, h.log, "retrieve users", err)
	}
	return c.JSON(users)
}
