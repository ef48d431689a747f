// Package user provides the JSON API handlers for users and the views of
// their groups and line items.
package user

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/ED-LetsCode/Foodtable-Backend/internal/config"
	userctl "github.com/ED-LetsCode/Foodtable-Backend/internal/db/controller/user"
	"github.com/ED-LetsCode/Foodtable-Backend/internal/web/handler"
)

const (
	// Path is the base path for user management.
	Path = handler.RootPath + "users"
)

// Service provides CRUD operations for users.
type Service struct {
	handler.Service
	cfg       *config.Config
	db        *gorm.DB
	validator *validator.Validate
}

// Handler is the exported instance.
var Handler = Service{}

// Init registers routes.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) {
	if app == nil || cfg == nil || db == nil {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return
	}

	s.db = db
	s.cfg = cfg
	s.validator = validator.New()

	// Routes
	app.Get(Path, s.List)
	app.Post(Path, s.Create)
	app.Get(Path+"/:userId", s.Get)
	app.Put(Path+"/:userId", s.Update)
	app.Delete(Path+"/:userId", s.Delete)
	app.Get(Path+"/:userId/groups", s.Groups)
	app.Get(Path+"/:userId/active-groups", s.ActiveGroups)
	app.Get(Path+"/:userId/orders", s.Orders)
}

// respondErr maps controller errors onto HTTP status codes.
func respondErr(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, userctl.ErrUserNotFound),
		errors.Is(err, userctl.ErrNoUsersExist):
		return handler.Error(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, userctl.ErrNameRequired),
		errors.Is(err, userctl.ErrNameTooLong):
		return handler.Error(c, fiber.StatusBadRequest, err.Error())
	}

	log.Error().Err(err).Msg("user handler failed")

	return handler.Error(c, fiber.StatusInternalServerError, "Internal server error")
}

// parseBody parses and validates the user upsert body. When parsing or
// validation fails the 400 response has already been written and ok is false.
func (s *Service) parseBody(c *fiber.Ctx) (in upsertInput, ok bool, err error) {
	if parseErr := c.BodyParser(&in); parseErr != nil {
		return in, false, handler.Error(c, fiber.StatusBadRequest, handler.ErrInvalidBody)
	}
	if validateErr := s.validator.Struct(in); validateErr != nil {
		return in, false, handler.Error(c, fiber.StatusBadRequest, validateErr.Error())
	}

	return in, true, nil
}

// List returns all users.
func (s *Service) List(c *fiber.Ctx) error {
	users, err := userctl.GetAll(s.db)
	if err != nil {
		return respondErr(c, err)
	}

	return c.JSON(users)
}

// Get returns a single user by id.
func (s *Service) Get(c *fiber.Ctx) error {
	id, ok, err := handler.ParamID(c, "userId")
	if !ok {
		return err
	}

	u, err := userctl.Get(s.db, id)
	if err != nil {
		return respondErr(c, err)
	}

	return c.JSON(u)
}

// Create creates a new user.
func (s *Service) Create(c *fiber.Ctx) error {
	in, ok, err := s.parseBody(c)
	if !ok {
		return err
	}

	u, err := userctl.Create(s.db, in.FirstName, in.LastName)
	if err != nil {
		return respondErr(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(u)
}

// Update replaces a user's first and last name.
func (s *Service) Update(c *fiber.Ctx) error {
	id, ok, err := handler.ParamID(c, "userId")
	if !ok {
		return err
	}

	in, ok, err := s.parseBody(c)
	if !ok {
		return err
	}

	u, err := userctl.Update(s.db, id, in.FirstName, in.LastName)
	if err != nil {
		return respondErr(c, err)
	}

	return c.JSON(u)
}

// Delete removes a user, cascading to memberships and line items.
func (s *Service) Delete(c *fiber.Ctx) error {
	id, ok, err := handler.ParamID(c, "userId")
	if !ok {
		return err
	}

	if err = userctl.Delete(s.db, id); err != nil {
		return respondErr(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// Groups returns the user with every group they belong to.
func (s *Service) Groups(c *fiber.Ctx) error {
	id, ok, err := handler.ParamID(c, "userId")
	if !ok {
		return err
	}

	u, err := userctl.Groups(s.db, id)
	if err != nil {
		return respondErr(c, err)
	}

	return c.JSON(u)
}

// ActiveGroups returns the user with the groups they belong to that have
// not expired.
func (s *Service) ActiveGroups(c *fiber.Ctx) error {
	id, ok, err := handler.ParamID(c, "userId")
	if !ok {
		return err
	}

	u, err := userctl.ActiveGroups(s.db, id)
	if err != nil {
		return respondErr(c, err)
	}

	return c.JSON(u)
}

// Orders returns the line items a user placed across all groups.
func (s *Service) Orders(c *fiber.Ctx) error {
	id, ok, err := handler.ParamID(c, "userId")
	if !ok {
		return err
	}

	userOrders, err := userctl.Orders(s.db, id)
	if err != nil {
		return respondErr(c, err)
	}

	return c.JSON(userOrders)
}
