// Package group provides the JSON API handlers for food order groups,
// their memberships and their per-date order views.
package group

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/ED-LetsCode/Foodtable-Backend/internal/config"
	groupctl "github.com/ED-LetsCode/Foodtable-Backend/internal/db/controller/group"
	"github.com/ED-LetsCode/Foodtable-Backend/internal/db/models"
	"github.com/ED-LetsCode/Foodtable-Backend/internal/web/handler"
)

const (
	// Path is the base path for group management.
	Path = handler.RootPath + "groups"
)

// Service provides CRUD and membership operations for groups.
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
	app.Put(Path+"/:groupId", s.Update)
	app.Delete(Path+"/:groupId", s.Delete)
	app.Put(Path+"/:groupId/users/:userId", s.AddMember)
	app.Delete(Path+"/:groupId/users/:userId", s.RemoveMember)
	app.Get(Path+"/:groupId/users", s.Members)
	app.Get(Path+"/:groupId/count-users", s.CountMembers)
	app.Get(Path+"/:groupId/active", s.GetActive)
	app.Get(Path+"/:groupId/order/:orderId/:date", s.OrderForDate)
	app.Get(Path+"/:groupId/order/:orderId/count-user-orders/:date", s.CountUserOrders)
}

// respondErr maps controller errors onto HTTP status codes.
func respondErr(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, groupctl.ErrGroupNotFound),
		errors.Is(err, groupctl.ErrUserNotFound),
		errors.Is(err, groupctl.ErrOrderNotFound),
		errors.Is(err, groupctl.ErrNoGroupsExist),
		errors.Is(err, groupctl.ErrUserNotInGroup):
		return handler.Error(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, groupctl.ErrGroupNameTooLong),
		errors.Is(err, groupctl.ErrUserAlreadyInGroup):
		return handler.Error(c, fiber.StatusBadRequest, err.Error())
	}

	log.Error().Err(err).Msg("group handler failed")

	return handler.Error(c, fiber.StatusInternalServerError, "Internal server error")
}

// parseBody parses and validates the group upsert body. When parsing or
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

// List returns all groups.
func (s *Service) List(c *fiber.Ctx) error {
	groups, err := groupctl.GetAll(s.db)
	if err != nil {
		return respondErr(c, err)
	}

	return c.JSON(groups)
}

// Create creates a new group.
func (s *Service) Create(c *fiber.Ctx) error {
	in, ok, err := s.parseBody(c)
	if !ok {
		return err
	}

	g, err := groupctl.Create(s.db, in.GroupName, models.GroupType(in.GroupType), in.EndOfOrderTime)
	if err != nil {
		return respondErr(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(g)
}

// Update replaces a group's name, type and end-of-order time.
func (s *Service) Update(c *fiber.Ctx) error {
	id, ok, err := handler.ParamID(c, "groupId")
	if !ok {
		return err
	}

	in, ok, err := s.parseBody(c)
	if !ok {
		return err
	}

	g, err := groupctl.Update(s.db, id, in.GroupName, models.GroupType(in.GroupType), in.EndOfOrderTime)
	if err != nil {
		return respondErr(c, err)
	}

	return c.JSON(g)
}

// Delete removes a group and, through the schema cascade, everything under it.
func (s *Service) Delete(c *fiber.Ctx) error {
	id, ok, err := handler.ParamID(c, "groupId")
	if !ok {
		return err
	}

	if err = groupctl.Delete(s.db, id); err != nil {
		return respondErr(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// GetActive returns a group only while it has not expired.
func (s *Service) GetActive(c *fiber.Ctx) error {
	id, ok, err := handler.ParamID(c, "groupId")
	if !ok {
		return err
	}

	g, err := groupctl.GetActive(s.db, id)
	if err != nil {
		return respondErr(c, err)
	}

	return c.JSON(g)
}

// AddMember adds a user to a group and returns the group with its members.
func (s *Service) AddMember(c *fiber.Ctx) error {
	groupID, ok, err := handler.ParamID(c, "groupId")
	if !ok {
		return err
	}

	userID, ok, err := handler.ParamID(c, "userId")
	if !ok {
		return err
	}

	g, err := groupctl.AddMember(s.db, groupID, userID)
	if err != nil {
		return respondErr(c, err)
	}

	return c.JSON(g)
}

// RemoveMember removes a user from a group.
func (s *Service) RemoveMember(c *fiber.Ctx) error {
	groupID, ok, err := handler.ParamID(c, "groupId")
	if !ok {
		return err
	}

	userID, ok, err := handler.ParamID(c, "userId")
	if !ok {
		return err
	}

	if err = groupctl.RemoveMember(s.db, groupID, userID); err != nil {
		return respondErr(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// Members returns the users belonging to a group.
func (s *Service) Members(c *fiber.Ctx) error {
	groupID, ok, err := handler.ParamID(c, "groupId")
	if !ok {
		return err
	}

	users, err := groupctl.Members(s.db, groupID)
	if err != nil {
		return respondErr(c, err)
	}

	return c.JSON(users)
}

// CountMembers returns the number of users in a group.
func (s *Service) CountMembers(c *fiber.Ctx) error {
	groupID, ok, err := handler.ParamID(c, "groupId")
	if !ok {
		return err
	}

	count, err := groupctl.CountMembers(s.db, groupID)
	if err != nil {
		return respondErr(c, err)
	}

	return c.JSON(countResponse{Count: count})
}

// OrderForDate returns the group with the order matching the given id and
// date nested, including the order's line items.
func (s *Service) OrderForDate(c *fiber.Ctx) error {
	groupID, ok, err := handler.ParamID(c, "groupId")
	if !ok {
		return err
	}

	orderID, ok, err := handler.ParamID(c, "orderId")
	if !ok {
		return err
	}

	date, ok, err := handler.ParamDate(c, "date")
	if !ok {
		return err
	}

	g, err := groupctl.OrderForDate(s.db, groupID, orderID, date)
	if err != nil {
		return respondErr(c, err)
	}

	return c.JSON(g)
}

// CountUserOrders counts the line items of the order matching the exact
// group, order id and date.
func (s *Service) CountUserOrders(c *fiber.Ctx) error {
	groupID, ok, err := handler.ParamID(c, "groupId")
	if !ok {
		return err
	}

	orderID, ok, err := handler.ParamID(c, "orderId")
	if !ok {
		return err
	}

	date, ok, err := handler.ParamDate(c, "date")
	if !ok {
		return err
	}

	count, err := groupctl.CountUserOrdersForDate(s.db, groupID, orderID, date)
	if err != nil {
		return respondErr(c, err)
	}

	return c.JSON(countResponse{Count: count})
}
