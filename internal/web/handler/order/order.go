// Package order provides the JSON API handlers for group orders.
package order

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/ED-LetsCode/Foodtable-Backend/internal/config"
	orderctl "github.com/ED-LetsCode/Foodtable-Backend/internal/db/controller/order"
	"github.com/ED-LetsCode/Foodtable-Backend/internal/web/handler"
)

const (
	// Path is the base path for order management.
	Path = handler.RootPath + "orders"
)

// Service provides CRUD operations for group orders.
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
	app.Put(Path, s.Update)
	app.Get(Path+"/:orderId", s.Get)
	app.Delete(Path+"/:orderId/groups/:groupId", s.Delete)
}

// respondErr maps controller errors onto HTTP status codes.
func respondErr(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, orderctl.ErrOrderNotFound),
		errors.Is(err, orderctl.ErrGroupNotFound),
		errors.Is(err, orderctl.ErrUserNotInGroup):
		return handler.Error(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, orderctl.ErrOrderExistsForDate),
		errors.Is(err, orderctl.ErrRestaurantNameTooLong),
		errors.Is(err, orderctl.ErrEatingSelectionTooLong):
		return handler.Error(c, fiber.StatusBadRequest, err.Error())
	}

	log.Error().Err(err).Msg("order handler failed")

	return handler.Error(c, fiber.StatusInternalServerError, "Internal server error")
}

// List returns all orders across all groups. An empty list is fine.
func (s *Service) List(c *fiber.Ctx) error {
	orders, err := orderctl.GetAll(s.db)
	if err != nil {
		return respondErr(c, err)
	}

	return c.JSON(orders)
}

// Get returns a single order by id.
func (s *Service) Get(c *fiber.Ctx) error {
	id, ok, err := handler.ParamID(c, "orderId")
	if !ok {
		return err
	}

	o, err := orderctl.Get(s.db, id)
	if err != nil {
		return respondErr(c, err)
	}

	return c.JSON(o)
}

// Create places a new order for a group. The placing user must be a member
// of the group and the group must not already have an order for the date.
func (s *Service) Create(c *fiber.Ctx) error {
	var in createInput
	if err := c.BodyParser(&in); err != nil {
		return handler.Error(c, fiber.StatusBadRequest, handler.ErrInvalidBody)
	}
	if err := s.validator.Struct(in); err != nil {
		return handler.Error(c, fiber.StatusBadRequest, err.Error())
	}

	var orderDate *time.Time
	if in.OrderDate != nil {
		parsed, err := time.Parse(handler.DateLayout, *in.OrderDate)
		if err != nil {
			return handler.Error(c, fiber.StatusBadRequest, handler.ErrInvalidDate)
		}
		orderDate = &parsed
	}

	o, err := orderctl.Create(s.db, in.GroupID, in.UserID, in.RestaurantName, in.EatingSelection, orderDate)
	if err != nil {
		return respondErr(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(o)
}

// Update replaces the restaurant and eating selection of an order. The
// order's group and date never change.
func (s *Service) Update(c *fiber.Ctx) error {
	var in updateInput
	if err := c.BodyParser(&in); err != nil {
		return handler.Error(c, fiber.StatusBadRequest, handler.ErrInvalidBody)
	}
	if err := s.validator.Struct(in); err != nil {
		return handler.Error(c, fiber.StatusBadRequest, err.Error())
	}

	o, err := orderctl.Update(s.db, in.OrderID, in.GroupID, in.RestaurantName, in.EatingSelection)
	if err != nil {
		return respondErr(c, err)
	}

	return c.JSON(o)
}

// Delete removes an order from a group, cascading to its line items.
func (s *Service) Delete(c *fiber.Ctx) error {
	orderID, ok, err := handler.ParamID(c, "orderId")
	if !ok {
		return err
	}

	groupID, ok, err := handler.ParamID(c, "groupId")
	if !ok {
		return err
	}

	if err = orderctl.Delete(s.db, groupID, orderID); err != nil {
		return respondErr(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
