// Package userorder provides the JSON API handlers for order line items.
package userorder

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/ED-LetsCode/Foodtable-Backend/internal/config"
	userorderctl "github.com/ED-LetsCode/Foodtable-Backend/internal/db/controller/userorder"
	"github.com/ED-LetsCode/Foodtable-Backend/internal/web/handler"
)

const (
	// Path is the base path for line item management.
	Path = handler.RootPath + "user-orders"

	// tripleRoute addresses a line item by its owning user and order as
	// well as its own id, so a stray id cannot touch a foreign row.
	tripleRoute = Path + "/:userOrderId/orders/:orderId/users/:userId"
)

// Service provides CRUD operations for order line items.
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
	app.Get(tripleRoute, s.Get)
	app.Delete(tripleRoute, s.Delete)
}

// respondErr maps controller errors onto HTTP status codes.
func respondErr(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, userorderctl.ErrUserOrderNotFound),
		errors.Is(err, userorderctl.ErrGroupNotFound),
		errors.Is(err, userorderctl.ErrOrderNotFound),
		errors.Is(err, userorderctl.ErrUserNotInGroup):
		return handler.Error(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, userorderctl.ErrProductNameTooLong):
		return handler.Error(c, fiber.StatusBadRequest, err.Error())
	}

	log.Error().Err(err).Msg("user order handler failed")

	return handler.Error(c, fiber.StatusInternalServerError, "Internal server error")
}

// tripleParams parses the user order, order and user ids from the path. When
// parsing fails the 400 response has already been written and ok is false.
func tripleParams(c *fiber.Ctx) (userOrderID, orderID, userID uint64, ok bool, err error) {
	userOrderID, ok, err = handler.ParamID(c, "userOrderId")
	if !ok {
		return 0, 0, 0, false, err
	}

	orderID, ok, err = handler.ParamID(c, "orderId")
	if !ok {
		return 0, 0, 0, false, err
	}

	userID, ok, err = handler.ParamID(c, "userId")
	if !ok {
		return 0, 0, 0, false, err
	}

	return userOrderID, orderID, userID, true, nil
}

// List returns all line items across all orders. An empty list is fine.
func (s *Service) List(c *fiber.Ctx) error {
	userOrders, err := userorderctl.GetAll(s.db)
	if err != nil {
		return respondErr(c, err)
	}

	return c.JSON(userOrders)
}

// Get returns a line item addressed by the exact user, order and id triple.
func (s *Service) Get(c *fiber.Ctx) error {
	userOrderID, orderID, userID, ok, err := tripleParams(c)
	if !ok {
		return err
	}

	uo, err := userorderctl.Get(s.db, userID, orderID, userOrderID)
	if err != nil {
		return respondErr(c, err)
	}

	return c.JSON(uo)
}

// Create adds a line item to an order. The user must be a member of the
// group the order belongs to.
func (s *Service) Create(c *fiber.Ctx) error {
	var in createInput
	if err := c.BodyParser(&in); err != nil {
		return handler.Error(c, fiber.StatusBadRequest, handler.ErrInvalidBody)
	}
	if err := s.validator.Struct(in); err != nil {
		return handler.Error(c, fiber.StatusBadRequest, err.Error())
	}

	uo, err := userorderctl.Create(s.db, in.GroupID, in.UserID, in.OrderID, in.ProductName, in.AmountOfProduct)
	if err != nil {
		return respondErr(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(uo)
}

// Update replaces the product and amount of a line item addressed by the
// exact user, order and id triple.
func (s *Service) Update(c *fiber.Ctx) error {
	var in updateInput
	if err := c.BodyParser(&in); err != nil {
		return handler.Error(c, fiber.StatusBadRequest, handler.ErrInvalidBody)
	}
	if err := s.validator.Struct(in); err != nil {
		return handler.Error(c, fiber.StatusBadRequest, err.Error())
	}

	uo, err := userorderctl.Update(s.db, in.UserID, in.OrderID, in.UserOrderID, in.ProductName, in.AmountOfProduct)
	if err != nil {
		return respondErr(c, err)
	}

	return c.JSON(uo)
}

// Delete removes a line item addressed by the exact user, order and id triple.
func (s *Service) Delete(c *fiber.Ctx) error {
	userOrderID, orderID, userID, ok, err := tripleParams(c)
	if !ok {
		return err
	}

	if err = userorderctl.Delete(s.db, userID, orderID, userOrderID); err != nil {
		return respondErr(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
