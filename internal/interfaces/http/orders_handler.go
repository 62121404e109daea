package http

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/omie-pedidos-ia/internal/application/dto"
	"github.com/jhoicas/omie-pedidos-ia/internal/application/orders"
	"github.com/jhoicas/omie-pedidos-ia/internal/domain"
	"github.com/jhoicas/omie-pedidos-ia/internal/domain/entity"
)

// OrderSearcher caso de uso de búsqueda de pedidos (orders.FindCustomerOrders).
type OrderSearcher interface {
	Execute(ctx context.Context, q entity.CustomerQuery) ([]entity.OrderSummary, error)
}

// OrdersHandler maneja la búsqueda de pedidos por cliente.
type OrdersHandler struct {
	uc OrderSearcher
}

// NewOrdersHandler construye el handler.
func NewOrdersHandler(uc OrderSearcher) *OrdersHandler {
	return &OrdersHandler{uc: uc}
}

// Search POST /api/orders/search
func (h *OrdersHandler) Search(c *fiber.Ctx) error {
	var in dto.FindOrdersRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := dto.Validate(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}

	found, err := h.uc.Execute(c.UserContext(), in.Query())
	if err != nil {
		status, code := ordersErrorStatus(err)
		return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: orders.Message(err)})
	}
	return c.JSON(dto.FindOrdersResponse{Orders: found})
}

func ordersErrorStatus(err error) (int, string) {
	var pageErr *orders.PageError
	var fetchErr *orders.FetchOrdersError
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest, "VALIDATION"
	case errors.As(err, &pageErr), errors.As(err, &fetchErr):
		return fiber.StatusBadGateway, "UPSTREAM"
	case errors.Is(err, domain.ErrAmbiguousMatch):
		return fiber.StatusConflict, "AMBIGUOUS"
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, domain.ErrNoOrders):
		return fiber.StatusNotFound, "NO_ORDERS"
	case errors.Is(err, domain.ErrPartialData):
		return fiber.StatusUnprocessableEntity, "PARTIAL_DATA"
	default:
		return fiber.StatusInternalServerError, "INTERNAL"
	}
}
