package rest

import (
	"context"
	"myMediasStore/business/orders"
	"myMediasStore/domain"
	"myMediasStore/pkg/logger"
	"net/http"
	"strconv"
	"time"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	OrdersHandler struct {
		validate      *validator.Validate
		ordersService OrdersService
		timeout       time.Duration
	}

	OrdersService interface {
		CreateOrder(ctx context.Context, input orders.OrderInput) (domain.Order, error)
		GetOrderByID(ctx context.Context, id uint64) (domain.Order, error)
		GetAllOrders(ctx context.Context) ([]domain.Order, error)
		UpdateOrderStatus(ctx context.Context, id uint64, status string) error
	}

	CreateOrderRequest struct {
		CustomerName     string `json:"customer_name" validate:"required"`
		CustomerLastname string `json:"customer_lastname" validate:"required"`
		CustomerPhone    string `json:"customer_phone" validate:"required"`
		CustomerDistrict string `json:"customer_district" validate:"required"`
		CustomerEmail    string `json:"customer_email" validate:"omitempty,email"`
		ProductCode      string `json:"product_code" validate:"required"`
		ProductColor     string `json:"product_color" validate:"required"`
	}

	UpdateOrderStatusRequest struct {
		Status string `json:"status" validate:"required,oneof=received preparing shipped delivered"`
	}
)

func NewOrdersHandler(ordersService OrdersService) *OrdersHandler {
	return &OrdersHandler{
		validate:      validator.New(),
		ordersService: ordersService,
		timeout:       10 * time.Second,
	}
}

// POST /api/v1/orders
func (h *OrdersHandler) CreateOrder(c echo.Context) error {
	var req CreateOrderRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validate.Struct(&req); err != nil {
		logger.Error("Failed to validate order request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	order, err := h.ordersService.CreateOrder(ctx, orders.OrderInput{
		CustomerName:     req.CustomerName,
		CustomerLastname: req.CustomerLastname,
		CustomerPhone:    req.CustomerPhone,
		CustomerDistrict: req.CustomerDistrict,
		CustomerEmail:    req.CustomerEmail,
		ProductCode:      req.ProductCode,
		ProductColor:     req.ProductColor,
	})
	if err != nil {
		logger.Error("Failed to create order", err)
		if err.Error() == "all fields are required" || err.Error() == "product not found" {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(order))
}

// GET /api/v1/admin/orders
func (h *OrdersHandler) GetAllOrders(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	allOrders, err := h.ordersService.GetAllOrders(ctx)
	if err != nil {
		logger.Error("Failed to get all orders", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(allOrders))
}

// GET /api/v1/admin/orders/:id
func (h *OrdersHandler) GetOrderByID(c echo.Context) error {
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		logger.Error("Invalid order id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	order, err := h.ordersService.GetOrderByID(ctx, orderID)
	if err != nil {
		if err.Error() == "order not found" || err.Error() == "invalid order id" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		logger.Error("Failed to get order", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(order))
}

// PATCH /api/v1/admin/orders/:id/status
func (h *OrdersHandler) UpdateOrderStatus(c echo.Context) error {
	orderIDStr := c.Param("id")

	orderID, err := strconv.ParseUint(orderIDStr, 10, 64)
	if err != nil {
		logger.Error("Invalid order id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	var req UpdateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validate.Struct(&req); err != nil {
		logger.Error("Failed to validate status request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.ordersService.UpdateOrderStatus(ctx, orderID, req.Status); err != nil {
		logger.Error("Failed to update order status", err)
		if err.Error() == "order not found" || err.Error() == "invalid order id" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		if err.Error() == "invalid order status" {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":  "order status updated",
		"order_id": orderID,
		"status":   req.Status,
	})
}
