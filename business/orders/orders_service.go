package orders

import (
	"context"
	"errors"
	"fmt"
	"myMediasStore/domain"
	"myMediasStore/pkg/logger"
	"strings"

	"github.com/google/uuid"
)

// Column length limits enforced before insert.
const (
	maxNameLen     = 100
	maxLastnameLen = 100
	maxPhoneLen    = 20
	maxDistrictLen = 100
	maxCodeLen     = 20
	maxProductLen  = 200
	maxColorLen    = 50
)

const (
	orderConfirmationSubject = "Hemos recibido tu pedido"
	orderConfirmationBody    = "Hola %v, tu pedido %v fue recibido y está en preparación. Te contactaremos al %v para coordinar la entrega."
)

var validStatuses = map[string]bool{
	domain.OrderStatusReceived:  true,
	domain.OrderStatusPreparing: true,
	domain.OrderStatusShipped:   true,
	domain.OrderStatusDelivered: true,
}

// OrdersRepository contract interface
type OrdersRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	FindByID(ctx context.Context, id uint64) (domain.Order, error)
	FindAll(ctx context.Context) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id uint64, status string) error
}

// CatalogRepository contract interface
type CatalogRepository interface {
	FindByCode(code string) (domain.Product, bool)
}

// NotificationRepository contract interface
type NotificationRepository interface {
	SendEmail(toName, toEmail, subject, message string) (err error)
}

type OrderInput struct {
	CustomerName     string
	CustomerLastname string
	CustomerPhone    string
	CustomerDistrict string
	CustomerEmail    string
	ProductCode      string
	ProductColor     string
}

type OrdersService struct {
	ordersRepo  OrdersRepository
	catalogRepo CatalogRepository
	notifRepo   NotificationRepository
}

func NewOrdersService(ordersRepo OrdersRepository, catalogRepo CatalogRepository, notifRepo NotificationRepository) *OrdersService {
	return &OrdersService{
		ordersRepo:  ordersRepo,
		catalogRepo: catalogRepo,
		notifRepo:   notifRepo,
	}
}

// CreateOrder validates the checkout form, snapshots the product name and
// sale price from the catalog, and stores the order with a generated code.
func (s *OrdersService) CreateOrder(ctx context.Context, input OrderInput) (domain.Order, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when create order")
		return domain.Order{}, fmt.Errorf("context error: %w", err)
	}

	if input.CustomerName == "" || input.CustomerLastname == "" ||
		input.CustomerPhone == "" || input.CustomerDistrict == "" ||
		input.ProductCode == "" || input.ProductColor == "" {
		logger.Error("Invalid order data: all fields are required")
		return domain.Order{}, errors.New("all fields are required")
	}

	product, ok := s.catalogRepo.FindByCode(input.ProductCode)
	if !ok {
		logger.Error("Invalid order data: unknown product code", "product_code", input.ProductCode)
		return domain.Order{}, errors.New("product not found")
	}

	order := domain.Order{
		OrderCode:        generateOrderCode(),
		CustomerName:     truncate(input.CustomerName, maxNameLen),
		CustomerLastname: truncate(input.CustomerLastname, maxLastnameLen),
		CustomerPhone:    truncate(input.CustomerPhone, maxPhoneLen),
		CustomerDistrict: truncate(input.CustomerDistrict, maxDistrictLen),
		ProductCode:      truncate(product.Code, maxCodeLen),
		ProductName:      truncate(product.Name, maxProductLen),
		ProductColor:     truncate(input.ProductColor, maxColorLen),
		ProductPrice:     product.PriceSale,
		Status:           domain.OrderStatusReceived,
	}

	if err := s.ordersRepo.Create(ctx, &order); err != nil {
		logger.Error("failed to create order", err)
		return domain.Order{}, fmt.Errorf("failed to create order: %w", err)
	}

	logger.Info("order created successfully", "order_code", order.OrderCode)

	if input.CustomerEmail != "" {
		s.sendConfirmation(order, input.CustomerEmail)
	}

	return order, nil
}

func (s *OrdersService) GetAllOrders(ctx context.Context) ([]domain.Order, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when get all orders")
		return nil, fmt.Errorf("context error: %w", err)
	}

	orders, err := s.ordersRepo.FindAll(ctx)
	if err != nil {
		logger.Error("Failed to find all orders", err)
		return nil, err
	}

	return orders, nil
}

func (s *OrdersService) GetOrderByID(ctx context.Context, id uint64) (domain.Order, error) {
	if id == 0 {
		logger.Error("Invalid order id")
		return domain.Order{}, errors.New("invalid order id")
	}

	if err := ctx.Err(); err != nil {
		logger.Error("context error when get order by id")
		return domain.Order{}, fmt.Errorf("context error: %w", err)
	}

	order, err := s.ordersRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("Failed to find order", err)
		return domain.Order{}, err
	}

	return order, nil
}

func (s *OrdersService) UpdateOrderStatus(ctx context.Context, id uint64, status string) error {
	if id == 0 {
		logger.Error("Invalid order id when updating status")
		return errors.New("invalid order id")
	}

	if !validStatuses[status] {
		logger.Error("Invalid order status", "status", status)
		return errors.New("invalid order status")
	}

	if err := ctx.Err(); err != nil {
		logger.Error("context error when updating order status")
		return fmt.Errorf("context error: %w", err)
	}

	if err := s.ordersRepo.UpdateStatus(ctx, id, status); err != nil {
		logger.Error("failed to update order status", err)
		return err
	}

	logger.Info("order status updated", "order_id", id, "status", status)

	return nil
}

// sendConfirmation emails the customer in the background. Order creation
// already succeeded; a mailer failure is only logged.
func (s *OrdersService) sendConfirmation(order domain.Order, email string) {
	go func() {
		body := fmt.Sprintf(orderConfirmationBody, order.CustomerName, order.OrderCode, order.CustomerPhone)
		if err := s.notifRepo.SendEmail(order.CustomerName, email, orderConfirmationSubject, body); err != nil {
			logger.Warn("Failed to send order confirmation email", err)
		}
	}()
}

func generateOrderCode() string {
	return "PED-" + strings.ToUpper(uuid.NewString()[:8])
}

// truncate cuts to max characters, never splitting a multi-byte rune.
// Customer names and districts are Spanish text.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) > max {
		return string(runes[:max])
	}

	return s
}
