package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ovenware/bakeboard/internal/domain"
	"github.com/ovenware/bakeboard/internal/repository"
)

type orderService struct {
	orders repository.OrderRepo
}

func NewOrderService(orders repository.OrderRepo) OrderService {
	return &orderService{orders: orders}
}

func (s *orderService) Submit(ctx context.Context, o *domain.Order) error {
	if o.Customer == "" {
		return fmt.Errorf("customer is required")
	}
	if o.Product == "" {
		return fmt.Errorf("product is required")
	}
	if o.Quantity <= 0 {
		return fmt.Errorf("quantity must be positive")
	}
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	o.CreatedAt = time.Now().UTC()
	return s.orders.Create(ctx, o)
}

func (s *orderService) List(ctx context.Context) ([]*domain.Order, error) {
	return s.orders.List(ctx)
}
