package kitchen

import (
	"context"
	"errors"

	"github.com/Krithish69/Restaurant/domain"
	"github.com/Krithish69/Restaurant/entities"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	KitchenService interface {
		ListByStatus(ctx context.Context, status string) ([]domain.KitchenOrderResponse, error)
		GetOrder(ctx context.Context, orderID string) (domain.KitchenOrderResponse, error)
		Start(ctx context.Context, orderID string) error
		Complete(ctx context.Context, orderID string) error
	}

	kitchenService struct {
		kitchenRepository KitchenRepository
	}
)

func NewKitchenService(kitchenRepository KitchenRepository) KitchenService {
	return &kitchenService{kitchenRepository: kitchenRepository}
}

func toKitchenResponse(order *entities.Order) domain.KitchenOrderResponse {
	res := domain.KitchenOrderResponse{
		OrderID:     order.ID.String(),
		BillNumber:  order.BillNumber,
		TableNumber: order.TableNumber,
		TotalAmount: order.TotalAmount,
		Status:      order.Status,
		Items:       make([]domain.KitchenOrderLine, 0, len(order.Items)),
	}
	for _, item := range order.Items {
		line := domain.KitchenOrderLine{Quantity: item.Quantity}
		if item.MenuItem != nil {
			line.ItemName = item.MenuItem.Name
		}
		res.Items = append(res.Items, line)
	}
	return res
}

func (s *kitchenService) ListByStatus(ctx context.Context, status string) ([]domain.KitchenOrderResponse, error) {
	orders, err := s.kitchenRepository.ListByStatus(ctx, status)
	if err != nil {
		return nil, err
	}

	response := make([]domain.KitchenOrderResponse, 0, len(orders))
	for _, order := range orders {
		response = append(response, toKitchenResponse(order))
	}
	return response, nil
}

func (s *kitchenService) GetOrder(ctx context.Context, orderID string) (domain.KitchenOrderResponse, error) {
	if _, err := uuid.Parse(orderID); err != nil {
		return domain.KitchenOrderResponse{}, domain.ErrParseUUID
	}

	order, err := s.kitchenRepository.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.KitchenOrderResponse{}, domain.ErrOrderNotFound
		}
		return domain.KitchenOrderResponse{}, err
	}
	return toKitchenResponse(order), nil
}

func (s *kitchenService) transition(ctx context.Context, orderID string, from string, conflict error) error {
	if _, err := uuid.Parse(orderID); err != nil {
		return domain.ErrParseUUID
	}

	to := NextState(from)
	if to == "" || !CanTransition(from, to) {
		return conflict
	}

	rows, err := s.kitchenRepository.UpdateStatus(ctx, orderID, from, to)
	if err != nil {
		return err
	}
	if rows == 0 {
		return conflict
	}
	return nil
}

// Start moves an order Pending -> In Progress.
func (s *kitchenService) Start(ctx context.Context, orderID string) error {
	return s.transition(ctx, orderID, domain.OrderPending, domain.ErrOrderNotPending)
}

// Complete moves an order In Progress -> Completed. Completed is terminal.
func (s *kitchenService) Complete(ctx context.Context, orderID string) error {
	return s.transition(ctx, orderID, domain.OrderInProgress, domain.ErrOrderNotInProgress)
}
