package order

import (
	"context"
	"errors"

	"github.com/Krithish69/Restaurant/domain"
	"github.com/Krithish69/Restaurant/entities"
	"github.com/Krithish69/Restaurant/pkg/menu"
	"github.com/Krithish69/Restaurant/pkg/table"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	OrderService interface {
		PlaceOrder(ctx context.Context, customerID string, req domain.PlaceOrderRequest) (domain.PlaceOrderResponse, error)
		OrdersForTable(ctx context.Context, tableID string) (domain.TableOrdersResponse, error)
	}

	orderService struct {
		orderRepository OrderRepository
		menuRepository  menu.MenuRepository
		tableRepository table.TableRepository
	}
)

func NewOrderService(orderRepository OrderRepository, menuRepository menu.MenuRepository, tableRepository table.TableRepository) OrderService {
	return &orderService{
		orderRepository: orderRepository,
		menuRepository:  menuRepository,
		tableRepository: tableRepository,
	}
}

// PlaceOrder snapshots unit prices from the catalog, computes the total
// server-side and writes order plus line items atomically. The Pending
// initial state is set explicitly here, not left to a column default.
func (s *orderService) PlaceOrder(ctx context.Context, customerID string, req domain.PlaceOrderRequest) (domain.PlaceOrderResponse, error) {
	customerUUID, err := uuid.Parse(customerID)
	if err != nil {
		return domain.PlaceOrderResponse{}, domain.ErrParseUUID
	}

	if len(req.Items) == 0 {
		return domain.PlaceOrderResponse{}, domain.ErrEmptyOrder
	}

	tbl, err := s.tableRepository.GetByNumber(ctx, req.TableNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.PlaceOrderResponse{}, domain.ErrTableNotFound
		}
		return domain.PlaceOrderResponse{}, err
	}

	var total float64
	items := make([]entities.OrderItem, 0, len(req.Items))
	for _, line := range req.Items {
		menuItem, err := s.menuRepository.GetByID(ctx, line.MenuItemID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.PlaceOrderResponse{}, domain.ErrMenuItemNotFound
			}
			return domain.PlaceOrderResponse{}, err
		}

		total += menuItem.Price * float64(line.Quantity)
		items = append(items, entities.OrderItem{
			ID:         uuid.New(),
			MenuItemID: menuItem.ID,
			Quantity:   line.Quantity,
			UnitPrice:  menuItem.Price,
		})
	}

	order := &entities.Order{
		ID:          uuid.New(),
		TableID:     tbl.ID,
		TableNumber: tbl.TableNumber,
		CustomerID:  customerUUID,
		TotalAmount: total,
		Status:      domain.OrderPending,
	}

	if err := s.orderRepository.CreateOrder(ctx, order, items); err != nil {
		return domain.PlaceOrderResponse{}, err
	}

	return domain.PlaceOrderResponse{
		BillNumber:  order.BillNumber,
		TotalAmount: order.TotalAmount,
	}, nil
}

// OrdersForTable returns the line items ordered against a table with a
// computed total. A table with no orders yields an empty list, not an
// error.
func (s *orderService) OrdersForTable(ctx context.Context, tableID string) (domain.TableOrdersResponse, error) {
	if _, err := uuid.Parse(tableID); err != nil {
		return domain.TableOrdersResponse{}, domain.ErrParseUUID
	}

	rows, err := s.orderRepository.LinesForTable(ctx, tableID)
	if err != nil {
		return domain.TableOrdersResponse{}, err
	}

	response := domain.TableOrdersResponse{
		Orders: make([]domain.OrderLineResponse, 0, len(rows)),
	}
	for _, row := range rows {
		response.Orders = append(response.Orders, domain.OrderLineResponse{
			ItemName:  row.ItemName,
			Quantity:  row.Quantity,
			UnitPrice: row.UnitPrice,
		})
		response.TotalAmount += row.UnitPrice * float64(row.Quantity)
	}
	return response, nil
}
