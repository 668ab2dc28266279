package payment

import (
	"context"
	"errors"
	"time"

	"github.com/Krithish69/Restaurant/domain"
	"github.com/Krithish69/Restaurant/internal/utils"
	"github.com/Krithish69/Restaurant/pkg/order"
	"github.com/Krithish69/Restaurant/pkg/table"
	"github.com/google/uuid"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
	"gorm.io/gorm"
)

type (
	PaymentService interface {
		Checkout(ctx context.Context, orderID string) (domain.CheckoutResponse, error)
		HandleNotification(ctx context.Context, payload domain.PaymentNotification) error
	}

	paymentService struct {
		orderRepository order.OrderRepository
		tableRepository table.TableRepository
		snapClient      snap.Client
	}
)

func NewPaymentService(orderRepository order.OrderRepository, tableRepository table.TableRepository) PaymentService {
	env := midtrans.Sandbox
	if utils.GetConfig("IsProd") == "true" {
		env = midtrans.Production
	}

	var client snap.Client
	client.New(utils.GetConfig("SERVER_KEY"), env)

	return &paymentService{
		orderRepository: orderRepository,
		tableRepository: tableRepository,
		snapClient:      client,
	}
}

// Checkout opens a Snap transaction for the order's bill.
func (s *paymentService) Checkout(ctx context.Context, orderID string) (domain.CheckoutResponse, error) {
	if _, err := uuid.Parse(orderID); err != nil {
		return domain.CheckoutResponse{}, domain.ErrParseUUID
	}

	ord, err := s.orderRepository.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CheckoutResponse{}, domain.ErrOrderNotFound
		}
		return domain.CheckoutResponse{}, err
	}
	if ord.SettledAt != nil {
		return domain.CheckoutResponse{}, domain.ErrOrderAlreadySettled
	}

	snapReq := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  ord.BillNumber,
			GrossAmt: int64(ord.TotalAmount),
		},
	}

	snapResp, snapErr := s.snapClient.CreateTransaction(snapReq)
	if snapErr != nil {
		return domain.CheckoutResponse{}, snapErr
	}

	return domain.CheckoutResponse{
		Token:       snapResp.Token,
		RedirectURL: snapResp.RedirectURL,
	}, nil
}

// HandleNotification applies a midtrans status callback. Settlement stamps
// the order and vacates its table, closing the order/table cycle; other
// statuses are acknowledged without effect.
func (s *paymentService) HandleNotification(ctx context.Context, payload domain.PaymentNotification) error {
	ord, err := s.orderRepository.GetByBillNumber(ctx, payload.OrderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrOrderNotFound
		}
		return err
	}

	settled := payload.TransactionStatus == "settlement" ||
		(payload.TransactionStatus == "capture" && payload.FraudStatus == "accept")
	if !settled {
		return nil
	}

	if err := s.orderRepository.MarkSettled(ctx, ord.ID.String(), time.Now()); err != nil {
		return err
	}
	return s.tableRepository.SetVacant(ctx, ord.TableID.String())
}
