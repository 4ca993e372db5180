package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"foodcourt/internal/domain"
)

var ErrUnknownPaymentMethod = errors.New("unknown payment method")

// PaymentState models the payment flow. There is no failed state: the
// simulated gateway always succeeds once processing starts. The only way
// out of processing besides success is the caller cancelling its context.
type PaymentState string

const (
	StateSelectingMethod PaymentState = "selecting_method"
	StateProcessing      PaymentState = "processing"
	StateSucceeded       PaymentState = "succeeded"
)

// Wallets and UPI are the supported methods, mirroring the payment
// screen's options.
var paymentMethods = map[string]bool{
	"paytm":   true,
	"phonepe": true,
	"gpay":    true,
	"upi":     true,
}

// SimulatedGateway stands in for a real payment provider. It waits for a
// fixed delay and then returns a synthetic order identifier of the form
// ORD<random number up to 8 digits>. The context is honored while
// waiting, so a caller tearing down does not get a late callback.
type SimulatedGateway struct {
	Delay time.Duration
}

func (g *SimulatedGateway) Charge(ctx context.Context, total float64) (string, error) {
	timer := time.NewTimer(g.Delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-timer.C:
	}
	return fmt.Sprintf("ORD%d", rand.Intn(100000000)), nil
}

type PaymentRequest struct {
	Total         float64
	PaymentMethod string
	CustomerName  string
	Hotel         string
	ItemsSummary  string
}

type PaymentService struct {
	gateway   PaymentGateway
	orders    OrderRepository
	publisher OrderPublisher
	qr        QRGenerator
}

func NewPaymentService(gateway PaymentGateway, orders OrderRepository, publisher OrderPublisher, qr QRGenerator) *PaymentService {
	return &PaymentService{gateway: gateway, orders: orders, publisher: publisher, qr: qr}
}

// Process runs the payment flow for a checkout total: selecting_method,
// then processing while the gateway does its fixed-delay charge, then
// succeeded. The returned order is the in-memory receipt for the success
// screen; the persisted order record and the published event are
// best-effort side effects that never fail the payment.
func (s *PaymentService) Process(ctx context.Context, req PaymentRequest) (*domain.Order, error) {
	method := req.PaymentMethod
	if method == "" {
		method = "paytm"
	}
	state := StateSelectingMethod
	if !paymentMethods[method] {
		return nil, ErrUnknownPaymentMethod
	}

	state = StateProcessing
	log.Printf("[payment] %s: method=%s total=%.2f", state, method, req.Total)

	orderID, err := s.gateway.Charge(ctx, req.Total)
	if err != nil {
		log.Printf("[payment] abandoned while %s: %v", state, err)
		return nil, err
	}

	state = StateSucceeded
	log.Printf("[payment] %s: order_id=%s", state, orderID)

	order := &domain.Order{
		OrderID:       orderID,
		Total:         req.Total,
		PaymentMethod: method,
		PaidAt:        time.Now(),
	}
	if s.qr != nil {
		order.QRCode = fmt.Sprintf("/api/receipts/%s/qrcode", orderID)
	}

	if s.orders != nil {
		rec := &domain.OrderRecord{
			OrderID:      orderID,
			Hotel:        req.Hotel,
			CustomerName: req.CustomerName,
			Items:        req.ItemsSummary,
			Total:        req.Total,
			Status:       domain.StatusPending,
		}
		if err := s.orders.InsertOrder(rec); err != nil {
			log.Printf("[payment] failed to record order %s: %v", orderID, err)
		}
	}

	if s.publisher != nil {
		event := domain.OrderEvent{
			Type:      "order_paid",
			OrderID:   orderID,
			Hotel:     req.Hotel,
			Total:     req.Total,
			Timestamp: time.Now(),
		}
		if err := s.publisher.PublishOrder(ctx, event); err != nil {
			log.Printf("[payment] failed to publish order event %s: %v", orderID, err)
		}
	}

	return order, nil
}

// ReceiptQR encodes the order receipt link for the success screen.
func (s *PaymentService) ReceiptQR(orderID string) ([]byte, error) {
	if s.qr == nil {
		return nil, errors.New("qr generation disabled")
	}
	return s.qr.Generate(orderID)
}

var _ PaymentServiceInterface = (*PaymentService)(nil)
