package tests

import (
	"context"
	"errors"
	"testing"

	"foodcourt/internal/domain"
	"foodcourt/internal/mocks"
	"foodcourt/internal/service"

	"github.com/stretchr/testify/mock"
)

func TestConsumer_ProcessOrder(t *testing.T) {
	tests := []struct {
		name         string
		inputMessage domain.OrderEvent
		setupMock    func(*mocks.RevenueStore)
	}{
		{
			name: "success",
			inputMessage: domain.OrderEvent{
				Type:    "order_paid",
				OrderID: "ORD777",
				Hotel:   "Desi Tadka",
				Total:   25.98,
			},
			setupMock: func(revenue *mocks.RevenueStore) {
				revenue.On("AddRevenue", mock.Anything, "Desi Tadka", 25.98).Return(nil)
			},
		},
		{
			name: "AddRevenue error",
			inputMessage: domain.OrderEvent{
				Type:    "order_paid",
				OrderID: "ORD778",
				Hotel:   "Desi Tadka",
				Total:   8.99,
			},
			setupMock: func(revenue *mocks.RevenueStore) {
				revenue.On("AddRevenue", mock.Anything, "Desi Tadka", 8.99).Return(errors.New("redis error"))
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			revenue := mocks.NewRevenueStore(t)
			testCase.setupMock(revenue)

			consumer := &service.RevenueConsumer{
				Revenue: revenue,
			}

			consumer.ProcessOrder(context.Background(), testCase.inputMessage)
			revenue.AssertExpectations(t)
		})
	}
}

func TestConsumer_InvalidMessageType(t *testing.T) {
	revenue := mocks.NewRevenueStore(t)
	consumer := &service.RevenueConsumer{
		Revenue: revenue,
	}

	message := domain.OrderEvent{
		Type:    "order_refunded",
		OrderID: "ORD779",
		Hotel:   "Desi Tadka",
		Total:   25.98,
	}

	consumer.ProcessOrder(context.Background(), message)
	revenue.AssertNotCalled(t, "AddRevenue")
}
