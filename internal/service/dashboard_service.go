package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"foodcourt/internal/domain"
)

var (
	ErrInvalidStatus     = errors.New("invalid order status")
	ErrOrderMissing      = errors.New("order not found")
	ErrOrdersUnavailable = errors.New("order history is unavailable")
)

// HotelRevenue is a row on the owner dashboard: a partner hotel with its
// accumulated revenue counters.
type HotelRevenue struct {
	Hotel      domain.Hotel `json:"hotel"`
	Total      float64      `json:"total"`
	OrderCount int          `json:"order_count"`
}

// DashboardService backs the admin and owner screens: order lists,
// daily totals, status changes and menu management.
type DashboardService struct {
	orders  OrderRepository
	menu    MenuRepository
	catalog CatalogBrowser
	revenue RevenueStore
}

func NewDashboardService(orders OrderRepository, menu MenuRepository, catalog CatalogBrowser, revenue RevenueStore) *DashboardService {
	return &DashboardService{orders: orders, menu: menu, catalog: catalog, revenue: revenue}
}

// HotelOrders lists the orders placed against one hotel, newest first.
func (s *DashboardService) HotelOrders(hotel string) ([]domain.OrderRecord, error) {
	if s.orders == nil {
		return []domain.OrderRecord{}, nil
	}
	recs, err := s.orders.ListHotelOrders(hotel)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders for %s: %w", hotel, err)
	}
	return recs, nil
}

// TodayTotal sums the hotel's orders placed since local midnight.
func (s *DashboardService) TodayTotal(hotel string) (float64, error) {
	if s.orders == nil {
		return 0, nil
	}
	recs, err := s.orders.ListHotelOrders(hotel)
	if err != nil {
		return 0, fmt.Errorf("failed to list orders for %s: %w", hotel, err)
	}
	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	var total float64
	for _, rec := range recs {
		if !rec.CreatedAt.Before(midnight) {
			total += rec.Total
		}
	}
	return total, nil
}

// AllOrders lists every order across hotels, optionally filtered by a
// case-insensitive substring of the customer name or hotel.
func (s *DashboardService) AllOrders(search string) ([]domain.OrderRecord, error) {
	if s.orders == nil {
		return []domain.OrderRecord{}, nil
	}
	recs, err := s.orders.ListOrders()
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	search = strings.ToLower(strings.TrimSpace(search))
	if search == "" {
		return recs, nil
	}
	filtered := make([]domain.OrderRecord, 0, len(recs))
	for _, rec := range recs {
		if strings.Contains(strings.ToLower(rec.CustomerName), search) ||
			strings.Contains(strings.ToLower(rec.Hotel), search) {
			filtered = append(filtered, rec)
		}
	}
	return filtered, nil
}

// UpdateStatus moves an order along pending -> preparing -> delivered.
func (s *DashboardService) UpdateStatus(id int, status string) error {
	switch status {
	case domain.StatusPending, domain.StatusPreparing, domain.StatusDelivered:
	default:
		return ErrInvalidStatus
	}
	if s.orders == nil {
		return ErrOrdersUnavailable
	}
	affected, err := s.orders.UpdateOrderStatus(id, status)
	if err != nil {
		return fmt.Errorf("failed to update order %d: %w", id, err)
	}
	if affected == 0 {
		return ErrOrderMissing
	}
	log.Printf("[dashboard] order %d moved to %s", id, status)
	return nil
}

// AddMenuItem writes a new dish through to the database and the live
// catalog so it is orderable immediately.
func (s *DashboardService) AddMenuItem(hotel string, item domain.FoodItem) error {
	errs := FieldErrors{}
	if strings.TrimSpace(item.Name) == "" {
		errs["name"] = "Dish name is required"
	}
	if item.Price <= 0 {
		errs["price"] = "Price must be greater than zero"
	}
	if len(errs) > 0 {
		return errs
	}
	if item.ID == "" {
		item.ID = fmt.Sprintf("%d", time.Now().UnixNano())
	}
	item.Restaurant = hotel

	if s.menu != nil {
		if err := s.menu.InsertMenuItem(hotel, &item); err != nil {
			return fmt.Errorf("failed to save menu item: %w", err)
		}
	}
	if !s.catalog.AddItem(hotel, item) {
		return fmt.Errorf("unknown hotel %q", hotel)
	}
	return nil
}

// PartnerHotels lists every hotel with its revenue counters for the
// owner dashboard. A missing revenue store yields zero counters.
func (s *DashboardService) PartnerHotels(ctx context.Context) ([]HotelRevenue, error) {
	hotels := s.catalog.Hotels()
	rows := make([]HotelRevenue, 0, len(hotels))
	for _, h := range hotels {
		row := HotelRevenue{Hotel: h}
		if s.revenue != nil {
			total, count, err := s.revenue.Revenue(ctx, h.Title)
			if err != nil {
				log.Printf("[dashboard] failed to read revenue for %s: %v", h.Title, err)
			} else {
				row.Total = total
				row.OrderCount = count
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

var _ DashboardServiceInterface = (*DashboardService)(nil)
