package service

import (
	"context"

	"foodcourt/internal/cart"
	"foodcourt/internal/domain"
)

// CartStorage is the read side of the durable key-value store.
type CartStorage interface {
	Get(ctx context.Context, key string) (string, bool, error)
}

// CartWriteQueue serializes fire-and-forget writes per storage key.
// Latest exposes the newest enqueued value so reads see their own
// writes before the async commit lands.
type CartWriteQueue interface {
	Enqueue(key, value string)
	EnqueueDelete(keys ...string)
	Latest(key string) (value string, deleted bool, ok bool)
}

type CatalogLookup interface {
	FindItem(id string) (domain.FoodItem, bool)
}

type CatalogBrowser interface {
	Hotels() []domain.Hotel
	Menu(hotelTitle string) []domain.FoodItem
	AddItem(hotelTitle string, item domain.FoodItem) bool
}

type PaymentGateway interface {
	Charge(ctx context.Context, total float64) (string, error)
}

type OrderPublisher interface {
	PublishOrder(ctx context.Context, msg domain.OrderEvent) error
}

type OrderRepository interface {
	InsertOrder(rec *domain.OrderRecord) error
	ListOrders() ([]domain.OrderRecord, error)
	ListHotelOrders(hotel string) ([]domain.OrderRecord, error)
	UpdateOrderStatus(id int, status string) (int64, error)
}

type MenuRepository interface {
	InsertMenuItem(hotel string, item *domain.FoodItem) error
}

type CodeCache interface {
	SetCode(ctx context.Context, phone, code string) error
	GetCode(ctx context.Context, phone string) (string, error)
}

type SessionCache interface {
	SetSession(ctx context.Context, token, phone string) error
	GetSession(ctx context.Context, token string) (string, error)
}

type SMSSender interface {
	Send(phone string) (string, error)
}

type RevenueStore interface {
	AddRevenue(ctx context.Context, hotel string, total float64) error
	Revenue(ctx context.Context, hotel string) (float64, int, error)
}

type CartServiceInterface interface {
	LoadSelection(ctx context.Context, session string) *cart.SelectionStore
	AddItem(ctx context.Context, session, itemID string) *cart.SelectionStore
	RemoveItem(ctx context.Context, session, itemID string) *cart.SelectionStore
	SelectionTotal(sel *cart.SelectionStore) float64
	ViewCart(ctx context.Context, session string, supplied []domain.CartLineItem) []domain.CartLineItem
	ProjectSelection(ctx context.Context, session string) []domain.CartLineItem
	UpdateQuantity(ctx context.Context, session, itemID string, delta int) []domain.CartLineItem
	RemoveLineItem(ctx context.Context, session, itemID string) []domain.CartLineItem
	Checkout(ctx context.Context, session string) (float64, error)
	ClearCart(session string)
}

type PaymentServiceInterface interface {
	Process(ctx context.Context, req PaymentRequest) (*domain.Order, error)
	ReceiptQR(orderID string) ([]byte, error)
}

type AuthServiceInterface interface {
	Signup(ctx context.Context, req SignupRequest) (string, error)
	Verify(ctx context.Context, phone, code string) (string, domain.User, error)
	Login(ctx context.Context, email, password string) (string, domain.User, error)
	Session(ctx context.Context, token string) (domain.User, error)
}

type DashboardServiceInterface interface {
	HotelOrders(hotel string) ([]domain.OrderRecord, error)
	TodayTotal(hotel string) (float64, error)
	AllOrders(search string) ([]domain.OrderRecord, error)
	UpdateStatus(id int, status string) error
	AddMenuItem(hotel string, item domain.FoodItem) error
	PartnerHotels(ctx context.Context) ([]HotelRevenue, error)
}
