package catalog

import (
	"sync"

	"foodcourt/internal/domain"
)

// Catalog is the in-memory set of partner hotels and their menus. It is
// seeded with fixed data at startup and may be replaced by rows loaded
// from the database when one is available.
type Catalog struct {
	mu         sync.RWMutex
	hotels     []domain.Hotel
	menus      map[string][]domain.FoodItem
	hotelOrder []string
}

func New(hotels []domain.Hotel, menus map[string][]domain.FoodItem) *Catalog {
	c := &Catalog{
		hotels: hotels,
		menus:  make(map[string][]domain.FoodItem, len(menus)),
	}
	for _, h := range hotels {
		c.hotelOrder = append(c.hotelOrder, h.Title)
		c.menus[h.Title] = append([]domain.FoodItem(nil), menus[h.Title]...)
	}
	return c
}

// NewSeed returns the catalog shipped with the app.
func NewSeed() *Catalog {
	hotels := []domain.Hotel{
		{ID: 1, Title: "Desi Tadka", Description: "Traditional Cuisine", Image: "https://images.unsplash.com/photo-1513104890138-7c749659a591?w=500&auto=format"},
		{ID: 2, Title: "Brothers Cafe", Description: "Modern Fusion", Image: "https://images.unsplash.com/photo-1568901346375-23c9450c58cd?w=500&auto=format"},
		{ID: 3, Title: "Spice Garden", Description: "Authentic Indian", Image: "https://images.unsplash.com/photo-1513104890138-7c749659a591?w=500&auto=format"},
	}
	menus := map[string][]domain.FoodItem{
		"Desi Tadka": {
			{ID: "1", Name: "Butter Chicken", Price: 12.99, Image: "https://images.unsplash.com/photo-1588166524941-3bf61a9c41db?w=500&auto=format", Restaurant: "Desi Tadka"},
			{ID: "2", Name: "Paneer Tikka", Price: 10.99, Image: "https://www.indianveggiedelight.com/wp-content/uploads/2021/08/air-fryer-paneer-tikka-featured.jpg", Restaurant: "Desi Tadka"},
			{ID: "3", Name: "Dal Makhani", Price: 8.99, Image: "https://images.unsplash.com/photo-1546833999-b9f581a1996d?w=500&auto=format", Restaurant: "Desi Tadka"},
		},
		"Brothers Cafe": {
			{ID: "4", Name: "Avocado Toast", Price: 9.99, Image: "https://images.unsplash.com/photo-1588137378633-56c3a6228e0e?w=500&auto=format", Restaurant: "Brothers Cafe"},
			{ID: "5", Name: "Cappuccino", Price: 4.99, Image: "https://images.unsplash.com/photo-1572442388796-11668a67e53d?w=500&auto=format", Restaurant: "Brothers Cafe"},
			{ID: "6", Name: "Croissant Sandwich", Price: 7.99, Image: "https://images.unsplash.com/photo-1603532648955-039310d9ed75?w=500&auto=format", Restaurant: "Brothers Cafe"},
		},
		"Spice Garden": {
			{ID: "7", Name: "Biryani", Price: 14.99, Image: "https://images.unsplash.com/photo-1589302168068-964664d93dc0?w=500&auto=format", Restaurant: "Spice Garden"},
			{ID: "8", Name: "Chicken Tikka", Price: 12.99, Image: "https://images.unsplash.com/photo-1599487488170-d11ec9c172f0?w=500&auto=format", Restaurant: "Spice Garden"},
			{ID: "9", Name: "Naan Bread", Price: 3.99, Image: "https://images.unsplash.com/photo-1565557623262-b51c2513a641?w=500&auto=format", Restaurant: "Spice Garden"},
		},
	}
	return New(hotels, menus)
}

func (c *Catalog) Hotels() []domain.Hotel {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]domain.Hotel(nil), c.hotels...)
}

// Menu returns the fixed menu for a hotel. Unknown hotels get an empty
// menu, not an error.
func (c *Catalog) Menu(hotelTitle string) []domain.FoodItem {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]domain.FoodItem(nil), c.menus[hotelTitle]...)
}

// FindItem looks an item up across every hotel's menu, in hotel order.
// The first match wins, so an id collision between hotels resolves to
// whichever hotel was registered first.
func (c *Catalog) FindItem(id string) (domain.FoodItem, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, title := range c.hotelOrder {
		for _, item := range c.menus[title] {
			if item.ID == id {
				return item, true
			}
		}
	}
	return domain.FoodItem{}, false
}

// AddItem appends a menu item to a hotel's menu. Returns false when the
// hotel is not part of the catalog.
func (c *Catalog) AddItem(hotelTitle string, item domain.FoodItem) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.menus[hotelTitle]; !ok {
		return false
	}
	item.Restaurant = hotelTitle
	c.menus[hotelTitle] = append(c.menus[hotelTitle], item)
	return true
}
