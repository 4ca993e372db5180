package storage

import (
	"database/sql"
	"fmt"

	"foodcourt/internal/domain"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func (r *PostgresRepository) EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS hotels (
			id SERIAL PRIMARY KEY,
			title TEXT NOT NULL UNIQUE,
			description TEXT,
			image_url TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS menu_items (
			id TEXT PRIMARY KEY,
			hotel TEXT NOT NULL,
			name TEXT NOT NULL,
			price NUMERIC(10,2) NOT NULL,
			image_url TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id SERIAL PRIMARY KEY,
			order_id TEXT NOT NULL,
			hotel TEXT NOT NULL,
			customer_name TEXT,
			items TEXT,
			total NUMERIC(10,2) NOT NULL,
			status TEXT NOT NULL DEFAULT 'pending',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	}
	for _, stmt := range statements {
		if _, err := r.DB.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema `%s`: %w", stmt, err)
		}
	}
	return nil
}

func (r *PostgresRepository) ListHotels() ([]domain.Hotel, error) {
	rows, err := r.DB.Query(`
		SELECT id, title, COALESCE(description, ''), COALESCE(image_url, '')
		FROM hotels
		ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var hotels []domain.Hotel
	for rows.Next() {
		var h domain.Hotel
		if err := rows.Scan(&h.ID, &h.Title, &h.Description, &h.Image); err != nil {
			continue
		}
		hotels = append(hotels, h)
	}
	return hotels, nil
}

func (r *PostgresRepository) ListMenu(hotel string) ([]domain.FoodItem, error) {
	rows, err := r.DB.Query(`
		SELECT id, name, price, COALESCE(image_url, '')
		FROM menu_items
		WHERE hotel = $1
		ORDER BY id`, hotel)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.FoodItem
	for rows.Next() {
		var item domain.FoodItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Price, &item.Image); err != nil {
			continue
		}
		item.Restaurant = hotel
		items = append(items, item)
	}
	return items, nil
}

func (r *PostgresRepository) InsertMenuItem(hotel string, item *domain.FoodItem) error {
	_, err := r.DB.Exec(
		"INSERT INTO menu_items (id, hotel, name, price, image_url) VALUES ($1, $2, $3, $4, $5)",
		item.ID, hotel, item.Name, item.Price, item.Image)
	return err
}

func (r *PostgresRepository) InsertOrder(rec *domain.OrderRecord) error {
	return r.DB.QueryRow(`
		INSERT INTO orders (order_id, hotel, customer_name, items, total, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`, rec.OrderID, rec.Hotel, rec.CustomerName, rec.Items, rec.Total, rec.Status).
		Scan(&rec.ID, &rec.CreatedAt)
}

func (r *PostgresRepository) ListOrders() ([]domain.OrderRecord, error) {
	return r.queryOrders(`
		SELECT id, order_id, hotel, COALESCE(customer_name, ''), COALESCE(items, ''), total, status, created_at
		FROM orders
		ORDER BY created_at DESC`)
}

func (r *PostgresRepository) ListHotelOrders(hotel string) ([]domain.OrderRecord, error) {
	return r.queryOrders(`
		SELECT id, order_id, hotel, COALESCE(customer_name, ''), COALESCE(items, ''), total, status, created_at
		FROM orders
		WHERE hotel = $1
		ORDER BY created_at DESC`, hotel)
}

func (r *PostgresRepository) queryOrders(query string, args ...interface{}) ([]domain.OrderRecord, error) {
	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []domain.OrderRecord{}
	for rows.Next() {
		var rec domain.OrderRecord
		if err := rows.Scan(&rec.ID, &rec.OrderID, &rec.Hotel, &rec.CustomerName, &rec.Items, &rec.Total, &rec.Status, &rec.CreatedAt); err != nil {
			continue
		}
		orders = append(orders, rec)
	}
	return orders, nil
}

func (r *PostgresRepository) UpdateOrderStatus(id int, status string) (int64, error) {
	result, err := r.DB.Exec("UPDATE orders SET status=$1 WHERE id=$2", status, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
