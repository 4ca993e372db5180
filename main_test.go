package main

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestBuildCatalogWithoutDatabase(t *testing.T) {
	cat := buildCatalog(nil)

	assert.Len(t, cat.Hotels(), 3)
	assert.NotEmpty(t, cat.Menu("Desi Tadka"))
}

func TestBuildCatalogFromDatabase(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM hotels").
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "description", "image_url"}).
			AddRow(1, "Desi Tadka", "Traditional Cuisine", ""))
	mock.ExpectQuery("SELECT (.+) FROM menu_items").
		WithArgs("Desi Tadka").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price", "image_url"}).
			AddRow("1", "Butter Chicken", 12.99, ""))

	cat := buildCatalog(db)

	assert.Len(t, cat.Hotels(), 1)
	menu := cat.Menu("Desi Tadka")
	assert.Len(t, menu, 1)
	assert.Equal(t, "Butter Chicken", menu[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBuildCatalogFallsBackOnEmptyDatabase(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM hotels").
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "description", "image_url"}))

	cat := buildCatalog(db)

	assert.Len(t, cat.Hotels(), 3)
	assert.NoError(t, mock.ExpectationsWereMet())
}
