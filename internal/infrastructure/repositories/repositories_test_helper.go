package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"e-commerce.backend/internal/domain/entities"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createUserTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		role TEXT NOT NULL,
		hashed_password TEXT NOT NULL,
		is_active BOOLEAN NOT NULL,
		is_superuser BOOLEAN NOT NULL,
		is_verified BOOLEAN NOT NULL,
		registry_at DATETIME NOT NULL
	);`)
}

func createCategoryTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE categories (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		category_name TEXT NOT NULL UNIQUE,
		description TEXT
	);`)
}

func createGoodTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE goods (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		product_name TEXT NOT NULL,
		seller_id INTEGER NOT NULL,
		category_id INTEGER NOT NULL,
		unit_price REAL NOT NULL
	);`)
}

func createOrderTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE orders (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		customer_id INTEGER NOT NULL,
		date_order DATETIME NOT NULL,
		ship_country TEXT NOT NULL
	);`)
	mustExec(t, db, `CREATE TABLE order_details (
		order_id INTEGER NOT NULL,
		good_id INTEGER NOT NULL,
		quantity INTEGER NOT NULL,
		price REAL NOT NULL,
		PRIMARY KEY (order_id, good_id)
	);`)
}

func createShopSchema(t *testing.T, db *gorm.DB) {
	createUserTable(t, db)
	createCategoryTable(t, db)
	createGoodTable(t, db)
	createOrderTables(t, db)
	require.NoError(t, NewCategoryRepository(db).EnsureDefaults(context.Background()))
}

func seedUser(t *testing.T, db *gorm.DB, name, email string, role entities.UserRole) *entities.User {
	t.Helper()
	u := &entities.User{
		Username:     name,
		Email:        email,
		Role:         role,
		PasswordHash: "hash",
		IsActive:     true,
		IsVerified:   true,
	}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), u))
	return u
}

func seedGood(t *testing.T, db *gorm.DB, seller *entities.User, name string, category entities.CategoryName, price float64) *entities.Good {
	t.Helper()
	cat, err := NewCategoryRepository(db).GetByName(context.Background(), category)
	require.NoError(t, err)
	g := &entities.Good{Name: name, SellerID: seller.ID, CategoryID: cat.ID, UnitPrice: price}
	require.NoError(t, NewGoodRepository(db).Create(context.Background(), g))
	return g
}

func countRows(t *testing.T, db *gorm.DB, table string) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Table(table).Count(&n).Error)
	return n
}
