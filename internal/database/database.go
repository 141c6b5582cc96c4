package database

import (
	"fmt"
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/openshelf/bookstore/internal/entities"
)

type Database struct {
	DB *gorm.DB
}

// NewDatabase opens the SQLite file at dbPath and creates the users, books
// and orders tables if they do not exist yet. Migration is idempotent; an
// existing schema is left untouched.
func NewDatabase(dbPath string) (*Database, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	err = db.AutoMigrate(
		&entities.User{},
		&entities.Book{},
		&entities.Order{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Printf("Database initialized successfully at %s", dbPath)

	return &Database{DB: db}, nil
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// --- Users ---

func (d *Database) CreateUser(user *entities.User) error {
	return d.DB.Create(user).Error
}

func (d *Database) GetUserByID(id uint) (*entities.User, error) {
	var user entities.User
	if err := d.DB.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (d *Database) DeleteUser(id uint) error {
	return d.DB.Delete(&entities.User{}, id).Error
}

// --- Books ---

func (d *Database) CreateBook(book *entities.Book) error {
	return d.DB.Create(book).Error
}

func (d *Database) GetBookByID(id uint) (*entities.Book, error) {
	var book entities.Book
	if err := d.DB.First(&book, id).Error; err != nil {
		return nil, err
	}
	return &book, nil
}

func (d *Database) GetAllBooks() ([]entities.Book, error) {
	var books []entities.Book
	err := d.DB.Find(&books).Error
	return books, err
}

func (d *Database) UpdateBook(book *entities.Book) error {
	return d.DB.Save(book).Error
}

func (d *Database) DeleteBook(id uint) error {
	return d.DB.Delete(&entities.Book{}, id).Error
}

// --- Orders ---

// CreateOrder inserts an order after verifying that the referenced user and
// book rows exist. The check lives here because the embedded SQLite file
// does not enforce foreign keys; deletes later on never cascade, so an
// order may outlive its user or book.
func (d *Database) CreateOrder(order *entities.Order) error {
	var user entities.User
	if err := d.DB.First(&user, order.UserID).Error; err != nil {
		return fmt.Errorf("user %d: %w", order.UserID, err)
	}
	var book entities.Book
	if err := d.DB.First(&book, order.BookID).Error; err != nil {
		return fmt.Errorf("book %d: %w", order.BookID, err)
	}
	return d.DB.Omit("User", "Book").Create(order).Error
}

func (d *Database) GetOrderByID(id uint) (*entities.Order, error) {
	var order entities.Order
	if err := d.DB.First(&order, id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (d *Database) GetAllOrders() ([]entities.Order, error) {
	var orders []entities.Order
	err := d.DB.Find(&orders).Error
	return orders, err
}

func (d *Database) GetOrdersForUser(userID uint) ([]entities.Order, error) {
	var orders []entities.Order
	err := d.DB.Where("user_id = ?", userID).Find(&orders).Error
	return orders, err
}

func (d *Database) GetOrdersForBook(bookID uint) ([]entities.Order, error) {
	var orders []entities.Order
	err := d.DB.Where("book_id = ?", bookID).Find(&orders).Error
	return orders, err
}

func (d *Database) DeleteOrder(id uint) error {
	return d.DB.Delete(&entities.Order{}, id).Error
}
