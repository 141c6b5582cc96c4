package entities

import (
	"time"
)

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"uniqueIndex;size:100" json:"username"`
	Email     string    `gorm:"uniqueIndex;size:255" json:"email"`
	Password  string    `gorm:"size:255" json:"password"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Book struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"index;size:512" json:"title"`
	Author      string    `gorm:"index;size:256" json:"author"`
	Price       float64   `json:"price"`
	ImageURL    string    `gorm:"size:2048" json:"image_url"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Order references its User and Book by id only. The association fields
// below exist so the schema carries the foreign-key shape; they are never
// serialized and never saved alongside an order (see database.CreateOrder).
type Order struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index" json:"user_id"`
	BookID    uint      `gorm:"index" json:"book_id"`
	Quantity  int       `json:"quantity"`
	User      User      `gorm:"foreignKey:UserID" json:"-"`
	Book      Book      `gorm:"foreignKey:BookID" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

func (Book) TableName() string {
	return "books"
}

func (Order) TableName() string {
	return "orders"
}
