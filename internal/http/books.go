package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/openshelf/bookstore/internal/entities"
)

// BookStore defines database operations the books controller relies on.
type BookStore interface {
	CreateBook(book *entities.Book) error
	GetBookByID(id uint) (*entities.Book, error)
	GetAllBooks() ([]entities.Book, error)
	UpdateBook(book *entities.Book) error
	DeleteBook(id uint) error
}

type BooksController struct {
	store BookStore
}

func NewBooksController(store BookStore) *BooksController {
	return &BooksController{store: store}
}

// Create requests use pointer fields so that presence is checked for every
// field without rejecting legitimate zero values (price 0, empty image_url).
type createBookRequest struct {
	Title       *string  `json:"title" binding:"required"`
	Author      *string  `json:"author" binding:"required"`
	Price       *float64 `json:"price" binding:"required"`
	ImageURL    *string  `json:"image_url" binding:"required"`
	Description *string  `json:"description" binding:"required"`
}

type updateBookRequest struct {
	Title       string  `json:"title"`
	Author      string  `json:"author"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"image_url"`
	Description string  `json:"description"`
}

// CreateBook inserts a new book and returns it with the assigned id.
// POST /books/
func (bc *BooksController) CreateBook(c *gin.Context) {
	var req createBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	book := entities.Book{
		Title:       *req.Title,
		Author:      *req.Author,
		Price:       *req.Price,
		ImageURL:    *req.ImageURL,
		Description: *req.Description,
	}
	if err := bc.store.CreateBook(&book); err != nil {
		respondInternalError(c, err, "create book")
		return
	}

	c.JSON(http.StatusOK, book)
}

// GetAllBooks returns every book in store order. The result is unbounded;
// the deployment assumes a small catalog.
// GET /books/
func (bc *BooksController) GetAllBooks(c *gin.Context) {
	books, err := bc.store.GetAllBooks()
	if err != nil {
		respondInternalError(c, err, "list books")
		return
	}
	c.JSON(http.StatusOK, books)
}

// GetBook returns a single book by id.
// GET /books/:id
func (bc *BooksController) GetBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	book, err := bc.store.GetBookByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "book", id)
			return
		}
		respondInternalError(c, err, "get book")
		return
	}

	c.JSON(http.StatusOK, book)
}

// UpdateBook overwrites the fields that carry a non-zero value in the
// request and keeps the stored value for the rest. A price of 0 or an
// explicitly cleared description is treated as "not provided" and ignored;
// existing clients rely on this.
// PUT /books/:id
func (bc *BooksController) UpdateBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req updateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	book, err := bc.store.GetBookByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "book", id)
			return
		}
		respondInternalError(c, err, "get book for update")
		return
	}

	if req.Title != "" {
		book.Title = req.Title
	}
	if req.Author != "" {
		book.Author = req.Author
	}
	if req.Price != 0 {
		book.Price = req.Price
	}
	if req.ImageURL != "" {
		book.ImageURL = req.ImageURL
	}
	if req.Description != "" {
		book.Description = req.Description
	}

	if err := bc.store.UpdateBook(book); err != nil {
		respondInternalError(c, err, "update book")
		return
	}

	c.JSON(http.StatusOK, book)
}

// DeleteBook removes a book by id. Orders referencing the book are left in
// place; deletion never cascades.
// DELETE /books/:id
func (bc *BooksController) DeleteBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if _, err := bc.store.GetBookByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "book", id)
			return
		}
		respondInternalError(c, err, "get book for delete")
		return
	}

	if err := bc.store.DeleteBook(id); err != nil {
		respondInternalError(c, err, "delete book")
		return
	}

	respondDeleted(c, "book", id)
}
