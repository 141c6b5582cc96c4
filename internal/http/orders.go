package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/openshelf/bookstore/internal/entities"
)

// OrderStore defines database operations the orders controller relies on.
type OrderStore interface {
	CreateOrder(order *entities.Order) error
	GetOrderByID(id uint) (*entities.Order, error)
	GetAllOrders() ([]entities.Order, error)
	DeleteOrder(id uint) error
}

type OrdersController struct {
	store OrderStore
}

func NewOrdersController(store OrderStore) *OrdersController {
	return &OrdersController{store: store}
}

// Pointer fields check presence only; an order for quantity 0 is accepted
// as long as the field is in the body.
type createOrderRequest struct {
	UserID   *uint `json:"user_id" binding:"required"`
	BookID   *uint `json:"book_id" binding:"required"`
	Quantity *int  `json:"quantity" binding:"required"`
}

// CreateOrder inserts a new order and returns it with the assigned id. The
// store rejects the insert when the referenced user or book row is missing.
// POST /orders/
func (oc *OrdersController) CreateOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	order := entities.Order{
		UserID:   *req.UserID,
		BookID:   *req.BookID,
		Quantity: *req.Quantity,
	}
	if err := oc.store.CreateOrder(&order); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondBadRequest(c, err.Error())
			return
		}
		respondInternalError(c, err, "create order")
		return
	}

	c.JSON(http.StatusOK, order)
}

// GetAllOrders returns every order in store order, without pagination.
// GET /orders/
func (oc *OrdersController) GetAllOrders(c *gin.Context) {
	orders, err := oc.store.GetAllOrders()
	if err != nil {
		respondInternalError(c, err, "list orders")
		return
	}
	c.JSON(http.StatusOK, orders)
}

// GetOrder returns a single order by id. An order stays retrievable even
// after its user or book has been deleted.
// GET /orders/:id
func (oc *OrdersController) GetOrder(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	order, err := oc.store.GetOrderByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "order", id)
			return
		}
		respondInternalError(c, err, "get order")
		return
	}

	c.JSON(http.StatusOK, order)
}

// DeleteOrder removes an order by id.
// DELETE /orders/:id
func (oc *OrdersController) DeleteOrder(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if _, err := oc.store.GetOrderByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "order", id)
			return
		}
		respondInternalError(c, err, "get order for delete")
		return
	}

	if err := oc.store.DeleteOrder(id); err != nil {
		respondInternalError(c, err, "delete order")
		return
	}

	respondDeleted(c, "order", id)
}
