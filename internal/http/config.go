package http

import (
	"github.com/openshelf/bookstore/internal/database"
)

// RouterConfig contains all dependencies and configuration needed to create
// the HTTP router. Stores are passed as interfaces so tests can substitute
// their own implementations.
type RouterConfig struct {
	// Entity stores
	UserStore  UserStore
	BookStore  BookStore
	OrderStore OrderStore

	// Used by the health endpoint for connectivity checks
	Database *database.Database

	// Single origin allowed to make cross-origin requests
	CORSAllowedOrigin string

	// Application info
	Version string
}
