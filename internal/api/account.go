package api

import (
	"errors"   // Sentinel error checks
	"net/http" // HTTP status codes
	"strconv"  // String conversion
	"time"     // Cache TTL

	"github.com/gin-gonic/gin" // Gin web framework

	"finance_tracker/internal/auth"
	"finance_tracker/internal/cache"
	"finance_tracker/internal/domain"
	"finance_tracker/internal/schema"
	"finance_tracker/internal/service"
)

// viewTTL bounds staleness for read-through cached views
const viewTTL = 60 * time.Second

// AccountView is the projection of an account rendered to clients
type AccountView struct {
	ID       uint                   `json:"id"`
	Title    string                 `json:"title"`
	Category domain.AccountCategory `json:"category"`
	Balance  float64                `json:"balance"`
	Bill     *int                   `json:"bill,omitempty"`
	Due      *int                   `json:"due,omitempty"`
}

func accountView(a domain.Account) AccountView {
	return AccountView{
		ID:       a.ID,
		Title:    a.Title,
		Category: a.Category,
		Balance:  a.Balance,
		Bill:     a.Bill,
		Due:      a.Due,
	}
}

// renderState maps a service envelope to an HTTP response. The envelope is
// the body either way; only the status code varies.
func renderState(c *gin.Context, st service.State, okStatus int) {
	switch st.Status {
	case service.StatusSuccess:
		c.JSON(okStatus, st)
	case service.StatusUnauthenticated:
		c.JSON(http.StatusUnauthorized, st)
	default:
		c.JSON(http.StatusBadRequest, st)
	}
}

// CreateAccountHandler adds a new account for the authenticated user
func CreateAccountHandler(svc *service.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in schema.CreateInput // Bind form or JSON payload
		if err := c.ShouldBind(&in); err != nil {
			c.JSON(http.StatusBadRequest, service.State{
				Status:  service.StatusError,
				Message: "Data validation failed.",
			})
			return
		}
		st := svc.Create(c.Request.Context(), auth.UserID(c), in)
		renderState(c, st, http.StatusCreated)
	}
}

// ListAccountsHandler returns the user's accounts, read through the view cache
func ListAccountsHandler(svc *service.AccountService, views *cache.Views) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := auth.UserID(c)
		ctx := c.Request.Context()
		cacheKey := cache.AccountListKey(userID)
		var cached []AccountView
		found, err := views.Get(ctx, cacheKey, &cached) // Try the view cache first
		if err == nil && found {
			c.JSON(http.StatusOK, gin.H{"accounts": cached, "cached": true})
			return
		}
		accounts, err := svc.List(ctx, userID)
		if errors.Is(err, service.ErrUnauthenticated) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication failed."})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch accounts"})
			return
		}
		list := make([]AccountView, 0, len(accounts))
		for _, a := range accounts {
			list = append(list, accountView(a))
		}
		_ = views.Put(ctx, cacheKey, list, viewTTL) // Cache the rendered list
		c.JSON(http.StatusOK, gin.H{"accounts": list, "cached": false})
	}
}

// AccountDetailHandler returns one account, read through the view cache
func AccountDetailHandler(svc *service.AccountService, views *cache.Views) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid account id"})
			return
		}
		userID := auth.UserID(c)
		ctx := c.Request.Context()
		cacheKey := cache.AccountDetailKey(userID, uint(id))
		var cached AccountView
		found, cerr := views.Get(ctx, cacheKey, &cached) // Try the view cache first
		if cerr == nil && found {
			c.JSON(http.StatusOK, gin.H{"account": cached, "cached": true})
			return
		}
		account, err := svc.Detail(ctx, userID, uint(id))
		if errors.Is(err, service.ErrUnauthenticated) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication failed."})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch account"})
			return
		}
		// Not found is distinct from failure
		if account == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Account does not exists."})
			return
		}
		view := accountView(*account)
		_ = views.Put(ctx, cacheKey, view, viewTTL) // Cache the rendered detail
		c.JSON(http.StatusOK, gin.H{"account": view, "cached": false})
	}
}

// UpdateAccountHandler edits an account's title and credit day fields
func UpdateAccountHandler(svc *service.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in schema.UpdateInput // Bind form or JSON payload
		if err := c.ShouldBind(&in); err != nil {
			c.JSON(http.StatusBadRequest, service.State{
				Status:  service.StatusError,
				Message: "Data validation failed.",
			})
			return
		}
		in.ID = c.Param("id") // Identifier comes from the route, not the body
		st := svc.Update(c.Request.Context(), auth.UserID(c), in)
		renderState(c, st, http.StatusOK)
	}
}

// DeleteAccountHandler soft-deletes an account
func DeleteAccountHandler(svc *service.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		in := schema.DeleteInput{ID: c.Param("id")} // Identifier comes from the route
		st := svc.Delete(c.Request.Context(), auth.UserID(c), in)
		renderState(c, st, http.StatusOK)
	}
}
