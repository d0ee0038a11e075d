package integration

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/kuanensn/italy/internal/handlers"
	"github.com/kuanensn/italy/internal/ledger"
	"github.com/kuanensn/italy/internal/logger"
	"github.com/kuanensn/italy/internal/middleware"
	"github.com/kuanensn/italy/internal/store"
	"github.com/kuanensn/italy/internal/trip"
	"github.com/kuanensn/italy/internal/validator"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Store  *store.GormStore
	Ledger *ledger.Ledger
	Router *gin.Engine
}

const snapshotKey = "dolce-vita-expenses-integration"

// dbCounter ensures each test gets a unique in-memory database.
var dbCounter atomic.Int64

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupIsolatedDB creates an isolated in-memory SQLite database for a single test.
func setupIsolatedDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := dbCounter.Add(1)
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&store.Snapshot{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// setupApp creates a full application stack backed by an isolated in-memory SQLite.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := setupIsolatedDB(t)
	snapshots := store.NewGormStore(db)

	expenses, _ := ledger.Initialize(context.Background(), snapshots, snapshotKey)
	trips := trip.NewService()

	// Handlers
	authHandler := handlers.NewAuthHandler()
	expenseHandler := handlers.NewExpenseHandler(expenses)
	tripHandler := handlers.NewTripHandler(trips)

	// Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	v1 := router.Group("/api/v1")

	auth := v1.Group("/auth")
	auth.POST("/session", authHandler.CreateSession)

	v1.GET("/trip", tripHandler.GetTrip)
	v1.GET("/trip/days", tripHandler.GetDays)
	v1.GET("/trip/days/:day", tripHandler.GetDay)

	essentials := v1.Group("/essentials")
	essentials.GET("/flights", tripHandler.GetFlights)
	essentials.GET("/accommodation", tripHandler.GetAccommodations)
	essentials.GET("/contacts", tripHandler.GetContacts)

	v1.GET("/phrases", tripHandler.GetPhrases)

	v1.GET("/expenses", expenseHandler.ListExpenses)
	v1.GET("/expenses/summary", expenseHandler.GetSummary)
	v1.GET("/expenses/export/csv", expenseHandler.ExportCSV)
	v1.GET("/expenses/export/xlsx", expenseHandler.ExportXLSX)

	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())
	protected.POST("/expenses", expenseHandler.CreateExpense)
	protected.DELETE("/expenses/:id", expenseHandler.DeleteExpense)
	protected.POST("/expenses/reset", expenseHandler.ResetExpenses)

	return &testApp{DB: db, Store: snapshots, Ledger: expenses, Router: router}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// openSession exchanges the default passcode for a session token.
func (app *testApp) openSession(t *testing.T) string {
	t.Helper()
	rec := app.request("POST", "/api/v1/auth/session", `{"passcode":"dolcevita"}`, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("session failed: %d %s", rec.Code, rec.Body.String())
	}
	return parseJSON(t, rec)["token"].(string)
}
