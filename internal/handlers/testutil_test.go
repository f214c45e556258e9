package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/xenia-tech/xenia-backend/internal/config"
	"github.com/xenia-tech/xenia-backend/internal/database"
	"github.com/xenia-tech/xenia-backend/internal/models"
	"github.com/xenia-tech/xenia-backend/pkg/logger"
	"github.com/xenia-tech/xenia-backend/pkg/utils"
)

// setupTestDB gives each test its own in-memory SQLite database. Redis stays
// nil so caching is a no-op, and no Resend key means emails are skipped.
func setupTestDB(t *testing.T) {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Event{},
		&models.Order{},
		&models.Registration{},
		&models.OrderCounter{},
		&models.AdminAction{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	database.DB = db
	database.Redis = nil
	config.AppConfig = &config.Config{}
	logger.Init("production")
}

func makeUser(t *testing.T, email string, isAdmin bool) models.User {
	user := models.User{
		ID:        utils.GenerateID(),
		ClerkID:   "clerk_" + email,
		Email:     email,
		FirstName: "Test",
		LastName:  "User",
		IsAdmin:   isAdmin,
	}
	if err := database.DB.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user %s: %v", email, err)
	}
	return user
}

func makeEvent(t *testing.T, name string, fees float64, active bool) models.Event {
	event := models.Event{
		ID:          utils.GenerateID(),
		Name:        name,
		Fees:        fees,
		Category:    "Competition",
		TeamSizeMin: 1,
		TeamSizeMax: 4,
		IsActive:    active,
	}
	if err := database.DB.Create(&event).Error; err != nil {
		t.Fatalf("failed to create event %s: %v", name, err)
	}
	// GORM skips zero-valued fields that carry a column default on insert,
	// so an explicit update is needed for inactive fixtures to stick.
	if !active {
		if err := database.DB.Model(&event).Update("is_active", false).Error; err != nil {
			t.Fatalf("failed to deactivate event %s: %v", name, err)
		}
	}
	return event
}

// testContext builds a gin context with an optional JSON body and the
// resolved user, the way the middleware chain would.
func testContext(t *testing.T, method, path string, body interface{}, user *models.User) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
	}

	req, err := http.NewRequest(method, path, &buf)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	if user != nil {
		c.Set("currentUser", *user)
	}
	return c, w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
	return resp
}
