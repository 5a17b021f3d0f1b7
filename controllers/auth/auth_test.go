package authController

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"sevakiosk/config"
	"sevakiosk/database"
	"sevakiosk/models"
	"sevakiosk/otp"
	authValidator "sevakiosk/validators/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func init() {
	config.AppConfig = &config.Config{
		JWTKey:             "test-secret",
		AccessTokenMinutes: 10,
		RefreshTokenHours:  24,
	}
}

// captureSender records delivered codes so tests can replay them.
type captureSender struct {
	mu    sync.Mutex
	codes []string
}

func (s *captureSender) Send(identifier, code string, validity time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.codes = append(s.codes, code)
	return nil
}

func (s *captureSender) last() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.codes) == 0 {
		return ""
	}
	return s.codes[len(s.codes)-1]
}

func setupAuthApp(t *testing.T) (*fiber.App, *captureSender) {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	sender := &captureSender{}
	Engine = otp.NewEngine(db, otp.DefaultConfig(), sender)

	app := fiber.New()
	app.Post("/auth/send/otp", authValidator.SendOTP(), SendOTP)
	app.Post("/auth/verify/otp", authValidator.VerifyOTP(), VerifyOTP)
	app.Post("/auth/refresh", RefreshToken)
	return app, sender
}

func postJSON(t *testing.T, app *fiber.App, path string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var parsed map[string]interface{}
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &parsed))
	}
	return resp, parsed
}

func TestSendOTPDeliversCode(t *testing.T) {
	app, sender := setupAuthApp(t)

	resp, body := postJSON(t, app, "/auth/send/otp", fiber.Map{"identifier": "9876543210"})

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["status"])
	assert.Len(t, sender.last(), 6)
}

func TestSendOTPRateLimited(t *testing.T) {
	app, _ := setupAuthApp(t)

	resp, _ := postJSON(t, app, "/auth/send/otp", fiber.Map{"identifier": "9876543210"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, body := postJSON(t, app, "/auth/send/otp", fiber.Map{"identifier": "9876543210"})
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, false, body["status"])
	assert.Contains(t, body["message"], "wait")
}

func TestSendOTPRejectsBadIdentifier(t *testing.T) {
	app, _ := setupAuthApp(t)

	resp, _ := postJSON(t, app, "/auth/send/otp", fiber.Map{"identifier": "abc"})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestVerifyOTPIssuesTokenPair(t *testing.T) {
	app, sender := setupAuthApp(t)

	resp, _ := postJSON(t, app, "/auth/send/otp", fiber.Map{"identifier": "9876543210"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, body := postJSON(t, app, "/auth/verify/otp", fiber.Map{
		"identifier": "9876543210",
		"code":       sender.last(),
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	data, ok := body["data"].(map[string]interface{})
	require.True(t, ok)
	assert.NotEmpty(t, data["token"])
	assert.NotEmpty(t, data["refresh"])
	assert.Equal(t, true, data["is_new_user"])
	assert.Equal(t, models.RoleCitizen, data["role"])

	// Session bookkeeping happened.
	var sessions int64
	database.Database.Db.Model(&models.UserSession{}).Count(&sessions)
	assert.EqualValues(t, 1, sessions)

	var user models.User
	require.NoError(t, database.Database.Db.Where("phone = ?", "9876543210").First(&user).Error)
	assert.NotNil(t, user.LastLogin)
}

func TestVerifyOTPGenericRejection(t *testing.T) {
	app, sender := setupAuthApp(t)

	resp, _ := postJSON(t, app, "/auth/send/otp", fiber.Map{"identifier": "9876543210"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	// Wrong code, consumed code and unknown identifier all collapse to the
	// same message so callers cannot probe account state.
	resp, body := postJSON(t, app, "/auth/verify/otp", fiber.Map{
		"identifier": "9876543210",
		"code":       "000000",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid or Expired OTP.", body["message"])

	code := sender.last()
	resp, _ = postJSON(t, app, "/auth/verify/otp", fiber.Map{"identifier": "9876543210", "code": code})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, body = postJSON(t, app, "/auth/verify/otp", fiber.Map{"identifier": "9876543210", "code": code})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid or Expired OTP.", body["message"])

	resp, body = postJSON(t, app, "/auth/verify/otp", fiber.Map{"identifier": "9000000000", "code": "123456"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid or Expired OTP.", body["message"])
}

func TestRefreshTokenFlow(t *testing.T) {
	app, sender := setupAuthApp(t)

	resp, _ := postJSON(t, app, "/auth/send/otp", fiber.Map{"identifier": "9876543210"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, body := postJSON(t, app, "/auth/verify/otp", fiber.Map{
		"identifier": "9876543210",
		"code":       sender.last(),
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	data := body["data"].(map[string]interface{})
	refresh := data["refresh"].(string)

	resp, body = postJSON(t, app, "/auth/refresh", fiber.Map{"refresh": refresh})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	newData := body["data"].(map[string]interface{})
	assert.NotEmpty(t, newData["token"])
	assert.NotEmpty(t, newData["refresh"])
}

func TestRefreshTokenRejectsAccessToken(t *testing.T) {
	app, sender := setupAuthApp(t)

	resp, _ := postJSON(t, app, "/auth/send/otp", fiber.Map{"identifier": "9876543210"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, body := postJSON(t, app, "/auth/verify/otp", fiber.Map{
		"identifier": "9876543210",
		"code":       sender.last(),
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	data := body["data"].(map[string]interface{})
	access := data["token"].(string)

	resp, _ = postJSON(t, app, "/auth/refresh", fiber.Map{"refresh": access})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
