package controller_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"chefly/models"
	"chefly/utils"
)

// fakeMail records sent mail; Fail makes every send error so tests can
// check that notification failures are swallowed.
type fakeMail struct {
	Sent []string
	Fail bool
}

func (f *fakeMail) Send(to, subject, body string) error {
	if f.Fail {
		return io.ErrClosedPipe
	}
	f.Sent = append(f.Sent, to+": "+subject)
	return nil
}

func newNotifier(s *MockStore) *utils.Notifier {
	return utils.NewNotifier(s, &fakeMail{}, nil, nil)
}

// newTestApp wires a single route behind a stub auth middleware that
// injects the given user, mirroring what middleware.Protected does.
func newTestApp(user *models.User, method, path string, handler fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Add(method, path, func(c *fiber.Ctx) error {
		c.Locals("user", user)
		c.Locals("userID", user.ID)
		return c.Next()
	}, handler)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	defer resp.Body.Close()

	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func chefUser(id uint) *models.User {
	return &models.User{Model: gormModel(id), Email: "chef@example.com", Role: models.RoleChef, IsActive: true}
}

func businessUser(id uint) *models.User {
	return &models.User{Model: gormModel(id), Email: "venue@example.com", Role: models.RoleBusiness, IsActive: true}
}

func gormModel(id uint) gorm.Model {
	return gorm.Model{ID: id}
}
