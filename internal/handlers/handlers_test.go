package handlers

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/require"

	"tigertrade/internal/email"
	"tigertrade/internal/testutil"
	"tigertrade/internal/views"
)

var (
	_ OfferSender    = (*email.Notifier)(nil)
	_ OfferResponder = (*email.Notifier)(nil)
	_ ReceiptSender  = (*email.Notifier)(nil)
)

var errSMTPDown = errors.New("dial tcp 127.0.0.1:465: connection refused")

// newTestApp wires the HTML handlers to a real notifier backed by a
// recording mailer.
func newTestApp(t *testing.T) (*fiber.App, *testutil.RecordingMailer, *email.Notifier) {
	t.Helper()

	cfg := testutil.Config()
	mailer := &testutil.RecordingMailer{}
	notifier := email.NewNotifier(cfg, mailer)

	app := fiber.New(fiber.Config{
		Views:       views.Engine(false),
		ViewsLayout: views.Layout,
	})

	respond := NewRespondHandler(notifier)
	form := NewOfferFormHandler(notifier, cfg)
	app.Get("/respond-offer", respond.Respond)
	app.Get("/offers/new", form.New)
	app.Post("/offers/new", form.Create)

	return app, mailer, notifier
}

func doRequest(t *testing.T, app *fiber.App, req *http.Request) (int, string) {
	t.Helper()

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func get(t *testing.T, app *fiber.App, target string) (int, string) {
	t.Helper()
	return doRequest(t, app, httptest.NewRequest(http.MethodGet, target, nil))
}

func postForm(t *testing.T, app *fiber.App, target string, values url.Values) (int, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return doRequest(t, app, req)
}

// pathAndQuery strips scheme and host so a decision URL can be fed to app.Test.
func pathAndQuery(t *testing.T, raw string) string {
	t.Helper()
	u, err := url.Parse(raw)
	require.NoError(t, err)
	return u.Path + "?" + u.RawQuery
}
