package http

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

const ProxyPath = "/gemini_proxy"

// Replier produces the assistant's answer to one prompt.
type Replier interface {
	Reply(ctx context.Context, apiKey, prompt string) (string, error)
}

type ProxyHandler struct {
	chat Replier
}

// ProxyResponse is the 200 body of ProxyPath. TimeUsed is in seconds.
type ProxyResponse struct {
	Reply    string  `json:"reply"`
	TimeUsed float64 `json:"time_used"`
}

func NewProxyHandler(chat Replier) *ProxyHandler {
	return &ProxyHandler{chat: chat}
}

func (h *ProxyHandler) Register(e *echo.Echo) {
	e.GET(ProxyPath, h.GeminiProxy)
}

// GeminiProxy relays ?text= to the model using ?api_key= as the credential.
// Failures are returned to ErrorHandler, which picks the status code.
func (h *ProxyHandler) GeminiProxy(c echo.Context) error {
	start := time.Now()

	reply, err := h.chat.Reply(c.Request().Context(), c.QueryParam("api_key"), c.QueryParam("text"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, ProxyResponse{
		Reply:    reply,
		TimeUsed: time.Since(start).Seconds(),
	})
}
