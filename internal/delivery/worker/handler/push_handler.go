package handler

import (
	"encoding/base64"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"storefront/config"
	"storefront/internal/domain/constants"
	"storefront/internal/errors"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// tokenValidator checks a Google-signed OIDC token for an audience.
type tokenValidator func(req *http.Request, audience string) error

// PushHandler handles Pub/Sub push deliveries of order events
type PushHandler struct {
	verifyPushAuth bool
	pushAudience   string
	validateToken  tokenValidator
	processor      *EventProcessor
	logger         *slog.Logger
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config    *config.Config
	Logger    *slog.Logger
	Processor *EventProcessor
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Determine if we need to verify push auth based on config
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	var audience string
	if params.Config.PubSub != nil {
		audience = params.Config.PubSub.PushAudience
	}

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		pushAudience:   audience,
		validateToken:  verifyPubSubToken,
		processor:      params.Processor,
		logger:         params.Logger,
	}
}

// HandlePush handles incoming Pub/Sub push messages.
// 400 drops a malformed message, 503 asks Pub/Sub to redeliver, 200 acknowledges.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	// Verify Pub/Sub token in production for Google provider
	if h.verifyPushAuth {
		if err := h.validateToken(c.Request(), h.audience(c.Request())); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	err = h.processor.Process(ctx, data, pushMsg.Message.Attributes["request_id"])
	switch {
	case err == nil:
		return c.NoContent(http.StatusOK)
	case errors.Is(err, ErrMalformedEvent):
		h.logger.Error("[Worker] Dropping malformed order event",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusBadRequest)
	default:
		h.logger.Error("[Worker] Failed to record order event",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
			slog.Bool("retryable", IsRetryableError(err)),
		)

		return c.NoContent(http.StatusServiceUnavailable)
	}
}

// audience is the configured push audience or, by default, the URL of this endpoint.
func (h *PushHandler) audience(req *http.Request) string {
	if h.pushAudience != "" {
		return h.pushAudience
	}

	scheme := "https"
	if req.TLS == nil {
		scheme = "http" // For local development
	}

	return fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request, audience string) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	// The issuer should be accounts.google.com
	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
