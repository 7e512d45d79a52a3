// Package v1handler implements the /v1 HTTP API on top of echo.
package v1handler

import (
	"context"
	"errors"
	"net/http"
	"portal/internal/portal"
	"portal/pkg/controller"
	"portal/pkg/logger"
	"portal/pkg/serrors"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// Deps holds the collaborators used by the v1 handlers.
type Deps struct {
	Portal portal.Portal
	// Meter records HTTP request instruments. Nil disables them.
	Meter metric.Meter
	// MaxUploadBytes bounds uploaded documents.
	MaxUploadBytes int64
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"requestId,omitempty"`
}

// ErrorStatusCode couples an ErrorResponse with its HTTP status.
type ErrorStatusCode struct {
	StatusCode int
	Response   ErrorResponse
}

type errorMapping struct {
	status  int
	message string
}

//nolint: gochecknoglobals
var errorMappings = map[serrors.Kind]errorMapping{
	serrors.ErrBadRequest:   {status: http.StatusBadRequest, message: "bad request"},
	serrors.ErrUnauthorized: {status: http.StatusUnauthorized, message: "unauthorized"},
	serrors.ErrForbidden:    {status: http.StatusForbidden, message: "forbidden"},
	serrors.ErrNotFound:     {status: http.StatusNotFound, message: "resource not found"},
	serrors.ErrConflict:     {status: http.StatusConflict, message: "conflict"},
	serrors.ErrRateLimited:  {status: http.StatusTooManyRequests, message: "too many requests"},
	serrors.ErrTimeout:      {status: http.StatusServiceUnavailable, message: "request timed out"},
	serrors.ErrUnavailable:  {status: http.StatusServiceUnavailable, message: "service unavailable"},
	serrors.ErrInternal:     {status: http.StatusInternalServerError, message: "internal error"},
}

// NewError maps err to a status code and a response body. Messages of
// server side errors are never exposed.
func (h Handler) NewError(ctx context.Context, err error) *ErrorStatusCode {
	kind := serrors.KindOf(err)
	if kind == nil && errors.Is(err, context.DeadlineExceeded) {
		kind = serrors.ErrTimeout
	}
	mapping, ok := errorMappings[kind]
	if !ok {
		kind = serrors.ErrInternal
		mapping = errorMappings[serrors.ErrInternal]
	}

	message := mapping.message
	if mapping.status < http.StatusInternalServerError {
		var se *serrors.Error
		if errors.As(err, &se) && se.Message() != "" {
			message = se.Message()
		}
		logger.Debug(ctx, "request failed", zap.Error(err))
	} else {
		logger.Error(ctx, "request failed", zap.Error(err))
	}

	return &ErrorStatusCode{
		StatusCode: mapping.status,
		Response: ErrorResponse{
			Code:      kind.Error(),
			Message:   message,
			RequestID: controller.RequestID(ctx),
		},
	}
}

// HTTPErrorHandler renders errors returned by handlers and middlewares.
func (h Handler) HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var res *ErrorStatusCode
	var he *echo.HTTPError
	if errors.As(err, &he) && serrors.KindOf(err) == nil {
		res = h.NewError(c.Request().Context(), httpErrorToSemantic(he))
		res.StatusCode = he.Code
	} else {
		res = h.NewError(c.Request().Context(), err)
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(res.StatusCode)
	} else {
		err = c.JSON(res.StatusCode, res.Response)
	}
	if err != nil {
		logger.Error(c.Request().Context(), "could not write error response", zap.Error(err))
	}
}

// httpErrorToSemantic converts echo's routing and binding errors.
func httpErrorToSemantic(he *echo.HTTPError) error {
	msg, _ := he.Message.(string)

	var kind serrors.Kind
	switch he.Code {
	case http.StatusNotFound:
		kind = serrors.ErrNotFound
	case http.StatusUnauthorized:
		kind = serrors.ErrUnauthorized
	case http.StatusForbidden:
		kind = serrors.ErrForbidden
	case http.StatusTooManyRequests:
		kind = serrors.ErrRateLimited
	case http.StatusServiceUnavailable:
		kind = serrors.ErrUnavailable
	default:
		if he.Code >= http.StatusInternalServerError {
			return serrors.Wrap(serrors.ErrInternal, he, "%s", msg)
		}
		kind = serrors.ErrBadRequest
	}

	return serrors.Wrap(kind, he, "%s", msg)
}

// Router returns the echo instance serving every /v1 route. All routes
// require a bearer token of a registered profile; the dashboard is limited to
// reviewers.
func (h *Handler) Router(sec *SecHandler) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = h.HTTPErrorHandler
	e.Use(middleware.Recover())

	if h.deps.Meter != nil {
		mw, err := requestMetrics(h.deps.Meter)
		if err != nil {
			return nil, err
		}
		e.Use(mw)
	}

	v1 := e.Group("/v1", sec.Middleware(h.deps.Portal))
	v1.POST("/extract", h.Extract)
	v1.POST("/extract/document", h.ExtractDocument)
	v1.POST("/abstracts", h.SubmitAbstract)
	v1.GET("/abstracts", h.ListAbstracts)
	v1.GET("/abstracts/:id", h.GetAbstract)
	v1.DELETE("/abstracts/:id", h.DeleteAbstract)
	v1.POST("/abstracts/:id/review", h.ReviewAbstract)
	v1.POST("/abstracts/:id/reextract", h.ReExtractAbstract)
	v1.GET("/abstracts/:id/activity", h.AbstractActivity)
	v1.GET("/dashboard", h.Dashboard, RequireReviewer)
	v1.GET("/me", h.Me)

	return e, nil
}
