package v1handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"portal/internal/portal"
	"portal/pkg/domain"
	"portal/pkg/serrors"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
)

// multipartOverhead is allowed on top of the document size for form
// boundaries and text fields.
const multipartOverhead = 1 << 20

type ExtractRequest struct {
	Text     string   `json:"text"`
	Keywords []string `json:"keywords"`
}

type AbstractList struct {
	Items      []domain.Abstract `json:"items"`
	NextCursor *string           `json:"nextCursor"`
}

type ActivityList struct {
	Items []domain.ActivityLog `json:"items"`
}

func bindBody(c echo.Context, dst any) error {
	if err := (&echo.DefaultBinder{}).BindBody(c, dst); err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "could not parse request body")
	}

	return nil
}

func abstractIDParam(c echo.Context) (domain.AbstractID, error) {
	id, err := domain.ParseAbstractID(c.Param("id"))
	if err != nil {
		return domain.AbstractID{}, serrors.Wrap(serrors.ErrBadRequest, err, "invalid abstract id")
	}

	return id, nil
}

// Extract previews the entities of a piece of text.
func (h Handler) Extract(c echo.Context) error {
	var req ExtractRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	res, err := h.deps.Portal.Extract(c.Request().Context(), req.Text, req.Keywords)
	if err != nil {
		return err //nolint: wrapcheck
	}

	return c.JSON(http.StatusOK, res)
}

// ExtractDocument previews the entities of an uploaded document sent as the
// multipart field "file". Keywords may be repeated or comma separated.
func (h Handler) ExtractDocument(c echo.Context) error {
	if h.deps.MaxUploadBytes > 0 {
		req := c.Request()
		req.Body = http.MaxBytesReader(c.Response(), req.Body, h.deps.MaxUploadBytes+multipartOverhead)
	}

	fh, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return serrors.Wrap(serrors.ErrBadRequest, err, "document exceeds %d bytes", h.deps.MaxUploadBytes)
		}

		return serrors.Wrap(serrors.ErrBadRequest, err, "multipart field \"file\" is required")
	}

	f, err := fh.Open()
	if err != nil {
		return fmt.Errorf("could not open uploaded file: %w", err)
	}
	defer f.Close() //nolint: errcheck

	var r io.Reader = f
	if h.deps.MaxUploadBytes > 0 {
		r = io.LimitReader(f, h.deps.MaxUploadBytes+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("could not read uploaded file: %w", err)
	}

	var keywords []string
	if form, err := c.MultipartForm(); err == nil {
		for _, v := range form.Value["keywords"] {
			keywords = append(keywords, strings.Split(v, ",")...)
		}
	}

	res, err := h.deps.Portal.ExtractDocument(c.Request().Context(),
		fh.Header.Get(echo.HeaderContentType), data, keywords)
	if err != nil {
		return err //nolint: wrapcheck
	}

	return c.JSON(http.StatusOK, res)
}

// SubmitAbstract stores a new abstract authored by the caller.
func (h Handler) SubmitAbstract(c echo.Context) error {
	var req portal.SubmitRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	a, err := h.deps.Portal.Submit(ctx, ProfileFromContext(ctx), req)
	if err != nil {
		return err //nolint: wrapcheck
	}

	return c.JSON(http.StatusCreated, a)
}

// ListAbstracts returns a page of abstracts visible to the caller.
func (h Handler) ListAbstracts(c echo.Context) error {
	req := portal.ListRequest{
		Status: domain.AbstractStatus(c.QueryParam("status")),
		Cursor: c.QueryParam("cursor"),
	}
	if v := c.QueryParam("mine"); v != "" {
		mine, err := strconv.ParseBool(v)
		if err != nil {
			return serrors.Wrap(serrors.ErrBadRequest, err, "invalid mine flag")
		}
		req.Mine = mine
	}
	if v := c.QueryParam("limit"); v != "" {
		limit, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return serrors.Wrap(serrors.ErrBadRequest, err, "invalid limit")
		}
		req.Limit = uint(limit)
	}

	ctx := c.Request().Context()
	abstracts, next, err := h.deps.Portal.List(ctx, ProfileFromContext(ctx), req)
	if err != nil {
		return err //nolint: wrapcheck
	}

	out := AbstractList{Items: abstracts}
	if out.Items == nil {
		out.Items = []domain.Abstract{}
	}
	if next != "" {
		out.NextCursor = &next
	}

	return c.JSON(http.StatusOK, out)
}

// GetAbstract returns an abstract by ID.
func (h Handler) GetAbstract(c echo.Context) error {
	id, err := abstractIDParam(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	a, err := h.deps.Portal.Get(ctx, ProfileFromContext(ctx), id)
	if err != nil {
		return err //nolint: wrapcheck
	}

	return c.JSON(http.StatusOK, a)
}

// DeleteAbstract deletes an abstract by ID.
func (h Handler) DeleteAbstract(c echo.Context) error {
	id, err := abstractIDParam(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	if err := h.deps.Portal.Delete(ctx, ProfileFromContext(ctx), id); err != nil {
		return err //nolint: wrapcheck
	}

	return c.NoContent(http.StatusNoContent)
}

// ReviewAbstract records a reviewer decision.
func (h Handler) ReviewAbstract(c echo.Context) error {
	id, err := abstractIDParam(c)
	if err != nil {
		return err
	}
	var req portal.ReviewRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	a, err := h.deps.Portal.Review(ctx, ProfileFromContext(ctx), id, req)
	if err != nil {
		return err //nolint: wrapcheck
	}

	return c.JSON(http.StatusOK, a)
}

// ReExtractAbstract queues a new extraction of the abstract's entities.
func (h Handler) ReExtractAbstract(c echo.Context) error {
	id, err := abstractIDParam(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	a, err := h.deps.Portal.ReExtract(ctx, ProfileFromContext(ctx), id)
	if err != nil {
		return err //nolint: wrapcheck
	}

	return c.JSON(http.StatusAccepted, a)
}

// AbstractActivity returns the latest activity of an abstract.
func (h Handler) AbstractActivity(c echo.Context) error {
	id, err := abstractIDParam(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	logs, err := h.deps.Portal.Activity(ctx, ProfileFromContext(ctx), id)
	if err != nil {
		return err //nolint: wrapcheck
	}
	if logs == nil {
		logs = []domain.ActivityLog{}
	}

	return c.JSON(http.StatusOK, ActivityList{Items: logs})
}

func (h Handler) Dashboard(c echo.Context) error {
	d, err := h.deps.Portal.Dashboard(c.Request().Context())
	if err != nil {
		return err //nolint: wrapcheck
	}

	return c.JSON(http.StatusOK, d)
}

// Me returns the caller's profile.
func (h Handler) Me(c echo.Context) error {
	return c.JSON(http.StatusOK, ProfileFromContext(c.Request().Context()))
}
