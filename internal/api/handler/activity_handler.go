package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/workpulse/workpulse-api/internal/core/ports"
)

// SnapshotDispatcher is the interface the handler uses to enqueue batched
// snapshots for asynchronous ingestion.
type SnapshotDispatcher interface {
	Enqueue(in ports.SnapshotInput)
	EnqueueBatch(ins []ports.SnapshotInput)
}

// ActivityHandler handles snapshot ingestion and listing.
type ActivityHandler struct {
	service    ports.ActivityService
	dispatcher SnapshotDispatcher
}

func NewActivityHandler(service ports.ActivityService, dispatcher SnapshotDispatcher) *ActivityHandler {
	return &ActivityHandler{service: service, dispatcher: dispatcher}
}

// Create handles POST /api/activity: synchronously records one snapshot.
//
// @Summary      Record an activity snapshot
// @Tags         activity
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      snapshotRequest  true  "Activity snapshot"
// @Success      201   {object}  domain.Activity
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/activity [post]
func (h *ActivityHandler) Create(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req snapshotRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	activity, err := h.service.Record(c.Request().Context(), ports.SnapshotInput{
		Identity:    ident,
		Status:      req.Status,
		WindowTitle: req.WindowTitle,
		IsPrivate:   req.IsPrivate,
		Source:      req.Source,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, activity)
}

// CreateBatch handles POST /api/activity/batch: enqueues snapshots, returns 202.
//
// @Summary      Ingest a batch of activity snapshots
// @Tags         activity
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      []snapshotRequest  true  "Array of snapshots"
// @Success      202   {object}  acceptedResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/activity/batch [post]
func (h *ActivityHandler) CreateBatch(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var reqs []snapshotRequest
	if err := c.Bind(&reqs); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if len(reqs) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "batch cannot be empty")
	}

	inputs := make([]ports.SnapshotInput, 0, len(reqs))
	for i, req := range reqs {
		if err := c.Validate(&req); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest,
				fmt.Sprintf("snapshot[%d]: %s", i, err.Error()))
		}
		inputs = append(inputs, ports.SnapshotInput{
			Identity:    ident,
			Status:      req.Status,
			WindowTitle: req.WindowTitle,
			IsPrivate:   req.IsPrivate,
			Source:      req.Source,
			ReportedAt:  req.ReportedAt,
		})
	}

	h.dispatcher.EnqueueBatch(inputs)
	return c.JSON(http.StatusAccepted, acceptedResponse{
		Message: "snapshots accepted",
		Count:   len(inputs),
	})
}

// List handles GET /api/activity: the caller's visibility-filtered page,
// newest first. Admins may narrow with ?employeeId=.
//
// @Summary      List visible activity snapshots
// @Tags         activity
// @Produce      json
// @Security     BearerAuth
// @Param        employeeId  query     string  false  "Admin-only equality filter"
// @Success      200         {array}   domain.Activity
// @Failure      401         {object}  errorResponse
// @Router       /api/activity [get]
func (h *ActivityHandler) List(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	activities, err := h.service.List(c.Request().Context(), ident, c.QueryParam("employeeId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, activities)
}
