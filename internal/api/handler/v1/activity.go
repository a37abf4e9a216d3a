package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gardenhub/garden-api/internal/api/handler/v1/request"
	"github.com/gardenhub/garden-api/internal/api/handler/v1/response"
	"github.com/gardenhub/garden-api/internal/domain"
	"github.com/gardenhub/garden-api/internal/service"
)

type ActivityService interface {
	CreateActivity(ctx context.Context, callerID string, activity domain.Activity) (domain.Activity, error)
	GetActivity(ctx context.Context, id string) (domain.Activity, error)
	ListActivities(ctx context.Context) ([]domain.Activity, error)
	UpdateActivity(ctx context.Context, callerID, id string, updated domain.Activity) (domain.Activity, error)
	DeleteActivity(ctx context.Context, callerID, id string) error
}

type ActivityHandler struct {
	svc ActivityService
}

func NewActivityHandler(svc ActivityService) *ActivityHandler {
	return &ActivityHandler{
		svc: svc,
	}
}

// HandleCreateActivity godoc
// @Summary      Record an activity on a plot
// @Description  The referenced plot must exist and belong to the caller.
// @Tags         activities
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateActivityRequest true "request body"
// @Success      201      {object}   domain.Activity
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /activities [post]
// @Security BearerAuth
func (h *ActivityHandler) HandleCreateActivity(ctx *gin.Context) {
	callerID, respErr := getCallerID(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.CreateActivityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid date format: %v", err)))
		return
	}

	activity, err := h.svc.CreateActivity(ctx.Request.Context(), callerID, domain.Activity{
		PlotID:      req.PlotID,
		Description: req.Description,
		Date:        date,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPlotNotFound):
			response.RenderErr(ctx, response.ErrNotFound("plot", "plotID", req.PlotID))
		case errors.Is(err, service.ErrNotPlotOwner):
			response.RenderErr(ctx, response.ErrPermissionDenied(service.ErrNotPlotOwner))
		default:
			err = fmt.Errorf("v1.HandleCreateActivity -> h.svc.CreateActivity -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	ctx.JSON(http.StatusCreated, activity)
}

// HandleGetActivity godoc
// @Summary      Get an activity by id
// @Tags         activities
// @Produce      json
// @Param        activityID   path      string true "activity ID"
// @Success      200      {object}   domain.Activity
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /activities/{activityID} [get]
func (h *ActivityHandler) HandleGetActivity(ctx *gin.Context) {
	activityID := ctx.Param("activityID")

	activity, err := h.svc.GetActivity(ctx.Request.Context(), activityID)
	if err != nil {
		if errors.Is(err, service.ErrActivityNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("activity", "activityID", activityID))
			return
		}

		err = fmt.Errorf("v1.HandleGetActivity -> h.svc.GetActivity -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, activity)
}

// HandleListActivities godoc
// @Summary      List all activities
// @Tags         activities
// @Produce      json
// @Success      200      {array}    domain.Activity
// @Failure      500      {object}   response.Err
// @Router       /activities [get]
func (h *ActivityHandler) HandleListActivities(ctx *gin.Context) {
	activities, err := h.svc.ListActivities(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListActivities -> h.svc.ListActivities -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, activities)
}

// HandleUpdateActivity godoc
// @Summary      Update an activity
// @Tags         activities
// @Accept       json
// @Produce      json
// @Param        activityID   path      string true "activity ID"
// @Param        request  body      request.UpdateActivityRequest true "request body"
// @Success      200      {object}   domain.Activity
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /activities/{activityID} [put]
// @Security BearerAuth
func (h *ActivityHandler) HandleUpdateActivity(ctx *gin.Context) {
	callerID, respErr := getCallerID(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.UpdateActivityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid date format: %v", err)))
		return
	}

	activityID := ctx.Param("activityID")
	activity, err := h.svc.UpdateActivity(ctx.Request.Context(), callerID, activityID, domain.Activity{
		Description: req.Description,
		Date:        date,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrActivityNotFound):
			response.RenderErr(ctx, response.ErrNotFound("activity", "activityID", activityID))
		case errors.Is(err, service.ErrPlotNotFound):
			response.RenderErr(ctx, response.ErrNotFound("plot", "activityID", activityID))
		case errors.Is(err, service.ErrNotPlotOwner):
			response.RenderErr(ctx, response.ErrPermissionDenied(service.ErrNotPlotOwner))
		default:
			err = fmt.Errorf("v1.HandleUpdateActivity -> h.svc.UpdateActivity -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	ctx.JSON(http.StatusOK, activity)
}

// HandleDeleteActivity godoc
// @Summary      Delete an activity
// @Tags         activities
// @Produce      json
// @Param        activityID   path      string true "activity ID"
// @Success      204
// @Failure      401      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /activities/{activityID} [delete]
// @Security BearerAuth
func (h *ActivityHandler) HandleDeleteActivity(ctx *gin.Context) {
	callerID, respErr := getCallerID(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	activityID := ctx.Param("activityID")
	if err := h.svc.DeleteActivity(ctx.Request.Context(), callerID, activityID); err != nil {
		switch {
		case errors.Is(err, service.ErrActivityNotFound):
			response.RenderErr(ctx, response.ErrNotFound("activity", "activityID", activityID))
		case errors.Is(err, service.ErrPlotNotFound):
			response.RenderErr(ctx, response.ErrNotFound("plot", "activityID", activityID))
		case errors.Is(err, service.ErrNotPlotOwner):
			response.RenderErr(ctx, response.ErrPermissionDenied(service.ErrNotPlotOwner))
		default:
			err = fmt.Errorf("v1.HandleDeleteActivity -> h.svc.DeleteActivity -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	ctx.Status(http.StatusNoContent)
}
