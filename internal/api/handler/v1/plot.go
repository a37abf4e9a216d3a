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

type PlotService interface {
	CreatePlot(ctx context.Context, callerID string, plot domain.Plot) (domain.Plot, error)
	GetPlot(ctx context.Context, id string) (domain.Plot, error)
	ListPlots(ctx context.Context) ([]domain.Plot, error)
	UpdatePlot(ctx context.Context, callerID, id string, updated domain.Plot) (domain.Plot, error)
	DeletePlot(ctx context.Context, callerID, id string) error
}

type PlotHandler struct {
	svc PlotService
}

func NewPlotHandler(svc PlotService) *PlotHandler {
	return &PlotHandler{
		svc: svc,
	}
}

// HandleCreatePlot godoc
// @Summary      Create a plot
// @Description  The referenced user must exist and must be the caller.
// @Tags         plots
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreatePlotRequest true "request body"
// @Success      201      {object}   domain.Plot
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /plots [post]
// @Security BearerAuth
func (h *PlotHandler) HandleCreatePlot(ctx *gin.Context) {
	callerID, respErr := getCallerID(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.CreatePlotRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	reservedUntil, err := time.Parse("2006-01-02", req.ReservedUntil)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid date format: %v", err)))
		return
	}

	plot, err := h.svc.CreatePlot(ctx.Request.Context(), callerID, domain.Plot{
		UserID:        req.UserID,
		Size:          req.Size,
		Location:      req.Location,
		ReservedUntil: reservedUntil,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			response.RenderErr(ctx, response.ErrNotFound("user", "userID", req.UserID))
		case errors.Is(err, service.ErrNotPlotOwner):
			response.RenderErr(ctx, response.ErrPermissionDenied(service.ErrNotPlotOwner))
		default:
			err = fmt.Errorf("v1.HandleCreatePlot -> h.svc.CreatePlot -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	ctx.JSON(http.StatusCreated, plot)
}

// HandleGetPlot godoc
// @Summary      Get a plot by id
// @Tags         plots
// @Produce      json
// @Param        plotID   path      string true "plot ID"
// @Success      200      {object}   domain.Plot
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /plots/{plotID} [get]
func (h *PlotHandler) HandleGetPlot(ctx *gin.Context) {
	plotID := ctx.Param("plotID")

	plot, err := h.svc.GetPlot(ctx.Request.Context(), plotID)
	if err != nil {
		if errors.Is(err, service.ErrPlotNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("plot", "plotID", plotID))
			return
		}

		err = fmt.Errorf("v1.HandleGetPlot -> h.svc.GetPlot -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, plot)
}

// HandleListPlots godoc
// @Summary      List all plots
// @Tags         plots
// @Produce      json
// @Success      200      {array}    domain.Plot
// @Failure      500      {object}   response.Err
// @Router       /plots [get]
func (h *PlotHandler) HandleListPlots(ctx *gin.Context) {
	plots, err := h.svc.ListPlots(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListPlots -> h.svc.ListPlots -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, plots)
}

// HandleUpdatePlot godoc
// @Summary      Update a plot
// @Tags         plots
// @Accept       json
// @Produce      json
// @Param        plotID   path      string true "plot ID"
// @Param        request  body      request.UpdatePlotRequest true "request body"
// @Success      200      {object}   domain.Plot
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /plots/{plotID} [put]
// @Security BearerAuth
func (h *PlotHandler) HandleUpdatePlot(ctx *gin.Context) {
	callerID, respErr := getCallerID(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.UpdatePlotRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	reservedUntil, err := time.Parse("2006-01-02", req.ReservedUntil)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid date format: %v", err)))
		return
	}

	plotID := ctx.Param("plotID")
	plot, err := h.svc.UpdatePlot(ctx.Request.Context(), callerID, plotID, domain.Plot{
		Size:          req.Size,
		Location:      req.Location,
		ReservedUntil: reservedUntil,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPlotNotFound):
			response.RenderErr(ctx, response.ErrNotFound("plot", "plotID", plotID))
		case errors.Is(err, service.ErrNotPlotOwner):
			response.RenderErr(ctx, response.ErrPermissionDenied(service.ErrNotPlotOwner))
		default:
			err = fmt.Errorf("v1.HandleUpdatePlot -> h.svc.UpdatePlot -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	ctx.JSON(http.StatusOK, plot)
}

// HandleDeletePlot godoc
// @Summary      Delete a plot
// @Description  Fails while activities still reference the plot.
// @Tags         plots
// @Produce      json
// @Param        plotID   path      string true "plot ID"
// @Success      204
// @Failure      401      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /plots/{plotID} [delete]
// @Security BearerAuth
func (h *PlotHandler) HandleDeletePlot(ctx *gin.Context) {
	callerID, respErr := getCallerID(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	plotID := ctx.Param("plotID")
	if err := h.svc.DeletePlot(ctx.Request.Context(), callerID, plotID); err != nil {
		switch {
		case errors.Is(err, service.ErrPlotNotFound):
			response.RenderErr(ctx, response.ErrNotFound("plot", "plotID", plotID))
		case errors.Is(err, service.ErrNotPlotOwner):
			response.RenderErr(ctx, response.ErrPermissionDenied(service.ErrNotPlotOwner))
		case errors.Is(err, service.ErrPlotHasActivities):
			response.RenderErr(ctx, response.ErrConflict(service.ErrPlotHasActivities))
		default:
			err = fmt.Errorf("v1.HandleDeletePlot -> h.svc.DeletePlot -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	ctx.Status(http.StatusNoContent)
}
