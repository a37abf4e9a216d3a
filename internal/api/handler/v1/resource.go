package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gardenhub/garden-api/internal/api/handler/v1/request"
	"github.com/gardenhub/garden-api/internal/api/handler/v1/response"
	"github.com/gardenhub/garden-api/internal/domain"
	"github.com/gardenhub/garden-api/internal/service"
)

type ResourceService interface {
	CreateResource(ctx context.Context, resource domain.Resource) (domain.Resource, error)
	GetResource(ctx context.Context, id string) (domain.Resource, error)
	ListResources(ctx context.Context) ([]domain.Resource, error)
	UpdateResource(ctx context.Context, id string, updated domain.Resource) (domain.Resource, error)
	DeleteResource(ctx context.Context, id string) error
}

type ResourceHandler struct {
	svc ResourceService
}

func NewResourceHandler(svc ResourceService) *ResourceHandler {
	return &ResourceHandler{
		svc: svc,
	}
}

// HandleCreateResource godoc
// @Summary      Create a shared resource
// @Tags         resources
// @Accept       json
// @Produce      json
// @Param        request  body      request.ResourceRequest true "request body"
// @Success      201      {object}   domain.Resource
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /resources [post]
// @Security BearerAuth
func (h *ResourceHandler) HandleCreateResource(ctx *gin.Context) {
	var req request.ResourceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	resource, err := h.svc.CreateResource(ctx.Request.Context(), domain.Resource{
		Name:      req.Name,
		Quantity:  req.Quantity,
		Available: req.Available,
	})
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateResource -> h.svc.CreateResource -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, resource)
}

// HandleGetResource godoc
// @Summary      Get a resource by id
// @Tags         resources
// @Produce      json
// @Param        resourceID   path      string true "resource ID"
// @Success      200      {object}   domain.Resource
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /resources/{resourceID} [get]
func (h *ResourceHandler) HandleGetResource(ctx *gin.Context) {
	resourceID := ctx.Param("resourceID")

	resource, err := h.svc.GetResource(ctx.Request.Context(), resourceID)
	if err != nil {
		if errors.Is(err, service.ErrResourceNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("resource", "resourceID", resourceID))
			return
		}

		err = fmt.Errorf("v1.HandleGetResource -> h.svc.GetResource -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, resource)
}

// HandleListResources godoc
// @Summary      List all resources
// @Tags         resources
// @Produce      json
// @Success      200      {array}    domain.Resource
// @Failure      500      {object}   response.Err
// @Router       /resources [get]
func (h *ResourceHandler) HandleListResources(ctx *gin.Context) {
	resources, err := h.svc.ListResources(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListResources -> h.svc.ListResources -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, resources)
}

// HandleUpdateResource godoc
// @Summary      Update a resource
// @Tags         resources
// @Accept       json
// @Produce      json
// @Param        resourceID   path      string true "resource ID"
// @Param        request  body      request.ResourceRequest true "request body"
// @Success      200      {object}   domain.Resource
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /resources/{resourceID} [put]
// @Security BearerAuth
func (h *ResourceHandler) HandleUpdateResource(ctx *gin.Context) {
	var req request.ResourceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	resourceID := ctx.Param("resourceID")
	resource, err := h.svc.UpdateResource(ctx.Request.Context(), resourceID, domain.Resource{
		Name:      req.Name,
		Quantity:  req.Quantity,
		Available: req.Available,
	})
	if err != nil {
		if errors.Is(err, service.ErrResourceNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("resource", "resourceID", resourceID))
			return
		}

		err = fmt.Errorf("v1.HandleUpdateResource -> h.svc.UpdateResource -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, resource)
}

// HandleDeleteResource godoc
// @Summary      Delete a resource
// @Tags         resources
// @Produce      json
// @Param        resourceID   path      string true "resource ID"
// @Success      204
// @Failure      401      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /resources/{resourceID} [delete]
// @Security BearerAuth
func (h *ResourceHandler) HandleDeleteResource(ctx *gin.Context) {
	resourceID := ctx.Param("resourceID")

	if err := h.svc.DeleteResource(ctx.Request.Context(), resourceID); err != nil {
		if errors.Is(err, service.ErrResourceNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("resource", "resourceID", resourceID))
			return
		}

		err = fmt.Errorf("v1.HandleDeleteResource -> h.svc.DeleteResource -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}
