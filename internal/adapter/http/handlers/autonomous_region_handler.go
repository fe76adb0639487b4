package handlers

import (
	"errors"
	"net/http"

	request "parlamento/internal/adapter/http/dto/request"
	response "parlamento/internal/adapter/http/dto/response"
	"parlamento/internal/usecase"
	"parlamento/pkg"
	"parlamento/pkg/logger"

	"github.com/gin-gonic/gin"
)

type AutonomousRegionHandler struct {
	usecase   usecase.IAutonomousRegionUseCase
	validator *request.Validator
	log       *logger.Logger
}

func NewAutonomousRegionHandler(uc usecase.IAutonomousRegionUseCase, v *request.Validator, log *logger.Logger) *AutonomousRegionHandler {
	return &AutonomousRegionHandler{usecase: uc, validator: v, log: log}
}

// ListRegions godoc
// @Summary      List autonomous regions
// @Tags         autonomousRegions
// @Produce      json
// @Success      200  {array}   response.AutonomousRegionResponse
// @Failure      500  {object}  pkg.HTTPError
// @Router       /autonomousRegions [get]
func (h *AutonomousRegionHandler) ListRegions(c *gin.Context) {
	items, err := h.usecase.List(c.Request.Context())
	if err != nil {
		h.log.Error("[region][handler] list failed", "err", err)
		writeError(c, mapAutonomousRegionError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromAutonomousRegions(items))
}

// CreateRegion godoc
// @Summary      Create an autonomous region
// @Tags         autonomousRegions
// @Accept       json
// @Produce      json
// @Param        region  body      request.AutonomousRegionRequest  true  "Region"
// @Success      201     {object}  response.AutonomousRegionResponse
// @Failure      400     {object}  pkg.HTTPError
// @Failure      500     {object}  pkg.HTTPError
// @Router       /autonomousRegions [post]
func (h *AutonomousRegionHandler) CreateRegion(c *gin.Context) {
	var payload request.AutonomousRegionRequest
	if err := bindJSON(c, &payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	if err := h.validator.Validate(payload); err != nil {
		writeError(c, validationError(err))
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		h.log.Error("[region][handler] create failed", "err", err)
		writeError(c, mapAutonomousRegionError(err))
		return
	}
	h.log.Info("[region][handler] created", "id", created.ID, "name", created.Name)

	c.JSON(http.StatusCreated, response.FromAutonomousRegion(created))
}

// UpdateRegion godoc
// @Summary      Update an autonomous region
// @Tags         autonomousRegions
// @Accept       json
// @Produce      json
// @Param        id      path      string                           true  "Region id"
// @Param        region  body      request.AutonomousRegionRequest  true  "Fields to change"
// @Success      200     {object}  response.AutonomousRegionResponse
// @Failure      404     {object}  pkg.HTTPError
// @Failure      500     {object}  pkg.HTTPError
// @Router       /autonomousRegions/{id} [put]
func (h *AutonomousRegionHandler) UpdateRegion(c *gin.Context) {
	id := c.Param("id")

	var payload request.AutonomousRegionRequest
	if err := bindJSON(c, &payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), id, payload.ToPatch())
	if err != nil {
		h.log.Warn("[region][handler] update failed", "id", id, "err", err)
		writeError(c, mapAutonomousRegionError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromAutonomousRegion(updated))
}

// DeleteRegion godoc
// @Summary      Delete an autonomous region
// @Tags         autonomousRegions
// @Param        id   path  string  true  "Region id"
// @Success      204
// @Failure      404  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /autonomousRegions/{id} [delete]
func (h *AutonomousRegionHandler) DeleteRegion(c *gin.Context) {
	id := c.Param("id")
	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		h.log.Warn("[region][handler] delete failed", "id", id, "err", err)
		writeError(c, mapAutonomousRegionError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func mapAutonomousRegionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAutonomousRegionID):
		return errInvalidID
	case errors.Is(err, usecase.ErrAutonomousRegionNotFound):
		return pkg.NewDomainErrorSimple("REGION_NOT_FOUND", "Autonomous region not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
