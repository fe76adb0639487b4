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

type DataSourceHandler struct {
	usecase   usecase.IDataSourceUseCase
	validator *request.Validator
	log       *logger.Logger
}

func NewDataSourceHandler(uc usecase.IDataSourceUseCase, v *request.Validator, log *logger.Logger) *DataSourceHandler {
	return &DataSourceHandler{usecase: uc, validator: v, log: log}
}

// ListDataSources godoc
// @Summary      List data sources
// @Tags         dataSources
// @Produce      json
// @Success      200  {array}   response.DataSourceResponse
// @Failure      500  {object}  pkg.HTTPError
// @Router       /dataSources [get]
func (h *DataSourceHandler) ListDataSources(c *gin.Context) {
	items, err := h.usecase.List(c.Request.Context())
	if err != nil {
		h.log.Error("[source][handler] list failed", "err", err)
		writeError(c, mapDataSourceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDataSources(items))
}

// CreateDataSource godoc
// @Summary      Create a data source
// @Tags         dataSources
// @Accept       json
// @Produce      json
// @Param        source  body      request.DataSourceRequest  true  "Data source"
// @Success      201     {object}  response.DataSourceResponse
// @Failure      400     {object}  pkg.HTTPError
// @Failure      500     {object}  pkg.HTTPError
// @Router       /dataSources [post]
func (h *DataSourceHandler) CreateDataSource(c *gin.Context) {
	var payload request.DataSourceRequest
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
		h.log.Error("[source][handler] create failed", "err", err)
		writeError(c, mapDataSourceError(err))
		return
	}
	h.log.Info("[source][handler] created", "id", created.ID, "url", created.URL)

	c.JSON(http.StatusCreated, response.FromDataSource(created))
}

// UpdateDataSource godoc
// @Summary      Update a data source
// @Description  A null lastFetched clears it; an absent one is left unchanged.
// @Tags         dataSources
// @Accept       json
// @Produce      json
// @Param        id      path      string                     true  "Data source id"
// @Param        source  body      request.DataSourceRequest  true  "Fields to change"
// @Success      200     {object}  response.DataSourceResponse
// @Failure      404     {object}  pkg.HTTPError
// @Failure      500     {object}  pkg.HTTPError
// @Router       /dataSources/{id} [put]
func (h *DataSourceHandler) UpdateDataSource(c *gin.Context) {
	id := c.Param("id")

	var payload request.DataSourceRequest
	if err := bindJSON(c, &payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), id, payload.ToPatch())
	if err != nil {
		h.log.Warn("[source][handler] update failed", "id", id, "err", err)
		writeError(c, mapDataSourceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDataSource(updated))
}

// DeleteDataSource godoc
// @Summary      Delete a data source
// @Tags         dataSources
// @Param        id   path  string  true  "Data source id"
// @Success      204
// @Failure      404  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /dataSources/{id} [delete]
func (h *DataSourceHandler) DeleteDataSource(c *gin.Context) {
	id := c.Param("id")
	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		h.log.Warn("[source][handler] delete failed", "id", id, "err", err)
		writeError(c, mapDataSourceError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// FetchDataSource godoc
// @Summary      Trigger a manual fetch
// @Description  Records the fetch time. No remote data is retrieved.
// @Tags         dataSources
// @Produce      json
// @Param        id   path      string  true  "Data source id"
// @Success      200  {object}  response.DataSourceResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /dataSources/{id}/fetch [post]
func (h *DataSourceHandler) FetchDataSource(c *gin.Context) {
	id := c.Param("id")
	fetched, err := h.usecase.Fetch(c.Request.Context(), id)
	if err != nil {
		h.log.Warn("[source][handler] fetch failed", "id", id, "err", err)
		writeError(c, mapDataSourceError(err))
		return
	}
	h.log.Info("[source][handler] fetched", "id", id)
	c.JSON(http.StatusOK, response.FromDataSource(fetched))
}

func mapDataSourceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidDataSourceID):
		return errInvalidID
	case errors.Is(err, usecase.ErrDataSourceNotFound):
		return pkg.NewDomainErrorSimple("DATA_SOURCE_NOT_FOUND", "Data source not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
