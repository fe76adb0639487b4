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

// ParliamentEntryHandler serves /entries.
type ParliamentEntryHandler struct {
	usecase   usecase.IParliamentEntryUseCase
	validator *request.Validator
	log       *logger.Logger
}

func NewParliamentEntryHandler(uc usecase.IParliamentEntryUseCase, v *request.Validator, log *logger.Logger) *ParliamentEntryHandler {
	return &ParliamentEntryHandler{usecase: uc, validator: v, log: log}
}

// ListEntries godoc
// @Summary      List parliament entries
// @Tags         entries
// @Produce      json
// @Success      200  {array}   response.ParliamentEntryResponse
// @Failure      500  {object}  pkg.HTTPError
// @Router       /entries [get]
func (h *ParliamentEntryHandler) ListEntries(c *gin.Context) {
	items, err := h.usecase.List(c.Request.Context())
	if err != nil {
		h.log.Error("[entry][handler] list failed", "err", err)
		writeError(c, mapParliamentEntryError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromParliamentEntries(items))
}

// CreateEntry godoc
// @Summary      Create a parliament entry
// @Description  The id is generated by the server; a missing resources object is stored as zeros.
// @Tags         entries
// @Accept       json
// @Produce      json
// @Param        entry  body      request.ParliamentEntryRequest  true  "Entry"
// @Success      201    {object}  response.ParliamentEntryResponse
// @Failure      400    {object}  pkg.HTTPError
// @Failure      500    {object}  pkg.HTTPError
// @Router       /entries [post]
func (h *ParliamentEntryHandler) CreateEntry(c *gin.Context) {
	var payload request.ParliamentEntryRequest
	if err := bindJSON(c, &payload); err != nil {
		h.log.Debug("[entry][handler] invalid payload", "err", err)
		writeError(c, errInvalidPayload)
		return
	}
	if err := h.validator.Validate(payload); err != nil {
		writeError(c, validationError(err))
		return
	}

	entry, err := payload.ToEntity()
	if err != nil {
		writeError(c, mapParliamentEntryError(err))
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), entry)
	if err != nil {
		h.log.Error("[entry][handler] create failed", "err", err)
		writeError(c, mapParliamentEntryError(err))
		return
	}
	h.log.Info("[entry][handler] created", "id", created.ID, "region", created.Region)

	c.JSON(http.StatusCreated, response.FromParliamentEntry(created))
}

// UpdateEntry godoc
// @Summary      Update a parliament entry
// @Description  Only the fields present in the body change.
// @Tags         entries
// @Accept       json
// @Produce      json
// @Param        id     path      string                          true  "Entry id"
// @Param        entry  body      request.ParliamentEntryRequest  true  "Fields to change"
// @Success      200    {object}  response.ParliamentEntryResponse
// @Failure      400    {object}  pkg.HTTPError
// @Failure      404    {object}  pkg.HTTPError
// @Failure      500    {object}  pkg.HTTPError
// @Router       /entries/{id} [put]
func (h *ParliamentEntryHandler) UpdateEntry(c *gin.Context) {
	id := c.Param("id")

	var payload request.ParliamentEntryRequest
	if err := bindJSON(c, &payload); err != nil {
		h.log.Debug("[entry][handler] invalid payload", "id", id, "err", err)
		writeError(c, errInvalidPayload)
		return
	}

	patch, err := payload.ToPatch()
	if err != nil {
		writeError(c, mapParliamentEntryError(err))
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), id, patch)
	if err != nil {
		h.log.Warn("[entry][handler] update failed", "id", id, "err", err)
		writeError(c, mapParliamentEntryError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromParliamentEntry(updated))
}

// DeleteEntry godoc
// @Summary      Delete a parliament entry
// @Tags         entries
// @Param        id   path  string  true  "Entry id"
// @Success      204
// @Failure      404  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /entries/{id} [delete]
func (h *ParliamentEntryHandler) DeleteEntry(c *gin.Context) {
	id := c.Param("id")
	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		h.log.Warn("[entry][handler] delete failed", "id", id, "err", err)
		writeError(c, mapParliamentEntryError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func mapParliamentEntryError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidParliamentEntryID):
		return errInvalidID
	case errors.Is(err, request.ErrInvalidDate):
		return pkg.NewDomainErrorSimple("INVALID_DATE", "Invalid date", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrParliamentEntryNotFound):
		return pkg.NewDomainErrorSimple("ENTRY_NOT_FOUND", "Entry not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
