package handlers

import (
	"errors"
	"net/http"
	"strconv"

	request "taller_api/internal/adapter/http/dto/request"
	response "taller_api/internal/adapter/http/dto/response"
	"taller_api/internal/usecase"
	"taller_api/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRefaccionPayload = pkg.NewDomainErrorSimple("INVALID_REFACCION_INPUT", "Datos de refaccion invalidos", http.StatusBadRequest)
	errInvalidRefaccionID      = pkg.NewDomainErrorSimple("INVALID_REFACCION_ID", "Id de refaccion invalido", http.StatusBadRequest)
)

// RefaccionHandler handles HTTP requests for the spare-part catalog.

type RefaccionHandler struct {
	usecase usecase.IRefaccionUseCase
}

func NewRefaccionHandler(uc usecase.IRefaccionUseCase) *RefaccionHandler {
	return &RefaccionHandler{usecase: uc}
}

func (h *RefaccionHandler) CreateRefaccion(c *gin.Context) {
	var payload request.RefaccionCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRefaccionPayload.HTTPStatus, errInvalidRefaccionPayload.ToHTTPError())
		return
	}

	refaccion, err := h.usecase.Crear(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapRefaccionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.RefaccionCreadaResponse{
		Estatus:   true,
		Mensaje:   "Refaccion registrada correctamente",
		Refaccion: response.FromRefaccion(refaccion),
	})
}

func (h *RefaccionHandler) GetRefaccionByID(c *gin.Context) {
	id, ok := refaccionIDParam(c)
	if !ok {
		return
	}

	refaccion, err := h.usecase.Obtener(c.Request.Context(), id)
	if err != nil {
		appErr := mapRefaccionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRefaccion(refaccion))
}

func (h *RefaccionHandler) ListRefacciones(c *gin.Context) {
	refacciones, err := h.usecase.Listar(c.Request.Context())
	if err != nil {
		appErr := mapRefaccionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRefacciones(refacciones))
}

func (h *RefaccionHandler) UpdateRefaccion(c *gin.Context) {
	id, ok := refaccionIDParam(c)
	if !ok {
		return
	}

	var payload request.RefaccionUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRefaccionPayload.HTTPStatus, errInvalidRefaccionPayload.ToHTTPError())
		return
	}

	refaccion, err := h.usecase.Actualizar(c.Request.Context(), id, payload.Campos())
	if err != nil {
		appErr := mapRefaccionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.RefaccionCreadaResponse{
		Estatus:   true,
		Mensaje:   "Refaccion actualizada correctamente",
		Refaccion: response.FromRefaccion(refaccion),
	})
}

// DeleteRefaccion removes the catalog entry. Usage copies embedded in repairs
// keep their snapshot.
func (h *RefaccionHandler) DeleteRefaccion(c *gin.Context) {
	id, ok := refaccionIDParam(c)
	if !ok {
		return
	}

	if err := h.usecase.Eliminar(c.Request.Context(), id); err != nil {
		appErr := mapRefaccionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.NuevoMensaje("Refaccion eliminada correctamente"))
}

func refaccionIDParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(errInvalidRefaccionID.HTTPStatus, errInvalidRefaccionID.ToHTTPError())
		return 0, false
	}
	return id, true
}

func mapRefaccionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrRefaccionIDInvalido):
		return pkg.NewDomainErrorSimple("INVALID_REFACCION_ID", "Id de refaccion invalido", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRefaccionSinCambios):
		return pkg.NewDomainErrorSimple("EMPTY_UPDATE", "Ningun campo para actualizar", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRefaccionYaExiste):
		return pkg.NewDomainErrorSimple("REFACCION_ALREADY_EXISTS", "La refaccion ya existe en el catalogo", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRefaccionNotFound):
		return pkg.NewDomainErrorSimple("REFACCION_NOT_FOUND", "Refaccion no encontrada", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Ocurrio un error interno", err, http.StatusInternalServerError)
	}
}
