package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	request "taller_api/internal/adapter/http/dto/request"
	response "taller_api/internal/adapter/http/dto/response"
	"taller_api/internal/domain/entities"
	"taller_api/internal/usecase"
	"taller_api/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidReparacionPayload = pkg.NewDomainErrorSimple("INVALID_REPARACION_INPUT", "Datos de reparacion invalidos", http.StatusBadRequest)
	errInvalidReparacionID      = pkg.NewDomainErrorSimple("INVALID_REPARACION_ID", "Id de reparacion invalido", http.StatusBadRequest)
)

// ReparacionHandler handles HTTP requests for repairs, including the embedded
// spare-part usage endpoints.

type ReparacionHandler struct {
	usecase usecase.IReparacionUseCase
}

func NewReparacionHandler(uc usecase.IReparacionUseCase) *ReparacionHandler {
	return &ReparacionHandler{usecase: uc}
}

func (h *ReparacionHandler) CreateReparacion(c *gin.Context) {
	var payload request.ReparacionCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidReparacionPayload.HTTPStatus, errInvalidReparacionPayload.ToHTTPError())
		return
	}

	entidad, err := payload.ToEntity()
	if err != nil {
		appErr := mapReparacionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	reparacion, err := h.usecase.Crear(c.Request.Context(), entidad)
	if err != nil {
		appErr := mapReparacionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.ReparacionCreadaResponse{
		Estatus:    true,
		Mensaje:    "Reparacion registrada correctamente",
		Reparacion: response.FromReparacion(reparacion),
	})
}

func (h *ReparacionHandler) GetReparacionByID(c *gin.Context) {
	id, ok := reparacionIDParam(c, "id")
	if !ok {
		return
	}

	reparacion, err := h.usecase.Obtener(c.Request.Context(), id)
	if err != nil {
		appErr := mapReparacionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromReparacion(reparacion))
}

func (h *ReparacionHandler) ListReparaciones(c *gin.Context) {
	reparaciones, err := h.usecase.Listar(c.Request.Context(), false)
	if err != nil {
		appErr := mapReparacionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromReparaciones(reparaciones))
}

// ListReparacionesConRefacciones lists only the repairs that carry at least
// one spare-part usage entry.
func (h *ReparacionHandler) ListReparacionesConRefacciones(c *gin.Context) {
	reparaciones, err := h.usecase.Listar(c.Request.Context(), true)
	if err != nil {
		appErr := mapReparacionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromReparaciones(reparaciones))
}

func (h *ReparacionHandler) UpdateReparacion(c *gin.Context) {
	id, ok := reparacionIDParam(c, "id")
	if !ok {
		return
	}

	var payload request.ReparacionUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidReparacionPayload.HTTPStatus, errInvalidReparacionPayload.ToHTTPError())
		return
	}

	reparacion, err := h.usecase.ActualizarParcial(c.Request.Context(), id, payload.Campos())
	if err != nil {
		appErr := mapReparacionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.ReparacionCreadaResponse{
		Estatus:    true,
		Mensaje:    "Reparacion actualizada correctamente",
		Reparacion: response.FromReparacion(reparacion),
	})
}

func (h *ReparacionHandler) CancelReparacion(c *gin.Context) {
	h.transitionReparacion(c, h.usecase.Cancelar, "Reparacion cancelada correctamente", "La reparacion ya estaba cancelada")
}

func (h *ReparacionHandler) FinalizeReparacion(c *gin.Context) {
	h.transitionReparacion(c, h.usecase.Finalizar, "Reparacion finalizada correctamente", "La reparacion ya no admite cambios de estatus")
}

// AddRefaccionUsada registers a catalog spare part as used by the repair.
// Repeating a refaccion already present is a conflict, not an upsert.
func (h *ReparacionHandler) AddRefaccionUsada(c *gin.Context) {
	id, ok := reparacionIDParam(c, "id")
	if !ok {
		return
	}

	var payload request.RefaccionUsadaRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidReparacionPayload.HTTPStatus, errInvalidReparacionPayload.ToHTTPError())
		return
	}

	reparacion, err := h.usecase.AgregarRefaccion(c.Request.Context(), id, payload.ToEntity())
	if err != nil {
		appErr := mapReparacionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.ReparacionCreadaResponse{
		Estatus:    true,
		Mensaje:    "Refaccion agregada a la reparacion",
		Reparacion: response.FromReparacion(reparacion),
	})
}

// UpdateRefaccionUsada overwrites nombre/cantidad/precio of one usage entry,
// addressed by its refaccion id.
func (h *ReparacionHandler) UpdateRefaccionUsada(c *gin.Context) {
	id, ok := reparacionIDParam(c, "id")
	if !ok {
		return
	}
	idRefaccion, err := strconv.Atoi(c.Param("idRefaccion"))
	if err != nil || idRefaccion <= 0 {
		c.JSON(errInvalidReparacionID.HTTPStatus, errInvalidReparacionID.ToHTTPError())
		return
	}

	var payload request.RefaccionUsadaUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidReparacionPayload.HTTPStatus, errInvalidReparacionPayload.ToHTTPError())
		return
	}

	reparacion, err := h.usecase.ActualizarRefaccion(c.Request.Context(), id, idRefaccion, payload.Nombre, payload.Cantidad, payload.Precio)
	if err != nil {
		appErr := mapReparacionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.ReparacionCreadaResponse{
		Estatus:    true,
		Mensaje:    "Refaccion de la reparacion actualizada",
		Reparacion: response.FromReparacion(reparacion),
	})
}

func (h *ReparacionHandler) transitionReparacion(
	c *gin.Context,
	transition func(ctx context.Context, id int) (entities.Reparacion, bool, error),
	mensaje, mensajeYaEstaba string,
) {
	id, ok := reparacionIDParam(c, "id")
	if !ok {
		return
	}

	reparacion, yaEstaba, err := transition(c.Request.Context(), id)
	if err != nil {
		appErr := mapReparacionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	msg := mensaje
	if yaEstaba {
		msg = mensajeYaEstaba
	}
	c.JSON(http.StatusOK, response.ReparacionTransicionResponse{
		Estatus:    true,
		Mensaje:    msg,
		Reparacion: response.FromReparacion(reparacion),
	})
}

func reparacionIDParam(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		c.JSON(errInvalidReparacionID.HTTPStatus, errInvalidReparacionID.ToHTTPError())
		return 0, false
	}
	return id, true
}

func mapReparacionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrReparacionIDInvalido):
		return pkg.NewDomainErrorSimple("INVALID_REPARACION_ID", "Id de reparacion invalido", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEstatusReparacionInvalido):
		return pkg.NewDomainErrorSimple("INVALID_ESTATUS", "Estatus de reparacion no reconocido", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrFechaInvalida):
		return pkg.NewDomainErrorSimple("INVALID_FECHA", "Fecha de reparacion invalida", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrReparacionSinCambios):
		return pkg.NewDomainErrorSimple("EMPTY_UPDATE", "Ningun campo para actualizar", http.StatusBadRequest)
	case errors.Is(err, request.ErrRefaccionRepetida):
		return pkg.NewDomainErrorSimple("REFACCION_REPETIDA", "Refaccion repetida en la solicitud", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCitaReparacionNotFound):
		return pkg.NewDomainErrorSimple("CITA_NOT_FOUND", "La cita referenciada no existe", http.StatusNotFound)
	case errors.Is(err, usecase.ErrReparacionNotFound):
		return pkg.NewDomainErrorSimple("REPARACION_NOT_FOUND", "Reparacion no encontrada", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRefaccionNoCatalogo):
		return pkg.NewDomainErrorSimple("REFACCION_NOT_FOUND", "Refaccion no existe en el catalogo", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRefaccionUsadaNotFound):
		return pkg.NewDomainErrorSimple("REFACCION_USADA_NOT_FOUND", "Refaccion no registrada en la reparacion", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRefaccionDuplicada):
		return pkg.NewDomainErrorSimple("REFACCION_DUPLICADA", "La refaccion ya esta registrada en la reparacion", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrReparacionConflictoID):
		return pkg.NewDomainErrorSimple("REPARACION_ID_CONFLICT", "No fue posible asignar un id de reparacion", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Ocurrio un error interno", err, http.StatusInternalServerError)
	}
}
