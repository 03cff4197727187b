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
	errInvalidDispositivoPayload = pkg.NewDomainErrorSimple("INVALID_DISPOSITIVO_INPUT", "Datos de dispositivo invalidos", http.StatusBadRequest)
	errInvalidDispositivoID      = pkg.NewDomainErrorSimple("INVALID_DISPOSITIVO_ID", "Id de dispositivo invalido", http.StatusBadRequest)
)

// DispositivoHandler handles HTTP requests for the standalone device catalog.

type DispositivoHandler struct {
	usecase usecase.IDispositivoUseCase
}

func NewDispositivoHandler(uc usecase.IDispositivoUseCase) *DispositivoHandler {
	return &DispositivoHandler{usecase: uc}
}

func (h *DispositivoHandler) CreateDispositivo(c *gin.Context) {
	var payload request.DispositivoCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDispositivoPayload.HTTPStatus, errInvalidDispositivoPayload.ToHTTPError())
		return
	}

	dispositivo, err := h.usecase.Crear(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapDispositivoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.DispositivoCreadoResponse{
		Estatus:     true,
		Mensaje:     "Dispositivo registrado correctamente",
		Dispositivo: response.FromDispositivo(dispositivo),
	})
}

func (h *DispositivoHandler) GetDispositivoByID(c *gin.Context) {
	id, ok := dispositivoIDParam(c)
	if !ok {
		return
	}

	dispositivo, err := h.usecase.Obtener(c.Request.Context(), id)
	if err != nil {
		appErr := mapDispositivoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDispositivo(dispositivo))
}

func (h *DispositivoHandler) ListDispositivos(c *gin.Context) {
	dispositivos, err := h.usecase.Listar(c.Request.Context())
	if err != nil {
		appErr := mapDispositivoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDispositivos(dispositivos))
}

func (h *DispositivoHandler) UpdateDispositivo(c *gin.Context) {
	id, ok := dispositivoIDParam(c)
	if !ok {
		return
	}

	var payload request.DispositivoUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDispositivoPayload.HTTPStatus, errInvalidDispositivoPayload.ToHTTPError())
		return
	}

	dispositivo, err := h.usecase.Actualizar(c.Request.Context(), id, payload.Campos())
	if err != nil {
		appErr := mapDispositivoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.DispositivoCreadoResponse{
		Estatus:     true,
		Mensaje:     "Dispositivo actualizado correctamente",
		Dispositivo: response.FromDispositivo(dispositivo),
	})
}

func (h *DispositivoHandler) DeleteDispositivo(c *gin.Context) {
	id, ok := dispositivoIDParam(c)
	if !ok {
		return
	}

	if err := h.usecase.Eliminar(c.Request.Context(), id); err != nil {
		appErr := mapDispositivoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.NuevoMensaje("Dispositivo eliminado correctamente"))
}

func dispositivoIDParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(errInvalidDispositivoID.HTTPStatus, errInvalidDispositivoID.ToHTTPError())
		return 0, false
	}
	return id, true
}

func mapDispositivoError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrDispositivoIDInvalido):
		return pkg.NewDomainErrorSimple("INVALID_DISPOSITIVO_ID", "Id de dispositivo invalido", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDispositivoSinCambios):
		return pkg.NewDomainErrorSimple("EMPTY_UPDATE", "Ningun campo para actualizar", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDispositivoYaExiste):
		return pkg.NewDomainErrorSimple("DISPOSITIVO_ALREADY_EXISTS", "El dispositivo ya existe", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDispositivoNotFound):
		return pkg.NewDomainErrorSimple("DISPOSITIVO_NOT_FOUND", "Dispositivo no encontrado", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Ocurrio un error interno", err, http.StatusInternalServerError)
	}
}
