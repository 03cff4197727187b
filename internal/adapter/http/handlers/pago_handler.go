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

var errInvalidPagoReparacionID = pkg.NewDomainErrorSimple("INVALID_REPARACION_ID", "Id de reparacion invalido", http.StatusBadRequest)

// PagoHandler handles HTTP requests for charging finalized repairs.

type PagoHandler struct {
	usecase usecase.IPagoUseCase
}

func NewPagoHandler(uc usecase.IPagoUseCase) *PagoHandler {
	return &PagoHandler{usecase: uc}
}

// CreatePago charges the repair's stored total through the payment gateway.
// The request body is optional: it only carries provider-specific fields.
func (h *PagoHandler) CreatePago(c *gin.Context) {
	id, ok := pagoReparacionIDParam(c)
	if !ok {
		return
	}

	var payload request.PagoCreateRequest
	if c.Request.Body != nil && c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidPagoReparacionID.HTTPStatus, errInvalidPagoReparacionID.ToHTTPError())
			return
		}
	}

	pago, err := h.usecase.CrearYCobrar(c.Request.Context(), id, payload.Payload)
	if err != nil {
		appErr := mapPagoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.PagoCreadoResponse{
		Estatus: true,
		Mensaje: "Pago registrado correctamente",
		Pago:    response.FromPago(pago),
	})
}

// GetPagoByReparacion returns the latest payment collected for the repair.
func (h *PagoHandler) GetPagoByReparacion(c *gin.Context) {
	id, ok := pagoReparacionIDParam(c)
	if !ok {
		return
	}

	pago, err := h.usecase.ObtenerPorReparacion(c.Request.Context(), id)
	if err != nil {
		appErr := mapPagoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPago(pago))
}

func pagoReparacionIDParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("idReparacion"))
	if err != nil || id <= 0 {
		c.JSON(errInvalidPagoReparacionID.HTTPStatus, errInvalidPagoReparacionID.ToHTTPError())
		return 0, false
	}
	return id, true
}

func mapPagoError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrReparacionIDInvalido):
		return pkg.NewDomainErrorSimple("INVALID_REPARACION_ID", "Id de reparacion invalido", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrReparacionNoAtendida):
		return pkg.NewDomainErrorSimple("REPARACION_NOT_FINALIZED", "La reparacion no esta atendida", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrReparacionSinCosto):
		return pkg.NewDomainErrorSimple("REPARACION_WITHOUT_COST", "La reparacion no tiene costo total", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrReparacionNotFound):
		return pkg.NewDomainErrorSimple("REPARACION_NOT_FOUND", "Reparacion no encontrada", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPagoNotFound):
		return pkg.NewDomainErrorSimple("PAGO_NOT_FOUND", "Pago no encontrado", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPasarelaNoConfigurada):
		return pkg.NewDomainErrorSimple("GATEWAY_NOT_CONFIGURED", "Pasarela de pagos no configurada", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Ocurrio un error interno", err, http.StatusInternalServerError)
	}
}
