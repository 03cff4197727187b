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
	errInvalidCitaPayload = pkg.NewDomainErrorSimple("INVALID_CITA_INPUT", "Datos de cita invalidos", http.StatusBadRequest)
	errInvalidCitaID      = pkg.NewDomainErrorSimple("INVALID_CITA_ID", "Id de cita invalido", http.StatusBadRequest)
)

// CitaHandler handles HTTP requests for appointments, including the
// confirm/cancel/finalize status transitions.

type CitaHandler struct {
	usecase usecase.ICitaUseCase
}

func NewCitaHandler(uc usecase.ICitaUseCase) *CitaHandler {
	return &CitaHandler{usecase: uc}
}

// CreateCita registers a new appointment for an existing client.
func (h *CitaHandler) CreateCita(c *gin.Context) {
	var payload request.CitaCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCitaPayload.HTTPStatus, errInvalidCitaPayload.ToHTTPError())
		return
	}

	cita, nombreCliente, err := h.usecase.Crear(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapCitaError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.CitaCreadaResponse{
		Estatus:       true,
		Mensaje:       "Cita registrada correctamente",
		NombreCliente: nombreCliente,
		Cita:          response.FromCita(cita),
	})
}

func (h *CitaHandler) GetCitaByID(c *gin.Context) {
	id, ok := citaIDParam(c)
	if !ok {
		return
	}

	cita, err := h.usecase.Obtener(c.Request.Context(), id)
	if err != nil {
		appErr := mapCitaError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCita(cita))
}

func (h *CitaHandler) ListCitas(c *gin.Context) {
	citas, err := h.usecase.Listar(c.Request.Context())
	if err != nil {
		appErr := mapCitaError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCitas(citas))
}

func (h *CitaHandler) ConfirmCita(c *gin.Context) {
	h.transitionCita(c, h.usecase.Confirmar, "Cita confirmada correctamente", "La cita ya estaba confirmada")
}

func (h *CitaHandler) CancelCita(c *gin.Context) {
	h.transitionCita(c, h.usecase.Cancelar, "Cita cancelada correctamente", "La cita ya estaba cancelada")
}

func (h *CitaHandler) FinalizeCita(c *gin.Context) {
	h.transitionCita(c, h.usecase.Finalizar, "Cita finalizada correctamente", "La cita ya no admite cambios de estatus")
}

func (h *CitaHandler) DeleteCita(c *gin.Context) {
	id, ok := citaIDParam(c)
	if !ok {
		return
	}

	if err := h.usecase.Eliminar(c.Request.Context(), id); err != nil {
		appErr := mapCitaError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.NuevoMensaje("Cita eliminada correctamente"))
}

func (h *CitaHandler) transitionCita(
	c *gin.Context,
	transition func(ctx context.Context, id int) (entities.Cita, bool, error),
	mensaje, mensajeYaEstaba string,
) {
	id, ok := citaIDParam(c)
	if !ok {
		return
	}

	cita, yaEstaba, err := transition(c.Request.Context(), id)
	if err != nil {
		appErr := mapCitaError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	msg := mensaje
	if yaEstaba {
		msg = mensajeYaEstaba
	}
	c.JSON(http.StatusOK, response.CitaTransicionResponse{
		Estatus: true,
		Mensaje: msg,
		Cita:    response.FromCita(cita),
	})
}

func citaIDParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(errInvalidCitaID.HTTPStatus, errInvalidCitaID.ToHTTPError())
		return 0, false
	}
	return id, true
}

func mapCitaError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrCitaIDInvalido):
		return pkg.NewDomainErrorSimple("INVALID_CITA_ID", "Id de cita invalido", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrClienteCitaNotFound):
		return pkg.NewDomainErrorSimple("CLIENTE_NOT_FOUND", "El usuario cliente no existe", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCitaNotFound):
		return pkg.NewDomainErrorSimple("CITA_NOT_FOUND", "Cita no encontrada", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCitaConflictoID):
		return pkg.NewDomainErrorSimple("CITA_ID_CONFLICT", "No fue posible asignar un id de cita", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Ocurrio un error interno", err, http.StatusInternalServerError)
	}
}
