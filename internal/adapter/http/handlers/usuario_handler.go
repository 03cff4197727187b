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
	errInvalidUsuarioPayload = pkg.NewDomainErrorSimple("INVALID_USUARIO_INPUT", "Datos de usuario invalidos", http.StatusBadRequest)
	errInvalidUsuarioID      = pkg.NewDomainErrorSimple("INVALID_USUARIO_ID", "Id de usuario invalido", http.StatusBadRequest)
)

// UsuarioHandler handles HTTP requests for user accounts and credential
// validation.

type UsuarioHandler struct {
	usecase usecase.IUsuarioUseCase
}

func NewUsuarioHandler(uc usecase.IUsuarioUseCase) *UsuarioHandler {
	return &UsuarioHandler{usecase: uc}
}

func (h *UsuarioHandler) CreateUsuario(c *gin.Context) {
	var payload request.UsuarioCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidUsuarioPayload.HTTPStatus, errInvalidUsuarioPayload.ToHTTPError())
		return
	}

	usuario, err := h.usecase.Registrar(c.Request.Context(), payload.ToEntity(), payload.Contrasena)
	if err != nil {
		appErr := mapUsuarioError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.UsuarioCreadoResponse{
		Estatus: true,
		Mensaje: "Usuario registrado correctamente",
		Usuario: response.FromUsuario(usuario),
	})
}

func (h *UsuarioHandler) GetUsuarioByID(c *gin.Context) {
	id, ok := usuarioIDParam(c)
	if !ok {
		return
	}

	usuario, err := h.usecase.Obtener(c.Request.Context(), id)
	if err != nil {
		appErr := mapUsuarioError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromUsuario(usuario))
}

func (h *UsuarioHandler) ListUsuarios(c *gin.Context) {
	usuarios, err := h.usecase.Listar(c.Request.Context())
	if err != nil {
		appErr := mapUsuarioError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromUsuarios(usuarios))
}

func (h *UsuarioHandler) UpdateUsuario(c *gin.Context) {
	id, ok := usuarioIDParam(c)
	if !ok {
		return
	}

	var payload request.UsuarioUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidUsuarioPayload.HTTPStatus, errInvalidUsuarioPayload.ToHTTPError())
		return
	}

	usuario, err := h.usecase.Actualizar(c.Request.Context(), id, payload.Campos())
	if err != nil {
		appErr := mapUsuarioError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.UsuarioCreadoResponse{
		Estatus: true,
		Mensaje: "Usuario actualizado correctamente",
		Usuario: response.FromUsuario(usuario),
	})
}

func (h *UsuarioHandler) DeleteUsuario(c *gin.Context) {
	id, ok := usuarioIDParam(c)
	if !ok {
		return
	}

	if err := h.usecase.Eliminar(c.Request.Context(), id); err != nil {
		appErr := mapUsuarioError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.NuevoMensaje("Usuario eliminado correctamente"))
}

// ValidateCredenciales checks a correo/contrasena pair and returns the
// matching account on success.
func (h *UsuarioHandler) ValidateCredenciales(c *gin.Context) {
	var payload request.ValidarCredencialesRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidUsuarioPayload.HTTPStatus, errInvalidUsuarioPayload.ToHTTPError())
		return
	}

	usuario, err := h.usecase.Validar(c.Request.Context(), payload.Correo, payload.Contrasena)
	if err != nil {
		appErr := mapUsuarioError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.CredencialesValidasResponse{
		Estatus: true,
		Mensaje: "Credenciales validas",
		Usuario: response.FromUsuario(usuario),
	})
}

func usuarioIDParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(errInvalidUsuarioID.HTTPStatus, errInvalidUsuarioID.ToHTTPError())
		return 0, false
	}
	return id, true
}

func mapUsuarioError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrUsuarioIDInvalido):
		return pkg.NewDomainErrorSimple("INVALID_USUARIO_ID", "Id de usuario invalido", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRolInvalido):
		return pkg.NewDomainErrorSimple("INVALID_ROL", "Rol de usuario no reconocido", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrContrasenaRequerida):
		return pkg.NewDomainErrorSimple("CONTRASENA_REQUIRED", "La contrasena es obligatoria", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUsuarioSinCambios):
		return pkg.NewDomainErrorSimple("EMPTY_UPDATE", "Ningun campo para actualizar", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUsuarioYaExiste):
		return pkg.NewDomainErrorSimple("USUARIO_ALREADY_EXISTS", "El usuario ya existe", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUsuarioNotFound):
		return pkg.NewDomainErrorSimple("USUARIO_NOT_FOUND", "Usuario no encontrado", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCorreoNoRegistrado):
		return pkg.NewDomainErrorSimple("CORREO_NOT_FOUND", "Correo no registrado", http.StatusNotFound)
	case errors.Is(err, usecase.ErrContrasenaIncorrecta):
		return pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Contrasena incorrecta", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Ocurrio un error interno", err, http.StatusInternalServerError)
	}
}
