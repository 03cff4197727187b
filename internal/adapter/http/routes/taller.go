package routes

import (
	"taller_api/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCitas        = "/citas"
	PathUsuarios     = "/usuarios"
	PathReparaciones = "/reparaciones"
	PathRefacciones  = "/refacciones"
	PathDispositivos = "/dispositivos"
	PathPagos        = "/pagos"
)

func addTallerRoutes(
	rg *gin.RouterGroup,
	citaHandler *handlers.CitaHandler,
	usuarioHandler *handlers.UsuarioHandler,
	reparacionHandler *handlers.ReparacionHandler,
	refaccionHandler *handlers.RefaccionHandler,
	dispositivoHandler *handlers.DispositivoHandler,
	pagoHandler *handlers.PagoHandler,
) {
	citas := rg.Group(PathCitas)
	{
		citas.POST("", citaHandler.CreateCita)
		citas.GET("", citaHandler.ListCitas)
		citas.GET("/:id", citaHandler.GetCitaByID)
		citas.PUT("/:id/confirmar", citaHandler.ConfirmCita)
		citas.PUT("/:id/cancelar", citaHandler.CancelCita)
		citas.PUT("/:id/finalizar", citaHandler.FinalizeCita)
		citas.DELETE("/:id", citaHandler.DeleteCita)
	}

	usuarios := rg.Group(PathUsuarios)
	{
		usuarios.POST("", usuarioHandler.CreateUsuario)
		usuarios.GET("", usuarioHandler.ListUsuarios)
		usuarios.GET("/:id", usuarioHandler.GetUsuarioByID)
		usuarios.PUT("/:id", usuarioHandler.UpdateUsuario)
		usuarios.DELETE("/:id", usuarioHandler.DeleteUsuario)
		usuarios.POST("/validar", usuarioHandler.ValidateCredenciales)
	}

	reparaciones := rg.Group(PathReparaciones)
	{
		reparaciones.POST("", reparacionHandler.CreateReparacion)
		reparaciones.GET("", reparacionHandler.ListReparaciones)
		reparaciones.GET("/:id", reparacionHandler.GetReparacionByID)
		reparaciones.PUT("/:id", reparacionHandler.UpdateReparacion)
		reparaciones.PUT("/:id/cancelar", reparacionHandler.CancelReparacion)
		reparaciones.PUT("/:id/finalizar", reparacionHandler.FinalizeReparacion)
	}

	refacciones := rg.Group(PathRefacciones)
	{
		refacciones.POST("", refaccionHandler.CreateRefaccion)
		refacciones.GET("", refaccionHandler.ListRefacciones)
		refacciones.GET("/:id", refaccionHandler.GetRefaccionByID)
		refacciones.PUT("/:id", refaccionHandler.UpdateRefaccion)
		refacciones.DELETE("/:id", refaccionHandler.DeleteRefaccion)

		// Spare-part usage embedded in repairs.
		refacciones.GET("/reparaciones", reparacionHandler.ListReparacionesConRefacciones)
		refacciones.POST("/reparaciones/:id", reparacionHandler.AddRefaccionUsada)
		refacciones.PUT("/reparaciones/:id/:idRefaccion", reparacionHandler.UpdateRefaccionUsada)
	}

	dispositivos := rg.Group(PathDispositivos)
	{
		dispositivos.POST("", dispositivoHandler.CreateDispositivo)
		dispositivos.GET("", dispositivoHandler.ListDispositivos)
		dispositivos.GET("/:id", dispositivoHandler.GetDispositivoByID)
		dispositivos.PUT("/:id", dispositivoHandler.UpdateDispositivo)
		dispositivos.DELETE("/:id", dispositivoHandler.DeleteDispositivo)
	}

	pagos := rg.Group(PathPagos)
	{
		pagos.POST("/:idReparacion", pagoHandler.CreatePago)
		pagos.GET("/:idReparacion", pagoHandler.GetPagoByReparacion)
	}
}
