package request

import (
	"errors"
	"testing"
)

func TestReparacionCreateRequest_ToEntity(t *testing.T) {
	t.Run("refaccion repetida", func(t *testing.T) {
		payload := ReparacionCreateRequest{
			IDCita: 2,
			Tipo:   "pantalla",
			Refacciones: []RefaccionUsadaRequest{
				{IDRefaccion: 9, Nombre: "Bateria"},
				{IDRefaccion: 9, Nombre: "Bateria OEM"},
			},
		}

		_, err := payload.ToEntity()
		if !errors.Is(err, ErrRefaccionRepetida) {
			t.Fatalf("expected ErrRefaccionRepetida, got %v", err)
		}
	})

	t.Run("indexa refacciones por id", func(t *testing.T) {
		payload := ReparacionCreateRequest{
			IDCita: 2,
			Tipo:   "pantalla",
			Refacciones: []RefaccionUsadaRequest{
				{IDRefaccion: 9, Nombre: "Bateria", Precio: 350, Cantidad: 1},
				{IDRefaccion: 12, Nombre: "Pantalla", Precio: 1200, Cantidad: 1},
			},
		}

		entidad, err := payload.ToEntity()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(entidad.Refacciones) != 2 {
			t.Fatalf("expected 2 refacciones, got %d", len(entidad.Refacciones))
		}
		if entidad.Refacciones[9].Nombre != "Bateria" || entidad.Refacciones[12].Precio != 1200 {
			t.Fatalf("unexpected refacciones: %+v", entidad.Refacciones)
		}
	})
}

func TestReparacionUpdateRequest_Campos(t *testing.T) {
	t.Run("payload vacio", func(t *testing.T) {
		campos := ReparacionUpdateRequest{}.Campos()
		if len(campos) != 0 {
			t.Fatalf("expected empty campos, got %v", campos)
		}
	})

	t.Run("solo campos presentes", func(t *testing.T) {
		estatus := "EnProceso"
		costo := 1500.0
		campos := ReparacionUpdateRequest{Estatus: &estatus, CostoTotal: &costo}.Campos()

		if len(campos) != 2 {
			t.Fatalf("expected 2 campos, got %v", campos)
		}
		if campos["estatus"] != "EnProceso" || campos["costo_total"] != 1500.0 {
			t.Fatalf("unexpected campos: %v", campos)
		}
	})
}
