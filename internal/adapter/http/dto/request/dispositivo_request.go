package request

import "taller_api/internal/domain/entities"

// DispositivoCreateRequest is the standalone device catalog creation payload.
type DispositivoCreateRequest struct {
	ID               int    `json:"idDispositivo" binding:"required"`
	Marca            string `json:"marca" binding:"required"`
	Modelo           string `json:"modelo" binding:"required"`
	Caracteristicas  string `json:"caracteristicas"`
	FallasReportadas string `json:"fallasReportadas"`
	Foto             string `json:"foto"`
}

func (r DispositivoCreateRequest) ToEntity() entities.Dispositivo {
	return entities.Dispositivo{
		ID:               r.ID,
		Marca:            r.Marca,
		Modelo:           r.Modelo,
		Caracteristicas:  r.Caracteristicas,
		FallasReportadas: r.FallasReportadas,
		Foto:             r.Foto,
	}
}

// DispositivoUpdateRequest is the sparse device update payload.
type DispositivoUpdateRequest struct {
	Marca            *string `json:"marca"`
	Modelo           *string `json:"modelo"`
	Caracteristicas  *string `json:"caracteristicas"`
	FallasReportadas *string `json:"fallasReportadas"`
	Foto             *string `json:"foto"`
}

func (r DispositivoUpdateRequest) Campos() map[string]interface{} {
	campos := map[string]interface{}{}
	if r.Marca != nil {
		campos["marca"] = *r.Marca
	}
	if r.Modelo != nil {
		campos["modelo"] = *r.Modelo
	}
	if r.Caracteristicas != nil {
		campos["caracteristicas"] = *r.Caracteristicas
	}
	if r.FallasReportadas != nil {
		campos["fallas_reportadas"] = *r.FallasReportadas
	}
	if r.Foto != nil {
		campos["foto"] = *r.Foto
	}
	return campos
}
