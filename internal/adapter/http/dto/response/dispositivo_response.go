package response

import "taller_api/internal/domain/entities"

type DispositivoResponse struct {
	ID               int    `json:"idDispositivo"`
	Marca            string `json:"marca"`
	Modelo           string `json:"modelo"`
	Caracteristicas  string `json:"caracteristicas"`
	FallasReportadas string `json:"fallasReportadas"`
	Foto             string `json:"foto,omitempty"`
}

func FromDispositivo(d entities.Dispositivo) DispositivoResponse {
	return DispositivoResponse{
		ID:               d.ID,
		Marca:            d.Marca,
		Modelo:           d.Modelo,
		Caracteristicas:  d.Caracteristicas,
		FallasReportadas: d.FallasReportadas,
		Foto:             d.Foto,
	}
}

type DispositivoCreadoResponse struct {
	Estatus     bool                `json:"estatus"`
	Mensaje     string              `json:"mensaje"`
	Dispositivo DispositivoResponse `json:"dispositivo"`
}

type ListaDispositivosResponse struct {
	Estatus      bool                  `json:"estatus"`
	Dispositivos []DispositivoResponse `json:"dispositivos"`
}

func FromDispositivos(dispositivos []entities.Dispositivo) ListaDispositivosResponse {
	out := make([]DispositivoResponse, 0, len(dispositivos))
	for _, d := range dispositivos {
		out = append(out, FromDispositivo(d))
	}
	return ListaDispositivosResponse{Estatus: true, Dispositivos: out}
}
