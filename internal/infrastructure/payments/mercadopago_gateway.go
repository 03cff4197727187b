package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("pasarela mercado pago no configurada")

// PasarelaMercadoPago charges repair totals through Mercado Pago.
//
// With PASARELA_PAGOS_MOCK enabled no external call is made: the gateway
// fabricates an approved response, which keeps local runs and CI independent
// of provider credentials.
type PasarelaMercadoPago struct {
	client   payment.Client
	mockMode bool
}

func NewPasarelaMercadoPago(accessToken string) (*PasarelaMercadoPago, error) {
	if isPasarelaMockEnabled() {
		log.Printf("[pago][pasarela] modo mock habilitado")
		return &PasarelaMercadoPago{mockMode: true}, nil
	}

	if accessToken == "" {
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[pago][pasarela] fallo creando configuracion sdk err=%v", err)
		return nil, err
	}
	log.Printf("[pago][pasarela] cliente Mercado Pago inicializado")

	return &PasarelaMercadoPago{client: payment.NewClient(cfg)}, nil
}

func (g *PasarelaMercadoPago) CobrarPago(ctx context.Context, monto float64, descripcion string, payload json.RawMessage) (string, string, json.RawMessage, error) {
	cuerpo := map[string]any{}
	if len(payload) > 0 && json.Valid(payload) {
		_ = json.Unmarshal(payload, &cuerpo)
	}
	// The stored repair total is the source of truth for the amount.
	cuerpo["transaction_amount"] = monto
	if _, ok := cuerpo["description"]; !ok {
		cuerpo["description"] = descripcion
	}

	if g != nil && g.mockMode {
		id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		ahora := time.Now().UTC().Format(time.RFC3339Nano)
		cuerpo["id"] = id
		cuerpo["status"] = "approved"
		cuerpo["status_detail"] = "accredited"
		cuerpo["date_created"] = ahora
		cuerpo["date_approved"] = ahora

		b, err := json.Marshal(cuerpo)
		if err != nil {
			return "", "", nil, err
		}
		log.Printf("[pago][pasarela] cobro mock exitoso id_proveedor=%s", id)
		return id, "approved", b, nil
	}

	if g == nil || g.client == nil {
		return "", "", nil, ErrMercadoPagoGatewayNotConfigured
	}

	enriquecido, err := json.Marshal(cuerpo)
	if err != nil {
		return "", "", nil, err
	}

	var req payment.Request
	if err := json.Unmarshal(enriquecido, &req); err != nil {
		log.Printf("[pago][pasarela] payload invalido err=%v", err)
		return "", "", nil, err
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		log.Printf("[pago][pasarela] sdk create fallo err=%v", err)
		return "", "", nil, err
	}

	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}
	log.Printf("[pago][pasarela] cobro exitoso id_proveedor=%d estatus=%s", resp.ID, resp.Status)

	return fmt.Sprintf("%d", resp.ID), resp.Status, b, nil
}

func isPasarelaMockEnabled() bool {
	for _, key := range []string{"PASARELA_PAGOS_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
