package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/jcamargo/almacen-api/internal/application/dto"
	"github.com/jcamargo/almacen-api/internal/domain"
	"github.com/jcamargo/almacen-api/internal/domain/entity"
	"github.com/jcamargo/almacen-api/internal/domain/repository"
)

// DefaultExtractionDescription descripción usada cuando el caller no envía una.
const DefaultExtractionDescription = "Extracción sin descripción"

// Create registra una extracción en dos fases dentro de una sola transacción:
//
//  1. Validación: bloquea cada producto referenciado (FOR UPDATE) y recolecta
//     TODAS las violaciones (producto inexistente, stock insuficiente) sin
//     cortar en la primera. Cualquier violación devuelve
//     StockValidationError y la transacción se revierte sin tocar estado.
//     Productos repetidos en la solicitud se validan contra el stock ya
//     reservado por ítems anteriores, así el stock nunca queda negativo.
//
//  2. Confirmación: inserta la extracción, descuenta stock, recalcula estado
//     e inserta cada línea de detalle. Todo o nada.
func (uc *ExtractionUseCase) Create(ctx context.Context, in dto.CreateExtractionRequest) (*dto.CreateExtractionResponse, error) {
	description := DefaultExtractionDescription
	if in.Description != nil && *in.Description != "" {
		description = *in.Description
	}
	timestamp := time.Now()
	if in.Timestamp != nil && *in.Timestamp != "" {
		ts, err := parseTimestamp(*in.Timestamp)
		if err != nil {
			return nil, fmt.Errorf("timestamp inválido: %w", err)
		}
		timestamp = ts
	}

	var stockUpdated []dto.StockUpdatedItem
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		extractionRepo repository.ExtractionRepository,
	) error {
		// Fase 1: validación bajo bloqueo de fila, sin mutaciones.
		var violations []string
		locked := make(map[int64]*entity.Product)
		for _, item := range in.Products {
			product, ok := locked[item.ProductID]
			if !ok {
				var err error
				product, err = productRepo.GetByIDForUpdate(item.ProductID)
				if err != nil {
					return err
				}
				locked[item.ProductID] = product
			}
			if product == nil {
				violations = append(violations, fmt.Sprintf("Producto ID %d no existe", item.ProductID))
				continue
			}
			if product.Stock < item.Quantity {
				violations = append(violations, fmt.Sprintf(
					"Stock insuficiente para %s (Stock actual: %d, Se requieren: %d)",
					product.Description, product.Stock, item.Quantity,
				))
				continue
			}
			// Reserva en memoria: un segundo ítem del mismo producto valida
			// contra el stock restante.
			product.Stock -= item.Quantity
		}
		if len(violations) > 0 {
			return &domain.StockValidationError{Detalles: violations}
		}

		// Fase 2: confirmación.
		extraction := &entity.Extraction{
			Description: description,
			Timestamp:   timestamp,
		}
		if err := extractionRepo.Create(extraction); err != nil {
			return err
		}
		for _, item := range in.Products {
			product := locked[item.ProductID]
			product.RefreshStatus()
			if err := productRepo.UpdateStock(product.ID, product.Stock, product.Status); err != nil {
				return err
			}
			if err := extractionRepo.CreateDetail(&entity.ExtractionDetail{
				ExtractionID: extraction.ID,
				ProductID:    item.ProductID,
				Quantity:     item.Quantity,
			}); err != nil {
				return err
			}
		}
		stockUpdated = make([]dto.StockUpdatedItem, 0, len(in.Products))
		for _, item := range in.Products {
			stockUpdated = append(stockUpdated, dto.StockUpdatedItem{
				ProductID: item.ProductID,
				NewStock:  locked[item.ProductID].Stock,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &dto.CreateExtractionResponse{
		Message:               "Extracción registrada exitosamente",
		ExtractionDescription: description,
		StockUpdated:          stockUpdated,
	}, nil
}

// parseTimestamp acepta RFC3339 y el formato ISO-8601 sin zona que enviaba
// el frontend original.
func parseTimestamp(s string) (time.Time, error) {
	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		return ts, nil
	}
	return time.Parse("2006-01-02T15:04:05", s)
}
