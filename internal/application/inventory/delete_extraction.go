package inventory

import (
	"context"
	"fmt"

	"github.com/jcamargo/almacen-api/internal/application/dto"
	"github.com/jcamargo/almacen-api/internal/domain"
	"github.com/jcamargo/almacen-api/internal/domain/repository"
)

// Delete elimina una extracción y todas sus líneas de detalle en una sola
// transacción. Con restoreStock, antes de borrar devuelve la cantidad de cada
// detalle al producto referenciado y recalcula su estado; los productos ya
// eliminados se omiten en silencio (la referencia es por valor, no es error).
// El borrado es explícito en dos pasos: detalles primero, luego la extracción.
func (uc *ExtractionUseCase) Delete(ctx context.Context, id int64, restoreStock bool) (*dto.DeleteExtractionResponse, error) {
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		extractionRepo repository.ExtractionRepository,
	) error {
		extraction, err := extractionRepo.GetByID(id)
		if err != nil {
			return err
		}
		if extraction == nil {
			return domain.ErrNotFound
		}

		if restoreStock {
			details, err := extractionRepo.ListDetails(id)
			if err != nil {
				return err
			}
			for _, detail := range details {
				product, err := productRepo.GetByIDForUpdate(detail.ProductID)
				if err != nil {
					return err
				}
				if product == nil {
					continue
				}
				product.Stock += detail.Quantity
				product.RefreshStatus()
				if err := productRepo.UpdateStock(product.ID, product.Stock, product.Status); err != nil {
					return err
				}
			}
		}

		if err := extractionRepo.DeleteDetails(id); err != nil {
			return err
		}
		return extractionRepo.Delete(id)
	})
	if err != nil {
		return nil, err
	}

	return &dto.DeleteExtractionResponse{
		Message:        fmt.Sprintf("Extracción ID %d eliminada", id),
		StockRestored:  restoreStock,
		DetailsDeleted: true,
	}, nil
}
