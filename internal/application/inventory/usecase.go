package inventory

import (
	"time"

	"github.com/jcamargo/almacen-api/internal/application/dto"
	"github.com/jcamargo/almacen-api/internal/domain"
	"github.com/jcamargo/almacen-api/internal/domain/repository"
)

// ExtractionUseCase mantiene el stock y el estado de los productos
// sincronizados con el libro de extracciones. Toda operación mutante corre
// dentro de una transacción vía TxRunner; la validación de stock se hace con
// bloqueo de fila (SELECT FOR UPDATE) en la misma transacción que confirma
// el descuento, cerrando la carrera check-then-act del diseño original.
type ExtractionUseCase struct {
	txRunner       TxRunner
	extractionRepo repository.ExtractionRepository
}

// NewExtractionUseCase construye el caso de uso. extractionRepo (atado al
// pool) atiende las lecturas; las escrituras usan los repos de la tx.
func NewExtractionUseCase(txRunner TxRunner, extractionRepo repository.ExtractionRepository) *ExtractionUseCase {
	return &ExtractionUseCase{txRunner: txRunner, extractionRepo: extractionRepo}
}

// List devuelve todas las extracciones con sus detalles anidados en el orden
// en que fueron registrados.
func (uc *ExtractionUseCase) List() ([]dto.ExtractionResponse, error) {
	list, err := uc.extractionRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ExtractionResponse, 0, len(list))
	for _, e := range list {
		details := make([]dto.ExtractionDetailResponse, 0, len(e.Details))
		for _, d := range e.Details {
			details = append(details, dto.ExtractionDetailResponse{
				ProductID: d.ProductID,
				Quantity:  d.Quantity,
			})
		}
		out = append(out, dto.ExtractionResponse{
			ID:          e.ID,
			Description: e.Description,
			Timestamp:   e.Timestamp.Format(time.RFC3339),
			Details:     details,
		})
	}
	return out, nil
}

// Update modifica solo la descripción de una extracción. Ítems y cantidades
// no son editables (asimetría del contrato original, preservada).
func (uc *ExtractionUseCase) Update(id int64, in dto.UpdateExtractionRequest) (*dto.UpdateExtractionResponse, error) {
	extraction, err := uc.extractionRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if extraction == nil {
		return nil, domain.ErrNotFound
	}
	if in.Description != nil {
		if err := uc.extractionRepo.UpdateDescription(id, *in.Description); err != nil {
			return nil, err
		}
	}
	return &dto.UpdateExtractionResponse{
		Message: "Extracción actualizada",
		ID:      id,
	}, nil
}
