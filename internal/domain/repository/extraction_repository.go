package repository

import (
	"github.com/jcamargo/almacen-api/internal/domain/entity"
)

// ExtractionRepository define el puerto de persistencia para Extraction y
// sus líneas de detalle. GetByID devuelve (nil, nil) si no existe.
type ExtractionRepository interface {
	Create(extraction *entity.Extraction) error
	GetByID(id int64) (*entity.Extraction, error)
	// List devuelve todas las extracciones con sus detalles anidados, en el
	// orden en que fueron registrados.
	List() ([]*entity.Extraction, error)
	ListDetails(extractionID int64) ([]*entity.ExtractionDetail, error)
	CreateDetail(detail *entity.ExtractionDetail) error
	UpdateDescription(id int64, description string) error
	// DeleteDetails y Delete se ejecutan como borrado explícito en dos pasos
	// (hijos, luego padre) dentro de una misma transacción.
	DeleteDetails(extractionID int64) error
	Delete(id int64) error
}
