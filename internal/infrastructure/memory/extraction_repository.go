package memory

import (
	"github.com/jcamargo/almacen-api/internal/domain/entity"
	"github.com/jcamargo/almacen-api/internal/domain/repository"
)

var _ repository.ExtractionRepository = (*ExtractionRepo)(nil)

// ExtractionRepo implementación en memoria de ExtractionRepository. Con s
// atado al almacén compartido; con d atado al estado de una transacción.
type ExtractionRepo struct {
	s *Store
	d *data
}

// Create asigna un ID secuencial y guarda la cabecera.
func (r *ExtractionRepo) Create(extraction *entity.Extraction) error {
	return repoData(r.s, r.d, func(d *data) error {
		extraction.ID = d.nextExtractionID
		d.nextExtractionID++
		cp := *extraction
		cp.Details = nil
		d.extractions[extraction.ID] = &cp
		return nil
	})
}

// GetByID devuelve la cabecera (sin detalles) o (nil, nil) si no existe.
func (r *ExtractionRepo) GetByID(id int64) (*entity.Extraction, error) {
	var out *entity.Extraction
	err := repoData(r.s, r.d, func(d *data) error {
		if e, ok := d.extractions[id]; ok {
			cp := *e
			cp.Details = nil
			out = &cp
		}
		return nil
	})
	return out, err
}

// List devuelve todas las extracciones con detalles anidados, en orden de
// registro.
func (r *ExtractionRepo) List() ([]*entity.Extraction, error) {
	var out []*entity.Extraction
	err := repoData(r.s, r.d, func(d *data) error {
		for _, id := range sortedExtractionIDs(d) {
			cp := *d.extractions[id]
			cp.Details = []*entity.ExtractionDetail{}
			for _, det := range d.details {
				if det.ExtractionID == id {
					dc := *det
					cp.Details = append(cp.Details, &dc)
				}
			}
			out = append(out, &cp)
		}
		return nil
	})
	return out, err
}

// ListDetails devuelve las líneas de una extracción en orden de registro.
func (r *ExtractionRepo) ListDetails(extractionID int64) ([]*entity.ExtractionDetail, error) {
	var out []*entity.ExtractionDetail
	err := repoData(r.s, r.d, func(d *data) error {
		for _, det := range d.details {
			if det.ExtractionID == extractionID {
				dc := *det
				out = append(out, &dc)
			}
		}
		return nil
	})
	return out, err
}

// CreateDetail asigna un ID secuencial y agrega la línea.
func (r *ExtractionRepo) CreateDetail(detail *entity.ExtractionDetail) error {
	return repoData(r.s, r.d, func(d *data) error {
		detail.ID = d.nextDetailID
		d.nextDetailID++
		cp := *detail
		d.details = append(d.details, &cp)
		return nil
	})
}

// UpdateDescription modifica solo la descripción.
func (r *ExtractionRepo) UpdateDescription(id int64, description string) error {
	return repoData(r.s, r.d, func(d *data) error {
		if e, ok := d.extractions[id]; ok {
			e.Description = description
		}
		return nil
	})
}

// DeleteDetails elimina todas las líneas de una extracción.
func (r *ExtractionRepo) DeleteDetails(extractionID int64) error {
	return repoData(r.s, r.d, func(d *data) error {
		kept := d.details[:0]
		for _, det := range d.details {
			if det.ExtractionID != extractionID {
				kept = append(kept, det)
			}
		}
		d.details = kept
		return nil
	})
}

// Delete elimina la cabecera.
func (r *ExtractionRepo) Delete(id int64) error {
	return repoData(r.s, r.d, func(d *data) error {
		delete(d.extractions, id)
		return nil
	})
}
