package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jcamargo/almacen-api/internal/domain/entity"
	"github.com/jcamargo/almacen-api/internal/domain/repository"
)

var _ repository.ExtractionRepository = (*ExtractionRepo)(nil)

// ExtractionRepo implementación de ExtractionRepository (usable con pool o tx).
type ExtractionRepo struct {
	q Querier
}

// NewExtractionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewExtractionRepository(q Querier) *ExtractionRepo {
	return &ExtractionRepo{q: q}
}

// Create persiste la cabecera de la extracción y asigna el ID serial.
func (r *ExtractionRepo) Create(extraction *entity.Extraction) error {
	query := `
		INSERT INTO extractions (description, occurred_at)
		VALUES ($1, $2)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		extraction.Description, extraction.Timestamp,
	).Scan(&extraction.ID)
	if err != nil {
		return fmt.Errorf("insert extraction: %w", err)
	}
	return nil
}

// GetByID obtiene la cabecera de una extracción. Devuelve (nil, nil) si no
// existe; no carga los detalles.
func (r *ExtractionRepo) GetByID(id int64) (*entity.Extraction, error) {
	query := `SELECT id, description, occurred_at FROM extractions WHERE id = $1`
	var e entity.Extraction
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&e.ID, &e.Description, &e.Timestamp,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get extraction: %w", err)
	}
	return &e, nil
}

// List devuelve todas las extracciones con sus detalles anidados. Dos
// consultas: cabeceras y detalles, agrupados en memoria por extraction_id,
// ambos en orden de inserción.
func (r *ExtractionRepo) List() ([]*entity.Extraction, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, description, occurred_at FROM extractions ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list extractions: %w", err)
	}
	defer rows.Close()

	var list []*entity.Extraction
	byID := make(map[int64]*entity.Extraction)
	for rows.Next() {
		var e entity.Extraction
		if err := rows.Scan(&e.ID, &e.Description, &e.Timestamp); err != nil {
			return nil, fmt.Errorf("scan extraction: %w", err)
		}
		e.Details = []*entity.ExtractionDetail{}
		list = append(list, &e)
		byID[e.ID] = &e
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	rows.Close()

	detailRows, err := r.q.Query(context.Background(),
		`SELECT id, extraction_id, product_id, quantity FROM extraction_details ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list extraction details: %w", err)
	}
	defer detailRows.Close()
	for detailRows.Next() {
		var d entity.ExtractionDetail
		if err := detailRows.Scan(&d.ID, &d.ExtractionID, &d.ProductID, &d.Quantity); err != nil {
			return nil, fmt.Errorf("scan extraction detail: %w", err)
		}
		if e, ok := byID[d.ExtractionID]; ok {
			e.Details = append(e.Details, &d)
		}
	}
	return list, detailRows.Err()
}

// ListDetails devuelve las líneas de detalle de una extracción en el orden
// en que fueron registradas.
func (r *ExtractionRepo) ListDetails(extractionID int64) ([]*entity.ExtractionDetail, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, extraction_id, product_id, quantity FROM extraction_details WHERE extraction_id = $1 ORDER BY id`,
		extractionID)
	if err != nil {
		return nil, fmt.Errorf("list details: %w", err)
	}
	defer rows.Close()
	var list []*entity.ExtractionDetail
	for rows.Next() {
		var d entity.ExtractionDetail
		if err := rows.Scan(&d.ID, &d.ExtractionID, &d.ProductID, &d.Quantity); err != nil {
			return nil, fmt.Errorf("scan detail: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// CreateDetail persiste una línea de detalle.
func (r *ExtractionRepo) CreateDetail(detail *entity.ExtractionDetail) error {
	query := `
		INSERT INTO extraction_details (extraction_id, product_id, quantity)
		VALUES ($1, $2, $3)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		detail.ExtractionID, detail.ProductID, detail.Quantity,
	).Scan(&detail.ID)
	if err != nil {
		return fmt.Errorf("insert extraction detail: %w", err)
	}
	return nil
}

// UpdateDescription modifica solo la descripción.
func (r *ExtractionRepo) UpdateDescription(id int64, description string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE extractions SET description = $2 WHERE id = $1`,
		id, description,
	)
	if err != nil {
		return fmt.Errorf("update extraction: %w", err)
	}
	return nil
}

// DeleteDetails elimina todas las líneas de una extracción (paso 1 del
// borrado en cascada explícito).
func (r *ExtractionRepo) DeleteDetails(extractionID int64) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM extraction_details WHERE extraction_id = $1`, extractionID)
	if err != nil {
		return fmt.Errorf("delete extraction details: %w", err)
	}
	return nil
}

// Delete elimina la cabecera (paso 2; requiere detalles ya eliminados por la
// FK RESTRICT).
func (r *ExtractionRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM extractions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete extraction: %w", err)
	}
	return nil
}
