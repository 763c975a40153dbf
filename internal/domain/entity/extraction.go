package entity

import "time"

// Extraction representa un evento de retiro de stock. Es dueña exclusiva de
// sus líneas de detalle: al eliminarla se eliminan también los detalles.
type Extraction struct {
	ID          int64
	Description string
	Timestamp   time.Time
	Details     []*ExtractionDetail
}

// ExtractionDetail es una línea producto/cantidad dentro de una extracción.
// ProductID referencia al producto por valor: el producto puede eliminarse
// después y el detalle sigue existiendo.
type ExtractionDetail struct {
	ID           int64
	ExtractionID int64
	ProductID    int64
	Quantity     int
}
