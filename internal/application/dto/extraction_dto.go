package dto

// ExtractionItemRequest un par producto/cantidad dentro de la solicitud.
type ExtractionItemRequest struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

// CreateExtractionRequest entrada de POST /extractions. Products nil indica
// campo ausente (400); una lista vacía es válida y crea una extracción sin
// detalles, igual que el contrato original.
type CreateExtractionRequest struct {
	Description *string                 `json:"description"`
	Timestamp   *string                 `json:"timestamp"`
	Products    []ExtractionItemRequest `json:"products"`
}

// StockUpdatedItem stock resultante de un producto tras la extracción.
type StockUpdatedItem struct {
	ProductID int64 `json:"productId"`
	NewStock  int   `json:"newStock"`
}

// CreateExtractionResponse respuesta de POST /extractions.
type CreateExtractionResponse struct {
	Message               string             `json:"message"`
	ExtractionDescription string             `json:"extractionDescription"`
	StockUpdated          []StockUpdatedItem `json:"stockUpdated"`
}

// UpdateExtractionRequest entrada de PATCH /extractions/:id. Solo la
// descripción es editable; ítems y cantidades quedan fuera del contrato.
type UpdateExtractionRequest struct {
	Description *string `json:"description"`
}

// UpdateExtractionResponse respuesta de PATCH /extractions/:id.
type UpdateExtractionResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

// DeleteExtractionRequest cuerpo opcional de DELETE /extractions/:id.
// RestoreStock usa 0|1 como en el contrato original.
type DeleteExtractionRequest struct {
	RestoreStock int `json:"restoreStock"`
}

// DeleteExtractionResponse respuesta de DELETE /extractions/:id.
type DeleteExtractionResponse struct {
	Message        string `json:"message"`
	StockRestored  bool   `json:"stockRestored"`
	DetailsDeleted bool   `json:"detailsDeleted"`
}

// ExtractionDetailResponse línea de detalle en GET /extractions.
type ExtractionDetailResponse struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

// ExtractionResponse elemento de GET /extractions. Timestamp en ISO-8601.
type ExtractionResponse struct {
	ID          int64                      `json:"id"`
	Description string                     `json:"description"`
	Timestamp   string                     `json:"timestamp"`
	Details     []ExtractionDetailResponse `json:"details"`
}
