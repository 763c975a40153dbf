package dto

// CreateProductRequest entrada para crear un producto. Stock y StockMinimum
// son punteros para distinguir "ausente" de cero.
type CreateProductRequest struct {
	Description  *string   `json:"description"`
	Stock        *IntField `json:"stock"`
	StockMinimum *IntField `json:"stock_minimum"`
	Supplier     string    `json:"supplier"`
	Category     string    `json:"category"`
}

// UpdateProductRequest entrada para actualizar parcialmente un producto.
// Solo se aplican los campos presentes. Status se aplica al final, después
// de recalcular el derivado (orden del contrato original).
type UpdateProductRequest struct {
	Description  *string   `json:"description"`
	Stock        *IntField `json:"stock"`
	StockMinimum *IntField `json:"stock_minimum"`
	Supplier     *string   `json:"supplier"`
	Category     *string   `json:"category"`
	Status       *string   `json:"status"`
}

// ProductResponse salida de un producto. El orden de los campos se preserva
// en la serialización.
type ProductResponse struct {
	ID           int64  `json:"id"`
	Description  string `json:"description"`
	Stock        int    `json:"stock"`
	StockMinimum int    `json:"stock_minimum"`
	Supplier     string `json:"supplier"`
	Category     string `json:"category"`
	Status       string `json:"status"`
}

// CreateProductResponse respuesta de POST /products.
type CreateProductResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}
