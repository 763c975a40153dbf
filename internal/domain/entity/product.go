package entity

// Estados derivados del stock de un producto.
const (
	StatusInStock    = "InStock"
	StatusLowStock   = "LowStock"
	StatusOutOfStock = "OutOfStock"
)

// Product representa un producto del inventario. Status es un campo derivado:
// se recalcula con RefreshStatus cada vez que cambia Stock o StockMinimum y
// nunca se persiste desincronizado.
type Product struct {
	ID           int64
	Description  string
	Stock        int
	StockMinimum int
	Supplier     string
	Category     string
	Status       string
}

// RefreshStatus recalcula Status a partir de Stock y StockMinimum.
// Total: cualquier par (stock, stock_minimum) cae en exactamente un estado.
// Si StockMinimum <= 0, LowStock es inalcanzable (cualquier stock positivo
// es InStock); se acepta, no se trata como caso especial.
func (p *Product) RefreshStatus() {
	switch {
	case p.Stock <= 0:
		p.Status = StatusOutOfStock
	case p.Stock < p.StockMinimum:
		p.Status = StatusLowStock
	default:
		p.Status = StatusInStock
	}
}
