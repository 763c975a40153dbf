package repository

import (
	"github.com/jcamargo/almacen-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetByID devuelve (nil, nil) si el producto no existe.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id int64) (*entity.Product, error)
	// GetByIDForUpdate bloquea la fila (SELECT ... FOR UPDATE); solo tiene
	// sentido dentro de una transacción.
	GetByIDForUpdate(id int64) (*entity.Product, error)
	Update(product *entity.Product) error
	// UpdateStock persiste stock y estado derivado en una sola sentencia.
	UpdateStock(id int64, stock int, status string) error
	List() ([]*entity.Product, error)
	Delete(id int64) error
}
