package memory

import (
	"github.com/jcamargo/almacen-api/internal/domain/entity"
	"github.com/jcamargo/almacen-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación en memoria de ProductRepository. Con s atado al
// almacén compartido; con d atado al estado de una transacción.
type ProductRepo struct {
	s *Store
	d *data
}

// Create asigna un ID secuencial y guarda una copia del producto.
func (r *ProductRepo) Create(product *entity.Product) error {
	return repoData(r.s, r.d, func(d *data) error {
		product.ID = d.nextProductID
		d.nextProductID++
		cp := *product
		d.products[product.ID] = &cp
		return nil
	})
}

// GetByID devuelve una copia del producto o (nil, nil) si no existe.
func (r *ProductRepo) GetByID(id int64) (*entity.Product, error) {
	var out *entity.Product
	err := repoData(r.s, r.d, func(d *data) error {
		if p, ok := d.products[id]; ok {
			cp := *p
			out = &cp
		}
		return nil
	})
	return out, err
}

// GetByIDForUpdate en memoria equivale a GetByID: el TxRunner serializa las
// transacciones con el mutex del almacén.
func (r *ProductRepo) GetByIDForUpdate(id int64) (*entity.Product, error) {
	return r.GetByID(id)
}

// Update reemplaza el producto almacenado.
func (r *ProductRepo) Update(product *entity.Product) error {
	return repoData(r.s, r.d, func(d *data) error {
		if _, ok := d.products[product.ID]; ok {
			cp := *product
			d.products[product.ID] = &cp
		}
		return nil
	})
}

// UpdateStock persiste stock y estado derivado.
func (r *ProductRepo) UpdateStock(id int64, stock int, status string) error {
	return repoData(r.s, r.d, func(d *data) error {
		if p, ok := d.products[id]; ok {
			p.Stock = stock
			p.Status = status
		}
		return nil
	})
}

// List devuelve los productos en orden de inserción (ID ascendente).
func (r *ProductRepo) List() ([]*entity.Product, error) {
	var out []*entity.Product
	err := repoData(r.s, r.d, func(d *data) error {
		for _, id := range sortedProductIDs(d) {
			cp := *d.products[id]
			out = append(out, &cp)
		}
		return nil
	})
	return out, err
}

// Delete elimina el producto; los detalles que lo referencian no se tocan.
func (r *ProductRepo) Delete(id int64) error {
	return repoData(r.s, r.d, func(d *data) error {
		delete(d.products, id)
		return nil
	})
}
