// Package memory implementa los puertos de persistencia sobre estructuras en
// memoria, con semántica transaccional real (clonar-y-reemplazar): el TxRunner
// trabaja sobre una copia del estado y solo la publica si el callback termina
// sin error. Se usa en las pruebas de casos de uso y handlers.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/jcamargo/almacen-api/internal/application/inventory"
	"github.com/jcamargo/almacen-api/internal/domain/entity"
	"github.com/jcamargo/almacen-api/internal/domain/repository"
)

// Store estado compartido. Crear con NewStore.
type Store struct {
	mu   sync.Mutex
	data *data
}

type data struct {
	products         map[int64]*entity.Product
	extractions      map[int64]*entity.Extraction
	details          []*entity.ExtractionDetail
	nextProductID    int64
	nextExtractionID int64
	nextDetailID     int64
}

// NewStore construye un almacén vacío.
func NewStore() *Store {
	return &Store{data: newData()}
}

func newData() *data {
	return &data{
		products:         make(map[int64]*entity.Product),
		extractions:      make(map[int64]*entity.Extraction),
		nextProductID:    1,
		nextExtractionID: 1,
		nextDetailID:     1,
	}
}

func (d *data) clone() *data {
	cp := newData()
	cp.nextProductID = d.nextProductID
	cp.nextExtractionID = d.nextExtractionID
	cp.nextDetailID = d.nextDetailID
	for id, p := range d.products {
		pc := *p
		cp.products[id] = &pc
	}
	for id, e := range d.extractions {
		ec := *e
		ec.Details = nil
		cp.extractions[id] = &ec
	}
	cp.details = make([]*entity.ExtractionDetail, 0, len(d.details))
	for _, det := range d.details {
		dc := *det
		cp.details = append(cp.details, &dc)
	}
	return cp
}

// NewProductRepository devuelve un repositorio atado al almacén (equivalente
// al adaptador atado al pool).
func (s *Store) NewProductRepository() repository.ProductRepository {
	return &ProductRepo{s: s}
}

// NewExtractionRepository devuelve un repositorio atado al almacén.
func (s *Store) NewExtractionRepository() repository.ExtractionRepository {
	return &ExtractionRepo{s: s}
}

// NewTxRunner devuelve un runner transaccional sobre el almacén.
func (s *Store) NewTxRunner() inventory.TxRunner {
	return &TxRunner{s: s}
}

// TxRunner ejecuta fn sobre una copia del estado; publica la copia solo si fn
// devuelve nil. Cualquier error descarta todas las escrituras (rollback).
type TxRunner struct {
	s *Store
}

// Run implementa inventory.TxRunner.
func (r *TxRunner) Run(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	extractionRepo repository.ExtractionRepository,
) error) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	txData := r.s.data.clone()
	if err := fn(&ProductRepo{d: txData}, &ExtractionRepo{d: txData}); err != nil {
		return err
	}
	r.s.data = txData
	return nil
}

// repoData resuelve el estado a usar: el de la transacción (d) o el del
// almacén bajo su mutex.
func repoData(s *Store, d *data, fn func(*data) error) error {
	if d != nil {
		return fn(d)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.data)
}

func sortedProductIDs(d *data) []int64 {
	ids := make([]int64, 0, len(d.products))
	for id := range d.products {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func sortedExtractionIDs(d *data) []int64 {
	ids := make([]int64, 0, len(d.extractions))
	for id := range d.extractions {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
