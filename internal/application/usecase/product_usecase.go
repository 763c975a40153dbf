package usecase

import (
	"github.com/jcamargo/almacen-api/internal/application/dto"
	"github.com/jcamargo/almacen-api/internal/domain"
	"github.com/jcamargo/almacen-api/internal/domain/entity"
	"github.com/jcamargo/almacen-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. El stock también se
// modifica desde el motor de extracciones (transaccional); aquí solo ediciones
// directas.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un producto con su estado ya derivado. description, stock y
// stock_minimum son obligatorios; supplier y category tienen defaults.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.CreateProductResponse, error) {
	if in.Description == nil || *in.Description == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Stock == nil || in.StockMinimum == nil {
		return nil, domain.ErrInvalidInput
	}
	category := in.Category
	if category == "" {
		category = "General"
	}
	product := &entity.Product{
		Description:  *in.Description,
		Stock:        in.Stock.Int(),
		StockMinimum: in.StockMinimum.Int(),
		Supplier:     in.Supplier,
		Category:     category,
	}
	product.RefreshStatus()
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return &dto.CreateProductResponse{
		Message: "Producto creado exitosamente",
		ID:      product.ID,
	}, nil
}

// Update aplica solo los campos presentes. Si cambian stock o stock_minimum
// se recalcula el estado; un status explícito se aplica al final y prevalece
// (orden de campos del contrato original). Devuelve (nil, nil) si no existe.
func (uc *ProductUseCase) Update(id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Stock != nil {
		product.Stock = in.Stock.Int()
		product.RefreshStatus()
	}
	if in.StockMinimum != nil {
		product.StockMinimum = in.StockMinimum.Int()
		product.RefreshStatus()
	}
	if in.Supplier != nil {
		product.Supplier = *in.Supplier
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.Status != nil {
		product.Status = *in.Status
	}
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista todos los productos (orden de inserción).
func (uc *ProductUseCase) List() ([]dto.ProductResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

// Delete elimina un producto. Devuelve (false, nil) si no existe.
func (uc *ProductUseCase) Delete(id int64) (bool, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return false, err
	}
	if product == nil {
		return false, nil
	}
	if err := uc.repo.Delete(id); err != nil {
		return false, err
	}
	return true, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:           p.ID,
		Description:  p.Description,
		Stock:        p.Stock,
		StockMinimum: p.StockMinimum,
		Supplier:     p.Supplier,
		Category:     p.Category,
		Status:       p.Status,
	}
}
