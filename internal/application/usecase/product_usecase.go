package usecase

import (
	"github.com/jhoicas/tilestrack-api/internal/application/dto"
	"github.com/jhoicas/tilestrack-api/internal/domain"
	"github.com/jhoicas/tilestrack-api/internal/domain/entity"
	"github.com/jhoicas/tilestrack-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos y alertas de stock bajo.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un producto. El nombre es único en el catálogo; devuelve
// ErrDuplicate si ya existe. Sin min_stock explícito se aplica el default por categoría.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	existing, err := uc.repo.GetByName(in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	category := in.Category
	if category == "" {
		category = entity.DefaultCategory
	}
	minStock := entity.DefaultMinStock(category)
	if in.MinStock != nil {
		minStock = *in.MinStock
	}
	product := &entity.Product{
		Name:     in.Name,
		Category: category,
		Size:     in.Size,
		Price:    in.Price,
		StockQty: in.StockQty,
		MinStock: minStock,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista todos los productos del catálogo.
func (uc *ProductUseCase) List() ([]dto.ProductResponse, error) {
	products, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, *toProductResponse(p))
	}
	return out, nil
}

// Update actualiza parcialmente un producto; nil significa "sin cambio".
// El PUT con stock_qty se mantiene por compatibilidad con la edición de campos;
// para incrementos de stock usar AdjustStock.
func (uc *ProductUseCase) Update(id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.Size != nil {
		product.Size = *in.Size
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.StockQty != nil {
		product.StockQty = *in.StockQty
	}
	if in.MinStock != nil {
		product.MinStock = *in.MinStock
	}
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// AdjustStock aplica un delta de stock de forma atómica en el servidor.
// Devuelve ErrNotFound si el producto no existe y ErrInsufficientStock si el
// resultado quedaría negativo.
func (uc *ProductUseCase) AdjustStock(id, delta int64) (*dto.ProductResponse, error) {
	if delta == 0 {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.repo.AdjustStock(id, delta)
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto y, en cascada, sus ventas.
func (uc *ProductUseCase) Delete(id int64) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// ListLowStock lista los productos en o por debajo de su umbral de alerta.
func (uc *ProductUseCase) ListLowStock() ([]dto.ProductResponse, error) {
	products, err := uc.repo.ListLowStock()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, *toProductResponse(p))
	}
	return out, nil
}

// CountLowStock cuenta los productos en alerta (insignia del navbar).
func (uc *ProductUseCase) CountLowStock() (int64, error) {
	return uc.repo.CountLowStock()
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:       p.ID,
		Name:     p.Name,
		Category: p.Category,
		Size:     p.Size,
		Price:    p.Price,
		StockQty: p.StockQty,
		MinStock: p.MinStock,
	}
}
