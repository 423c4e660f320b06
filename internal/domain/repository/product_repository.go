package repository

import "github.com/jhoicas/tilestrack-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id int64) (*entity.Product, error)
	GetByName(name string) (*entity.Product, error)
	List() ([]*entity.Product, error)
	Update(product *entity.Product) error
	// AdjustStock aplica el delta sobre stock_qty de forma atómica en la base
	// (stock_qty = stock_qty + delta) y devuelve el producto actualizado.
	AdjustStock(id int64, delta int64) (*entity.Product, error)
	Delete(id int64) error
	ListLowStock() ([]*entity.Product, error)
	CountLowStock() (int64, error)
}
