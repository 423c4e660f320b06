package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tilestrack-api/internal/application/dto"
	"github.com/jhoicas/tilestrack-api/internal/domain"
	"github.com/jhoicas/tilestrack-api/internal/domain/entity"
	"github.com/jhoicas/tilestrack-api/internal/domain/repository"
)

// TxRunner ejecuta el callback con repos atados a una misma transacción.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		products repository.ProductRepository,
		sales repository.SaleRepository,
	) error) error
}

// InsufficientStockError venta rechazada por stock insuficiente; lleva el stock
// disponible para que el cliente lo muestre en el mensaje inline.
type InsufficientStockError struct {
	Available int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente: disponible %d", e.Available)
}

// Unwrap permite errors.Is(err, domain.ErrInsufficientStock).
func (e *InsufficientStockError) Unwrap() error { return domain.ErrInsufficientStock }

// SaleUseCase registra ventas y lista el histórico.
type SaleUseCase struct {
	tx       TxRunner
	saleRepo repository.SaleRepository
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(tx TxRunner, saleRepo repository.SaleRepository) *SaleUseCase {
	return &SaleUseCase{tx: tx, saleRepo: saleRepo}
}

// Record registra una venta: congela el precio total (precio × cantidad),
// descuenta stock e inserta la venta en una sola transacción. El descuento es
// condicional en SQL, así dos ventas concurrentes no pueden dejar stock negativo.
func (uc *SaleUseCase) Record(ctx context.Context, in dto.RecordSaleRequest) (*dto.RecordSaleResponse, error) {
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}

	var saleID int64
	err := uc.tx.Run(ctx, func(products repository.ProductRepository, sales repository.SaleRepository) error {
		product, err := products.GetByID(in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if product.StockQty < in.Quantity {
			return &InsufficientStockError{Available: product.StockQty}
		}
		if _, err := products.AdjustStock(product.ID, -in.Quantity); err != nil {
			return err
		}
		sale := &entity.Sale{
			ProductID:  product.ID,
			Quantity:   in.Quantity,
			TotalPrice: product.Price.Mul(decimal.NewFromInt(in.Quantity)),
			SaleDate:   time.Now(),
		}
		if err := sales.Create(sale); err != nil {
			return err
		}
		saleID = sale.ID
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &dto.RecordSaleResponse{Message: "Sale recorded", SaleID: saleID}, nil
}

// List lista las ventas del rango [from, to]; sin rango completo se lista el
// mes en curso (mismo default que el reporte).
func (uc *SaleUseCase) List(in dto.SalesListRequest) ([]dto.SaleResponse, error) {
	var from, to time.Time
	if in.From != "" && in.To != "" {
		fromDay, err := parseDay(in.From)
		if err != nil {
			return nil, err
		}
		toDay, err := parseDay(in.To)
		if err != nil {
			return nil, err
		}
		from, to = fromDay, endOfDay(toDay)
	} else {
		from, to = currentMonthWindow(time.Now())
	}

	rows, err := uc.saleRepo.ListByDateRange(from, to)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SaleResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.SaleResponse{
			SaleID:      r.SaleID,
			ProductName: r.ProductName,
			Quantity:    r.Quantity,
			TotalPrice:  r.TotalPrice,
			SaleDate:    r.SaleDate.Format("2006-01-02 15:04:05"),
		})
	}
	return out, nil
}

// parseDay interpreta una fecha YYYY-MM-DD; error de formato -> ErrInvalidDate.
func parseDay(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%q: %w", s, domain.ErrInvalidDate)
	}
	return t, nil
}

// endOfDay lleva la fecha al último instante del día para que el límite
// superior sea inclusivo.
func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// currentMonthWindow devuelve [primer instante, último instante] del mes de ref.
func currentMonthWindow(ref time.Time) (time.Time, time.Time) {
	start := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	return start, start.AddDate(0, 1, 0).Add(-time.Nanosecond)
}
