package usecase_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tilestrack-api/internal/application/dto"
	"github.com/jhoicas/tilestrack-api/internal/application/usecase"
	"github.com/jhoicas/tilestrack-api/internal/domain"
	"github.com/jhoicas/tilestrack-api/internal/reporting"
)

func reportRows() []reporting.SaleReportRow {
	return []reporting.SaleReportRow{
		{ProductID: 1, ProductName: "Baldosa 60x60", TotalQuantitySold: 10, TotalRevenue: decimal.RequireFromString("100")},
		{ProductID: 2, ProductName: "Sifón PVC", TotalQuantitySold: 3, TotalRevenue: decimal.RequireFromString("30")},
	}
}

func TestReportByProduct_VentanaExplicita(t *testing.T) {
	repo := &fakeReportRepo{productRows: reportRows()}
	uc := usecase.NewReportUseCase(repo, nil)

	rows, err := uc.ByProduct(context.Background(), dto.ReportRequest{From: "2024-03-01", To: "2024-03-31"})
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	require.NotNil(t, repo.lastQuery.From)
	require.NotNil(t, repo.lastQuery.To)
	assert.Equal(t, "2024-03-01", repo.lastQuery.From.Format("2006-01-02"))
	assert.Equal(t, "2024-03-31", repo.lastQuery.To.Format("2006-01-02"))
	// `to` inclusivo: el límite debe caer al final del día, no a medianoche.
	assert.Equal(t, 23, repo.lastQuery.To.Hour())
}

// Sin from NI to la ventana efectiva es el mes en curso.
func TestReportByProduct_DefaultMesEnCurso(t *testing.T) {
	repo := &fakeReportRepo{}
	uc := usecase.NewReportUseCase(repo, nil)

	_, err := uc.ByProduct(context.Background(), dto.ReportRequest{})
	require.NoError(t, err)

	now := time.Now()
	require.NotNil(t, repo.lastQuery.From)
	assert.Equal(t, now.Year(), repo.lastQuery.From.Year())
	assert.Equal(t, now.Month(), repo.lastQuery.From.Month())
	assert.Equal(t, 1, repo.lastQuery.From.Day())
	require.NotNil(t, repo.lastQuery.To)
	assert.Equal(t, now.Month(), repo.lastQuery.To.Month())
}

// Con solo un límite presente NO se aplica el default: el otro extremo queda abierto.
func TestReportByProduct_SoloFrom(t *testing.T) {
	repo := &fakeReportRepo{}
	uc := usecase.NewReportUseCase(repo, nil)

	_, err := uc.ByProduct(context.Background(), dto.ReportRequest{From: "2024-01-15"})
	require.NoError(t, err)
	require.NotNil(t, repo.lastQuery.From)
	assert.Nil(t, repo.lastQuery.To, "sin `to` el límite superior queda abierto")
}

func TestReportByProduct_FechaInvalida(t *testing.T) {
	uc := usecase.NewReportUseCase(&fakeReportRepo{}, nil)

	_, err := uc.ByProduct(context.Background(), dto.ReportRequest{From: "2024-13-99"})
	assert.ErrorIs(t, err, domain.ErrInvalidDate)
}

func TestReportByProduct_SinFilasDevuelveArrayVacio(t *testing.T) {
	uc := usecase.NewReportUseCase(&fakeReportRepo{}, nil)

	rows, err := uc.ByProduct(context.Background(), dto.ReportRequest{From: "2024-03-01"})
	require.NoError(t, err)
	assert.NotNil(t, rows, "el JSON debe serializar [] y no null")
	assert.Empty(t, rows)
}

func TestReportCSV_FormatoHistorico(t *testing.T) {
	uc := usecase.NewReportUseCase(&fakeReportRepo{productRows: reportRows()}, nil)

	out, err := uc.CSV(context.Background(), dto.ReportRequest{From: "2024-03-01"})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	require.Len(t, lines, 3, "cabecera + una línea por producto")
	assert.Equal(t, "Product Name,Total Quantity,Total Revenue,From Date,To Date", lines[0])
	assert.Equal(t, "Baldosa 60x60,10,100.00,2024-03-01,End", lines[1])
	assert.Equal(t, "Sifón PVC,3,30.00,2024-03-01,End", lines[2])
}

func TestReportPDF_NoHabilitado(t *testing.T) {
	uc := usecase.NewReportUseCase(&fakeReportRepo{}, nil)

	_, err := uc.PDF(context.Background(), dto.ReportRequest{})
	assert.Error(t, err)
}
