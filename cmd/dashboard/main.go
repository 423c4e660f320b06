// Command dashboard es el panel de ventas de terminal: consulta la API de
// TilesTrack y pinta totales, tabla del reporte y gráficas de texto.
//
// Subcomandos:
//
//	dashboard report [-from YYYY-MM-DD] [-to YYYY-MM-DD] [-product ID] [-csv archivo] [-pdf archivo]
//	dashboard sale -product ID -qty N
//	dashboard stock -product ID -delta N
//	dashboard low-stock
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/jhoicas/tilestrack-api/internal/dashboard"
	"github.com/jhoicas/tilestrack-api/internal/reporting"
	"github.com/jhoicas/tilestrack-api/pkg/apiclient"
	"github.com/jhoicas/tilestrack-api/pkg/config"
	"github.com/jhoicas/tilestrack-api/pkg/logger"
)

// clientFetcher adapta el cliente HTTP al puerto del estado del dashboard.
type clientFetcher struct {
	c *apiclient.Client
}

func (f clientFetcher) FetchReport(ctx context.Context, flt reporting.Filter) ([]reporting.SaleReportRow, []reporting.DateReportRow, error) {
	report, err := f.c.FetchReport(ctx, flt)
	if err != nil {
		return nil, nil, err
	}
	return report.ByProduct, report.ByDate, nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cargar configuración:", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "warn"})

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	client, err := apiclient.New(apiclient.Config{
		BaseURL: cfg.Client.BaseURL,
		Timeout: cfg.Client.Timeout,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("crear cliente de API")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := client.Login(ctx, cfg.Client.Username, cfg.Client.Password); err != nil {
		log.Fatal().Err(err).Str("base_url", cfg.Client.BaseURL).Msg("login")
	}
	defer client.Session().Clear()

	switch os.Args[1] {
	case "report":
		err = runReport(ctx, client, os.Args[2:])
	case "sale":
		err = runSale(ctx, client, os.Args[2:])
	case "stock":
		err = runStock(ctx, client, os.Args[2:])
	case "low-stock":
		err = runLowStock(ctx, client)
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		exitWithError(err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "uso: dashboard <report|sale|stock|low-stock> [flags]")
}

// exitWithError pinta el mensaje del servidor cuando lo hay (incluido el stock
// disponible en rechazos de venta) y termina con código 1.
func exitWithError(err error) {
	var apiErr *apiclient.APIError
	if errors.As(err, &apiErr) {
		fmt.Fprintln(os.Stderr, "error:", apiErr.Message)
		if apiErr.AvailableStock != nil {
			fmt.Fprintf(os.Stderr, "stock disponible: %d\n", *apiErr.AvailableStock)
		}
	} else {
		fmt.Fprintln(os.Stderr, "error:", err)
	}
	os.Exit(1)
}

// runReport consulta el reporte con el filtro de los flags y lo pinta; con
// -csv o -pdf además descarga el archivo del MISMO filtro.
func runReport(ctx context.Context, client *apiclient.Client, args []string) error {
	fs := flag.NewFlagSet("report", flag.ExitOnError)
	from := fs.String("from", "", "fecha inicial YYYY-MM-DD")
	to := fs.String("to", "", "fecha final YYYY-MM-DD (inclusive)")
	product := fs.Int64("product", 0, "filtrar por id de producto")
	csvPath := fs.String("csv", "", "descargar el CSV del reporte a este archivo")
	pdfPath := fs.String("pdf", "", "descargar el PDF del reporte a este archivo")
	_ = fs.Parse(args)

	filter := reporting.Filter{From: *from, To: *to, ProductID: *product}

	state := dashboard.NewState(clientFetcher{c: client})
	snap, err := state.Refresh(ctx, filter)
	if err != nil {
		return err
	}
	dashboard.NewRenderer(os.Stdout).Render(*snap)

	if *csvPath != "" {
		data, err := client.ExportCSV(ctx, filter)
		if err != nil {
			return err
		}
		if err := os.WriteFile(*csvPath, data, 0o644); err != nil {
			return fmt.Errorf("guardar CSV: %w", err)
		}
		fmt.Printf("\nCSV guardado en %s\n", *csvPath)
	}
	if *pdfPath != "" {
		data, err := client.ExportPDF(ctx, filter)
		if err != nil {
			return err
		}
		if err := os.WriteFile(*pdfPath, data, 0o644); err != nil {
			return fmt.Errorf("guardar PDF: %w", err)
		}
		fmt.Printf("PDF guardado en %s\n", *pdfPath)
	}
	return nil
}

// runSale registra la venta y refresca el reporte del mes para ver el efecto.
func runSale(ctx context.Context, client *apiclient.Client, args []string) error {
	fs := flag.NewFlagSet("sale", flag.ExitOnError)
	product := fs.Int64("product", 0, "id del producto")
	qty := fs.Int64("qty", 0, "cantidad vendida")
	_ = fs.Parse(args)

	if *product <= 0 || *qty <= 0 {
		return fmt.Errorf("sale requiere -product y -qty positivos")
	}

	saleID, err := client.RecordSale(ctx, *product, *qty)
	if err != nil {
		return err
	}
	fmt.Printf("Venta registrada (id %d)\n\n", saleID)

	return renderFreshReport(ctx, client)
}

// runStock ajusta el stock por delta y muestra el producto resultante.
func runStock(ctx context.Context, client *apiclient.Client, args []string) error {
	fs := flag.NewFlagSet("stock", flag.ExitOnError)
	product := fs.Int64("product", 0, "id del producto")
	delta := fs.Int64("delta", 0, "ajuste de stock (positivo o negativo)")
	_ = fs.Parse(args)

	if *product <= 0 || *delta == 0 {
		return fmt.Errorf("stock requiere -product positivo y -delta distinto de cero")
	}

	p, err := client.AdjustStock(ctx, *product, *delta)
	if err != nil {
		return err
	}
	fmt.Printf("%s: stock %d (mínimo %d)\n", p.Name, p.StockQty, p.MinStock)
	if p.IsLowStock() {
		fmt.Println("¡Alerta: el producto quedó en stock bajo!")
	}
	return nil
}

// runLowStock lista los productos en alerta.
func runLowStock(ctx context.Context, client *apiclient.Client) error {
	products, err := client.LowStockProducts(ctx)
	if err != nil {
		return err
	}
	if len(products) == 0 {
		fmt.Println("Sin productos en alerta de stock.")
		return nil
	}
	fmt.Printf("%d producto(s) en alerta:\n", len(products))
	for _, p := range products {
		fmt.Printf("  %-30s stock %d / mínimo %d\n", p.Name, p.StockQty, p.MinStock)
	}
	return nil
}

// renderFreshReport trae el reporte del período por defecto tras una mutación.
func renderFreshReport(ctx context.Context, client *apiclient.Client) error {
	state := dashboard.NewState(clientFetcher{c: client})
	snap, err := state.Refresh(ctx, reporting.Filter{})
	if err != nil {
		return err
	}
	dashboard.NewRenderer(os.Stdout).Render(*snap)
	return nil
}
