// Package dashboard mantiene el estado del panel de ventas y su renderizado
// de terminal: totales, tabla del reporte y gráficas de texto.
package dashboard

import (
	"context"
	"sync"

	"github.com/jhoicas/tilestrack-api/internal/reporting"
)

// ReportFetcher puerto hacia la API: el par de vistas del reporte con un filtro.
type ReportFetcher interface {
	FetchReport(ctx context.Context, f reporting.Filter) (byProduct []reporting.SaleReportRow, byDate []reporting.DateReportRow, err error)
}

// Snapshot estado derivado de un fetch exitoso. Se reemplaza completo: nunca
// se mezclan filas de un filtro con el resumen de otro.
type Snapshot struct {
	Filter    reporting.Filter
	ByProduct []reporting.SaleReportRow
	ByDate    []reporting.DateReportRow
	Summary   reporting.Summary
}

// State estado del dashboard con protección último-gana: cada Refresh toma un
// número de secuencia creciente y solo el fetch más reciente puede publicar su
// resultado. Respuestas lentas de filtros viejos se descartan en silencio.
type State struct {
	fetcher ReportFetcher

	mu      sync.Mutex
	seq     uint64
	current Snapshot
	loaded  bool
}

// NewState construye el estado sobre el fetcher (normalmente *apiclient.Client).
func NewState(fetcher ReportFetcher) *State {
	return &State{fetcher: fetcher}
}

// Refresh lanza el fetch del filtro y publica el resultado solo si sigue siendo
// la petición más reciente. Devuelve el snapshot publicado, o nil si la
// respuesta llegó tarde y otro filtro ya mandaba.
func (s *State) Refresh(ctx context.Context, f reporting.Filter) (*Snapshot, error) {
	s.mu.Lock()
	s.seq++
	seq := s.seq
	s.mu.Unlock()

	byProduct, byDate, err := s.fetcher.FetchReport(ctx, f)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.seq {
		// Llegó una petición más nueva mientras esta volvía: se descarta.
		return nil, nil
	}
	s.current = Snapshot{
		Filter:    f,
		ByProduct: byProduct,
		ByDate:    byDate,
		Summary:   reporting.Summarize(byProduct),
	}
	s.loaded = true
	snap := s.current
	return &snap, nil
}

// Current devuelve el último snapshot publicado (ok=false si nunca hubo fetch).
func (s *State) Current() (Snapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current, s.loaded
}
