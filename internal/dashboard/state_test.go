package dashboard_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tilestrack-api/internal/dashboard"
	"github.com/jhoicas/tilestrack-api/internal/reporting"
)

// fetchCall una llamada pendiente del fetcher controlable: started se cierra al
// entrar y la llamada no devuelve hasta que el test cierre release.
type fetchCall struct {
	started chan struct{}
	release chan struct{}
	rows    []reporting.SaleReportRow
	err     error
}

// scriptedFetcher fetcher con llamadas guionadas por filtro, para simular
// respuestas que llegan fuera de orden.
type scriptedFetcher struct {
	mu    sync.Mutex
	calls map[string]*fetchCall
}

func newScriptedFetcher() *scriptedFetcher {
	return &scriptedFetcher{calls: map[string]*fetchCall{}}
}

func (f *scriptedFetcher) expect(from string, rows []reporting.SaleReportRow, err error) *fetchCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	c := &fetchCall{
		started: make(chan struct{}),
		release: make(chan struct{}),
		rows:    rows,
		err:     err,
	}
	f.calls[from] = c
	return c
}

func (f *scriptedFetcher) FetchReport(_ context.Context, flt reporting.Filter) ([]reporting.SaleReportRow, []reporting.DateReportRow, error) {
	f.mu.Lock()
	c := f.calls[flt.From]
	f.mu.Unlock()
	if c == nil {
		return nil, nil, errors.New("llamada no guionada: " + flt.From)
	}
	close(c.started)
	<-c.release
	if c.err != nil {
		return nil, nil, c.err
	}
	return c.rows, []reporting.DateReportRow{}, nil
}

func row(id int64, name string, qty int64, revenue string) reporting.SaleReportRow {
	return reporting.SaleReportRow{
		ProductID:         id,
		ProductName:       name,
		TotalQuantitySold: qty,
		TotalRevenue:      mustDecimal(revenue),
	}
}

func TestState_Refresh_PublicaSnapshotConResumen(t *testing.T) {
	f := newScriptedFetcher()
	call := f.expect("2024-03-01", []reporting.SaleReportRow{
		row(1, "Baldosa 60x60", 5, "50.00"),
		row(2, "Grifo monomando", 9, "30.00"),
	}, nil)
	close(call.release)

	st := dashboard.NewState(f)
	snap, err := st.Refresh(context.Background(), reporting.Filter{From: "2024-03-01"})
	require.NoError(t, err)
	require.NotNil(t, snap)

	assert.EqualValues(t, 14, snap.Summary.TotalQuantity)
	assert.Equal(t, "80", snap.Summary.TotalRevenue.String())
	assert.Equal(t, "Grifo monomando", snap.Summary.TopProduct.ProductName)

	current, ok := st.Current()
	require.True(t, ok)
	assert.Equal(t, snap.ByProduct, current.ByProduct)
}

// La respuesta lenta de un filtro viejo no pisa el resultado del filtro nuevo.
func TestState_Refresh_UltimaPeticionGana(t *testing.T) {
	f := newScriptedFetcher()
	slowCall := f.expect("viejo", []reporting.SaleReportRow{row(1, "Viejo", 99, "999.00")}, nil)
	fastCall := f.expect("nuevo", []reporting.SaleReportRow{row(2, "Nuevo", 1, "10.00")}, nil)

	st := dashboard.NewState(f)

	var wg sync.WaitGroup
	var slowSnap, fastSnap *dashboard.Snapshot
	var slowErr, fastErr error

	// Primero sale la petición vieja y se queda esperando respuesta.
	wg.Add(1)
	go func() {
		defer wg.Done()
		slowSnap, slowErr = st.Refresh(context.Background(), reporting.Filter{From: "viejo"})
	}()
	<-slowCall.started

	// Después sale la nueva, que responde primero.
	wg.Add(1)
	go func() {
		defer wg.Done()
		fastSnap, fastErr = st.Refresh(context.Background(), reporting.Filter{From: "nuevo"})
	}()
	<-fastCall.started

	close(fastCall.release)
	require.Eventually(t, func() bool {
		cur, ok := st.Current()
		return ok && len(cur.ByProduct) == 1 && cur.ByProduct[0].ProductName == "Nuevo"
	}, time.Second, 5*time.Millisecond, "la petición nueva debe publicar primero")

	// Recién ahora vuelve la respuesta vieja: debe descartarse.
	close(slowCall.release)
	wg.Wait()

	require.NoError(t, slowErr)
	require.NoError(t, fastErr)
	assert.Nil(t, slowSnap, "la respuesta tardía se descarta sin publicar")
	require.NotNil(t, fastSnap)

	current, ok := st.Current()
	require.True(t, ok)
	assert.Equal(t, "Nuevo", current.ByProduct[0].ProductName,
		"el estado conserva el resultado del último filtro pedido")
}

func TestState_Refresh_ErrorNoTocaElEstado(t *testing.T) {
	f := newScriptedFetcher()
	okCall := f.expect("2024-03-01", []reporting.SaleReportRow{row(1, "Baldosa", 2, "20.00")}, nil)
	close(okCall.release)

	st := dashboard.NewState(f)
	_, err := st.Refresh(context.Background(), reporting.Filter{From: "2024-03-01"})
	require.NoError(t, err)

	failCall := f.expect("2024-04-01", nil, errors.New("red caída"))
	close(failCall.release)

	snap, err := st.Refresh(context.Background(), reporting.Filter{From: "2024-04-01"})
	assert.Error(t, err)
	assert.Nil(t, snap)

	current, ok := st.Current()
	require.True(t, ok)
	assert.Equal(t, "Baldosa", current.ByProduct[0].ProductName,
		"tras un fetch fallido se conserva el último snapshot bueno")
}

func TestState_Current_SinFetch_NoHayDatos(t *testing.T) {
	st := dashboard.NewState(newScriptedFetcher())
	_, ok := st.Current()
	assert.False(t, ok)
}
