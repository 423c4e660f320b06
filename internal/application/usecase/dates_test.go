package usecase

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// El fin de día se calcula por calendario, no sumando 24 horas: en días con
// cambio de horario (23 o 25 horas de pared) el límite debe seguir siendo
// 23:59:59.999999999 del mismo día.
func TestEndOfDay_DiaConCambioDeHorario(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// 2024-03-10 dura 23 horas en esa zona (inicio del horario de verano).
	day := time.Date(2024, time.March, 10, 0, 0, 0, 0, loc)
	got := endOfDay(day)

	assert.Equal(t, time.Date(2024, time.March, 10, 23, 59, 59, 999999999, loc), got)

	// 2024-11-03 dura 25 horas (fin del horario de verano).
	day = time.Date(2024, time.November, 3, 0, 0, 0, 0, loc)
	got = endOfDay(day)

	assert.Equal(t, time.Date(2024, time.November, 3, 23, 59, 59, 999999999, loc), got)
}

func TestEndOfDay_DiaNormal(t *testing.T) {
	day := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, time.March, 1, 23, 59, 59, 999999999, time.UTC), endOfDay(day))
}
