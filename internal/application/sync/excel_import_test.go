package sync_test

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/turnover-api/internal/domain"
	"github.com/jhoicas/turnover-api/internal/domain/entity"
	"github.com/jhoicas/turnover-api/internal/infrastructure/excel"
)

var importHeaders = []any{
	"订单号", "参考号", "客户代码", "仓库代码", "订单内件数", "出货时间", "跟踪号",
	"运费(USD)", "其他费用(USD)", "总费用(USD)",
}

// buildWorkbook arma un .xlsx en memoria con las filas dadas.
func buildWorkbook(t *testing.T, rows [][]any) io.Reader {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &rows[i]))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return bytes.NewReader(buf.Bytes())
}

func TestImportExcel_ImportaEventosYCargos(t *testing.T) {
	env := newTestEnv()
	wb := buildWorkbook(t, [][]any{
		importHeaders,
		{"HX001", "REF1", "CUST01", "DEW", "3", "2026-03-01 10:00:00", "TRK1", "12.50", "1.25", "13.75"},
		{"HX001", "REF1", "CUST01", "DEW", "3", "2026-03-01 10:00:00", "TRK1", "12.50", "1.25", "13.75"},
		{"HX002", "REF2", "CUST02", "DEW", "1", "2026-03-02 08:15:00", "TRK2", "8.00", "0", "8.00"},
	})

	res, err := env.orch.ImportExcel(context.Background(), "marzo.xlsx", wb, false)
	require.NoError(t, err)

	assert.Equal(t, excel.TemplateHorizontal, res.Template)
	assert.EqualValues(t, 2, res.Imported)
	assert.Equal(t, 1, res.Skipped, "la orden repetida dentro del archivo cuenta como omitida")
	assert.NotEqual(t, uuid.Nil, res.RunID)

	events := env.events.snapshot()
	require.Len(t, events, 2)
	assert.Equal(t, entity.SourceExcel, events[0].Source)
	assert.Equal(t, entity.DirectionOutbound, events[0].Direction)
	assert.Equal(t, "HX001", events[0].NaturalKey)
	assert.Equal(t, "marzo.xlsx", events[0].BatchKey)
	assert.EqualValues(t, 3, events[0].Quantity)

	fees := env.fees.snapshot()
	require.Len(t, fees, 2)
	assert.Equal(t, "HX001", fees[0].OrderCode)
	assert.Equal(t, "marzo.xlsx", fees[0].BatchKey)
	require.NotNil(t, fees[0].TotalFee)
	assert.True(t, fees[0].TotalFee.Equal(decimal.RequireFromString("13.75")))

	// el import es síncrono pero queda en la bitácora igual que los syncs del WMS
	call := waitFinish(t, env)
	assert.Equal(t, entity.SyncStatusSuccess, call.status)
	assert.EqualValues(t, 2, call.count)
	assert.Equal(t, res.RunID, call.runID)
}

func TestImportExcel_ReemplazaLoteAnterior(t *testing.T) {
	env := newTestEnv()
	wb := buildWorkbook(t, [][]any{
		importHeaders,
		{"HX001", "REF1", "CUST01", "DEW", "3", "2026-03-01 10:00:00", "TRK1", "12.50", "1.25", "13.75"},
	})

	_, err := env.orch.ImportExcel(context.Background(), "marzo.xlsx", wb, true)
	require.NoError(t, err)

	assert.Equal(t, []string{"marzo.xlsx"}, env.events.deleteCalls(), "replace borra los eventos del lote")
	assert.Equal(t, []string{"marzo.xlsx"}, env.fees.deleteCalls(), "replace borra los cargos del lote")
}

func TestImportExcel_SinReemplazoNoBorraNada(t *testing.T) {
	env := newTestEnv()
	wb := buildWorkbook(t, [][]any{
		importHeaders,
		{"HX001", "REF1", "CUST01", "DEW", "3", "2026-03-01 10:00:00", "TRK1", "12.50", "1.25", "13.75"},
	})

	_, err := env.orch.ImportExcel(context.Background(), "marzo.xlsx", wb, false)
	require.NoError(t, err)

	assert.Empty(t, env.events.deleteCalls())
	assert.Empty(t, env.fees.deleteCalls())
}

func TestImportExcel_SoloAceptaXlsx(t *testing.T) {
	env := newTestEnv()

	_, err := env.orch.ImportExcel(context.Background(), "legacy.xls", strings.NewReader("x"), false)
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = env.orch.ImportExcel(context.Background(), "", strings.NewReader("x"), false)
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	assert.Zero(t, env.logs.createdCount(), "un archivo rechazado no registra bitácora")
}

func TestImportExcel_PlantillaNoReconocidaCierraEnFallo(t *testing.T) {
	env := newTestEnv()
	wb := buildWorkbook(t, [][]any{
		{"columna_a", "columna_b"},
		{"1", "2"},
	})

	_, err := env.orch.ImportExcel(context.Background(), "raro.xlsx", wb, false)
	require.ErrorIs(t, err, domain.ErrUnknownTemplate)

	call := waitFinish(t, env)
	assert.Equal(t, entity.SyncStatusFailed, call.status)
	assert.Empty(t, env.events.snapshot())
}
