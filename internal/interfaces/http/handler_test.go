package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/turnover-api/internal/application/analytics"
	appsync "github.com/jhoicas/turnover-api/internal/application/sync"
	"github.com/jhoicas/turnover-api/internal/domain/entity"
	"github.com/jhoicas/turnover-api/internal/domain/repository"
	"github.com/jhoicas/turnover-api/internal/infrastructure/wms"
	apphttp "github.com/jhoicas/turnover-api/internal/interfaces/http"
	"github.com/jhoicas/turnover-api/pkg/config"
	"github.com/jhoicas/turnover-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

var (
	_ repository.AnalyticsRepository = (*fakeAnalytics)(nil)
	_ repository.CapacityRepository  = (*fakeCapacity)(nil)
	_ repository.FeeRepository       = (*fakeFees)(nil)
	_ repository.SyncLogRepository   = (*fakeSyncLogs)(nil)
)

type fakeAnalytics struct{}

func (fakeAnalytics) GetFlowTotals(context.Context, repository.AnalyticsFilter) (*repository.FlowTotalsResult, error) {
	return &repository.FlowTotalsResult{
		InboundEvents:    12,
		OutboundEvents:   30,
		InboundQty:       120,
		OutboundQty:      340,
		ActiveCustomers:  5,
		ActiveSKUs:       17,
		ActiveWarehouses: 2,
	}, nil
}

func (fakeAnalytics) CountCatalogSKUs(context.Context) (int64, error) { return 412, nil }

func (fakeAnalytics) GetVolumeSeries(context.Context, repository.AnalyticsFilter, string, string) ([]repository.VolumeBucketResult, error) {
	return nil, nil
}

func (fakeAnalytics) GetTurnoverInputs(context.Context, string, repository.AnalyticsFilter) (*repository.TurnoverInputsResult, error) {
	return &repository.TurnoverInputsResult{
		Beginning: decimal.NewFromInt(10),
		Inbound:   decimal.NewFromInt(40),
		Outbound:  decimal.NewFromInt(30),
	}, nil
}

func (fakeAnalytics) GetCustomerBreakdown(context.Context, repository.AnalyticsFilter, string, string) ([]repository.CustomerBreakdownResult, error) {
	return nil, nil
}

func (fakeAnalytics) GetSKURollup(context.Context, repository.AnalyticsFilter, string, string, int) ([]repository.SKURollupResult, error) {
	return nil, nil
}

func (fakeAnalytics) GetWarehouseRollup(context.Context, repository.AnalyticsFilter, string, string) ([]repository.WarehouseRollupResult, error) {
	return nil, nil
}

func (fakeAnalytics) GetNetVolumeByWarehouse(context.Context) ([]repository.WarehouseNetVolumeResult, error) {
	return []repository.WarehouseNetVolumeResult{
		{WarehouseID: "LAW", NetVolume: decimal.NewFromInt(250)},
	}, nil
}

type fakeCapacity struct {
	mu   sync.Mutex
	rows []entity.WarehouseCapacity
}

func (f *fakeCapacity) Upsert(_ context.Context, capacity entity.WarehouseCapacity) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rows = append(f.rows, capacity)
	return nil
}

func (f *fakeCapacity) GetAll(context.Context) ([]entity.WarehouseCapacity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.rows, nil
}

type fakeFees struct{}

func (fakeFees) UpsertFees(context.Context, []entity.OrderFee) (int64, error) { return 0, nil }
func (fakeFees) DeleteByBatchKey(context.Context, string) (int64, error)      { return 0, nil }
func (fakeFees) SummaryByCustomer(context.Context, *time.Time, *time.Time) ([]repository.FeeSummaryResult, error) {
	return nil, nil
}

type fakeSyncLogs struct {
	mu   sync.Mutex
	rows []entity.SyncLog
}

func (f *fakeSyncLogs) Create(_ context.Context, log *entity.SyncLog) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	log.ID = int64(len(f.rows) + 1)
	return nil
}

func (f *fakeSyncLogs) Finish(context.Context, uuid.UUID, string, int64, string) error {
	return nil
}

func (f *fakeSyncLogs) List(context.Context, int, string) ([]entity.SyncLog, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.rows, nil
}

// fakeFetcher siempre falla: las corridas lanzadas en background terminan en
// failed sin tocar la capa de escritura.
type fakeFetcher struct{}

var _ wms.Fetcher = fakeFetcher{}

func (fakeFetcher) FetchAll(context.Context, string, map[string]string) ([]wms.Record, error) {
	return nil, errors.New("wms fuera de servicio")
}

// blockingFetcher retiene la corrida hasta que se cierre release, para poder
// observar el estado "en curso" desde otra petición.
type blockingFetcher struct{ release chan struct{} }

var _ wms.Fetcher = blockingFetcher{}

func (f blockingFetcher) FetchAll(ctx context.Context, _ string, _ map[string]string) ([]wms.Record, error) {
	select {
	case <-f.release:
	case <-ctx.Done():
	}
	return nil, errors.New("corrida interrumpida")
}

// ──────────────────────────────────────────────────────────────────────────────
// App de prueba
// ──────────────────────────────────────────────────────────────────────────────

var seededRunID = uuid.New()

func buildTestApp(t *testing.T) *fiber.App {
	t.Helper()
	return buildTestAppWithFetcher(t, fakeFetcher{})
}

func buildTestAppWithFetcher(t *testing.T, fetcher wms.Fetcher) *fiber.App {
	t.Helper()

	dir := config.WarehouseDirectory{
		DefaultCode: "DEW",
		ByID: map[string]config.WarehouseInfo{
			"DEW": {Name: "Delaware Warehouse", Timezone: "America/New_York"},
			"LAW": {Name: "Los Angeles Warehouse", Timezone: "America/Los_Angeles"},
		},
	}

	analyticsRepo := fakeAnalytics{}
	capacityRepo := &fakeCapacity{
		rows: []entity.WarehouseCapacity{
			{WarehouseID: "LAW", TotalCapacityCBM: decimal.NewFromInt(100)},
		},
	}
	finishedAt := time.Date(2026, 5, 1, 3, 31, 0, 0, time.UTC)
	syncLogs := &fakeSyncLogs{
		rows: []entity.SyncLog{
			{
				ID:            1,
				RunID:         seededRunID,
				SyncType:      "daily",
				Status:        "success",
				RecordsSynced: 42,
				StartedAt:     time.Date(2026, 5, 1, 3, 30, 0, 0, time.UTC),
				FinishedAt:    &finishedAt,
			},
		},
	}

	log := logger.New(logger.Config{Env: "production", Level: "error"})
	orch := appsync.NewOrchestrator(fetcher, nil, syncLogs, nil, config.WMSConfig{}, config.SyncConfig{}, log)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		DashboardUC:  analytics.NewDashboardUseCase(analyticsRepo),
		AnalyticsUC:  analytics.NewAnalyticsUseCase(analyticsRepo, dir),
		WarehouseUC:  analytics.NewWarehouseUseCase(analyticsRepo, capacityRepo, dir),
		FeeUC:        analytics.NewFeeReportUseCase(fakeFees{}),
		Orchestrator: orch,
		UploadDir:    t.TempDir(),
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body []byte) (*http.Response, map[string]any) {
	t.Helper()
	var reader *bytes.Reader
	if body == nil {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var decoded map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&decoded)
	resp.Body.Close()
	return resp, decoded
}

func doJSONArray(t *testing.T, app *fiber.App, target string) (*http.Response, []map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	resp.Body.Close()
	return resp, decoded
}

// ──────────────────────────────────────────────────────────────────────────────
// Analítica
// ──────────────────────────────────────────────────────────────────────────────

func TestDashboardEndpoint_DevuelveResumen(t *testing.T) {
	app := buildTestApp(t)

	resp, body := doJSON(t, app, http.MethodGet, "/api/analytics/dashboard?customer_code=ACME", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	inbound, ok := body["inbound"].(map[string]any)
	require.True(t, ok, "la respuesta separa entradas y salidas")
	assert.EqualValues(t, 12, inbound["total_events"])
	assert.EqualValues(t, 120, inbound["total_qty"])
	assert.EqualValues(t, 5, body["unique_customers"])
	assert.EqualValues(t, 412, body["total_products"])
}

func TestDashboardEndpoint_FechaInvalida(t *testing.T) {
	app := buildTestApp(t)

	resp, body := doJSON(t, app, http.MethodGet, "/api/analytics/dashboard?date_from=ayer", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", body["code"])
}

func TestVolumeEndpoint_SerieVacia(t *testing.T) {
	app := buildTestApp(t)

	resp, body := doJSON(t, app, http.MethodGet, "/api/analytics/volume?granularity=month", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "month", body["granularity"])

	// Sin datos las series salen como arreglos vacíos, no null
	inbound, ok := body["inbound"].([]any)
	require.True(t, ok)
	assert.Empty(t, inbound)
}

func TestTurnoverEndpoint_Calcula(t *testing.T) {
	app := buildTestApp(t)

	resp, body := doJSON(t, app, http.MethodGet, "/api/analytics/turnover?date_from=2026-01-01&date_to=2026-01-31", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "2", body["turnover_rate"], "los decimales viajan como texto")
	assert.EqualValues(t, 31, body["days_in_period"])
}

func TestSKUsEndpoint_OrdenInvalido(t *testing.T) {
	app := buildTestApp(t)

	resp, body := doJSON(t, app, http.MethodGet, "/api/analytics/skus?sort_by=banana", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", body["code"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Bodegas
// ──────────────────────────────────────────────────────────────────────────────

func TestCapacityEndpoints_GuardarYListar(t *testing.T) {
	app := buildTestApp(t)

	payload := []byte(`{"warehouse_id": "DEW", "total_capacity_cbm": "500"}`)
	resp, body := doJSON(t, app, http.MethodPut, "/api/warehouses/capacities", payload)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Delaware Warehouse", body["warehouse_name"])
	assert.Equal(t, "500", body["total_capacity_cbm"])

	resp, list := doJSONArray(t, app, "/api/warehouses/capacities")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.GreaterOrEqual(t, len(list), 2, "el listado une directorio y configuradas")
}

func TestCapacityEndpoint_CapacidadNegativa(t *testing.T) {
	app := buildTestApp(t)

	payload := []byte(`{"warehouse_id": "DEW", "total_capacity_cbm": "-3"}`)
	resp, body := doJSON(t, app, http.MethodPut, "/api/warehouses/capacities", payload)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", body["code"])
}

func TestUtilizationEndpoint_CalculaPorcentaje(t *testing.T) {
	app := buildTestApp(t)

	resp, list := doJSONArray(t, app, "/api/warehouses/utilization")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var law map[string]any
	for _, row := range list {
		if row["warehouse_id"] == "LAW" {
			law = row
		}
	}
	require.NotNil(t, law, "LAW tiene capacidad y volumen")
	assert.Equal(t, true, law["capacity_set"])
	assert.Equal(t, "100", law["utilization_pct"], "250 m³ sobre 100 m³ se recorta a 100")
}

// ──────────────────────────────────────────────────────────────────────────────
// Sincronización
// ──────────────────────────────────────────────────────────────────────────────

func TestSyncLogsEndpoint_Lista(t *testing.T) {
	app := buildTestApp(t)

	resp, list := doJSONArray(t, app, "/api/sync/logs")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, list, 1)
	assert.Equal(t, seededRunID.String(), list[0]["run_id"])
	assert.Equal(t, "daily", list[0]["sync_type"])
	assert.EqualValues(t, 42, list[0]["records_synced"])
	assert.Equal(t, "2026-05-01T03:31:00Z", list[0]["finished_at"])
}

func TestSyncLogsEndpoint_LimiteFueraDeRango(t *testing.T) {
	app := buildTestApp(t)

	resp, body := doJSON(t, app, http.MethodGet, "/api/sync/logs?limit=500", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", body["code"])
}

func TestOutboundEndpoint_IniciaCorrida(t *testing.T) {
	app := buildTestApp(t)

	resp, body := doJSON(t, app, http.MethodPost, "/api/sync/outbound?create_time_from=2026-01-01", nil)
	assert.Equal(t, http.StatusAccepted, resp.StatusCode)
	assert.Equal(t, "started", body["status"])
	assert.Equal(t, "outbound", body["sync_type"])

	runID, ok := body["run_id"].(string)
	require.True(t, ok)
	_, err := uuid.Parse(runID)
	assert.NoError(t, err, "run_id debe ser un UUID")
}

func TestOutboundEndpoint_FechaInvalida(t *testing.T) {
	app := buildTestApp(t)

	resp, body := doJSON(t, app, http.MethodPost, "/api/sync/outbound?create_time_from=01/02/2026", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", body["code"])
}

func TestOutboundEndpoint_TipoEnCursoDevuelveConflicto(t *testing.T) {
	release := make(chan struct{})
	app := buildTestAppWithFetcher(t, blockingFetcher{release: release})
	defer close(release)

	resp, _ := doJSON(t, app, http.MethodPost, "/api/sync/outbound", nil)
	require.Equal(t, http.StatusAccepted, resp.StatusCode)

	resp, body := doJSON(t, app, http.MethodPost, "/api/sync/outbound", nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "SYNC_IN_PROGRESS", body["code"])
}

func TestInvLogEndpoint_RangoRequerido(t *testing.T) {
	app := buildTestApp(t)

	resp, body := doJSON(t, app, http.MethodPost, "/api/sync/invlog", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", body["code"])
}

func TestExcelUploadEndpoint_RechazaExtension(t *testing.T) {
	app := buildTestApp(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", "legacy.xls")
	require.NoError(t, err)
	_, err = part.Write([]byte("no es un xlsx"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/sync/excel-upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestExcelUploadEndpoint_ArchivoRequerido(t *testing.T) {
	app := buildTestApp(t)

	resp, body := doJSON(t, app, http.MethodPost, "/api/sync/excel-upload", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", body["code"])
}
