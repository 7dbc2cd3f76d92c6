package sync

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/turnover-api/internal/domain"
	"github.com/jhoicas/turnover-api/internal/domain/entity"
	"github.com/jhoicas/turnover-api/internal/domain/repository"
	"github.com/jhoicas/turnover-api/internal/infrastructure/wms"
	"github.com/jhoicas/turnover-api/pkg/config"
	"github.com/jhoicas/turnover-api/pkg/logger"
	"github.com/jhoicas/turnover-api/pkg/metrics"
)

const (
	// maxErrorLen límite del mensaje de error persistido en sync_logs.
	maxErrorLen = 500
	// runTimeout deadline de una corrida completa (fetch paginado + escritura).
	runTimeout = 30 * time.Minute
	// defaultLogLimit y maxLogLimit acotan el listado de la bitácora.
	defaultLogLimit = 20
	maxLogLimit     = 100
)

// OutboundRange rangos de fechas para el sync de órdenes de salida. Todos opcionales.
type OutboundRange struct {
	CreateFrom *time.Time
	CreateTo   *time.Time
	ShipFrom   *time.Time
	ShipTo     *time.Time
}

// InboundRange rangos de fechas para el sync de recepciones. Todos opcionales.
type InboundRange struct {
	CreateFrom  *time.Time
	CreateTo    *time.Time
	ShelvesFrom *time.Time
	ShelvesTo   *time.Time
}

// InvLogRange ventana del sync de inventory log. From y To son obligatorios;
// los filtros de bodega y cliente son opcionales.
type InvLogRange struct {
	From         time.Time
	To           time.Time
	WarehouseID  string
	CustomerCode string
}

// RunHandle identifica una corrida recién lanzada.
type RunHandle struct {
	RunID     uuid.UUID
	SyncType  string
	StartedAt time.Time
}

// Orchestrator dirige las sincronizaciones contra el WMS:
//
//	fetch paginado → normalización → escritura transaccional → cierre de bitácora
//
// Cada corrida se ejecuta en goroutine independiente con su propio
// context.Background() + timeout, desacoplada del ciclo HTTP que la disparó.
// Dos corridas del mismo tipo no pueden coexistir; tipos distintos sí.
type Orchestrator struct {
	fetcher     wms.Fetcher
	tx          TxRunner
	syncLogRepo repository.SyncLogRepository
	productRepo repository.ProductRepository
	wmsCfg      config.WMSConfig
	syncCfg     config.SyncConfig
	log         *logger.Logger

	mu      sync.Mutex
	running map[string]bool
}

// NewOrchestrator construye el orquestador con todas sus dependencias.
// productRepo se usa fuera de transacción, solo para leer volúmenes del catálogo.
func NewOrchestrator(
	fetcher wms.Fetcher,
	tx TxRunner,
	syncLogRepo repository.SyncLogRepository,
	productRepo repository.ProductRepository,
	wmsCfg config.WMSConfig,
	syncCfg config.SyncConfig,
	log *logger.Logger,
) *Orchestrator {
	return &Orchestrator{
		fetcher:     fetcher,
		tx:          tx,
		syncLogRepo: syncLogRepo,
		productRepo: productRepo,
		wmsCfg:      wmsCfg,
		syncCfg:     syncCfg,
		log:         log.Component("sync"),
		running:     make(map[string]bool),
	}
}

// ──────────────────────────────────────────────
// Disparadores públicos
// ──────────────────────────────────────────────

// StartOutbound lanza el sync de órdenes de salida y devuelve el handle de la corrida.
func (o *Orchestrator) StartOutbound(ctx context.Context, r OutboundRange) (RunHandle, error) {
	if err := validatePair(r.CreateFrom, r.CreateTo); err != nil {
		return RunHandle{}, err
	}
	if err := validatePair(r.ShipFrom, r.ShipTo); err != nil {
		return RunHandle{}, err
	}
	slog, err := o.begin(ctx, entity.SyncTypeOutbound)
	if err != nil {
		return RunHandle{}, err
	}
	go o.runAsync(slog, func(ctx context.Context) (int64, error) {
		return o.runOutbound(ctx, slog.RunID, r)
	})
	return handleOf(slog), nil
}

// StartInbound lanza el sync de recepciones y devuelve el handle de la corrida.
func (o *Orchestrator) StartInbound(ctx context.Context, r InboundRange) (RunHandle, error) {
	if err := validatePair(r.CreateFrom, r.CreateTo); err != nil {
		return RunHandle{}, err
	}
	if err := validatePair(r.ShelvesFrom, r.ShelvesTo); err != nil {
		return RunHandle{}, err
	}
	slog, err := o.begin(ctx, entity.SyncTypeInbound)
	if err != nil {
		return RunHandle{}, err
	}
	go o.runAsync(slog, func(ctx context.Context) (int64, error) {
		return o.runInbound(ctx, slog.RunID, r)
	})
	return handleOf(slog), nil
}

// StartProducts lanza el refresco del catálogo de productos.
func (o *Orchestrator) StartProducts(ctx context.Context) (RunHandle, error) {
	slog, err := o.begin(ctx, entity.SyncTypeProducts)
	if err != nil {
		return RunHandle{}, err
	}
	go o.runAsync(slog, func(ctx context.Context) (int64, error) {
		return o.runProducts(ctx, slog.RunID)
	})
	return handleOf(slog), nil
}

// StartInventoryLog lanza el sync del inventory log sobre una ventana explícita.
func (o *Orchestrator) StartInventoryLog(ctx context.Context, r InvLogRange) (RunHandle, error) {
	if r.From.IsZero() || r.To.IsZero() {
		return RunHandle{}, fmt.Errorf("rango from/to requerido: %w", domain.ErrInvalidInput)
	}
	if r.From.After(r.To) {
		return RunHandle{}, fmt.Errorf("from posterior a to: %w", domain.ErrInvalidInput)
	}
	slog, err := o.begin(ctx, entity.SyncTypeInvLog)
	if err != nil {
		return RunHandle{}, err
	}
	go o.runAsync(slog, func(ctx context.Context) (int64, error) {
		return o.runInvLog(ctx, slog.RunID, r)
	})
	return handleOf(slog), nil
}

// StartDaily lanza la corrida compuesta diaria: inventory log sobre la ventana
// de lookback configurada y después refresco del catálogo. La bitácora refleja
// el resultado conjunto, pero los datos de un paso exitoso se conservan aunque
// un paso posterior falle.
func (o *Orchestrator) StartDaily(ctx context.Context) (RunHandle, error) {
	slog, err := o.begin(ctx, entity.SyncTypeDaily)
	if err != nil {
		return RunHandle{}, err
	}
	go o.runAsync(slog, func(ctx context.Context) (int64, error) {
		return o.runDaily(ctx, slog.RunID)
	})
	return handleOf(slog), nil
}

// Logs devuelve las corridas más recientes de la bitácora. limit 0 aplica el
// default; syncType vacío devuelve todas.
func (o *Orchestrator) Logs(ctx context.Context, limit int, syncType string) ([]entity.SyncLog, error) {
	if limit == 0 {
		limit = defaultLogLimit
	}
	if limit < 1 || limit > maxLogLimit {
		return nil, fmt.Errorf("limit debe estar entre 1 y %d: %w", maxLogLimit, domain.ErrInvalidInput)
	}
	if syncType != "" && !entity.ValidSyncType(syncType) {
		return nil, fmt.Errorf("sync_type desconocido %q: %w", syncType, domain.ErrInvalidInput)
	}

	logs, err := o.syncLogRepo.List(ctx, limit, syncType)
	if err != nil {
		return nil, fmt.Errorf("consultar bitácora: %w", err)
	}
	return logs, nil
}

// ──────────────────────────────────────────────
// Ciclo de vida de una corrida
// ──────────────────────────────────────────────

// begin reserva el cupo del tipo y registra la corrida en la bitácora.
// Si ya hay una corrida del mismo tipo devuelve ErrSyncInProgress sin registrar nada.
func (o *Orchestrator) begin(ctx context.Context, syncType string) (*entity.SyncLog, error) {
	o.mu.Lock()
	if o.running[syncType] {
		o.mu.Unlock()
		return nil, domain.ErrSyncInProgress
	}
	o.running[syncType] = true
	o.mu.Unlock()

	slog := &entity.SyncLog{
		RunID:     uuid.New(),
		SyncType:  syncType,
		Status:    entity.SyncStatusRunning,
		StartedAt: time.Now(),
	}
	if err := o.syncLogRepo.Create(ctx, slog); err != nil {
		o.release(syncType)
		return nil, fmt.Errorf("registrar corrida de %s: %w", syncType, err)
	}
	o.log.Info().
		Str("run_id", slog.RunID.String()).
		Str("sync_type", syncType).
		Msg("sincronización iniciada")
	return slog, nil
}

func (o *Orchestrator) release(syncType string) {
	o.mu.Lock()
	delete(o.running, syncType)
	o.mu.Unlock()
}

// runAsync ejecuta el núcleo de la corrida con su propio contexto y cierra la bitácora.
func (o *Orchestrator) runAsync(slog *entity.SyncLog, run func(ctx context.Context) (int64, error)) {
	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	count, err := run(ctx)
	o.finish(slog.RunID, slog.SyncType, count, err)
}

// finish cierra la bitácora con el estado final y libera el cupo del tipo.
// La bitácora se cierra con un contexto propio: el de la corrida puede venir ya vencido.
func (o *Orchestrator) finish(runID uuid.UUID, syncType string, count int64, runErr error) {
	defer o.release(syncType)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	status := entity.SyncStatusSuccess
	msg := ""
	if runErr != nil {
		status = entity.SyncStatusFailed
		msg = domain.TruncateError(runErr, maxErrorLen)
	}
	if err := o.syncLogRepo.Finish(ctx, runID, status, count, msg); err != nil {
		o.log.Error().Err(err).
			Str("run_id", runID.String()).
			Msg("no se pudo cerrar la bitácora")
	}
	metrics.SyncRuns.WithLabelValues(syncType, status).Inc()
	metrics.RecordsSynced.WithLabelValues(syncType).Add(float64(count))
	if runErr != nil {
		o.log.Error().Err(runErr).
			Str("run_id", runID.String()).
			Str("sync_type", syncType).
			Int64("records", count).
			Msg("sincronización fallida")
		return
	}
	o.log.Info().
		Str("run_id", runID.String()).
		Str("sync_type", syncType).
		Int64("records", count).
		Msg("sincronización completada")
}

// ──────────────────────────────────────────────
// Núcleos por tipo
// ──────────────────────────────────────────────

func (o *Orchestrator) runOutbound(ctx context.Context, runID uuid.UUID, r OutboundRange) (int64, error) {
	params := map[string]string{}
	putTime(params, "createTimeFrom", r.CreateFrom)
	putTime(params, "createTimeTo", r.CreateTo)
	putTime(params, "shipTimeFrom", r.ShipFrom)
	putTime(params, "shipTimeTo", r.ShipTo)

	recs, err := o.fetcher.FetchAll(ctx, wms.ServiceOrderList, params)
	if err != nil {
		return 0, fmt.Errorf("consultar órdenes de salida: %w", err)
	}
	events := normalizeOutbound(recs, runID, time.Now())

	var written int64
	err = o.tx.Run(ctx, func(eventRepo repository.EventRepository, _ repository.ProductRepository, _ repository.FeeRepository) error {
		written, err = eventRepo.UpsertEvents(ctx, events)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("guardar órdenes de salida: %w", err)
	}
	return written, nil
}

func (o *Orchestrator) runInbound(ctx context.Context, runID uuid.UUID, r InboundRange) (int64, error) {
	params := map[string]string{}
	putTime(params, "createTimeFrom", r.CreateFrom)
	putTime(params, "createTimeTo", r.CreateTo)
	putTime(params, "dateShelvesFrom", r.ShelvesFrom)
	putTime(params, "dateShelvesTo", r.ShelvesTo)

	recs, err := o.fetcher.FetchAll(ctx, wms.ServiceReceivingList, params)
	if err != nil {
		return 0, fmt.Errorf("consultar recepciones: %w", err)
	}
	events := normalizeInbound(recs, runID, time.Now())

	var written int64
	err = o.tx.Run(ctx, func(eventRepo repository.EventRepository, _ repository.ProductRepository, _ repository.FeeRepository) error {
		written, err = eventRepo.UpsertEvents(ctx, events)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("guardar recepciones: %w", err)
	}
	return written, nil
}

func (o *Orchestrator) runProducts(ctx context.Context, runID uuid.UUID) (int64, error) {
	recs, err := o.fetcher.FetchAll(ctx, wms.ServiceProductList, nil)
	if err != nil {
		return 0, fmt.Errorf("consultar catálogo: %w", err)
	}
	products := normalizeProducts(recs, runID, time.Now())

	var written int64
	err = o.tx.Run(ctx, func(_ repository.EventRepository, productRepo repository.ProductRepository, _ repository.FeeRepository) error {
		written, err = productRepo.UpsertProducts(ctx, products)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("guardar catálogo: %w", err)
	}
	return written, nil
}

// runInvLog trae los movimientos del inventory log por sub-ventanas (el WMS limita
// el rango por petición), los enriquece con el volumen unitario del catálogo y los
// escribe. Sin filtros la ventana se reemplaza completa por dirección, así las
// eliminaciones del upstream no dejan huérfanos; con filtro de bodega o cliente
// solo se upserta, porque la respuesta es un subconjunto de la ventana.
func (o *Orchestrator) runInvLog(ctx context.Context, runID uuid.UUID, r InvLogRange) (int64, error) {
	var recs []wms.Record
	for _, w := range wms.SplitWindow(r.From, r.To, o.wmsCfg.MaxWindowDays) {
		params := map[string]string{
			"operationTimeFrom": w.From.Format(wms.TimeLayout),
			"operationTimeTo":   w.To.Format(wms.TimeLayout),
		}
		if r.WarehouseID != "" {
			params["warehouseId"] = r.WarehouseID
		}
		if r.CustomerCode != "" {
			params["customerCode"] = r.CustomerCode
		}
		chunk, err := o.fetcher.FetchAll(ctx, wms.ServiceInventoryLog, params)
		if err != nil {
			return 0, fmt.Errorf("consultar inventory log: %w", err)
		}
		recs = append(recs, chunk...)
	}

	volumes, err := o.productRepo.ListVolumes(ctx)
	if err != nil {
		return 0, fmt.Errorf("leer volúmenes del catálogo: %w", err)
	}
	events := normalizeInvLog(recs, buildVolumeIndex(volumes), runID, time.Now())

	filtered := r.WarehouseID != "" || r.CustomerCode != ""
	var written int64
	err = o.tx.Run(ctx, func(eventRepo repository.EventRepository, _ repository.ProductRepository, _ repository.FeeRepository) error {
		if filtered {
			written, err = eventRepo.UpsertEvents(ctx, events)
			return err
		}
		var inbound, outbound []entity.InventoryEvent
		for _, ev := range events {
			if ev.Direction == entity.DirectionInbound {
				inbound = append(inbound, ev)
			} else {
				outbound = append(outbound, ev)
			}
		}
		nIn, err := eventRepo.ReplaceWindow(ctx, entity.SourceWmsInvLog, entity.DirectionInbound, r.From, r.To, inbound)
		if err != nil {
			return err
		}
		nOut, err := eventRepo.ReplaceWindow(ctx, entity.SourceWmsInvLog, entity.DirectionOutbound, r.From, r.To, outbound)
		if err != nil {
			return err
		}
		written = nIn + nOut
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("guardar inventory log: %w", err)
	}
	return written, nil
}

// runDaily ejecuta la secuencia fija de la corrida diaria. Cada paso escribe en su
// propia transacción: si el segundo falla, lo sincronizado por el primero se conserva.
func (o *Orchestrator) runDaily(ctx context.Context, runID uuid.UUID) (int64, error) {
	to := time.Now()
	from := to.AddDate(0, 0, -o.syncCfg.DailyLookbackDays)

	total, err := o.runInvLog(ctx, runID, InvLogRange{From: from, To: to})
	if err != nil {
		return total, fmt.Errorf("paso inventory log: %w", err)
	}

	n, err := o.runProducts(ctx, runID)
	total += n
	if err != nil {
		return total, fmt.Errorf("paso catálogo: %w", err)
	}
	return total, nil
}

// ──────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────

func handleOf(slog *entity.SyncLog) RunHandle {
	return RunHandle{RunID: slog.RunID, SyncType: slog.SyncType, StartedAt: slog.StartedAt}
}

// putTime agrega el parámetro solo si la fecha viene definida.
func putTime(params map[string]string, key string, t *time.Time) {
	if t != nil {
		params[key] = t.Format(wms.TimeLayout)
	}
}

// validatePair rechaza rangos invertidos cuando ambos extremos vienen definidos.
func validatePair(from, to *time.Time) error {
	if from != nil && to != nil && from.After(*to) {
		return fmt.Errorf("rango de fechas invertido: %w", domain.ErrInvalidInput)
	}
	return nil
}
