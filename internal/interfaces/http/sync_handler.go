package http

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/turnover-api/internal/application/dto"
	appsync "github.com/jhoicas/turnover-api/internal/application/sync"
	"github.com/jhoicas/turnover-api/internal/domain"
)

// Formatos aceptados en los parámetros de fecha de los disparos.
const (
	paramLayoutFull = "2006-01-02 15:04:05"
	paramLayoutDay  = "2006-01-02"
)

// SyncHandler maneja los disparos de sincronización, la subida de Excel y la bitácora.
type SyncHandler struct {
	orch      *appsync.Orchestrator
	uploadDir string
}

// NewSyncHandler construye el handler. uploadDir es la carpeta donde quedan
// guardados los Excel subidos.
func NewSyncHandler(orch *appsync.Orchestrator, uploadDir string) *SyncHandler {
	return &SyncHandler{orch: orch, uploadDir: uploadDir}
}

// StartOutbound godoc
// @Summary      Disparar sync de órdenes de salida desde el WMS
// @Description  Lanza la corrida en segundo plano y devuelve el run_id para
// @Description  seguirla en /api/sync/logs.
// @Tags         sync
// @Produce      json
// @Param        create_time_from  query  string  false  "Creación desde (YYYY-MM-DD o YYYY-MM-DD HH:MM:SS)"
// @Param        create_time_to    query  string  false  "Creación hasta"
// @Param        ship_time_from    query  string  false  "Despacho desde"
// @Param        ship_time_to      query  string  false  "Despacho hasta"
// @Success      202  {object}  dto.SyncStartedDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/sync/outbound [post]
func (h *SyncHandler) StartOutbound(c *fiber.Ctx) error {
	var req dto.OutboundSyncRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_PARAMS", Message: "parámetros de consulta inválidos",
		})
	}

	var r appsync.OutboundRange
	var err error
	if r.CreateFrom, err = parseTimeParam(req.CreateTimeFrom, false); err != nil {
		return badParam(c, err)
	}
	if r.CreateTo, err = parseTimeParam(req.CreateTimeTo, true); err != nil {
		return badParam(c, err)
	}
	if r.ShipFrom, err = parseTimeParam(req.ShipTimeFrom, false); err != nil {
		return badParam(c, err)
	}
	if r.ShipTo, err = parseTimeParam(req.ShipTimeTo, true); err != nil {
		return badParam(c, err)
	}

	handle, err := h.orch.StartOutbound(c.Context(), r)
	if err != nil {
		return respondSyncError(c, err)
	}
	return started(c, handle)
}

// StartInbound godoc
// @Summary      Disparar sync de recepciones desde el WMS
// @Tags         sync
// @Produce      json
// @Param        create_time_from   query  string  false  "Creación desde (YYYY-MM-DD o YYYY-MM-DD HH:MM:SS)"
// @Param        create_time_to     query  string  false  "Creación hasta"
// @Param        date_shelves_from  query  string  false  "Colocación en estantería desde"
// @Param        date_shelves_to    query  string  false  "Colocación en estantería hasta"
// @Success      202  {object}  dto.SyncStartedDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/sync/inbound [post]
func (h *SyncHandler) StartInbound(c *fiber.Ctx) error {
	var req dto.InboundSyncRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_PARAMS", Message: "parámetros de consulta inválidos",
		})
	}

	var r appsync.InboundRange
	var err error
	if r.CreateFrom, err = parseTimeParam(req.CreateTimeFrom, false); err != nil {
		return badParam(c, err)
	}
	if r.CreateTo, err = parseTimeParam(req.CreateTimeTo, true); err != nil {
		return badParam(c, err)
	}
	if r.ShelvesFrom, err = parseTimeParam(req.DateShelvesFrom, false); err != nil {
		return badParam(c, err)
	}
	if r.ShelvesTo, err = parseTimeParam(req.DateShelvesTo, true); err != nil {
		return badParam(c, err)
	}

	handle, err := h.orch.StartInbound(c.Context(), r)
	if err != nil {
		return respondSyncError(c, err)
	}
	return started(c, handle)
}

// StartProducts godoc
// @Summary      Disparar sync del catálogo de productos
// @Tags         sync
// @Produce      json
// @Success      202  {object}  dto.SyncStartedDTO
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/sync/products [post]
func (h *SyncHandler) StartProducts(c *fiber.Ctx) error {
	handle, err := h.orch.StartProducts(c.Context())
	if err != nil {
		return respondSyncError(c, err)
	}
	return started(c, handle)
}

// StartInvLog godoc
// @Summary      Disparar sync del inventory log sobre una ventana explícita
// @Description  El rango es obligatorio; ventanas más largas que el máximo del
// @Description  WMS se parten automáticamente en tramos.
// @Tags         sync
// @Produce      json
// @Param        date_from      query  string  true   "Inicio de la ventana (YYYY-MM-DD o YYYY-MM-DD HH:MM:SS)"
// @Param        date_to        query  string  true   "Fin de la ventana"
// @Param        warehouse_id   query  string  false  "Filtrar por bodega"
// @Param        customer_code  query  string  false  "Filtrar por cliente"
// @Success      202  {object}  dto.SyncStartedDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/sync/invlog [post]
func (h *SyncHandler) StartInvLog(c *fiber.Ctx) error {
	var req dto.InvLogSyncRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_PARAMS", Message: "parámetros de consulta inválidos",
		})
	}

	from, err := parseTimeParam(req.DateFrom, false)
	if err != nil {
		return badParam(c, err)
	}
	to, err := parseTimeParam(req.DateTo, true)
	if err != nil {
		return badParam(c, err)
	}

	r := appsync.InvLogRange{WarehouseID: req.WarehouseID, CustomerCode: req.CustomerCode}
	if from != nil {
		r.From = *from
	}
	if to != nil {
		r.To = *to
	}

	handle, err := h.orch.StartInventoryLog(c.Context(), r)
	if err != nil {
		return respondSyncError(c, err)
	}
	return started(c, handle)
}

// StartDaily godoc
// @Summary      Disparar el ciclo diario completo
// @Description  Inventory log de los últimos días más refresco del catálogo, la
// @Description  misma secuencia que corre el scheduler.
// @Tags         sync
// @Produce      json
// @Success      202  {object}  dto.SyncStartedDTO
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/sync/daily [post]
func (h *SyncHandler) StartDaily(c *fiber.Ctx) error {
	handle, err := h.orch.StartDaily(c.Context())
	if err != nil {
		return respondSyncError(c, err)
	}
	return started(c, handle)
}

// UploadExcel godoc
// @Summary      Importar un Excel de facturación exportado del WMS
// @Description  Guarda el archivo en la carpeta de subidas y lo importa en el
// @Description  mismo ciclo de la petición. Con replace_existing se reemplaza
// @Description  todo lo importado antes bajo el mismo nombre de archivo.
// @Tags         sync
// @Accept       mpfd
// @Produce      json
// @Param        file              formData  file    true   "Archivo .xlsx"
// @Param        replace_existing  query     bool    false  "Reemplazar el lote anterior del mismo archivo"
// @Success      200  {object}  dto.ImportResultDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/sync/excel-upload [post]
func (h *SyncHandler) UploadExcel(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "archivo requerido en el campo file",
		})
	}
	if !strings.EqualFold(filepath.Ext(fileHeader.Filename), ".xlsx") {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "solo se aceptan archivos .xlsx",
		})
	}
	replace := c.QueryBool("replace_existing", false)

	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: "no se pudo preparar la carpeta de subidas",
		})
	}
	savedName := time.Now().Format("20060102_150405") + "_" + filepath.Base(fileHeader.Filename)
	savedPath := filepath.Join(h.uploadDir, savedName)
	if err := c.SaveFile(fileHeader, savedPath); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: "no se pudo guardar el archivo",
		})
	}

	f, err := os.Open(savedPath)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: "no se pudo leer el archivo guardado",
		})
	}
	defer f.Close()

	// La clave del lote es el nombre original del archivo, no el guardado:
	// volver a subir el mismo Excel con replace_existing reemplaza su lote.
	res, err := h.orch.ImportExcel(c.Context(), fileHeader.Filename, f, replace)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownTemplate) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code: "UNKNOWN_TEMPLATE", Message: err.Error(),
			})
		}
		if errors.Is(err, domain.ErrNoValidRows) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code: "NO_VALID_ROWS", Message: err.Error(),
			})
		}
		return respondSyncError(c, err)
	}

	return c.JSON(dto.ImportResultDTO{
		Status:          "success",
		RunID:           res.RunID,
		Filename:        savedName,
		Template:        string(res.Template),
		RecordsImported: res.Imported,
		RowsSkipped:     res.Skipped,
	})
}

// GetLogs godoc
// @Summary      Bitácora de sincronizaciones recientes
// @Tags         sync
// @Produce      json
// @Param        limit      query  int     false  "Cantidad de corridas (1..100, default 20)"
// @Param        sync_type  query  string  false  "Filtrar por tipo: products, outbound, inbound, invlog, daily o excel"
// @Success      200  {array}   dto.SyncLogDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/sync/logs [get]
func (h *SyncHandler) GetLogs(c *fiber.Ctx) error {
	var req dto.SyncLogsRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_PARAMS", Message: "parámetros de consulta inválidos",
		})
	}

	logs, err := h.orch.Logs(c.Context(), req.Limit, req.SyncType)
	if err != nil {
		return respondUseCaseError(c, err)
	}

	out := make([]dto.SyncLogDTO, 0, len(logs))
	for _, l := range logs {
		out = append(out, dto.SyncLogDTO{
			ID:            l.ID,
			RunID:         l.RunID,
			SyncType:      l.SyncType,
			Status:        l.Status,
			RecordsSynced: l.RecordsSynced,
			ErrorMessage:  l.ErrorMessage,
			StartedAt:     l.StartedAt,
			FinishedAt:    l.FinishedAt,
		})
	}
	return c.JSON(out)
}

// parseTimeParam convierte un parámetro de fecha opcional. Acepta fecha con hora
// o fecha sola; con endOfDay la fecha sola se extiende al final del día para que
// el extremo sea inclusivo.
func parseTimeParam(val string, endOfDay bool) (*time.Time, error) {
	if val == "" {
		return nil, nil
	}
	if t, err := time.ParseInLocation(paramLayoutFull, val, time.UTC); err == nil {
		return &t, nil
	}
	t, err := time.ParseInLocation(paramLayoutDay, val, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("fecha inválida %q, se espera YYYY-MM-DD o YYYY-MM-DD HH:MM:SS", val)
	}
	if endOfDay {
		t = t.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
	}
	return &t, nil
}

// badParam responde 400 con el detalle del parámetro rechazado.
func badParam(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Code: "VALIDATION", Message: err.Error(),
	})
}

// started responde 202 con el identificador de la corrida lanzada.
func started(c *fiber.Ctx, handle appsync.RunHandle) error {
	return c.Status(fiber.StatusAccepted).JSON(dto.SyncStartedDTO{
		Status:   "started",
		RunID:    handle.RunID,
		SyncType: handle.SyncType,
	})
}

// respondSyncError mapea errores del orquestador a la respuesta HTTP.
func respondSyncError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrSyncInProgress) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code: "SYNC_IN_PROGRESS", Message: err.Error(),
		})
	}
	if errors.Is(err, domain.ErrInvalidInput) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: err.Error(),
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Code: "INTERNAL", Message: err.Error(),
	})
}
