package analytics_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appanalytics "github.com/jhoicas/turnover-api/internal/application/analytics"
	"github.com/jhoicas/turnover-api/internal/application/dto"
	"github.com/jhoicas/turnover-api/internal/domain"
	"github.com/jhoicas/turnover-api/internal/domain/entity"
	"github.com/jhoicas/turnover-api/internal/domain/repository"
)

var _ repository.CapacityRepository = (*fakeCapacityRepo)(nil)

type fakeCapacityRepo struct {
	rows     []entity.WarehouseCapacity
	err      error
	upserted []entity.WarehouseCapacity
}

func (f *fakeCapacityRepo) Upsert(_ context.Context, capacity entity.WarehouseCapacity) error {
	if f.err != nil {
		return f.err
	}
	f.upserted = append(f.upserted, capacity)
	return nil
}

func (f *fakeCapacityRepo) GetAll(context.Context) ([]entity.WarehouseCapacity, error) {
	return f.rows, f.err
}

// ──────────────────────────────────────────────────────────────────────────────
// Capacidades
// ──────────────────────────────────────────────────────────────────────────────

func TestListCapacities_UneDirectorioYConfiguradas(t *testing.T) {
	capRepo := &fakeCapacityRepo{
		rows: []entity.WarehouseCapacity{
			{WarehouseID: "LAW", TotalCapacityCBM: decimal.NewFromInt(100)},
			{WarehouseID: "TXW", TotalCapacityCBM: decimal.NewFromInt(50)},
		},
	}
	uc := appanalytics.NewWarehouseUseCase(&fakeAnalyticsRepo{}, capRepo, testDirectory())

	res, err := uc.ListCapacities(context.Background())
	require.NoError(t, err)

	// DEW sale del directorio con capacidad 0, TXW solo de la tabla
	require.Len(t, res, 3)
	assert.Equal(t, "DEW", res[0].WarehouseID)
	assert.Equal(t, "Delaware Warehouse", res[0].WarehouseName)
	assert.Equal(t, "0", res[0].TotalCapacityCBM.String())

	assert.Equal(t, "LAW", res[1].WarehouseID)
	assert.Equal(t, "100", res[1].TotalCapacityCBM.String())

	assert.Equal(t, "TXW", res[2].WarehouseID)
	assert.Equal(t, "Warehouse TXW", res[2].WarehouseName)
	assert.Equal(t, "50", res[2].TotalCapacityCBM.String())
}

func TestSetCapacity_GuardaYDevuelveNombre(t *testing.T) {
	capRepo := &fakeCapacityRepo{}
	uc := appanalytics.NewWarehouseUseCase(&fakeAnalyticsRepo{}, capRepo, testDirectory())

	res, err := uc.SetCapacity(context.Background(), dto.SetCapacityRequest{
		WarehouseID:      "LAW",
		TotalCapacityCBM: decimal.RequireFromString("750.5"),
	})
	require.NoError(t, err)

	require.Len(t, capRepo.upserted, 1)
	assert.Equal(t, "LAW", capRepo.upserted[0].WarehouseID)
	assert.Equal(t, "750.5", capRepo.upserted[0].TotalCapacityCBM.String())

	assert.Equal(t, "Los Angeles Warehouse", res.WarehouseName)
	assert.Equal(t, "750.5", res.TotalCapacityCBM.String())
}

func TestSetCapacity_Validaciones(t *testing.T) {
	uc := appanalytics.NewWarehouseUseCase(&fakeAnalyticsRepo{}, &fakeCapacityRepo{}, testDirectory())

	_, err := uc.SetCapacity(context.Background(), dto.SetCapacityRequest{
		TotalCapacityCBM: decimal.NewFromInt(10),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "sin warehouse_id se rechaza")

	_, err = uc.SetCapacity(context.Background(), dto.SetCapacityRequest{
		WarehouseID:      "DEW",
		TotalCapacityCBM: decimal.NewFromInt(-1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "capacidad negativa se rechaza")
}

// ──────────────────────────────────────────────────────────────────────────────
// Utilización
// ──────────────────────────────────────────────────────────────────────────────

func TestGetUtilization_CruzaVolumenYCapacidad(t *testing.T) {
	repo := &fakeAnalyticsRepo{
		netVolumes: []repository.WarehouseNetVolumeResult{
			{WarehouseID: "LAW", NetVolume: decimal.NewFromInt(250)},
			{WarehouseID: "TXW", NetVolume: decimal.NewFromInt(-5)},
			{WarehouseID: "DEW", NetVolume: decimal.NewFromInt(30)},
			{WarehouseID: "MIA", NetVolume: decimal.NewFromInt(90)},
		},
	}
	capRepo := &fakeCapacityRepo{
		rows: []entity.WarehouseCapacity{
			{WarehouseID: "LAW", TotalCapacityCBM: decimal.NewFromInt(100)},
			{WarehouseID: "NJW", TotalCapacityCBM: decimal.Zero},
			{WarehouseID: "TXW", TotalCapacityCBM: decimal.NewFromInt(50)},
			{WarehouseID: "MIA", TotalCapacityCBM: decimal.NewFromInt(200)},
		},
	}
	uc := appanalytics.NewWarehouseUseCase(repo, capRepo, testDirectory())

	res, err := uc.GetUtilization(context.Background())
	require.NoError(t, err)

	// Unión de directorio, capacidades y volúmenes, ordenada por código
	require.Len(t, res, 5)

	dew := res[0]
	assert.Equal(t, "DEW", dew.WarehouseID)
	assert.Equal(t, "30", dew.NetVolumeCBM.String())
	assert.False(t, dew.CapacitySet, "sin capacidad configurada no hay porcentaje")
	assert.Nil(t, dew.UtilizationPct)

	law := res[1]
	assert.Equal(t, "LAW", law.WarehouseID)
	assert.True(t, law.CapacitySet)
	require.NotNil(t, law.UtilizationPct)
	assert.Equal(t, "100", law.UtilizationPct.String(), "la ocupación se recorta a 100")

	mia := res[2]
	assert.Equal(t, "MIA", mia.WarehouseID)
	assert.Equal(t, "Warehouse MIA", mia.WarehouseName)
	require.NotNil(t, mia.UtilizationPct)
	assert.Equal(t, "45", mia.UtilizationPct.String())

	njw := res[3]
	assert.Equal(t, "NJW", njw.WarehouseID)
	assert.False(t, njw.CapacitySet, "capacidad 0 no cuenta como configurada")
	assert.Nil(t, njw.UtilizationPct)

	txw := res[4]
	assert.Equal(t, "TXW", txw.WarehouseID)
	assert.True(t, txw.CapacitySet)
	require.NotNil(t, txw.UtilizationPct)
	assert.Equal(t, "0", txw.UtilizationPct.String(), "volumen neto negativo se recorta a 0")
}

func TestGetUtilization_ErroresDeRepositorio(t *testing.T) {
	boom := errors.New("timeout")

	uc := appanalytics.NewWarehouseUseCase(&fakeAnalyticsRepo{netErr: boom}, &fakeCapacityRepo{}, testDirectory())
	_, err := uc.GetUtilization(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "volumen neto")

	uc = appanalytics.NewWarehouseUseCase(&fakeAnalyticsRepo{}, &fakeCapacityRepo{err: boom}, testDirectory())
	_, err = uc.GetUtilization(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "capacidades")
}
