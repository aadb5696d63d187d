//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"net/http"
	"time"

	"skusync/internal/gateway/skulabs"
	delivery_date_get "skusync/internal/handlers/rest/delivery_date_get"
	ship_by_date_post "skusync/internal/handlers/rest/ship_by_date_post"
	zone_get "skusync/internal/handlers/rest/zone_get"
	"skusync/internal/handlers/tasks/inventory_sync"
	"skusync/internal/handlers/tasks/ship_by_date_sync"
	"skusync/internal/handlers/tasks/tracking_backfill"
	"skusync/internal/pkg/config"
	"skusync/internal/pkg/shippingzones"

	orderRepo "skusync/internal/repository/order"
	productRepo "skusync/internal/repository/product"
	deliverydateService "skusync/internal/service/deliverydate"
	inventoryService "skusync/internal/service/inventory"
	notesService "skusync/internal/service/notes"
	shipbyService "skusync/internal/service/shipby"
	trackingService "skusync/internal/service/tracking"

	"skusync/pkg/background"
	"skusync/pkg/logger"
	"skusync/pkg/querier"
	"skusync/pkg/report"
	"skusync/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

const gatewayHTTPTimeout = 30 * time.Second

type (
	InventorySyncInterval    time.Duration
	ShipByDateSyncInterval   time.Duration
	TrackingBackfillInterval time.Duration
)

type Application struct {
	ServiceDeliveryDate ServiceDeliveryDate
	NotesParser         NotesParser
	Zones               ZoneTable
	BackgroundWorkers   *background.Worker
}

type ServiceDeliveryDate interface {
	delivery_date_get.Service
	ship_by_date_post.ShipDateCalculator
}

type NotesParser interface {
	ship_by_date_post.NotesParser
}

type ZoneTable interface {
	delivery_date_get.ZoneTable
	zone_get.ZoneTable
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideInventorySyncInterval,
		provideShipByDateSyncInterval,
		provideTrackingBackfillInterval,

		provideProductRepository,
		provideOrderRepository,
		provideSkuLabsGateway,
		provideZones,
		provideClock,
		provideDeliveryDateEngine,
		provideNotesParser,
		provideReportWriter,
		providePacer,

		provideInventoryConfig,
		provideShipByConfig,
		provideTrackingConfig,
		provideInventoryService,
		provideShipByService,
		provideTrackingService,

		provideInventorySyncTask,
		provideShipByDateSyncTask,
		provideTrackingBackfillTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceDeliveryDate), new(*deliverydateService.Engine)),
		wire.Bind(new(NotesParser), new(*notesService.Parser)),
		wire.Bind(new(ZoneTable), new(*shippingzones.Table)),

		wire.Bind(new(deliverydateService.ZoneTable), new(*shippingzones.Table)),
		wire.Bind(new(deliverydateService.Clock), new(*deliverydateService.SystemClock)),

		wire.Bind(new(inventoryService.Repository), new(*productRepo.Repository)),
		wire.Bind(new(inventoryService.Gateway), new(*skulabs.Gateway)),
		wire.Bind(new(inventoryService.TxManager), new(*tx.Manager)),
		wire.Bind(new(inventoryService.ReportWriter), new(*report.Writer)),
		wire.Bind(new(inventoryService.Pacer), new(*inventoryService.IntervalPacer)),

		wire.Bind(new(shipbyService.Gateway), new(*skulabs.Gateway)),
		wire.Bind(new(shipbyService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(shipbyService.NotesParser), new(*notesService.Parser)),
		wire.Bind(new(shipbyService.ShipDateCalculator), new(*deliverydateService.Engine)),
		wire.Bind(new(shipbyService.Clock), new(*deliverydateService.SystemClock)),
		wire.Bind(new(shipbyService.Pacer), new(*inventoryService.IntervalPacer)),

		wire.Bind(new(trackingService.Gateway), new(*skulabs.Gateway)),
		wire.Bind(new(trackingService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(trackingService.Pacer), new(*inventoryService.IntervalPacer)),

		wire.Bind(new(inventory_sync.Service), new(*inventoryService.Inventory)),
		wire.Bind(new(ship_by_date_sync.Service), new(*shipbyService.ShipBy)),
		wire.Bind(new(tracking_backfill.Service), new(*trackingService.Tracking)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	ShipByService *shipbyService.ShipBy
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-order-notes-changed)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideQuerier,

		provideOrderRepository,
		provideSkuLabsGateway,
		provideZones,
		provideClock,
		provideDeliveryDateEngine,
		provideNotesParser,
		providePacer,

		provideShipByConfig,
		provideShipByService,

		wire.Bind(new(deliverydateService.ZoneTable), new(*shippingzones.Table)),
		wire.Bind(new(deliverydateService.Clock), new(*deliverydateService.SystemClock)),

		wire.Bind(new(shipbyService.Gateway), new(*skulabs.Gateway)),
		wire.Bind(new(shipbyService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(shipbyService.NotesParser), new(*notesService.Parser)),
		wire.Bind(new(shipbyService.ShipDateCalculator), new(*deliverydateService.Engine)),
		wire.Bind(new(shipbyService.Clock), new(*deliverydateService.SystemClock)),
		wire.Bind(new(shipbyService.Pacer), new(*inventoryService.IntervalPacer)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideProductRepository(querier *querier.Querier, cfg *config.Config) *productRepo.Repository {
	return productRepo.New(querier, cfg.Sync.ProductTable)
}

func provideOrderRepository(querier *querier.Querier, cfg *config.Config) *orderRepo.Repository {
	return orderRepo.New(querier, cfg.Sync.OrdersTable, cfg.Sync.OrdersTestTable)
}

func provideSkuLabsGateway(cfg *config.Config) *skulabs.Gateway {
	httpClient := &http.Client{Timeout: gatewayHTTPTimeout}

	return skulabs.New(skulabs.Config{
		BaseURL: cfg.SkuLabs.BaseURL,
		Token:   cfg.SkuLabs.Token,
	}, httpClient)
}

func provideZones() *shippingzones.Table {
	return shippingzones.New()
}

func provideClock() *deliverydateService.SystemClock {
	return deliverydateService.NewSystemClock()
}

func provideDeliveryDateEngine(
	zones deliverydateService.ZoneTable,
	clock deliverydateService.Clock,
) *deliverydateService.Engine {
	return deliverydateService.New(zones, clock)
}

func provideNotesParser() (*notesService.Parser, error) {
	warehouseLoc, err := time.LoadLocation(deliverydateService.DefaultWarehouseTimezone)
	if err != nil {
		return nil, err
	}

	return notesService.NewParser(warehouseLoc, deliverydateService.ShipHour), nil
}

func provideReportWriter(cfg *config.Config) *report.Writer {
	return report.New(cfg.Sync.ReportDir)
}

func providePacer(cfg *config.Config) *inventoryService.IntervalPacer {
	return inventoryService.NewIntervalPacer(cfg.SkuLabs.Pacing)
}

func provideInventoryConfig(cfg *config.Config) inventoryService.Config {
	return inventoryService.Config{
		Table:      cfg.Sync.ProductTable,
		LocationID: cfg.SkuLabs.LocationID,
		BatchSize:  cfg.SkuLabs.BatchSize,
		DryRun:     cfg.Sync.DryRun,
	}
}

func provideShipByConfig(cfg *config.Config) shipbyService.Config {
	return shipbyService.Config{
		StoreID: cfg.SkuLabs.StoreID,
		Tag:     cfg.SkuLabs.OrderTag,
		Window:  cfg.SkuLabs.OrderWindow,
	}
}

func provideTrackingConfig(cfg *config.Config) trackingService.Config {
	return trackingService.Config{
		StoreID: cfg.SkuLabs.StoreID,
	}
}

func provideInventoryService(
	config inventoryService.Config,
	repository inventoryService.Repository,
	gateway inventoryService.Gateway,
	txManager inventoryService.TxManager,
	reportWriter inventoryService.ReportWriter,
	pacer inventoryService.Pacer,
) *inventoryService.Inventory {
	return inventoryService.New(
		config,
		repository,
		gateway,
		txManager,
		reportWriter,
		pacer,
	)
}

func provideShipByService(
	config shipbyService.Config,
	gateway shipbyService.Gateway,
	repository shipbyService.Repository,
	parser shipbyService.NotesParser,
	calculator shipbyService.ShipDateCalculator,
	clock shipbyService.Clock,
	pacer shipbyService.Pacer,
) *shipbyService.ShipBy {
	return shipbyService.New(
		config,
		gateway,
		repository,
		parser,
		calculator,
		clock,
		pacer,
	)
}

func provideTrackingService(
	config trackingService.Config,
	gateway trackingService.Gateway,
	repository trackingService.Repository,
	pacer trackingService.Pacer,
) (*trackingService.Tracking, error) {
	return trackingService.New(config, gateway, repository, pacer)
}

func provideInventorySyncInterval(cfg *config.Config) InventorySyncInterval {
	return InventorySyncInterval(cfg.Tasks.InventorySyncInterval)
}

func provideShipByDateSyncInterval(cfg *config.Config) ShipByDateSyncInterval {
	return ShipByDateSyncInterval(cfg.Tasks.ShipByDateSyncInterval)
}

func provideTrackingBackfillInterval(cfg *config.Config) TrackingBackfillInterval {
	return TrackingBackfillInterval(cfg.Tasks.TrackingBackfillInterval)
}

func provideInventorySyncTask(
	log logger.Logger,
	inventoryService inventory_sync.Service,
	interval InventorySyncInterval,
) *inventory_sync.InventorySync {
	return inventory_sync.NewInventorySync(log, inventoryService, time.Duration(interval))
}

func provideShipByDateSyncTask(
	log logger.Logger,
	shipByService ship_by_date_sync.Service,
	interval ShipByDateSyncInterval,
) *ship_by_date_sync.ShipByDateSync {
	return ship_by_date_sync.NewShipByDateSync(log, shipByService, time.Duration(interval))
}

func provideTrackingBackfillTask(
	log logger.Logger,
	trackingService tracking_backfill.Service,
	interval TrackingBackfillInterval,
) *tracking_backfill.TrackingBackfill {
	return tracking_backfill.NewTrackingBackfill(log, trackingService, time.Duration(interval))
}

func provideTaskList(
	inventorySyncTask *inventory_sync.InventorySync,
	shipByDateSyncTask *ship_by_date_sync.ShipByDateSync,
	trackingBackfillTask *tracking_backfill.TrackingBackfill,
) []background.Task {
	return []background.Task{
		inventorySyncTask,
		shipByDateSyncTask,
		trackingBackfillTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
