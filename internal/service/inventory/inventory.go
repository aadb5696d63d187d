// Package inventory — сверка остатков: количества из fulfillment API
// переносятся в таблицу продуктов, по итогам пишется отчёт.
package inventory

import (
	"context"
	"fmt"
	"time"
)

const (
	DefaultBatchSize = 300
	reportName       = "skuLabSkuUpdateReport"
)

type Config struct {
	// Имя таблицы продуктов, попадает в отчёт.
	Table string
	// Локация склада в fulfillment API. Пустая — суммируем по всем.
	LocationID string
	BatchSize  int
	// DryRun считает и пишет отчёт, но не трогает таблицу.
	DryRun bool
}

type Inventory struct {
	config       Config
	repository   Repository
	gateway      Gateway
	txManager    TxManager
	reportWriter ReportWriter
	pacer        Pacer
}

func New(
	config Config,
	repository Repository,
	gateway Gateway,
	txManager TxManager,
	reportWriter ReportWriter,
	pacer Pacer,
) *Inventory {
	if config.BatchSize <= 0 {
		config.BatchSize = DefaultBatchSize
	}

	return &Inventory{
		config:       config,
		repository:   repository,
		gateway:      gateway,
		txManager:    txManager,
		reportWriter: reportWriter,
		pacer:        pacer,
	}
}

type UpdateReport struct {
	Table   string      `json:"table"`
	DryRun  bool        `json:"dry_run"`
	Total   int         `json:"total"`
	Good    int         `json:"good"`
	Failed  int         `json:"failed"`
	Results []SKUResult `json:"results"`
}

type SKUResult struct {
	SKU         string `json:"sku"`
	OldQuantity *int64 `json:"old_quantity,omitempty"`
	NewQuantity *int64 `json:"new_quantity,omitempty"`
	Error       string `json:"error,omitempty"`
}

// Reconcile прогоняет полную сверку. Ошибка по отдельному SKU попадает
// в отчёт и не прерывает прогон, отменённый контекст — прерывает.
func (i *Inventory) Reconcile(ctx context.Context) (*UpdateReport, error) {
	skus, err := i.repository.DistinctSKUs(ctx)
	if err != nil {
		return nil, fmt.Errorf("list skus: %w", err)
	}
	if len(skus) == 0 {
		return nil, ErrEmptyCatalog
	}

	itemIDBySKU, err := i.fetchItemIDs(ctx, skus)
	if err != nil {
		return nil, fmt.Errorf("fetch items: %w", err)
	}

	onHand, err := i.gateway.GetOnHandLocationMap(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch on hand map: %w", err)
	}
	quantityByItemID := i.flattenOnHand(onHand)

	report := &UpdateReport{
		Table:   i.config.Table,
		DryRun:  i.config.DryRun,
		Total:   len(skus),
		Results: make([]SKUResult, 0, len(skus)),
	}

	for _, sku := range skus {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("reconcile interrupted: %w", err)
		}

		result := i.reconcileSKU(ctx, sku, itemIDBySKU, quantityByItemID)
		if result.Error == "" {
			report.Good++
		} else {
			report.Failed++
		}
		report.Results = append(report.Results, result)
	}

	if _, err := i.reportWriter.Write(reportName, report); err != nil {
		return nil, fmt.Errorf("write report: %w", err)
	}

	return report, nil
}

func (i *Inventory) fetchItemIDs(ctx context.Context, skus []string) (map[string]string, error) {
	itemIDBySKU := make(map[string]string, len(skus))

	for start := 0; start < len(skus); start += i.config.BatchSize {
		end := start + i.config.BatchSize
		if end > len(skus) {
			end = len(skus)
		}

		if start > 0 {
			if err := i.pacer.Wait(ctx); err != nil {
				return nil, err
			}
		}

		items, err := i.gateway.GetItems(ctx, skus[start:end])
		if err != nil {
			return nil, err
		}
		for _, item := range items {
			itemIDBySKU[item.SKU] = item.ItemID
		}
	}

	return itemIDBySKU, nil
}

func (i *Inventory) flattenOnHand(onHand map[string]map[string]int64) map[string]int64 {
	quantityByItemID := make(map[string]int64)

	if i.config.LocationID != "" {
		for itemID, quantity := range onHand[i.config.LocationID] {
			quantityByItemID[itemID] = quantity
		}
		return quantityByItemID
	}

	for _, location := range onHand {
		for itemID, quantity := range location {
			quantityByItemID[itemID] += quantity
		}
	}
	return quantityByItemID
}

func (i *Inventory) reconcileSKU(
	ctx context.Context,
	sku string,
	itemIDBySKU map[string]string,
	quantityByItemID map[string]int64,
) SKUResult {
	result := SKUResult{SKU: sku}

	itemID, ok := itemIDBySKU[sku]
	if !ok {
		result.Error = "sku not found in fulfillment api"
		return result
	}

	// Отсутствие в карте остатков значит ноль на складе.
	newQuantity := quantityByItemID[itemID]
	result.NewQuantity = &newQuantity

	err := i.txManager.Do(ctx, func(ctx context.Context) error {
		productEntity, err := i.repository.GetQuantityBySKU(ctx, sku)
		if err != nil {
			return err
		}
		result.OldQuantity = &productEntity.Quantity

		if i.config.DryRun || productEntity.Quantity == newQuantity {
			return nil
		}
		return i.repository.UpdateQuantityBySKU(ctx, sku, newQuantity)
	})
	if err != nil {
		result.Error = err.Error()
	}

	return result
}

// IntervalPacer — продовый Pacer: простая пауза фиксированной длины.
type IntervalPacer struct {
	interval time.Duration
}

func NewIntervalPacer(interval time.Duration) *IntervalPacer {
	return &IntervalPacer{interval: interval}
}

func (p *IntervalPacer) Wait(ctx context.Context) error {
	timer := time.NewTimer(p.interval)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
