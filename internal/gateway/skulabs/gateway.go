// Package skulabs — клиент fulfillment API (SkuLabs): карточки
// товаров, остатки по локациям, заказы и их переопределение.
package skulabs

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"skusync/internal/entities"
	retrierconfig "skusync/pkg/retrier"
	"skusync/pkg/retrier/backoff_adapter"
)

const (
	serviceName = "skulabs"

	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 5 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

type Config struct {
	BaseURL string
	Token   string
}

type Gateway struct {
	httpClient httpDoer
	baseURL    string
	token      string
	retrier    retrier
}

func New(cfg Config, httpClient httpDoer) *Gateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryableError,
	}

	return &Gateway{
		httpClient: httpClient,
		baseURL:    cfg.BaseURL,
		token:      cfg.Token,
		retrier:    backoff_adapter.New(retryConfig),
	}
}

// GetItems возвращает карточки товаров по списку SKU одним запросом.
func (g *Gateway) GetItems(ctx context.Context, skus []string) ([]entities.FulfillmentItem, error) {
	selector, err := json.Marshal(map[string]any{
		"sku": map[string]any{"$in": skus},
	})
	if err != nil {
		return nil, fmt.Errorf("gateway skulabs, marshal selector: %w", err)
	}

	query := url.Values{}
	query.Set("selector", string(selector))

	var items []itemWire
	err = g.executeWithMetrics(ctx, "GetItems", func(ctx context.Context) error {
		return g.doJSON(ctx, http.MethodGet, "/item/get?"+query.Encode(), nil, &items)
	})
	if err != nil {
		return nil, fmt.Errorf("gateway skulabs, get items: %w", err)
	}

	return toItemDomainList(items), nil
}

// GetOnHandLocationMap возвращает карту остатков:
// location id -> item id -> количество на складе.
func (g *Gateway) GetOnHandLocationMap(ctx context.Context) (map[string]map[string]int64, error) {
	var onHand map[string]map[string]int64

	err := g.executeWithMetrics(ctx, "GetOnHandLocationMap", func(ctx context.Context) error {
		return g.doJSON(ctx, http.MethodPost, "/inventory/get_on_hand_location_map", map[string]any{}, &onHand)
	})
	if err != nil {
		return nil, fmt.Errorf("gateway skulabs, get on hand location map: %w", err)
	}

	return onHand, nil
}

// GetOrders возвращает заказы окна [start, end] с заданными тегами.
func (g *Gateway) GetOrders(ctx context.Context, start, end time.Time, tags []string) ([]entities.FulfillmentOrder, error) {
	requestBody, err := json.Marshal(map[string]any{
		"start": start.Format("2006-01-02T15:04:05"),
		"end":   end.Format("2006-01-02T15:04:05"),
		"tags":  tags,
	})
	if err != nil {
		return nil, fmt.Errorf("gateway skulabs, marshal request body: %w", err)
	}

	query := url.Values{}
	query.Set("request_body", string(requestBody))

	var resp getOrdersResponseWire
	err = g.executeWithMetrics(ctx, "GetOrders", func(ctx context.Context) error {
		return g.doJSON(ctx, http.MethodGet, "/order/get_all?"+query.Encode(), nil, &resp)
	})
	if err != nil {
		return nil, fmt.Errorf("gateway skulabs, get orders: %w", err)
	}

	return toOrderDomainList(&resp), nil
}

// GetOrder возвращает один заказ и его отправления.
func (g *Gateway) GetOrder(ctx context.Context, storeID, orderNumber string) (*entities.FulfillmentOrder, []entities.Shipment, error) {
	query := url.Values{}
	query.Set("store_id", storeID)
	query.Set("order_number", orderNumber)

	var resp getSingleOrderResponseWire
	err := g.executeWithMetrics(ctx, "GetOrder", func(ctx context.Context) error {
		return g.doJSON(ctx, http.MethodGet, "/order/get_single?"+query.Encode(), nil, &resp)
	})
	if err != nil {
		return nil, nil, fmt.Errorf("gateway skulabs, get order %s: %w", orderNumber, err)
	}

	if resp.Order == nil {
		return nil, nil, fmt.Errorf("gateway skulabs, get order %s: %w", orderNumber, ErrOrderNotFound)
	}

	order := toOrderDomain(resp.Order)
	return &order, toShipmentDomainList(resp.Order.Shipments), nil
}

// OverrideOrder перезаписывает stash заказа целиком.
func (g *Gateway) OverrideOrder(ctx context.Context, storeID, orderNumber string, stash map[string]any) error {
	body := overrideOrderRequestWire{
		StoreID:     storeID,
		OrderNumber: orderNumber,
		Stash:       stash,
	}

	err := g.executeWithMetrics(ctx, "OverrideOrder", func(ctx context.Context) error {
		return g.doJSON(ctx, http.MethodPut, "/order/override", body, nil)
	})
	if err != nil {
		return fmt.Errorf("gateway skulabs, override order %s: %w", orderNumber, err)
	}

	return nil
}

func (g *Gateway) doJSON(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+g.token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Тело нужно только для диагностики, целиком не читаем.
		preview, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &statusError{code: resp.StatusCode, body: string(preview)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (g *Gateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	status := statusLabel(err)
	GatewayRequestDuration.WithLabelValues(serviceName, method, status).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		GatewayRetriesTotal.WithLabelValues(serviceName, method, status).Inc()
	}

	return err
}

func statusLabel(err error) string {
	if err == nil {
		return "OK"
	}

	var statusErr *statusError
	if errors.As(err, &statusErr) {
		return strconv.Itoa(statusErr.code)
	}
	return "TRANSPORT"
}
