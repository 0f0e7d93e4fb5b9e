// Package apiclient - HTTP клиент сервиса заказов и абонементов. Каждый
// мутирующий эндпоинт возвращает полную каноничную сущность, слой
// реконсиляции подставляет ее вместо оптимистичных копий без изменений.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/osokin-dev/gymcart/internal/domain"
	"github.com/shopspring/decimal"

	"io"
	"net/http"
)

const (
	RouteOrders           = "/api/orders"
	RouteOrderStatus      = "/api/orders/%s/status"
	RouteMemberships      = "/api/memberships"
	RouteMembershipCancel = "/api/memberships/%s/cancel"
	RouteMyMemberships    = "/api/memberships/mine"
)

// Константы минимального и максимального значения в заголовке Retry-After.
const (
	minRetryAfter = 1
	maxRetryAfter = 120
)

// HTTPClient является реализацией клиента сервиса заказов/абонементов.
type HTTPClient struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func New(baseURL string, token string) HTTPClient {
	return HTTPClient{
		baseURL:    baseURL,
		token:      token,
		httpClient: http.DefaultClient,
	}
}

// UpdateOrderStatus выполняет авторитетный переход статуса заказа.
// PATCH RouteOrderStatus.
func (c HTTPClient) UpdateOrderStatus(
	ctx context.Context,
	orderID string,
	status domain.OrderStatusType,
) (*domain.Order, error) {
	var order domain.Order
	body := UpdateOrderStatusRequest{Status: status}
	path := fmt.Sprintf(RouteOrderStatus, url.PathEscape(orderID))
	if err := c.do(ctx, http.MethodPatch, path, body, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// CancelMembership отменяет абонемент. POST RouteMembershipCancel с пустым телом.
func (c HTTPClient) CancelMembership(ctx context.Context, membershipID string) (*domain.Membership, error) {
	var membership domain.Membership
	path := fmt.Sprintf(RouteMembershipCancel, url.PathEscape(membershipID))
	if err := c.do(ctx, http.MethodPost, path, struct{}{}, &membership); err != nil {
		return nil, err
	}
	return &membership, nil
}

// AssignMembership создает абонемент пользователю (админская операция).
func (c HTTPClient) AssignMembership(ctx context.Context, args AssignMembershipRequest) (*domain.Membership, error) {
	var membership domain.Membership
	if err := c.do(ctx, http.MethodPost, RouteMemberships, args, &membership); err != nil {
		return nil, err
	}
	return &membership, nil
}

// ListOrders возвращает страницу заказов.
func (c HTTPClient) ListOrders(ctx context.Context, args ListArgs) (*Page[domain.Order], error) {
	var page Page[domain.Order]
	if err := c.do(ctx, http.MethodGet, RouteOrders+listQuery(args), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// ListMemberships возвращает страницу общего (админского) списка абонементов.
func (c HTTPClient) ListMemberships(ctx context.Context, args ListArgs) (*Page[domain.Membership], error) {
	var page Page[domain.Membership]
	if err := c.do(ctx, http.MethodGet, RouteMemberships+listQuery(args), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// ListMyMemberships возвращает страницу абонементов текущего пользователя.
func (c HTTPClient) ListMyMemberships(ctx context.Context, args ListArgs) (*Page[domain.Membership], error) {
	var page Page[domain.Membership]
	if err := c.do(ctx, http.MethodGet, RouteMyMemberships+listQuery(args), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// do выполняет запрос и декодирует успешный ответ в out. При ответе сервера
// со статусом отличным от 2xx возвращает ошибку StatusCodeError, или
// TooManyRequestError в случае http.StatusTooManyRequests.
//
//nolint:nonamedreturns
func (c HTTPClient) do(ctx context.Context, method, path string, in any, out any) (err error) {
	// Дешевая локальная проверка: с протухшим токеном нет смысла ходить по сети.
	if tokenErr := checkTokenExpiry(c.token, time.Now()); tokenErr != nil {
		return tokenErr
	}

	var reqBody io.Reader
	if in != nil {
		raw, marshalErr := json.Marshal(in)
		if marshalErr != nil {
			return fmt.Errorf("marshal request: %s", marshalErr.Error())
		}
		reqBody = bytes.NewReader(raw)
	}

	req, reqErr := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if reqErr != nil {
		return fmt.Errorf("create request: %s", reqErr.Error())
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, doErr := c.httpClient.Do(req)
	if doErr != nil {
		return fmt.Errorf("do request: %s", doErr.Error())
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			err = errors.Join(err, closeErr)
		}
	}()

	if resp.StatusCode == http.StatusTooManyRequests {
		return NewTooManyRequestError(parseRetryAfter(resp.Header.Get("Retry-After")))
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		err = NewStatusCodeError(resp.StatusCode)
		return err
	}

	body, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		err = fmt.Errorf("read response: %s", readErr.Error())
		return err
	}

	if jsonErr := json.Unmarshal(body, out); jsonErr != nil {
		err = fmt.Errorf("parse response: %s", jsonErr.Error())
		return err
	}
	return nil
}

func parseRetryAfter(header string) time.Duration {
	minValue := decimal.NewFromInt(minRetryAfter)
	maxValue := decimal.NewFromInt(maxRetryAfter)

	retryAfter, parseErr := decimal.NewFromString(header)
	if parseErr != nil || retryAfter.LessThan(minValue) || retryAfter.GreaterThan(maxValue) {
		// в случае ошибки или неверных данных ставим 60 секунд
		retryAfter = decimal.NewFromInt(60) //nolint:mnd
	}
	return time.Duration(retryAfter.IntPart()) * time.Second
}

func listQuery(args ListArgs) string {
	values := url.Values{}
	if args.Page > 0 {
		values.Set("page", strconv.Itoa(args.Page))
	}
	if args.Limit > 0 {
		values.Set("limit", strconv.Itoa(args.Limit))
	}
	if args.GymID != "" {
		values.Set("gym", args.GymID)
	}
	if args.Status != "" {
		values.Set("status", args.Status)
	}
	if len(values) == 0 {
		return ""
	}
	return "?" + values.Encode()
}
