// Package client 目录 API 的 Go 客户端：录音列表、详情与游标分页 feed。
//
//	c := client.NewClient("http://localhost:8080")
//	c.SetAuthToken(token)
//	feed := c.NewRecordingFeed(12)
//	for feed.HasMore() {
//		if _, err := feed.SentinelVisible(ctx); err != nil {
//			return err
//		}
//	}
//	recordings := feed.Items()
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/stagearchive/catalogue/domain"
	"github.com/stagearchive/catalogue/domain/domain_catalogue/catalogue_models"
	"github.com/stagearchive/catalogue/domain/domain_util"
)

// Client 设置令牌后可并发使用
type Client struct {
	baseURL    string
	httpClient *http.Client
	authToken  string
}

// NewClient baseURL 不带结尾斜杠与 /api 前缀
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// SetAuthToken 身份提供方签发的令牌，以 Bearer 方式发送
func (c *Client) SetAuthToken(token string) {
	c.authToken = token
}

// APIError 服务端的 {code, message} 错误体
type APIError struct {
	StatusCode int    `json:"-"`
	Code       string `json:"code"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error: status=%d, code=%s, message=%s", e.StatusCode, e.Code, e.Message)
}

func (c *Client) doRequest(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.authToken)
	}

	return c.httpClient.Do(req)
}

func decodeResponse(resp *http.Response, target any) error {
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(resp.Body)
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if err := json.Unmarshal(body, apiErr); err != nil || apiErr.Code == "" {
			apiErr.Message = string(body)
		}
		return apiErr
	}

	if target != nil && resp.StatusCode != http.StatusNoContent {
		if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// ListOptions 对应列表接口的查询参数
type ListOptions struct {
	Search   string
	Scope    string
	Sort     string
	Order    string
	Page     int
	PageSize int
}

func (o ListOptions) encode() string {
	q := url.Values{}
	if o.Search != "" {
		q.Set("search", o.Search)
	}
	if o.Scope != "" {
		q.Set("scope", o.Scope)
	}
	if o.Sort != "" {
		q.Set("sort", o.Sort)
	}
	if o.Order != "" {
		q.Set("order", o.Order)
	}
	if o.Page > 0 {
		q.Set("page", strconv.Itoa(o.Page))
	}
	if o.PageSize > 0 {
		q.Set("page_size", strconv.Itoa(o.PageSize))
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}

// ListRecordings 过滤、排序后的一页录音
func (c *Client) ListRecordings(ctx context.Context, opts ListOptions) (*domain_util.PageView[*catalogue_models.Recording], error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/api/recordings"+opts.encode(), nil)
	if err != nil {
		return nil, err
	}

	var out struct {
		Recordings domain_util.PageView[*catalogue_models.Recording] `json:"recordings"`
	}
	if err := decodeResponse(resp, &out); err != nil {
		return nil, err
	}
	return &out.Recordings, nil
}

// GetRecording 录音详情，含解析后的剧院与人员
func (c *Client) GetRecording(ctx context.Context, id string) (*catalogue_models.RecordingDetail, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/api/recordings/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}

	var out struct {
		Recording catalogue_models.RecordingDetail `json:"recording"`
	}
	if err := decodeResponse(resp, &out); err != nil {
		return nil, err
	}
	return &out.Recording, nil
}

// FeedPage 拉取一页 feed；游标为空时从最新录音开始
func (c *Client) FeedPage(ctx context.Context, cursor string, limit int) (*domain.Page[*catalogue_models.Recording], error) {
	q := url.Values{}
	if cursor != "" {
		q.Set("cursor", cursor)
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	path := "/api/recordings/feed"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	resp, err := c.doRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var out struct {
		Page domain.Page[*catalogue_models.Recording] `json:"page"`
	}
	if err := decodeResponse(resp, &out); err != nil {
		return nil, err
	}
	return &out.Page, nil
}

// NewRecordingFeed 基于 feed 接口的无限滚动累加器
func (c *Client) NewRecordingFeed(limit int) *domain_util.InfiniteFeed[*catalogue_models.Recording] {
	return domain_util.NewInfiniteFeed(func(ctx context.Context, cursor string) (*domain.Page[*catalogue_models.Recording], error) {
		return c.FeedPage(ctx, cursor, limit)
	})
}

// Me 当前登录用户及其角色
func (c *Client) Me(ctx context.Context) (*catalogue_models.Principal, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/api/me", nil)
	if err != nil {
		return nil, err
	}

	var out struct {
		User catalogue_models.Principal `json:"user"`
	}
	if err := decodeResponse(resp, &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}
