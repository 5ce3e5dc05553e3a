package client

import (
	"context"
	"net/url"
	"strconv"
)

// AppService talks to the /api/sys/app endpoints.
type AppService struct {
	client *Client
}

type AppPageParams struct {
	Size    int
	Cursor  CursorParams
	Name    string
	AppType *int
}

type AddAppParams struct {
	Name       string                 `json:"name"`
	AppType    int                    `json:"appType"`
	Status     *int                   `json:"status,omitempty"`
	OrgID      string                 `json:"orgId,omitempty"`
	Remark     string                 `json:"remark,omitempty"`
	Additional map[string]interface{} `json:"additional,omitempty"`
}

type UpdateAppParams struct {
	ID         string                 `json:"id"`
	Name       string                 `json:"name,omitempty"`
	AppType    *int                   `json:"appType,omitempty"`
	Status     *int                   `json:"status,omitempty"`
	OrgID      *string                `json:"orgId,omitempty"`
	Remark     *string                `json:"remark,omitempty"`
	Additional map[string]interface{} `json:"additional,omitempty"`
}

const defaultAppPageSize = 50

func (s *AppService) ListPage(ctx context.Context, p AppPageParams) (*Page[AppItem], error) {
	q := url.Values{}
	size := p.Size
	if size <= 0 {
		size = defaultAppPageSize
	}
	q.Set("size", strconv.Itoa(size))
	setCursor(q, p.Cursor)
	if p.Name != "" {
		q.Set("name", p.Name)
	}
	if p.AppType != nil {
		q.Set("appType", strconv.Itoa(*p.AppType))
	}

	var page Page[AppItem]
	if err := s.client.get(ctx, "/api/sys/app/page-list", q, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (s *AppService) GetByID(ctx context.Context, id string) (*AppItem, error) {
	q := url.Values{}
	q.Set("id", id)
	var app AppItem
	if err := s.client.get(ctx, "/api/sys/app/details", q, &app); err != nil {
		return nil, err
	}
	return &app, nil
}

func (s *AppService) Add(ctx context.Context, p AddAppParams) (bool, error) {
	var ok bool
	if err := s.client.post(ctx, "/api/sys/app/add", p, &ok); err != nil {
		return false, err
	}
	return ok, nil
}

func (s *AppService) Update(ctx context.Context, p UpdateAppParams) (bool, error) {
	var ok bool
	if err := s.client.post(ctx, "/api/sys/app/update", p, &ok); err != nil {
		return false, err
	}
	return ok, nil
}

func (s *AppService) DeleteMany(ctx context.Context, ids []string) (bool, error) {
	if ids == nil {
		ids = []string{}
	}
	var ok bool
	if err := s.client.post(ctx, "/api/sys/app/delete", map[string][]string{"ids": ids}, &ok); err != nil {
		return false, err
	}
	return ok, nil
}
