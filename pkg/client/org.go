package client

import (
	"context"
	"net/url"
	"strconv"
)

// OrgService talks to the /api/sys/org endpoints.
type OrgService struct {
	client *Client
}

// OrgPageParams filters and positions an organization page request.
// Filter matching semantics belong to the server; nothing is validated here.
type OrgPageParams struct {
	Size    int
	Cursor  CursorParams
	Name    string
	OrgType *int
}

// AddOrgParams is the payload for creating an organization.
type AddOrgParams struct {
	Name       string                 `json:"name"`
	OrgType    int                    `json:"orgType"`
	Status     *int                   `json:"status,omitempty"`
	ParentID   string                 `json:"parentId,omitempty"`
	Sort       int                    `json:"sort,omitempty"`
	Additional map[string]interface{} `json:"additional,omitempty"`
}

// UpdateOrgParams is AddOrgParams plus the mandatory id.
type UpdateOrgParams struct {
	ID         string                 `json:"id"`
	Name       string                 `json:"name,omitempty"`
	OrgType    *int                   `json:"orgType,omitempty"`
	Status     *int                   `json:"status,omitempty"`
	ParentID   *string                `json:"parentId,omitempty"`
	Sort       *int                   `json:"sort,omitempty"`
	Additional map[string]interface{} `json:"additional,omitempty"`
}

const defaultOrgPageSize = 10

// ListPage fetches one cursor window of organizations. The cursor triple is
// passed through to the server exactly as given.
func (s *OrgService) ListPage(ctx context.Context, p OrgPageParams) (*Page[OrgItem], error) {
	q := url.Values{}
	size := p.Size
	if size <= 0 {
		size = defaultOrgPageSize
	}
	q.Set("size", strconv.Itoa(size))
	setCursor(q, p.Cursor)
	if p.Name != "" {
		q.Set("name", p.Name)
	}
	if p.OrgType != nil {
		q.Set("orgType", strconv.Itoa(*p.OrgType))
	}

	var page Page[OrgItem]
	if err := s.client.get(ctx, "/api/sys/org/page-list", q, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetByID fetches one organization or fails with the server's not-found
// envelope.
func (s *OrgService) GetByID(ctx context.Context, id string) (*OrgItem, error) {
	q := url.Values{}
	q.Set("id", id)
	var org OrgItem
	if err := s.client.get(ctx, "/api/sys/org/details", q, &org); err != nil {
		return nil, err
	}
	return &org, nil
}

func (s *OrgService) Add(ctx context.Context, p AddOrgParams) (bool, error) {
	var ok bool
	if err := s.client.post(ctx, "/api/sys/org/add", p, &ok); err != nil {
		return false, err
	}
	return ok, nil
}

func (s *OrgService) Update(ctx context.Context, p UpdateOrgParams) (bool, error) {
	var ok bool
	if err := s.client.post(ctx, "/api/sys/org/update", p, &ok); err != nil {
		return false, err
	}
	return ok, nil
}

// DeleteMany deletes the given organizations in one all-or-nothing call.
// An empty id set is still sent; whether that means anything is the
// server's decision.
func (s *OrgService) DeleteMany(ctx context.Context, ids []string) (bool, error) {
	if ids == nil {
		ids = []string{}
	}
	var ok bool
	if err := s.client.post(ctx, "/api/sys/org/delete", map[string][]string{"ids": ids}, &ok); err != nil {
		return false, err
	}
	return ok, nil
}

// ListTree returns the whole hierarchy as a flat, parentId-annotated list.
// Linking children to parents is the caller's job.
func (s *OrgService) ListTree(ctx context.Context) ([]OrgItem, error) {
	var orgs []OrgItem
	if err := s.client.get(ctx, "/api/sys/org/tree", nil, &orgs); err != nil {
		return nil, err
	}
	return orgs, nil
}

// setCursor copies a cursor triple into the query verbatim. Empty members
// stay absent.
func setCursor(q url.Values, cur CursorParams) {
	if cur.CursorID != "" {
		q.Set("cursorId", cur.CursorID)
	}
	if cur.CursorCreateTs != "" {
		q.Set("cursorCreateTs", cur.CursorCreateTs)
	}
	if cur.CursorType != "" {
		q.Set("cursorType", cur.CursorType)
	}
}
