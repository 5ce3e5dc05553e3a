package client

// Page is one cursor window of an ordered listing. Cursor tokens are opaque:
// they go back to the server exactly as received, never decoded here, and
// hasNext/hasPrevious are authoritative as sent.
type Page[T any] struct {
	Size        int    `json:"size"`
	Total       int64  `json:"total"`
	HasNext     bool   `json:"hasNext"`
	HasPrevious bool   `json:"hasPrevious"`
	NextCursor  string `json:"nextCursor"`
	PrevCursor  string `json:"prevCursor"`
	CursorType  string `json:"cursorType"`
	Data        []T    `json:"data"`
}

// CursorParams is the cursor triple a previous window handed out.
type CursorParams struct {
	CursorID       string
	CursorCreateTs string
	CursorType     string
}

// OrgItem is one organization record. Additional carries resource-defined
// extension keys; unknown keys and absent values are both fine.
type OrgItem struct {
	ID         string                 `json:"id"`
	Name       string                 `json:"name"`
	OrgType    int                    `json:"orgType"`
	Status     int                    `json:"status"`
	ParentID   string                 `json:"parentId"`
	Sort       int                    `json:"sort"`
	Additional map[string]interface{} `json:"additional,omitempty"`
	CreateTs   string                 `json:"createTs"`
	UpdateTs   string                 `json:"updateTs"`
}

// AppItem is one application record.
type AppItem struct {
	ID         string                 `json:"id"`
	Name       string                 `json:"name"`
	AppType    int                    `json:"appType"`
	Status     int                    `json:"status"`
	OrgID      string                 `json:"orgId"`
	AppKey     string                 `json:"appKey"`
	AppSecret  string                 `json:"appSecret"`
	Remark     string                 `json:"remark"`
	Additional map[string]interface{} `json:"additional,omitempty"`
	CreateTs   string                 `json:"createTs"`
	UpdateTs   string                 `json:"updateTs"`
}

// TypeOption is one code→label dictionary entry.
type TypeOption struct {
	Code  int    `json:"code"`
	Value string `json:"value"`
}
