package pagination

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CursorType is the direction of a page request: "down" walks toward older
// records (the next page of a newest-first listing), "up" walks back toward
// newer ones.
type CursorType string

const (
	Down CursorType = "down"
	Up   CursorType = "up"
)

const maxSize = 200

var ErrBadCursor = errors.New("malformed cursor")

// Query carries the cursor triple plus the requested page size. CursorID and
// CursorCreateTs are echoed back by clients exactly as a previous window
// handed them out; Cursor optionally carries the same pair as one opaque
// token.
type Query struct {
	Size           int
	CursorID       string
	CursorCreateTs string
	CursorType     CursorType
	Cursor         string
}

// Window is one page of an ordered result set.
type Window[T any] struct {
	Size        int        `json:"size"`
	Total       int64      `json:"total"`
	HasNext     bool       `json:"hasNext"`
	HasPrevious bool       `json:"hasPrevious"`
	NextCursor  string     `json:"nextCursor"`
	PrevCursor  string     `json:"prevCursor"`
	CursorType  CursorType `json:"cursorType"`
	Data        []T        `json:"data"`
}

// Keyed exposes the keyset columns a record is paginated on.
type Keyed interface {
	CursorKey() (id string, createTs time.Time)
}

// EncodeCursor packs the keyset pair into an opaque token.
func EncodeCursor(id string, createTs time.Time) string {
	raw := createTs.UTC().Format(time.RFC3339Nano) + "|" + id
	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

// DecodeCursor is the inverse of EncodeCursor.
func DecodeCursor(token string) (id string, createTs time.Time, err error) {
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("%w: %v", ErrBadCursor, err)
	}
	ts, id, ok := strings.Cut(string(raw), "|")
	if !ok {
		return "", time.Time{}, ErrBadCursor
	}
	t, err := time.Parse(time.RFC3339Nano, ts)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("%w: %v", ErrBadCursor, err)
	}
	return id, t, nil
}

// FromRequest reads the page query parameters. Absent values stay empty; the
// server fills in direction and size defaults, never the client.
func FromRequest(c *gin.Context, defaultSize int) Query {
	q := Query{
		Size:           defaultSize,
		CursorID:       c.Query("cursorId"),
		CursorCreateTs: c.Query("cursorCreateTs"),
		CursorType:     CursorType(c.Query("cursorType")),
		Cursor:         c.Query("cursor"),
	}
	if raw := c.Query("size"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			q.Size = n
		}
	}
	return q
}

// Paginate runs a keyset-paginated query over base, which must already carry
// the model and any filters. Records are keyed on (created_at, id) and listed
// newest first; one extra row is fetched to learn whether more pages exist in
// the direction of travel.
func Paginate[T Keyed](base *gorm.DB, q Query) (*Window[T], error) {
	size := q.Size
	if size <= 0 {
		size = 10
	}
	if size > maxSize {
		size = maxSize
	}

	dir := q.CursorType
	if dir == "" {
		dir = Down
	}
	if dir != Down && dir != Up {
		return nil, fmt.Errorf("%w: cursorType %q", ErrBadCursor, q.CursorType)
	}

	cursorID := q.CursorID
	cursorTs := q.CursorCreateTs
	if cursorID == "" && q.Cursor != "" {
		id, ts, err := DecodeCursor(q.Cursor)
		if err != nil {
			return nil, err
		}
		cursorID = id
		cursorTs = ts.Format(time.RFC3339Nano)
	}
	hasCursor := cursorID != "" && cursorTs != ""

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, err
	}

	tx := base.Session(&gorm.Session{})
	if hasCursor {
		ts, err := time.Parse(time.RFC3339Nano, cursorTs)
		if err != nil {
			return nil, fmt.Errorf("%w: cursorCreateTs %q", ErrBadCursor, cursorTs)
		}
		if dir == Down {
			tx = tx.Where("created_at < ? OR (created_at = ? AND id < ?)", ts, ts, cursorID)
		} else {
			tx = tx.Where("created_at > ? OR (created_at = ? AND id > ?)", ts, ts, cursorID)
		}
	}
	if dir == Down {
		tx = tx.Order("created_at DESC, id DESC")
	} else {
		tx = tx.Order("created_at ASC, id ASC")
	}

	var rows []T
	if err := tx.Limit(size + 1).Find(&rows).Error; err != nil {
		return nil, err
	}

	win := &Window[T]{
		Size:       size,
		Total:      total,
		CursorType: dir,
	}

	if dir == Down {
		win.HasNext = len(rows) > size
		if win.HasNext {
			rows = rows[:size]
		}
		win.HasPrevious = hasCursor
	} else {
		win.HasPrevious = len(rows) > size
		if win.HasPrevious {
			rows = rows[:size]
		}
		// walking up always means a page below was already seen
		win.HasNext = hasCursor
		reverse(rows)
	}

	win.Data = rows
	if len(rows) > 0 {
		firstID, firstTs := rows[0].CursorKey()
		lastID, lastTs := rows[len(rows)-1].CursorKey()
		win.PrevCursor = EncodeCursor(firstID, firstTs)
		win.NextCursor = EncodeCursor(lastID, lastTs)
	}
	return win, nil
}

func reverse[T any](rows []T) {
	for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
		rows[i], rows[j] = rows[j], rows[i]
	}
}
