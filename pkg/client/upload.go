package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
)

// UploadService posts files to the public attachment endpoint. It deliberately
// bypasses the envelope-decoding request path: that path JSON-serializes every
// body and cannot carry a binary multipart payload, and the upload endpoint is
// also the one place the server's envelope convention is not guaranteed.
// Whatever the server answers is handed back parsed but uninterpreted.
type UploadService struct {
	client *Client
}

const uploadPath = "/api/c/attachment/file/upload-public"

// File uploads one file and returns the raw decoded response body. Success or
// failure interpretation is entirely the caller's.
func (s *UploadService) File(ctx context.Context, filename string, r io.Reader) (map[string]interface{}, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.client.baseURL+uploadPath, &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	s.client.setAmbientHeaders(req)

	res, err := s.client.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("HTTP bad response: %d", res.StatusCode)
	}

	var raw map[string]interface{}
	if err := json.NewDecoder(res.Body).Decode(&raw); err != nil {
		return nil, err
	}
	return raw, nil
}
