package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/url"
	"path"

	"github.com/hnh-zeal/petopia-frontend-sub000/internal/core/domain"
)

// UploadFile forwards fh to the upload service as multipart form data.
// The response must be JSON; anything else fails with a descriptive error.
func (c *Client) UploadFile(ctx context.Context, fh *multipart.FileHeader) (*domain.UploadedFile, error) {
	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("api: open upload: %w", err)
	}
	defer src.Close()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", path.Base(fh.Filename))
	if err != nil {
		return nil, fmt.Errorf("api: create form file: %w", err)
	}
	if _, err := io.Copy(part, src); err != nil {
		return nil, fmt.Errorf("api: copy upload: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("api: close multipart writer: %w", err)
	}

	resp, raw, err := c.roundTrip(ctx, http.MethodPost, c.baseURL+"/files/upload", w.FormDataContentType(), &buf)
	if err != nil {
		return nil, err
	}
	ct := resp.Header.Get("Content-Type")
	if mt, _, err := mime.ParseMediaType(ct); err != nil || mt != "application/json" {
		return nil, fmt.Errorf("%w: upload returned content type %q (status %d), expected application/json",
			domain.ErrUpstream, ct, resp.StatusCode)
	}

	var out domain.UploadedFile
	if err := decode(resp.StatusCode, raw, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteFile removes a previously uploaded file by its storage key.
func (c *Client) DeleteFile(ctx context.Context, key string) error {
	return c.do(ctx, http.MethodDelete, "/files/delete/"+url.PathEscape(key), nil, nil, nil)
}
