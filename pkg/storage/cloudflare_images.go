package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	internalConfig "github.com/sefazor/shootbook-backend/internal/config"
)

const (
	VariantPublic    = "public"    // Orijinal boyut
	VariantThumbnail = "thumbnail" // Portfolyo listeleri için küçük boyut
)

const defaultImagesBaseURL = "https://api.cloudflare.com/client/v4"

// CloudflareImages portfolyo görsellerinin varyantlarını üretir
type CloudflareImages struct {
	accountID   string
	apiToken    string
	baseURL     string
	accountHash string // imagedelivery.net URL'leri için
	client      *http.Client
}

type imagesResponse struct {
	Success bool `json:"success"`
	Result  struct {
		ID string `json:"id"`
	} `json:"result"`
	Errors []struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"errors"`
}

func (r imagesResponse) errorText() string {
	parts := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		parts = append(parts, fmt.Sprintf("%d %s", e.Code, e.Message))
	}
	return strings.Join(parts, "; ")
}

func NewCloudflareImages(cfg *internalConfig.Config) *CloudflareImages {
	return newCloudflareImages(
		defaultImagesBaseURL,
		cfg.CloudflareImages.AccountID,
		cfg.CloudflareImages.Token,
		cfg.CloudflareImages.Hash,
	)
}

func newCloudflareImages(baseURL, accountID, token, accountHash string) *CloudflareImages {
	return &CloudflareImages{
		accountID:   accountID,
		apiToken:    token,
		baseURL:     strings.TrimRight(baseURL, "/"),
		accountHash: accountHash,
		client: &http.Client{
			Timeout: time.Minute,
			Transport: &http.Transport{
				MaxIdleConnsPerHost: 20,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

func (c *CloudflareImages) endpoint(parts ...string) string {
	return c.baseURL + "/accounts/" + c.accountID + "/images/v1" + strings.Join(append([]string{""}, parts...), "/")
}

// uploadForm her denemede aynı içerikle yeniden üretilebilir olmalı
func uploadForm(content []byte, filename string) (*bytes.Buffer, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := part.Write(content); err != nil {
		return nil, "", fmt.Errorf("failed to write image: %w", err)
	}
	meta, _ := json.Marshal(map[string]string{"source": "portfolio", "file": filename})
	if err := w.WriteField("metadata", string(meta)); err != nil {
		return nil, "", fmt.Errorf("failed to add metadata: %w", err)
	}
	if err := w.WriteField("requireSignedURLs", "false"); err != nil {
		return nil, "", fmt.Errorf("failed to add form field: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to close form: %w", err)
	}
	return buf, w.FormDataContentType(), nil
}

// Upload görseli yükler, image ID ve public/thumbnail URL'lerini döner
func (c *CloudflareImages) Upload(ctx context.Context, reader io.Reader, filename string) (string, []string, error) {
	content, err := io.ReadAll(reader)
	if err != nil {
		return "", nil, fmt.Errorf("failed to read image: %w", err)
	}
	if len(content) == 0 {
		return "", nil, fmt.Errorf("empty file, size is 0 bytes")
	}

	body, contentType, err := uploadForm(content, filename)
	if err != nil {
		return "", nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(), body)
	if err != nil {
		return "", nil, fmt.Errorf("failed to create request: %w", err)
	}
	// HTTP/2 retry için gerekli
	req.GetBody = func() (io.ReadCloser, error) {
		again, _, err := uploadForm(content, filename)
		if err != nil {
			return nil, err
		}
		return io.NopCloser(again), nil
	}
	req.Header.Set("Content-Type", contentType)

	res, status, err := c.do(req)
	if err != nil {
		return "", nil, err
	}
	if status != http.StatusOK {
		return "", nil, fmt.Errorf("cloudflare returned non-OK status: %d %s", status, res.errorText())
	}
	if !res.Success || res.Result.ID == "" {
		return "", nil, fmt.Errorf("cloudflare rejected upload: %s", res.errorText())
	}

	id := res.Result.ID
	return id, []string{c.GetPublicURL(id), c.GetThumbnailURL(id)}, nil
}

func (c *CloudflareImages) Delete(ctx context.Context, imageID string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.endpoint(imageID), nil)
	if err != nil {
		return err
	}
	res, status, err := c.do(req)
	if err != nil {
		return err
	}
	// Zaten silinmiş görseller hata sayılmaz
	if status != http.StatusOK && status != http.StatusNotFound {
		return fmt.Errorf("failed to delete image %s: %d %s", imageID, status, res.errorText())
	}
	return nil
}

// do isteği yetkilendirir ve API zarfını çözer. Gövde JSON değilse boş zarf döner.
func (c *CloudflareImages) do(req *http.Request) (imagesResponse, int, error) {
	var res imagesResponse
	req.Header.Set("Authorization", "Bearer "+c.apiToken)

	resp, err := c.client.Do(req)
	if err != nil {
		return res, 0, fmt.Errorf("cloudflare images request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return res, resp.StatusCode, fmt.Errorf("failed to read response: %w", err)
	}
	_ = json.Unmarshal(raw, &res)
	return res, resp.StatusCode, nil
}

func (c *CloudflareImages) GetPublicURL(imageID string) string {
	return c.GetVariantURL(imageID, VariantPublic)
}

func (c *CloudflareImages) GetVariantURL(imageID string, variant string) string {
	return fmt.Sprintf("https://imagedelivery.net/%s/%s/%s", c.accountHash, imageID, variant)
}

func (c *CloudflareImages) GetThumbnailURL(imageID string) string {
	return c.GetVariantURL(imageID, VariantThumbnail)
}
