package service

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/sefazor/shootbook-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fileHeader gerçek bir multipart form üzerinden FileHeader üretir
func fileHeader(t *testing.T, name, contentType string, data []byte) *multipart.FileHeader {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="file"; filename="`+name+`"`)
	if contentType != "" {
		h.Set("Content-Type", contentType)
	}
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&body, w.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File["file"][0]
}

// 1x1 png
var tinyPNG = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x00, 0x00, 0x0d, 0x49, 0x48, 0x44, 0x52,
	0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01, 0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4,
	0x89, 0x00, 0x00, 0x00, 0x0a, 0x49, 0x44, 0x41, 0x54, 0x78, 0x9c, 0x63, 0x00, 0x01, 0x00, 0x00,
	0x05, 0x00, 0x01, 0x0d, 0x0a, 0x2d, 0xb4, 0x00, 0x00, 0x00, 0x00, 0x49, 0x45, 0x4e, 0x44, 0xae,
	0x42, 0x60, 0x82,
}

func TestPortfolioService_UploadListDelete(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	u, p := env.photographer(t, "Pia", "pia@example.com", models.SpecialtyPhotographer, 100)

	resp, err := env.portfolio.Upload(ctx, u.ID, fileHeader(t, "My Sunset!.PNG", "", tinyPNG))
	require.NoError(t, err)
	assert.Equal(t, "image/png", resp.MimeType)
	assert.Equal(t, "my-sunset-.png", resp.FileName)
	assert.Contains(t, resp.ThumbnailURL, "/thumbnail")
	assert.Equal(t, 1, env.objects.count())

	list, err := env.portfolio.List(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)

	other, _ := env.photographer(t, "Vic", "vic@example.com", models.SpecialtyVideographer, 100)
	assert.ErrorIs(t, env.portfolio.Delete(ctx, other.ID, resp.ID), ErrForbidden)

	require.NoError(t, env.portfolio.Delete(ctx, u.ID, resp.ID))
	assert.Zero(t, env.objects.count())
	assert.Empty(t, env.images.ids)

	assert.ErrorIs(t, env.portfolio.Delete(ctx, u.ID, resp.ID), ErrNotFound)
}

func TestPortfolioService_UploadRejectsAndCleansUp(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	u, _ := env.photographer(t, "Pia", "pia@example.com", models.SpecialtyPhotographer, 100)

	_, err := env.portfolio.Upload(ctx, u.ID, fileHeader(t, "notes.txt", "text/plain", []byte("hello")))
	assert.ErrorIs(t, err, ErrValidation)

	customer := env.register(t, "Cus", "cus@example.com", models.RoleCustomer)
	_, err = env.portfolio.Upload(ctx, customer.ID, fileHeader(t, "a.png", "image/png", tinyPNG))
	assert.ErrorIs(t, err, ErrNotFound)

	env.images.fail = true
	_, err = env.portfolio.Upload(ctx, u.ID, fileHeader(t, "a.png", "image/png", tinyPNG))
	assert.Error(t, err)
	assert.Zero(t, env.objects.count(), "r2 object is removed when image upload fails")
}
