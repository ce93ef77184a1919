package middleware

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
)

func TestUploadFilename(t *testing.T) {
	now := time.UnixMilli(1700000000000)

	got := uploadFilename("foto.png", now)
	if got != "foto-1700000000000.png" {
		t.Errorf("unexpected filename: %q", got)
	}

	got = uploadFilename("archivo", now)
	if got != "archivo-1700000000000" {
		t.Errorf("unexpected filename without extension: %q", got)
	}

	// Sin stem utilizable: se genera uno, conservando la extensión
	got = uploadFilename(".png", now)
	if !strings.HasSuffix(got, "-1700000000000.png") || strings.HasPrefix(got, "-") {
		t.Errorf("expected generated stem, got %q", got)
	}
}

func newUploadApp(dir string) *fiber.App {
	app := fiber.New(fiber.Config{BodyLimit: 10 << 20})
	app.Post("/signs", ImageUpload(dir), func(c *fiber.Ctx) error {
		path, _ := c.Locals(LocalImagePath).(string)
		return c.SendString(path)
	})
	return app
}

func multipartImage(t *testing.T, field, filename, contentType string, payload []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+filename+`"`)
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	if err != nil {
		t.Fatalf("CreatePart error: %v", err)
	}
	if _, err := part.Write(payload); err != nil {
		t.Fatalf("writing part: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("closing writer: %v", err)
	}
	return body, w.FormDataContentType()
}

func TestImageUpload_SavesImage(t *testing.T) {
	dir := t.TempDir()
	app := newUploadApp(dir)

	body, contentType := multipartImage(t, "image", "hola.png", "image/png", []byte("fake-png-bytes"))
	req := httptest.NewRequest("POST", "/signs", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	buf := make([]byte, 256)
	n, _ := resp.Body.Read(buf)
	path := string(buf[:n])
	if !strings.HasPrefix(path, "/uploads/hola-") || !strings.HasSuffix(path, ".png") {
		t.Fatalf("unexpected public path %q", path)
	}

	// El archivo debe existir en el directorio de subidas
	saved := filepath.Join(dir, strings.TrimPrefix(path, "/uploads/"))
	if _, err := os.Stat(saved); err != nil {
		t.Errorf("expected saved file at %s: %v", saved, err)
	}
}

func TestImageUpload_IgnoresNonImage(t *testing.T) {
	dir := t.TempDir()
	app := newUploadApp(dir)

	body, contentType := multipartImage(t, "image", "notas.txt", "text/plain", []byte("no soy una imagen"))
	req := httptest.NewRequest("POST", "/signs", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 (silent ignore), got %d", resp.StatusCode)
	}

	buf := make([]byte, 64)
	n, _ := resp.Body.Read(buf)
	if n != 0 {
		t.Errorf("expected no stored path, got %q", string(buf[:n]))
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir error: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected no file stored, found %d", len(entries))
	}
}

func TestImageUpload_RejectsOversize(t *testing.T) {
	dir := t.TempDir()
	app := newUploadApp(dir)

	payload := make([]byte, MaxImageSize+1)
	body, contentType := multipartImage(t, "image", "grande.jpg", "image/jpeg", payload)
	req := httptest.NewRequest("POST", "/signs", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("expected 400 for oversize image, got %d", resp.StatusCode)
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("expected no file stored, found %d", len(entries))
	}
}

func TestImageUpload_NoFileField(t *testing.T) {
	app := newUploadApp(t.TempDir())

	req := httptest.NewRequest("POST", "/signs", strings.NewReader(`{"name":"Hola"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("expected 200 without file field, got %d", resp.StatusCode)
	}
}
