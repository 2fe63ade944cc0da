package e2e_test

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/disintegration/imaging"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/watermark-remover-backend/internal/adapter/handler"
	adapterstorage "github.com/marcos-nsantos/watermark-remover-backend/internal/adapter/storage"
	"github.com/marcos-nsantos/watermark-remover-backend/internal/infrastructure/config"
	"github.com/marcos-nsantos/watermark-remover-backend/internal/infrastructure/gemini"
	imgproc "github.com/marcos-nsantos/watermark-remover-backend/internal/infrastructure/imaging"
	"github.com/marcos-nsantos/watermark-remover-backend/internal/infrastructure/middleware"
	"github.com/marcos-nsantos/watermark-remover-backend/internal/infrastructure/server"
	"github.com/marcos-nsantos/watermark-remover-backend/internal/infrastructure/storage"
	"github.com/marcos-nsantos/watermark-remover-backend/internal/usecase/cleanup"
	"github.com/marcos-nsantos/watermark-remover-backend/internal/usecase/watermark"
)

const (
	apiBasePath = "/api/watermark"
	testAPIKey  = "server-key"
)

var (
	sourceColor  = color.NRGBA{R: 20, G: 40, B: 200, A: 255}
	inpaintColor = color.NRGBA{R: 230, G: 10, B: 10, A: 255}
)

type geminiMode int

const (
	modeInpaint geminiMode = iota
	modeRefuse
	modeUnavailableOnce
	modeHalfSize
)

// fakeGemini paints the whole image it receives in inpaintColor.
type fakeGemini struct {
	server *httptest.Server
	mode   geminiMode
	calls  atomic.Int32

	mu      sync.Mutex
	lastKey string
}

func newFakeGemini(t *testing.T, mode geminiMode) *fakeGemini {
	t.Helper()

	f := &fakeGemini{mode: mode}
	f.server = httptest.NewServer(http.HandlerFunc(f.handle))
	t.Cleanup(f.server.Close)
	return f
}

func (f *fakeGemini) key() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastKey
}

func (f *fakeGemini) handle(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.lastKey = r.Header.Get("x-goog-api-key")
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")

	if r.Method == http.MethodGet && strings.HasSuffix(r.URL.Path, "/models") {
		_, _ = io.WriteString(w, `{"models":[{"name":"models/gemini-2.5-flash-image"},{"name":"models/gemini-2.5-pro"}]}`)
		return
	}

	n := f.calls.Add(1)

	var req struct {
		Contents []struct {
			Parts []struct {
				InlineData *struct {
					Data string `json:"data"`
				} `json:"inline_data"`
			} `json:"parts"`
		} `json:"contents"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.Contents) == 0 || len(req.Contents[0].Parts) == 0 {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"error":{"code":400,"message":"bad request"}}`)
		return
	}

	switch {
	case f.mode == modeRefuse:
		_, _ = io.WriteString(w, `{"candidates":[{"content":{"parts":[{"text":"I cannot help with watermark removal requests."}]},"finishReason":"STOP"}]}`)
		return
	case f.mode == modeUnavailableOnce && n == 1:
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = io.WriteString(w, `{"error":{"code":503,"message":"overloaded"}}`)
		return
	}

	raw, err := base64.StdEncoding.DecodeString(req.Contents[0].Parts[0].InlineData.Data)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	width, height := cfg.Width, cfg.Height
	if f.mode == modeHalfSize {
		width, height = width/2, height/2
	}

	var out bytes.Buffer
	_ = imaging.Encode(&out, imaging.New(width, height, inpaintColor), imaging.PNG)

	_ = json.NewEncoder(w).Encode(map[string]any{
		"candidates": []any{map[string]any{
			"content": map[string]any{"parts": []any{map[string]any{
				"inlineData": map[string]any{
					"mimeType": "image/png",
					"data":     base64.StdEncoding.EncodeToString(out.Bytes()),
				},
			}}},
			"finishReason": "STOP",
		}},
	})
}

type appOptions struct {
	apiKey      string
	keepPNG     bool
	uploads     adapterstorage.BlobStore
	processed   adapterstorage.BlobStore
	rateLimiter *middleware.RateLimiter
}

type TestApp struct {
	Server       *httptest.Server
	Gemini       *fakeGemini
	UploadsDir   string
	ProcessedDir string
	BaseURL      string
	httpClient   *http.Client
}

func setupTestApp(t *testing.T, mode geminiMode, opts appOptions) *TestApp {
	t.Helper()

	gin.SetMode(gin.TestMode)
	logger := zap.NewNop()
	fake := newFakeGemini(t, mode)

	app := &TestApp{Gemini: fake}

	if opts.uploads == nil {
		app.UploadsDir = t.TempDir()
		uploads, err := storage.NewLocalStore(app.UploadsDir, logger)
		require.NoError(t, err)
		opts.uploads = uploads
	}
	if opts.processed == nil {
		app.ProcessedDir = t.TempDir()
		processed, err := storage.NewLocalStore(app.ProcessedDir, logger)
		require.NoError(t, err)
		opts.processed = processed
	}

	geminiClient := gemini.NewClient(config.GeminiConfig{
		APIKey:         opts.apiKey,
		BaseURL:        fake.server.URL + "/v1beta",
		Model:          "gemini-2.5-flash-image",
		MaxAttempts:    3,
		RetryBaseDelay: 10 * time.Millisecond,
		HTTPTimeout:    10 * time.Second,
	}, logger)

	watermarkSvc := watermark.NewService(
		opts.uploads,
		opts.processed,
		imgproc.NewProcessor(imgproc.DefaultMaxDimension, logger),
		geminiClient,
		watermark.Config{MaxFileSize: 20 << 20, KeepPNG: opts.keepPNG},
		logger,
	)
	cleanupSvc := cleanup.NewService(time.Hour, logger,
		cleanup.Target{Name: "uploads", Store: opts.uploads},
		cleanup.Target{Name: "processed", Store: opts.processed},
	)

	router := server.NewRouter(server.RouterConfig{
		WatermarkHandler: handler.NewWatermarkHandler(watermarkSvc, 20<<20),
		CleanupHandler:   handler.NewCleanupHandler(cleanupSvc),
		RateLimiter:      opts.rateLimiter,
		AllowedOrigins:   config.CORSConfig{}.AllowedOrigins(),
		ProcessTimeout:   30 * time.Second,
		Logger:           logger,
		Environment:      "test",
	})

	app.Server = httptest.NewServer(router.Engine())
	t.Cleanup(app.Server.Close)
	app.BaseURL = app.Server.URL
	app.httpClient = &http.Client{Timeout: 30 * time.Second}
	return app
}

func encodeImage(t *testing.T, width, height int, format imaging.Format) []byte {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, imaging.Encode(&buf, imaging.New(width, height, sourceColor), format))
	return buf.Bytes()
}

type removeRequest struct {
	filename    string
	contentType string
	data        []byte
	region      [4]int
	lossless    bool
	apiKey      string
}

func (app *TestApp) remove(t *testing.T, r removeRequest) *http.Response {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename="%s"`, r.filename))
	h.Set("Content-Type", r.contentType)
	part, err := writer.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(r.data)
	require.NoError(t, err)

	for i, name := range []string{"region[x]", "region[y]", "region[width]", "region[height]"} {
		require.NoError(t, writer.WriteField(name, fmt.Sprint(r.region[i])))
	}
	if r.lossless {
		require.NoError(t, writer.WriteField("lossless", "true"))
	}
	require.NoError(t, writer.Close())

	req, err := http.NewRequest(http.MethodPost, app.BaseURL+apiBasePath+"/remove", body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if r.apiKey != "" {
		req.Header.Set(handler.APIKeyHeader, r.apiKey)
	}

	resp, err := app.httpClient.Do(req)
	require.NoError(t, err)
	return resp
}

func (app *TestApp) request(t *testing.T, method, path string, headers map[string]string) *http.Response {
	t.Helper()

	req, err := http.NewRequest(method, app.BaseURL+path, nil)
	require.NoError(t, err)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := app.httpClient.Do(req)
	require.NoError(t, err)
	return resp
}

func parseResponse(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(body, dest), string(body))
}

func readBody(t *testing.T, resp *http.Response) []byte {
	t.Helper()
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return body
}
