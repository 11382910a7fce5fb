package analysis

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func multipartBody(t *testing.T, field string, files map[string][]byte, form map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for name, data := range files {
		part, err := writer.CreateFormFile(field, name)
		require.NoError(t, err)
		_, err = part.Write(data)
		require.NoError(t, err)
	}
	for key, value := range form {
		require.NoError(t, writer.WriteField(key, value))
	}
	require.NoError(t, writer.Close())
	return &buf, writer.FormDataContentType()
}

func testHandler(gateway *fakeGateway) Handler {
	return Handler{
		Service:          testService(gateway),
		MaxUploadBytes:   5 * 1024 * 1024,
		DefaultLocations: []string{"USA", "India", "UK"},
	}
}

func TestSingleEndpoint(t *testing.T) {
	t.Parallel()

	gateway := &fakeGateway{}
	handler := testHandler(gateway)

	body, contentType := multipartBody(t, "file", map[string][]byte{"design.png": testImage(t)}, map[string]string{"locations": "USA,UK"})
	req := httptest.NewRequest(http.MethodPost, "/single", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	handler.Single(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var response struct {
		Success bool   `json:"success"`
		Data    Result `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	require.True(t, response.Success)
	require.Len(t, response.Data.MarketAnalysis, 2)
}

func TestSingleDefaultsLocations(t *testing.T) {
	t.Parallel()

	gateway := &fakeGateway{}
	handler := testHandler(gateway)

	body, contentType := multipartBody(t, "file", map[string][]byte{"design.png": testImage(t)}, nil)
	req := httptest.NewRequest(http.MethodPost, "/single", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	handler.Single(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.ElementsMatch(t, []string{"USA", "India", "UK"}, gateway.scoreCalls)
}

func TestSingleMissingFile(t *testing.T) {
	t.Parallel()

	handler := testHandler(&fakeGateway{})

	body, contentType := multipartBody(t, "file", nil, map[string]string{"locations": "USA"})
	req := httptest.NewRequest(http.MethodPost, "/single", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	handler.Single(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var response struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	require.False(t, response.Success)
	require.Contains(t, response.Error, "file is required")
}

func TestSingleBadImageStatus(t *testing.T) {
	t.Parallel()

	handler := testHandler(&fakeGateway{})

	body, contentType := multipartBody(t, "file", map[string][]byte{"bad.png": []byte("garbage")}, nil)
	req := httptest.NewRequest(http.MethodPost, "/single", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	handler.Single(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBatchEndpoint(t *testing.T) {
	t.Parallel()

	handler := testHandler(&fakeGateway{})

	body, contentType := multipartBody(t, "files", map[string][]byte{
		"one.png":    testImage(t),
		"broken.png": []byte("garbage"),
	}, map[string]string{"locations": "USA"})
	req := httptest.NewRequest(http.MethodPost, "/batch", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	handler.Batch(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var response struct {
		Success bool        `json:"success"`
		Data    BatchResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	require.True(t, response.Success)
	require.Equal(t, 2, response.Data.TotalProcessed)
	require.Equal(t, 1, response.Data.Successful)
	require.Equal(t, 1, response.Data.Failed)
	require.Contains(t, response.Data.Errors[0], "broken.png")
}

func TestBatchRequiresFiles(t *testing.T) {
	t.Parallel()

	handler := testHandler(&fakeGateway{})

	body, contentType := multipartBody(t, "files", nil, map[string]string{"locations": "USA"})
	req := httptest.NewRequest(http.MethodPost, "/batch", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	handler.Batch(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}
