package controllerImp

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"farmdesk/entities"
	svc "farmdesk/pkg/upload/service"
)

type fakePresigner struct {
	got entities.UploadRequest
	err error
}

func (f *fakePresigner) Presign(_ context.Context, req entities.UploadRequest) (*entities.PresignedUpload, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &entities.PresignedUpload{
		UploadURL: "https://farm-photos.s3.amazonaws.com/",
		Fields:    map[string]string{"key": "supervisors/x.jpg"},
		FileKey:   "supervisors/x.jpg",
	}, nil
}

func post(h *UploadCtrl, body string) *httptest.ResponseRecorder {
	e := echo.New()
	e.POST("/upload-url", h.UploadURL)
	req := httptest.NewRequest(http.MethodPost, "/upload-url", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestUploadURL_OK(t *testing.T) {
	p := &fakePresigner{}
	rec := post(New(p), `{"file_name":"me.jpg","content_type":"image/jpeg"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"file_key":"supervisors/x.jpg"`)
	assert.Equal(t, "image/jpeg", p.got.ContentType)
}

func TestUploadURL_MissingFileName(t *testing.T) {
	rec := post(New(&fakePresigner{}), `{"content_type":"image/jpeg"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUploadURL_Disabled(t *testing.T) {
	rec := post(New(&fakePresigner{err: svc.ErrDisabled}), `{"file_name":"me.jpg"}`)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
