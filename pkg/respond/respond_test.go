package respond

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"farmdesk/pkg/validation"
)

func newCtx(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestError_StatusMapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{&validation.Error{Fields: map[string]string{"name": "is required"}}, http.StatusBadRequest},
		{fmt.Errorf("find: %w", gorm.ErrRecordNotFound), http.StatusNotFound},
		{ErrBadID, http.StatusBadRequest},
		{errors.New("disk full"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		c, rec := newCtx(t)
		require.NoError(t, Error(c, tc.err))
		assert.Equal(t, tc.want, rec.Code, tc.err.Error())
		assert.Contains(t, rec.Body.String(), `"error"`)
	}
}

func TestParseID(t *testing.T) {
	c, _ := newCtx(t)
	c.SetParamNames("id")
	c.SetParamValues("42")
	id, err := ParseID(c)
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)

	c.SetParamValues("zero")
	_, err = ParseID(c)
	assert.ErrorIs(t, err, ErrBadID)
}
