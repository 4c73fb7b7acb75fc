// helpers_test.go
package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go_5_box_vocab/internal/handlers"
	"go_5_box_vocab/internal/model"
	svc_mocks "go_5_box_vocab/internal/service/mocks"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// httpRequestDetails はHTTPリクエストの送信に必要な情報をまとめます。
type httpRequestDetails struct {
	Method string
	Path   string
	Body   interface{}
}

// sendRequest はHTTPリクエストを送信し、ステータスコードを検証してボディを返します。
func sendRequest(t *testing.T, handler http.Handler, details httpRequestDetails, expectedCode int) []byte {
	t.Helper()

	var body io.Reader
	if details.Body != nil {
		if s, ok := details.Body.(string); ok {
			body = strings.NewReader(s)
		} else {
			raw, err := json.Marshal(details.Body)
			require.NoError(t, err, "Failed to marshal request body")
			body = bytes.NewReader(raw)
		}
	}

	req := httptest.NewRequest(details.Method, details.Path, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, expectedCode, rr.Code, "Status code mismatch: %s", rr.Body.String())
	return rr.Body.Bytes()
}

// verifyErrorResponse はエラーレスポンスのコードを検証します。
func verifyErrorResponse(t *testing.T, body []byte, expectedCode string) model.ErrorDetail {
	t.Helper()
	var errResp model.APIErrorResponse
	require.NoError(t, json.Unmarshal(body, &errResp), "body: %s", string(body))
	assert.Equal(t, expectedCode, errResp.Error.Code)
	return errResp.Error
}

// mockedRouter はモックサービスを使うテスト用ルーター
type mockedRouter struct {
	router   *chi.Mux
	study    *svc_mocks.StudyService
	students *svc_mocks.StudentService
	catalog  *svc_mocks.CatalogService
}

func newMockedRouter(t *testing.T) *mockedRouter {
	m := &mockedRouter{
		router:   chi.NewRouter(),
		study:    svc_mocks.NewStudyService(t),
		students: svc_mocks.NewStudentService(t),
		catalog:  svc_mocks.NewCatalogService(t),
	}
	m.router.Route("/api/v1", func(r chi.Router) {
		handlers.RegisterRoutes(r,
			handlers.NewStudyHandler(m.study),
			handlers.NewStudentHandler(m.students),
			handlers.NewWordHandler(m.catalog),
		)
	})
	return m
}
