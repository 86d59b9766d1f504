package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/visibly/ai-visibility-api/internal/domain"
)

func TestGetResponse_Success(t *testing.T) {
	rt, m := newTestRouter(t)

	m.responseRepo.EXPECT().
		GetResponseByID("resp1").
		Return(&domain.Response{
			ID:              "resp1",
			PromptID:        "prompt1",
			AISource:        "chatgpt",
			BrandsMentioned: []string{"Salesforce"},
			Status:          domain.ResponseStatusCompleted,
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/responses/resp1", nil)
	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success bool            `json:"success"`
		Data    domain.Response `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.True(t, body.Success)
	assert.Equal(t, "resp1", body.Data.ID)
	assert.Equal(t, []string{"Salesforce"}, body.Data.BrandsMentioned)
}

func TestGetResponse_NotFound(t *testing.T) {
	rt, m := newTestRouter(t)

	m.responseRepo.EXPECT().
		GetResponseByID("missing").
		Return(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/responses/missing", nil)
	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var body struct {
		Success bool `json:"success"`
		Error   struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.False(t, body.Success)
	assert.Equal(t, "RES_004", body.Error.Code)
}
