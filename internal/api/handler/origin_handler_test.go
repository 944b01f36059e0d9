package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DhairyaPatel2210/portfolio/internal/core/domain"
)

func TestOriginHandler_ListScopedToCaller(t *testing.T) {
	svc := &stubOriginService{origins: []*domain.Origin{
		{ID: "o1", Value: "https://a.example.com", UserID: "u1"},
		{ID: "o2", Value: "https://b.example.com", UserID: "u2"},
	}}
	h := NewOriginHandler(svc)

	c, rec := newContext(http.MethodGet, "/origins", "", caller)
	require.NoError(t, h.List(c))

	var got []domain.Origin
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "https://a.example.com", got[0].Value)
}

func TestOriginHandler_ListEmptyIsArray(t *testing.T) {
	h := NewOriginHandler(&stubOriginService{})

	c, rec := newContext(http.MethodGet, "/origins", "", caller)
	require.NoError(t, h.List(c))
	assert.JSONEq(t, `[]`, rec.Body.String())

	c, rec = newContext(http.MethodGet, "/origins/all", "", nil)
	require.NoError(t, h.ListAll(c))
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestOriginHandler_ListAllIsPublic(t *testing.T) {
	h := NewOriginHandler(&stubOriginService{values: []string{"https://a.example.com", "https://b.example.com"}})

	c, rec := newContext(http.MethodGet, "/origins/all", "", nil)
	require.NoError(t, h.ListAll(c))
	assert.JSONEq(t, `["https://a.example.com","https://b.example.com"]`, rec.Body.String())
}

func TestOriginHandler_Add(t *testing.T) {
	svc := &stubOriginService{}
	h := NewOriginHandler(svc)

	c, rec := newContext(http.MethodPost, "/origins", `{"origin":"https://new.example.com","description":"blog"}`, caller)
	require.NoError(t, h.Add(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "u1", svc.addedBy)

	var got domain.Origin
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "https://new.example.com", got.Value)
	assert.Equal(t, "u1", got.UserID)
}

func TestOriginHandler_AddRejectsBadInput(t *testing.T) {
	h := NewOriginHandler(&stubOriginService{})

	for name, body := range map[string]string{
		"missing": `{"description":"x"}`,
		"not url": `{"origin":"not a url"}`,
	} {
		c, _ := newContext(http.MethodPost, "/origins", body, caller)
		assert.True(t, errors.Is(h.Add(c), domain.ErrValidation), name)
	}
}

func TestOriginHandler_AddDuplicate(t *testing.T) {
	h := NewOriginHandler(&stubOriginService{err: domain.ErrOriginExists})

	c, _ := newContext(http.MethodPost, "/origins", `{"origin":"https://a.example.com"}`, caller)
	err := h.Add(c)
	assert.True(t, errors.Is(err, domain.ErrOriginExists))
	assert.True(t, errors.Is(err, domain.ErrConflict))
}

func TestOriginHandler_Remove(t *testing.T) {
	svc := &stubOriginService{origins: []*domain.Origin{
		{ID: "o1", UserID: "u1"},
		{ID: "o2", UserID: "u2"},
	}}
	h := NewOriginHandler(svc)

	c, rec := newContext(http.MethodDelete, "/origins/o1", "", caller)
	c.SetParamNames("id")
	c.SetParamValues("o1")
	require.NoError(t, h.Remove(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"o1"}, svc.removed)

	// Another user's origin looks absent.
	c, _ = newContext(http.MethodDelete, "/origins/o2", "", caller)
	c.SetParamNames("id")
	c.SetParamValues("o2")
	assert.True(t, errors.Is(h.Remove(c), domain.ErrOriginNotFound))
}
