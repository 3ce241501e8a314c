package http

import (
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"

	perr "bazaar/internal/platform/errors"
)

func invoke(t *testing.T, h stdhttp.HandlerFunc) (*httptest.ResponseRecorder, Envelope) {
	t.Helper()
	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(stdhttp.MethodGet, "/", nil))

	var env Envelope
	if rec.Code != stdhttp.StatusNoContent {
		if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
			t.Fatalf("decode envelope: %v\n%s", err, rec.Body.String())
		}
	}
	return rec, env
}

func TestOKEnvelope(t *testing.T) {
	rec, env := invoke(t, Handle(func(r *stdhttp.Request) Response {
		return OK(map[string]string{"hello": "world"})
	}))

	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Fatalf("content type = %q", ct)
	}
	if env.StatusCode != 200 || env.Status != "OK" || env.Error != "" {
		t.Fatalf("envelope = %+v", env)
	}
	if m, ok := env.Data.(map[string]any); !ok || m["hello"] != "world" {
		t.Fatalf("data = %+v", env.Data)
	}
}

func TestErrorEnvelopeMapsStatusAndCode(t *testing.T) {
	rec, env := invoke(t, Handle(func(r *stdhttp.Request) Response {
		return Error(perr.NotFoundf("listing %q not found", "x"))
	}))

	if rec.Code != stdhttp.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
	if env.Code != perr.ErrorCodeNotFound || env.Error == "" || env.Data != nil {
		t.Fatalf("envelope = %+v", env)
	}
}

func TestListCarriesPageBlock(t *testing.T) {
	_, env := invoke(t, Handle(func(r *stdhttp.Request) Response {
		return List([]string{"a", "b"}, 12, 2, 2, true)
	}))

	if env.Page == nil {
		t.Fatal("page block missing")
	}
	if env.Page.Total != 12 || env.Page.Page != 2 || env.Page.PageSize != 2 || !env.Page.HasMore {
		t.Fatalf("page = %+v", env.Page)
	}
}

func TestNoContentSkipsBody(t *testing.T) {
	rec, _ := invoke(t, Handle(func(r *stdhttp.Request) Response { return NoContent() }))
	if rec.Code != stdhttp.StatusNoContent || rec.Body.Len() != 0 {
		t.Fatalf("status=%d body=%q", rec.Code, rec.Body.String())
	}
}

func TestJSONHandlerPassesResponsesThrough(t *testing.T) {
	h := JSONHandlerNoBody(func(r *stdhttp.Request) (any, error) {
		return List([]int{1}, 1, 1, 24, false), nil
	})
	_, env := invoke(t, h)
	if env.Page == nil || env.Page.Total != 1 {
		t.Fatalf("envelope = %+v", env)
	}

	h = JSONHandlerNoBody(func(r *stdhttp.Request) (any, error) {
		return nil, perr.Unavailablef("backend down")
	})
	rec, env := invoke(t, h)
	if rec.Code != stdhttp.StatusServiceUnavailable || env.Code != perr.ErrorCodeUnavailable {
		t.Fatalf("status=%d envelope=%+v", rec.Code, env)
	}
}
