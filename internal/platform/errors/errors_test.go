package errors

import (
	stderrs "errors"
	"net/http"
	"testing"
)

func TestWrappingPreservesCodeAndCause(t *testing.T) {
	cause := stderrs.New("socket closed")
	err := Wrapf(cause, ErrorCodeUnavailable, "fetch page %d", 3)

	if !IsCode(err, ErrorCodeUnavailable) {
		t.Fatalf("code = %v", CodeOf(err))
	}
	if !stderrs.Is(err, cause) {
		t.Fatal("wrapped cause lost")
	}
	if Root(err) != cause {
		t.Fatalf("Root = %v", Root(err))
	}
	if got := err.Error(); got != "fetch page 3: socket closed" {
		t.Fatalf("Error() = %q", got)
	}
}

func TestHTTPStatusMapping(t *testing.T) {
	cases := map[ErrorCode]int{
		ErrorCodeNotFound:        http.StatusNotFound,
		ErrorCodeInvalidArgument: http.StatusUnprocessableEntity,
		ErrorCodeDuplicateKey:    http.StatusConflict,
		ErrorCodeConflict:        http.StatusConflict,
		ErrorCodeValidation:      http.StatusBadRequest,
		ErrorCodeJSON:            http.StatusBadRequest,
		ErrorCodeUnavailable:     http.StatusServiceUnavailable,
		ErrorCodeAborted:         499,
		ErrorCodeDB:              http.StatusInternalServerError,
		ErrorCodePanic:           http.StatusInternalServerError,
		ErrorCodeUnknown:         http.StatusInternalServerError,
	}
	for code, want := range cases {
		if got := HTTPStatusCode(code); got != want {
			t.Fatalf("HTTPStatusCode(%d) = %d, want %d", code, got, want)
		}
	}

	if got := HTTPStatus(stderrs.New("plain")); got != http.StatusInternalServerError {
		t.Fatalf("plain error status = %d", got)
	}
}

func TestWireFrom(t *testing.T) {
	w := WireFrom(WithField(InvalidArgf("must be positive"), "minPrice"))
	if w.Code != ErrorCodeInvalidArgument || w.Field != "minPrice" || w.Message != "must be positive" {
		t.Fatalf("wire = %+v", w)
	}

	w = WireFrom(stderrs.New("opaque"))
	if w.Code != ErrorCodeUnknown || w.Message != "opaque" {
		t.Fatalf("wire = %+v", w)
	}

	if w = WireFrom(nil); w != (Wire{}) {
		t.Fatalf("nil wire = %+v", w)
	}
}

func TestWithFieldCopies(t *testing.T) {
	base := NotFoundf("listing missing")
	tagged := WithField(base, "id")

	be, _ := As(base)
	te, _ := As(tagged)
	if be.Field() != "" {
		t.Fatal("WithField mutated the original")
	}
	if te.Field() != "id" {
		t.Fatalf("field = %q", te.Field())
	}

	plain := stderrs.New("not ours")
	if WithField(plain, "x") != plain {
		t.Fatal("foreign errors should pass through unchanged")
	}
}

func TestWithOp(t *testing.T) {
	err := WithOp(DBf("query failed"), "search.CountMatching")
	e, ok := As(err)
	if !ok || e.Op() != "search.CountMatching" {
		t.Fatalf("op = %+v", err)
	}
}

func TestWrapIf(t *testing.T) {
	if WrapIf(nil, ErrorCodeDB, "never") != nil {
		t.Fatal("WrapIf(nil) should be nil")
	}
	if err := WrapIf(stderrs.New("x"), ErrorCodeDB, "ctx"); !IsCode(err, ErrorCodeDB) {
		t.Fatalf("WrapIf = %v", err)
	}
}
