package bcserve

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

var errBadDescriptor = errors.New("bad descriptor")

func TestEmitHandlerRoundTrip(t *testing.T) {
	emit := func(descriptor []byte) ([]byte, error) {
		return append([]byte("encoded:"), descriptor...), nil
	}

	srv := httptest.NewServer(newMux(emit))
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/emit", "application/json", bytes.NewReader([]byte(`{"magic":1}`)))
	if err != nil {
		t.Fatalf("POST /emit: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("reading body: %v", err)
	}

	want := `encoded:{"magic":1}`
	if string(body) != want {
		t.Fatalf("body = %q, want %q", body, want)
	}
}

func TestEmitHandlerRejectsGet(t *testing.T) {
	srv := httptest.NewServer(newMux(func(d []byte) ([]byte, error) { return d, nil }))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/emit")
	if err != nil {
		t.Fatalf("GET /emit: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", resp.StatusCode)
	}
}

func TestEmitHandlerPropagatesError(t *testing.T) {
	emit := func(d []byte) ([]byte, error) {
		return nil, errBadDescriptor
	}

	srv := httptest.NewServer(newMux(emit))
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/emit", "application/json", bytes.NewReader([]byte("x")))
	if err != nil {
		t.Fatalf("POST /emit: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}
