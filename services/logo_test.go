package services

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestFetchLogo_Success(t *testing.T) {
	payload := []byte{0x89, 'P', 'N', 'G'}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(payload)
	}))
	defer srv.Close()

	got := FetchLogo(srv.Client(), srv.URL)
	if !bytes.Equal(got, payload) {
		t.Errorf("FetchLogo() = %v, want %v", got, payload)
	}
}

func TestFetchLogo_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	if got := FetchLogo(srv.Client(), srv.URL); got != nil {
		t.Errorf("FetchLogo() on 404 = %v, want nil", got)
	}
}

func TestFetchLogo_ConnectionError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	if got := FetchLogo(nil, srv.URL); got != nil {
		t.Errorf("FetchLogo() on dead server = %v, want nil", got)
	}
}

func TestFetchLogo_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	client := &http.Client{Timeout: 20 * time.Millisecond}
	if got := FetchLogo(client, srv.URL); got != nil {
		t.Errorf("FetchLogo() on timeout = %v, want nil", got)
	}
}

// A failed logo fetch must not abort rendering: the document falls
// back to the text header and is still produced.
func TestGenerateQuotePDF_LogoFailureStillRenders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	logo := FetchLogo(srv.Client(), srv.URL)

	result, err := GenerateQuotePDF(testQuotation(), logo)
	if err != nil {
		t.Fatalf("GenerateQuotePDF() error = %v", err)
	}
	if string(result[:5]) != "%PDF-" {
		t.Errorf("result does not start with PDF header, got %q", string(result[:5]))
	}
}
