package app_test

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"chemfetch/internal/app"
	"chemfetch/internal/output"
)

func ethanolServer() *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/compound/name/ethanol/cids/JSON", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"IdentifierList":{"CID":[702]}}`))
	})
	mux.HandleFunc("/compound/cid/702/synonyms/JSON", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"InformationList":{"Information":[{"CID":702,"Synonym":["ethanol","64-17-5"]}]}}`))
	})
	mux.HandleFunc("/compound/cid/702/property/IUPACName/TXT", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ethanol\n"))
	})
	mux.HandleFunc("/compound/cid/702/property/IsomericSMILES/TXT", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("CCO\n"))
	})
	return httptest.NewServer(mux)
}

func TestRun_TSV(t *testing.T) {
	srv := ethanolServer()
	defer srv.Close()

	var out bytes.Buffer
	opts := app.Options{
		Name:    "ethanol",
		BaseURL: srv.URL,
		Timeout: time.Second,
		Format:  output.FormatTSV,
	}
	if err := app.Run(context.Background(), slog.New(slog.DiscardHandler), opts, &out); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if out.String() != "64-17-5\tethanol\tCCO\n" {
		t.Fatalf("unexpected output: %q", out.String())
	}
}

func TestRun_JSON(t *testing.T) {
	srv := ethanolServer()
	defer srv.Close()

	var out bytes.Buffer
	opts := app.Options{
		Name:    "ethanol",
		BaseURL: srv.URL,
		Timeout: time.Second,
		Format:  output.FormatJSON,
	}
	if err := app.Run(context.Background(), slog.New(slog.DiscardHandler), opts, &out); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out.String(), `"cas":"64-17-5"`) {
		t.Fatalf("unexpected output: %q", out.String())
	}
}

func TestRun_ResolutionFailureStillSucceeds(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	var out bytes.Buffer
	opts := app.Options{
		Name:    "ethanol",
		BaseURL: srv.URL,
		Timeout: time.Second,
		Format:  output.FormatTSV,
	}
	if err := app.Run(context.Background(), slog.New(slog.DiscardHandler), opts, &out); err != nil {
		t.Fatalf("Run should not fail on resolution errors: %v", err)
	}
	if out.String() != "Not found\tNot found\tNot found\n" {
		t.Fatalf("unexpected output: %q", out.String())
	}
}
