package entrypoint

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestExecute_NoArgsPrintsUsage(t *testing.T) {
	var stdout bytes.Buffer
	code, err := execute([]string{"chemfetch"}, &stdout, slog.New(slog.DiscardHandler))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	if !strings.Contains(stdout.String(), "Usage: chemfetch") {
		t.Fatalf("expected usage message on stdout, got %q", stdout.String())
	}
}

func TestExecute_UnknownFlag(t *testing.T) {
	var stdout bytes.Buffer
	code, _ := execute([]string{"chemfetch", "-nope"}, &stdout, slog.New(slog.DiscardHandler))
	if code != 2 {
		t.Fatalf("expected exit code 2, got %d", code)
	}
}

func TestExecute_Lookup(t *testing.T) {
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
	srv := httptest.NewServer(mux)
	defer srv.Close()

	var stdout bytes.Buffer
	code, err := execute([]string{"chemfetch", "-base-url", srv.URL, "ethanol"}, &stdout, slog.New(slog.DiscardHandler))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}
	if stdout.String() != "64-17-5\tethanol\tCCO\n" {
		t.Fatalf("unexpected output: %q", stdout.String())
	}
}

func TestExecute_NotFoundStillExitsZero(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no match", http.StatusNotFound)
	}))
	defer srv.Close()

	var stdout bytes.Buffer
	code, err := execute([]string{"chemfetch", "-base-url", srv.URL, "nosuchthing"}, &stdout, slog.New(slog.DiscardHandler))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}
	if stdout.String() != "Not found\tNot found\tNot found\n" {
		t.Fatalf("unexpected output: %q", stdout.String())
	}
}
