package jira

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestUnauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := NewClient(Config{Server: srv.URL, Token: "token"}, time.Second)
	_, err := client.Myself(context.Background())
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestProjectsBasicAuth(t *testing.T) {
	var gotAuth, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"1","key":"NSTL","name":"Night Shift"},{"id":"2","key":"OPS","name":""}]`))
	}))
	defer srv.Close()

	client := NewClient(Config{Server: srv.URL + "/", Username: "ana", Token: "secret"}, time.Second)
	projects, err := client.Projects(context.Background())
	if err != nil {
		t.Fatalf("Projects() error: %v", err)
	}
	if gotPath != "/rest/api/2/project" {
		t.Fatalf("unexpected path %s", gotPath)
	}
	want := "Basic " + base64.StdEncoding.EncodeToString([]byte("ana:secret"))
	if gotAuth != want {
		t.Fatalf("expected %q, got %q", want, gotAuth)
	}
	if len(projects) != 2 {
		t.Fatalf("expected 2 projects, got %d", len(projects))
	}
	if projects[0].Label() != "NSTL - Night Shift" || projects[1].Label() != "OPS" {
		t.Fatalf("unexpected labels %q %q", projects[0].Label(), projects[1].Label())
	}
}

func TestBearerAuthWithoutUsername(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"name":"ana","displayName":"Ana"}`))
	}))
	defer srv.Close()

	client := NewClient(Config{Server: srv.URL, Token: "pat"}, time.Second)
	user, err := client.Myself(context.Background())
	if err != nil {
		t.Fatalf("Myself() error: %v", err)
	}
	if gotAuth != "Bearer pat" {
		t.Fatalf("unexpected auth header %q", gotAuth)
	}
	if user.DisplayName != "Ana" {
		t.Fatalf("unexpected user %+v", user)
	}
}

func TestServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("boom"))
	}))
	defer srv.Close()

	client := NewClient(Config{Server: srv.URL, Token: "t"}, time.Second)
	if _, err := client.Projects(context.Background()); err == nil {
		t.Fatalf("expected error")
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".jira.yml")
	body := "server: https://jira.example.com\nusername: ana\npassword: hunter2\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if cfg.Server != "https://jira.example.com" || cfg.Username != "ana" || cfg.Token != "hunter2" {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	if err := (Config{Token: "t"}).Validate(); err == nil {
		t.Fatalf("expected missing server error")
	}
	if err := (Config{Server: "https://jira"}).Validate(); err == nil {
		t.Fatalf("expected missing token error")
	}
}

func TestDefaultConfigPath(t *testing.T) {
	t.Setenv("JIRA_CONFIG", "/etc/jira.yml")
	path, err := DefaultConfigPath()
	if err != nil || path != "/etc/jira.yml" {
		t.Fatalf("unexpected path %q err %v", path, err)
	}

	home := t.TempDir()
	t.Setenv("JIRA_CONFIG", "")
	t.Setenv("HOME", home)
	path, err = DefaultConfigPath()
	if err != nil || path != filepath.Join(home, ".jira.yml") {
		t.Fatalf("unexpected path %q err %v", path, err)
	}
}
