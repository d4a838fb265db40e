package commands

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestAdd_Run(t *testing.T) {
	var got AddContentRequest
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/content" || r.Method != http.MethodPost {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer tok-123" {
			t.Fatalf("bearer token expected, got %q", auth)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		_, _ = w.Write([]byte(`{"message":"Content added"}`))
	}))
	defer ts.Close()

	cfg := testCfg(t, ts.URL)
	saveTestToken(t, cfg, "tok-123")

	out := withStdoutCapture(t, func() {
		if err := (addCmd{}).Run(context.Background(), cfg, []string{"link", "Go blog", "https://go.dev/blog"}); err != nil {
			t.Fatalf("add link failed: %v", err)
		}
	})
	if !strings.Contains(out, "Content added") {
		t.Fatalf("server message expected, got: %s", out)
	}
	if got.Type != "link" || got.Title != "Go blog" || got.Link != "https://go.dev/blog" {
		t.Fatalf("unexpected payload: %+v", got)
	}

	// note: остаток аргументов склеивается в текст
	if err := (addCmd{}).Run(context.Background(), cfg, []string{"note", "идея", "сделать", "бэкап"}); err != nil {
		t.Fatalf("add note failed: %v", err)
	}
	if got.Type != "note" || got.Text != "сделать бэкап" {
		t.Fatalf("unexpected note payload: %+v", got)
	}

	// неизвестный тип и короткие аргументы → ErrUsage
	if err := (addCmd{}).Run(context.Background(), cfg, []string{"video", "t", "x"}); err != ErrUsage {
		t.Fatalf("expected ErrUsage for bad kind, got %v", err)
	}
	if err := (addCmd{}).Run(context.Background(), cfg, []string{"link", "t"}); err != ErrUsage {
		t.Fatalf("expected ErrUsage for short args, got %v", err)
	}

	// без токена — понятная ошибка
	noTok := testCfg(t, ts.URL)
	if err := (addCmd{}).Run(context.Background(), noTok, []string{"link", "t", "u"}); err == nil {
		t.Fatalf("expected error without token")
	}
}

func TestList_Run(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/content" || r.Method != http.MethodGet {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"content":[
			{"id":"id-1","title":"Go blog","link":"https://go.dev/blog","type":"link","tags":["go"]},
			{"id":"id-2","title":"идея","text":"сделать бэкап","type":"note","tags":[]}
		]}`))
	}))
	defer ts.Close()

	cfg := testCfg(t, ts.URL)
	saveTestToken(t, cfg, "tok-123")

	out := withStdoutCapture(t, func() {
		if err := (listCmd{}).Run(context.Background(), cfg, nil); err != nil {
			t.Fatalf("list failed: %v", err)
		}
	})
	for _, want := range []string{"id-1", "https://go.dev/blog", "сделать бэкап", "Всего: 2"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}

	// пустая коллекция
	tsEmpty := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"content":[]}`))
	}))
	defer tsEmpty.Close()
	cfgEmpty := testCfg(t, tsEmpty.URL)
	saveTestToken(t, cfgEmpty, "tok-123")
	out = withStdoutCapture(t, func() {
		if err := (listCmd{}).Run(context.Background(), cfgEmpty, nil); err != nil {
			t.Fatalf("list empty failed: %v", err)
		}
	})
	if !strings.Contains(out, "Коллекция пуста") {
		t.Fatalf("empty message expected, got: %s", out)
	}

	if err := (listCmd{}).Run(context.Background(), cfg, []string{"extra"}); err != ErrUsage {
		t.Fatalf("expected ErrUsage, got %v", err)
	}
}

func TestDel_Run(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/content" || r.Method != http.MethodDelete {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["contentId"] == "gone" {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"message":"Content not found"}`))
			return
		}
		_, _ = w.Write([]byte(`{"message":"Content deleted"}`))
	}))
	defer ts.Close()

	cfg := testCfg(t, ts.URL)
	saveTestToken(t, cfg, "tok-123")

	out := withStdoutCapture(t, func() {
		if err := (delCmd{}).Run(context.Background(), cfg, []string{"id-1"}); err != nil {
			t.Fatalf("del failed: %v", err)
		}
	})
	if !strings.Contains(out, "Content deleted") {
		t.Fatalf("server message expected, got: %s", out)
	}

	if err := (delCmd{}).Run(context.Background(), cfg, []string{"gone"}); err == nil {
		t.Fatalf("expected not-found error")
	}
	if err := (delCmd{}).Run(context.Background(), cfg, nil); err != ErrUsage {
		t.Fatalf("expected ErrUsage, got %v", err)
	}
}
