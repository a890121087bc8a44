package github

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestReposFetchesFromUpstream(t *testing.T) {
	var gotPath, gotQuery, gotAuth string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"name":"devconnect","full_name":"alice/devconnect","html_url":"https://github.com/alice/devconnect","stargazers_count":7}]`))
	}))
	defer ts.Close()

	c := NewClient(ts.URL, "gh-token", nil, time.Minute, nil)
	repos, err := c.Repos(context.Background(), "alice")
	if err != nil {
		t.Fatalf("Repos: %v", err)
	}
	if len(repos) != 1 || repos[0].Name != "devconnect" || repos[0].Stars != 7 {
		t.Errorf("repos = %+v", repos)
	}
	if gotPath != "/users/alice/repos" {
		t.Errorf("path = %q", gotPath)
	}
	if gotQuery != "per_page=5&sort=created&direction=desc" {
		t.Errorf("query = %q", gotQuery)
	}
	if gotAuth != "Bearer gh-token" {
		t.Errorf("auth header = %q", gotAuth)
	}
}

func TestReposUnknownUser(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer ts.Close()

	c := NewClient(ts.URL, "", nil, time.Minute, nil)
	if _, err := c.Repos(context.Background(), "no-such-user"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("err = %v, want ErrUserNotFound", err)
	}
}

func TestReposOmitsAuthHeaderWithoutToken(t *testing.T) {
	var gotAuth string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer ts.Close()

	c := NewClient(ts.URL, "", nil, time.Minute, nil)
	if _, err := c.Repos(context.Background(), "alice"); err != nil {
		t.Fatalf("Repos: %v", err)
	}
	if gotAuth != "" {
		t.Errorf("unexpected auth header %q", gotAuth)
	}
}
