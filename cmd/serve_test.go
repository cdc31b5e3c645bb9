package cmd

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"webpage_generator/config"
	"webpage_generator/generator"
	"webpage_generator/server"
)

// slowLLM blocks until release is closed, ignoring cancellation.
type slowLLM struct {
	entered chan struct{}
	release chan struct{}
}

func (s *slowLLM) Complete(context.Context, generator.Request) (string, error) {
	close(s.entered)
	<-s.release
	return "<html><body>late</body></html>", nil
}

func TestServeHTTPDrainsInFlightGeneration(t *testing.T) {
	llm := &slowLLM{entered: make(chan struct{}), release: make(chan struct{})}
	gen, err := generator.NewGenerator(llm)
	if err != nil {
		t.Fatal(err)
	}
	srv, err := server.New(gen, config.Config{}, zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	serveDone := make(chan error, 1)
	go func() {
		serveDone <- serveHTTP(ctx, &http.Server{Handler: srv.Routes()}, ln, 10*time.Second)
	}()

	type reply struct {
		status int
		body   string
		err    error
	}
	replyCh := make(chan reply, 1)
	go func() {
		resp, err := http.Post("http://"+ln.Addr().String()+"/api/generate", "application/json",
			strings.NewReader(`{"prompt":"slow page"}`))
		if err != nil {
			replyCh <- reply{err: err}
			return
		}
		defer resp.Body.Close()
		b, err := io.ReadAll(resp.Body)
		replyCh <- reply{status: resp.StatusCode, body: string(b), err: err}
	}()

	select {
	case <-llm.entered:
	case <-time.After(5 * time.Second):
		t.Fatal("request never reached the llm")
	}
	cancel()

	select {
	case err := <-serveDone:
		t.Fatalf("serveHTTP returned with a request in flight: %v", err)
	case <-time.After(200 * time.Millisecond):
	}

	close(llm.release)

	var r reply
	select {
	case r = <-replyCh:
	case <-time.After(5 * time.Second):
		t.Fatal("no response")
	}
	if r.err != nil || r.status != http.StatusOK || !strings.Contains(r.body, "late") {
		t.Fatalf("reply = %+v", r)
	}

	select {
	case err := <-serveDone:
		if err != nil {
			t.Fatalf("serveHTTP = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("serveHTTP did not return after draining")
	}
}

func TestServeHTTPDrainBudgetExceeded(t *testing.T) {
	llm := &slowLLM{entered: make(chan struct{}), release: make(chan struct{})}
	defer close(llm.release)
	gen, _ := generator.NewGenerator(llm)
	srv, _ := server.New(gen, config.Config{}, zerolog.Nop())
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	serveDone := make(chan error, 1)
	go func() {
		serveDone <- serveHTTP(ctx, &http.Server{Handler: srv.Routes()}, ln, 50*time.Millisecond)
	}()
	go func() {
		resp, err := http.Post("http://"+ln.Addr().String()+"/api/generate", "application/json",
			strings.NewReader(`{"prompt":"stuck page"}`))
		if err == nil {
			resp.Body.Close()
		}
	}()

	<-llm.entered
	cancel()
	select {
	case err := <-serveDone:
		if !errors.Is(err, context.DeadlineExceeded) {
			t.Fatalf("serveHTTP = %v, want deadline exceeded", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("serveHTTP ignored the drain budget")
	}
}
