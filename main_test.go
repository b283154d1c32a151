package main

import (
	"context"
	"net"
	"net/http"
	"sync/atomic"
	"testing"
	"time"
)

func TestServe_DrainsInFlightRequests(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	var finished atomic.Bool

	server := &http.Server{Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-release
		finished.Store(true)
		w.WriteHeader(http.StatusCreated)
	})}

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Failed to listen: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errc := make(chan error, 1)
	go func() { errc <- serve(ctx, server, ln) }()

	go func() {
		resp, err := http.Post("http://"+ln.Addr().String()+"/vote", "application/json", nil)
		if err == nil {
			resp.Body.Close()
		}
	}()

	<-started
	cancel()

	// A vote is still being handled, so serve must not return yet
	select {
	case err := <-errc:
		t.Fatalf("serve returned with a request in flight: %v", err)
	case <-time.After(100 * time.Millisecond):
	}

	close(release)

	select {
	case err := <-errc:
		if err != nil {
			t.Errorf("Expected clean shutdown, got %v", err)
		}
		if !finished.Load() {
			t.Error("Expected the in-flight request to finish before serve returned")
		}
	case <-time.After(shutdownTimeout + time.Second):
		t.Fatal("serve did not return after the request finished")
	}
}
