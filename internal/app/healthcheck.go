package app

import (
	"fmt"
	"net/http"
)

// healthHandler reports the readiness signal: 503 while the invocation is
// still starting, 200 once the gate may open.
func (a *App) healthHandler(w http.ResponseWriter, r *http.Request) {
	a.logger.Debug("health endpoint hit", "remote_addr", r.RemoteAddr, "path", r.URL.Path)
	if !a.signal.Ready() {
		w.WriteHeader(http.StatusServiceUnavailable)
		fmt.Fprintln(w, "starting")
		return
	}
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "OK")
}

// startHealthServer runs the health endpoint in the background. The server
// lives for the rest of the process; the lifecycle controller tears the
// whole process down, so there is no graceful shutdown path here.
func (a *App) startHealthServer(port int) {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", a.healthHandler)

	addr := fmt.Sprintf(":%d", port)
	go func() {
		a.logger.Debug("health endpoint listening", "addr", addr)
		if err := http.ListenAndServe(addr, mux); err != nil {
			a.logger.Error("health endpoint failed", "error", err)
		}
	}()
}
