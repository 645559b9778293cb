package server

import (
	"net"
	"net/http"
	"strconv"
	"time"

	"listkeeper/global"
)

// Start serves HTTP on host:port and blocks until the server stops.
func Start(host string, port int, handler http.Handler) error {
	addr := net.JoinHostPort(host, strconv.Itoa(port))
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	global.Logger.Info().Str("addr", addr).Msg("http server listening")
	return srv.ListenAndServe()
}
