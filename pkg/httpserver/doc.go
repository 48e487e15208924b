// Package httpserver runs an http.Server until its context is canceled or
// the process receives SIGINT/SIGTERM, then shuts it down gracefully.
//
//	srv := httpserver.New(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
package httpserver
