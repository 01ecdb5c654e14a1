// Package server runs an http.Handler with an explicit bind step, production
// timeouts and graceful shutdown.
//
// Binding happens synchronously inside Start, so a port that is already in use
// or an address that cannot be assigned is reported immediately as an error
// wrapping ErrBind instead of surfacing later from a background goroutine.
//
// # Basic Usage
//
//	srv := server.New("0.0.0.0:8001",
//		server.WithLogger(logger),
//		server.WithOnListen(func(addr net.Addr) {
//			fmt.Printf("Serving HTTP on %s ...\n", addr)
//		}),
//	)
//
//	g, ctx := errgroup.WithContext(ctx)
//	g.Go(srv.Run(ctx, handler))
//	if err := g.Wait(); err != nil {
//		if errors.Is(err, server.ErrBind) {
//			// port busy, permission denied, ...
//		}
//	}
//
// # Configuration
//
// Config is parsed from the environment with core/config:
//
//	var cfg server.Config
//	config.MustLoad(&cfg)
//	srv, err := server.NewFromConfig(cfg, server.WithLogger(logger))
//
// SERVER_HOST (0.0.0.0) and SERVER_PORT (8001) form the listen address.
// Timeouts default to 15s read, 5s read-header, 60s write, 60s idle and
// 30s graceful shutdown.
//
// # Graceful Shutdown
//
// Run returns a function suitable for errgroup.Group.Go. When the context is
// canceled the server stops accepting connections and waits for in-flight
// requests up to the shutdown timeout.
package server
