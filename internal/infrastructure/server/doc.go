// Package server assembles the math service: configuration, logging,
// metrics, tracing, the formula catalog, the math provider, the workspace
// store and the gin router.
//
// Example Usage:
//
//	srv, err := server.NewServer(config.LoadOrDefault())
//	if err != nil {
//		log.Fatal(err)
//	}
//	go srv.Run()
//	defer srv.Close()
package server
