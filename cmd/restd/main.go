// Command restd serves the resources listed in a YAML manifest,
// negotiating JSON, JSON-LD or HTML representations of documents in a docstore.
//
// Confer package ranger for the environment variables restd reads.
package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/xy-planning-network/rest/http/router"
	"github.com/xy-planning-network/rest/ranger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	rng, err := ranger.New()
	if err != nil {
		return err
	}

	l := rng.EmitLogger()
	m, err := ranger.LoadManifest(rng.EmitConfig().ManifestPath)
	if err != nil {
		l.Error(err.Error(), nil)
		return err
	}

	rng.Handle(router.Route{
		Path:    "/metrics",
		Method:  http.MethodGet,
		Handler: promhttp.Handler().ServeHTTP,
	})

	if err := rng.Serve(m); err != nil {
		l.Error(err.Error(), nil)
		return err
	}

	return rng.Guide()
}
