//go:build pprof

package main

import (
	"net/http"
	_ "net/http/pprof"

	"github.com/emberwm/ember/internal/log"
)

func init() {
	log.Info("Started pprof server.")
	go func() {
		log.Error("%s", http.ListenAndServe("localhost:6060", nil))
	}()
}
