// Package server runs the invoice API transports and background workers.
//
// The HTTP listener serves the REST API and metrics, the optional gRPC
// listener serves the health protocol. Both are opened eagerly in NewServer
// so that address errors surface before anything starts. RunServer blocks
// until SIGINT, SIGTERM or SIGQUIT and then drains every transport and
// worker before returning.
package server
