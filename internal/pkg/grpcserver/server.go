// Package grpcserver runs a gRPC server that carries the standard health
// service, so orchestrators can probe the API process.
package grpcserver

import (
	"net"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the health service name reported alongside the overall
// ("") status.
const ServiceName = "smarta.API"

type Server struct {
	addr   string
	health *health.Server
	log    zerolog.Logger
	Server *grpc.Server
}

// New builds a server for addr. Both the overall status and ServiceName
// start as NOT_SERVING until SetServing is called.
func New(addr string, log zerolog.Logger) *Server {
	s := grpc.NewServer()
	hs := health.NewServer()
	healthpb.RegisterHealthServer(s, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	hs.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_NOT_SERVING)
	return &Server{
		addr:   addr,
		health: hs,
		log:    log,
		Server: s,
	}
}

// SetServing flips the reported health of the API.
func (s *Server) SetServing(ok bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if ok {
		status = healthpb.HealthCheckResponse_SERVING
	}
	s.health.SetServingStatus("", status)
	s.health.SetServingStatus(ServiceName, status)
}

// Start listens on the configured address and serves until Stop.
func (s *Server) Start() error {
	lis, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	return s.Serve(lis)
}

// Serve serves on an existing listener until Stop.
func (s *Server) Serve(lis net.Listener) error {
	s.log.Info().Str("addr", lis.Addr().String()).Msg("grpc health listening")
	return s.Server.Serve(lis)
}

// Stop marks the server not serving and shuts down gracefully.
func (s *Server) Stop() {
	s.health.Shutdown()
	s.Server.GracefulStop()
}
