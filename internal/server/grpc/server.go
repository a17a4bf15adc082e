// Package grpc exposes the certificate registry over gRPC.
package grpc

import (
	"context"
	"net"
	"time"

	"github.com/dmitrijs2005/recmarket/internal/logging"
	pb "github.com/dmitrijs2005/recmarket/internal/proto"
	"github.com/dmitrijs2005/recmarket/internal/server/config"
	"github.com/dmitrijs2005/recmarket/internal/server/models"
	"github.com/dmitrijs2005/recmarket/internal/server/services"
	"google.golang.org/grpc"
)

type registryService interface {
	AddCertificate(ctx context.Context, caller, energySource, details string, price int64, imageURL string) (uint64, error)
	GetCertificates(ctx context.Context) ([]*models.Certificate, error)
	Login(ctx context.Context, caller string) (bool, error)
	Logout(ctx context.Context, caller string) (bool, error)
}

type imageService interface {
	GetImageUploadURL(ctx context.Context, caller, contentType string) (*services.ImageUpload, error)
}

type GRPCServer struct {
	pb.UnimplementedCertificateRegistryServer
	address   string
	registry  registryService
	images    imageService
	logger    logging.Logger
	jwtSecret []byte
	limiter   *principalLimiter
}

func NewGRPCServer(cfg *config.Config, l logging.Logger, rs registryService, is imageService) *GRPCServer {
	return &GRPCServer{
		address:   cfg.EndpointAddrGRPC,
		logger:    l.With("module", "grpc_server"),
		registry:  rs,
		images:    is,
		jwtSecret: []byte(cfg.SecretKey),
		limiter:   newPrincipalLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst),
	}
}

// newServer builds a grpc.Server with the interceptor chain and the registry
// service registered.
func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(
		s.requestLogInterceptor,
		s.identityInterceptor,
		s.rateLimitInterceptor,
	))
	pb.RegisterCertificateRegistryServer(srv, s)
	return srv
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is cancelled, then stops
// gracefully.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(context.Background(), "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	go s.limiter.pruneLoop(ctx, time.Minute, 3*time.Minute)

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	if err := srv.Serve(lis); err != nil {
		return err
	}

	return nil
}
