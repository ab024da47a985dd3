// Package grpc exposes the user service over gRPC: method handlers, the
// bearer-token guard and the server run loop.
package grpc

import (
	"context"
	"net"

	"github.com/avoronov/usersvc/internal/logging"
	pb "github.com/avoronov/usersvc/internal/proto"
	"github.com/avoronov/usersvc/internal/server/metrics"
	"github.com/avoronov/usersvc/internal/server/models"
	"github.com/avoronov/usersvc/internal/server/services"
	"google.golang.org/grpc"
)

// userSvc is the slice of the user service the transport needs; the concrete
// implementation is services.UserService.
type userSvc interface {
	Create(ctx context.Context, in services.CreateUserInput) (*models.User, error)
	FindOne(ctx context.Context, id string) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	Update(ctx context.Context, id string, in services.UpdateUserInput) (*models.User, error)
	Remove(ctx context.Context, id string) error
	ValidateCredentials(ctx context.Context, username, password string) (*services.ValidationResult, error)
}

type GRPCServer struct {
	pb.UnimplementedUsersServiceServer
	address   string
	users     userSvc
	logger    logging.Logger
	metrics   *metrics.Collector
	jwtSecret []byte
}

func NewGRPCServer(address string, l logging.Logger, us userSvc, mc *metrics.Collector, secretKey string) (*GRPCServer, error) {
	return &GRPCServer{
		address:   address,
		logger:    l.With("module", "grpc_server"),
		users:     us,
		metrics:   mc,
		jwtSecret: []byte(secretKey),
	}, nil
}

func (s *GRPCServer) Run(ctx context.Context) error {

	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(
		s.metricsInterceptor,
		s.accessTokenInterceptor,
	))

	pb.RegisterUsersServiceServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
