package grpc

import (
	"context"
	"errors"

	"github.com/avoronov/usersvc/internal/common"
	pb "github.com/avoronov/usersvc/internal/proto"
	"github.com/avoronov/usersvc/internal/server/models"
	"github.com/avoronov/usersvc/internal/server/services"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func (s *GRPCServer) ValidateCredentials(ctx context.Context, req *pb.ValidateCredentialsRequest) (*pb.ValidateCredentialsResponse, error) {

	result, err := s.users.ValidateCredentials(ctx, req.GetUsername(), req.GetPassword())
	if err != nil {
		return nil, toStatusError(err)
	}

	resp := &pb.ValidateCredentialsResponse{IsValid: result.IsValid}
	if result.User != nil {
		resp.User = toProtoUser(result.User)
	}
	return resp, nil
}

func (s *GRPCServer) FindOne(ctx context.Context, req *pb.UserByIdRequest) (*pb.User, error) {

	user, err := s.users.FindOne(ctx, req.GetId())
	if err != nil {
		return nil, toStatusError(err)
	}

	return toProtoUser(user), nil
}

func (s *GRPCServer) FindByUsername(ctx context.Context, req *pb.UserByUsernameRequest) (*pb.User, error) {

	user, err := s.users.FindByUsername(ctx, req.GetUsername())
	if err != nil {
		return nil, toStatusError(err)
	}

	return toProtoUser(user), nil
}

func (s *GRPCServer) Create(ctx context.Context, req *pb.CreateUserRequest) (*pb.User, error) {

	s.logger.Info(ctx, "Create user request", "username", req.GetUsername())

	user, err := s.users.Create(ctx, services.CreateUserInput{
		Username:  req.GetUsername(),
		Email:     req.GetEmail(),
		Password:  req.GetPassword(),
		FirstName: req.GetFirstName(),
		LastName:  req.GetLastName(),
	})
	if err != nil {
		s.logger.Error(ctx, "Create user failed", "error", err.Error())
		return nil, toStatusError(err)
	}

	s.logger.Info(ctx, "User created", "id", user.ID, "username", user.Username)
	return toProtoUser(user), nil
}

func (s *GRPCServer) Update(ctx context.Context, req *pb.UpdateUserRequest) (*pb.User, error) {

	user, err := s.users.Update(ctx, req.GetId(), services.UpdateUserInput{
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		IsActive:  req.IsActive,
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	return toProtoUser(user), nil
}

func (s *GRPCServer) Delete(ctx context.Context, req *pb.UserByIdRequest) (*pb.DeleteUserResponse, error) {

	if err := s.users.Remove(ctx, req.GetId()); err != nil {
		return nil, toStatusError(err)
	}

	return &pb.DeleteUserResponse{}, nil
}

// toStatusError maps domain failures onto gRPC status codes. Domain messages
// pass through verbatim; internal messages arrive already opaque from the
// service layer.
func toStatusError(err error) error {
	switch {
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, common.ErrorAlreadyExists):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, common.ErrorInvalidArgument):
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

func toProtoUser(u *models.User) *pb.User {
	return &pb.User{
		Id:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Roles:     u.Roles,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		IsActive:  u.IsActive,
		CreatedAt: timestamppb.New(u.CreatedAt),
		UpdatedAt: timestamppb.New(u.UpdatedAt),
	}
}
