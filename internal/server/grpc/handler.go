package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/recmarket/internal/common"
	pb "github.com/dmitrijs2005/recmarket/internal/proto"
	"github.com/dmitrijs2005/recmarket/internal/server/models"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

func (s *GRPCServer) AddCertificate(ctx context.Context, req *pb.AddCertificateRequest) (*pb.AddCertificateResponse, error) {

	id, err := s.registry.AddCertificate(ctx, callerFromContext(ctx), req.GetEnergySource(), req.GetDetails(), req.GetPrice(), req.GetImageUrl())

	if err != nil {
		if errors.Is(err, common.ErrorValidation) {
			return errResult(err.Error()), nil
		}
		return nil, statusFromError(err)
	}

	return okResult(id), nil
}

func (s *GRPCServer) GetCertificates(ctx context.Context, _ *emptypb.Empty) (*pb.GetCertificatesResponse, error) {

	list, err := s.registry.GetCertificates(ctx)

	if err != nil {
		return nil, statusFromError(err)
	}

	resp := &pb.GetCertificatesResponse{Certificates: make([]*pb.Certificate, 0, len(list))}
	for _, c := range list {
		resp.Certificates = append(resp.Certificates, certificateToPB(c))
	}
	return resp, nil
}

func (s *GRPCServer) Login(ctx context.Context, _ *emptypb.Empty) (*wrapperspb.BoolValue, error) {

	ok, err := s.registry.Login(ctx, callerFromContext(ctx))

	if err != nil {
		return nil, statusFromError(err)
	}

	return wrapperspb.Bool(ok), nil
}

func (s *GRPCServer) Logout(ctx context.Context, _ *emptypb.Empty) (*wrapperspb.BoolValue, error) {

	ok, err := s.registry.Logout(ctx, callerFromContext(ctx))

	if err != nil {
		return nil, statusFromError(err)
	}

	return wrapperspb.Bool(ok), nil
}

func (s *GRPCServer) GetImageUploadURL(ctx context.Context, req *pb.ImageUploadURLRequest) (*pb.ImageUploadURLResponse, error) {

	up, err := s.images.GetImageUploadURL(ctx, callerFromContext(ctx), req.GetContentType())

	if err != nil {
		return nil, statusFromError(err)
	}

	return &pb.ImageUploadURLResponse{UploadUrl: up.UploadURL, ImageUrl: up.ImageURL, Key: up.Key}, nil
}

func okResult(id uint64) *pb.AddCertificateResponse {
	return &pb.AddCertificateResponse{Result: &pb.AddCertificateResponse_Ok{Ok: id}}
}

func errResult(msg string) *pb.AddCertificateResponse {
	return &pb.AddCertificateResponse{Result: &pb.AddCertificateResponse_Err{Err: msg}}
}

func certificateToPB(c *models.Certificate) *pb.Certificate {
	out := &pb.Certificate{
		Id:           c.ID,
		EnergySource: c.EnergySource,
		Details:      c.Details,
		Price:        c.Price,
		ImageUrl:     c.ImageURL,
		CreatedAt:    c.CreatedAt,
	}
	if c.Owner != nil {
		owner := *c.Owner
		out.Owner = &owner
	}
	return out
}

func statusFromError(err error) error {
	switch {
	case errors.Is(err, common.ErrorValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrorUnauthorized):
		return status.Error(codes.Unauthenticated, "unauthorized")
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, "canceled")
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, "deadline exceeded")
	default:
		return status.Error(codes.Internal, "internal error")
	}
}
