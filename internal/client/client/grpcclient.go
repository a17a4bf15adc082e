package client

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/recmarket/internal/client/models"
	"github.com/dmitrijs2005/recmarket/internal/common"
	pb "github.com/dmitrijs2005/recmarket/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.CertificateRegistryClient

	mu            sync.RWMutex
	identityToken string
}

func withIdentityToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.IdentityTokenHeaderName)
	if token != "" {
		md.Set(common.IdentityTokenHeaderName, token)
	}

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) identityTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	ctx = withIdentityToken(ctx, s.IdentityToken())
	return invoker(ctx, method, req, reply, cc, opts...)
}

func NewRegistryClient(endpointURL, identityToken string, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, identityToken: identityToken}
	if err := c.initGRPCClient(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) initGRPCClient(extra ...grpc.DialOption) error {
	opts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.identityTokenInterceptor),
	}, extra...)

	conn, err := grpc.NewClient(s.endpointURL, opts...)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewCertificateRegistryClient(conn)
	return nil
}

func (s *GRPCClient) SetIdentityToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.identityToken = token
}

func (s *GRPCClient) IdentityToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.identityToken
}

func (s *GRPCClient) Login(ctx context.Context) (bool, error) {
	resp, err := s.client.Login(ctx, &emptypb.Empty{})
	if err != nil {
		return false, s.mapError(err)
	}
	return resp.GetValue(), nil
}

func (s *GRPCClient) Logout(ctx context.Context) (bool, error) {
	resp, err := s.client.Logout(ctx, &emptypb.Empty{})
	if err != nil {
		return false, s.mapError(err)
	}
	return resp.GetValue(), nil
}

// AddCertificate submits a listing. A registry-side rejection is returned as
// an error wrapping ErrRejected with the registry's reason.
func (s *GRPCClient) AddCertificate(ctx context.Context, energySource, details string, price int64, imageURL string) (uint64, error) {
	req := &pb.AddCertificateRequest{EnergySource: energySource, Details: details, Price: price, ImageUrl: imageURL}

	resp, err := s.client.AddCertificate(ctx, req)
	if err != nil {
		return 0, s.mapError(err)
	}

	switch r := resp.GetResult().(type) {
	case *pb.AddCertificateResponse_Ok:
		return r.Ok, nil
	case *pb.AddCertificateResponse_Err:
		return 0, fmt.Errorf("%w: %s", ErrRejected, r.Err)
	default:
		return 0, fmt.Errorf("%w: empty result", ErrRejected)
	}
}

func (s *GRPCClient) GetCertificates(ctx context.Context) ([]*models.Certificate, error) {
	resp, err := s.client.GetCertificates(ctx, &emptypb.Empty{})
	if err != nil {
		return nil, s.mapError(err)
	}

	out := make([]*models.Certificate, 0, len(resp.GetCertificates()))
	for _, c := range resp.GetCertificates() {
		out = append(out, &models.Certificate{
			ID:           c.GetId(),
			EnergySource: c.GetEnergySource(),
			Details:      c.GetDetails(),
			Price:        c.GetPrice(),
			ImageURL:     c.GetImageUrl(),
			Owner:        c.Owner,
			CreatedAt:    c.GetCreatedAt(),
		})
	}
	return out, nil
}

func (s *GRPCClient) GetImageUploadURL(ctx context.Context, contentType string) (*models.ImageUpload, error) {
	resp, err := s.client.GetImageUploadURL(ctx, &pb.ImageUploadURLRequest{ContentType: contentType})
	if err != nil {
		return nil, s.mapError(err)
	}
	return &models.ImageUpload{UploadURL: resp.GetUploadUrl(), ImageURL: resp.GetImageUrl(), Key: resp.GetKey()}, nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return ErrUnauthorized
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	case codes.ResourceExhausted:
		return ErrRateLimited
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", ErrRejected, st.Message())
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
