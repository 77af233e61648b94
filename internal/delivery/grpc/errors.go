package grpcserver

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/wolfeidau/node-quotas/internal/quota"
)

var (
	ErrQuotasNotConfigured     = errors.New("quota service not configured")
	ErrCategoriesNotConfigured = errors.New("category administration not configured")
)

// toStatus переводит ошибки прикладного слоя в gRPC-статусы.
func toStatus(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	var (
		ve *quota.ValidationError
		ce *quota.ConfigurationError
		se *quota.StoreError
	)
	switch {
	case errors.As(err, &ve):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, quota.ErrQuotaExhausted):
		return status.Error(codes.ResourceExhausted, err.Error())
	case errors.As(err, &ce):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, ErrQuotasNotConfigured), errors.Is(err, ErrCategoriesNotConfigured):
		return status.Error(codes.Unimplemented, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.As(err, &se):
		return status.Error(codes.Unavailable, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
