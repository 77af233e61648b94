package interceptors

import (
	"bytes"
	"context"
	"net"
	"strings"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"

	quotasv1 "github.com/wolfeidau/node-quotas/api/quotas/v1"
	internalcfg "github.com/wolfeidau/node-quotas/internal/config"
	"github.com/wolfeidau/node-quotas/internal/logger"
)

func TestUnaryLoggingInterceptor_Success(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf, &internalcfg.Logger{Level: "debug"})

	interceptor := UnaryLoggingInterceptor(log)

	ctx := peer.NewContext(
		context.Background(), &peer.Peer{Addr: &net.TCPAddr{IP: net.ParseIP("192.168.1.1"), Port: 12345}})
	info := &grpc.UnaryServerInfo{FullMethod: "/quotas.v1.Quotas/Check"}
	handler := func(_ context.Context, _ any) (any, error) {
		return "ok", nil
	}

	req := &quotasv1.CheckRequest{Subject: "1234", Category: "emails"}
	resp, err := interceptor(ctx, req, info, handler)
	if err != nil {
		t.Fatalf("unexpected error from interceptor: %v", err)
	}
	if resp != "ok" {
		t.Fatalf("unexpected response: %v", resp)
	}

	out := buf.String()
	if !strings.Contains(out, "gRPC request handled") {
		t.Fatalf("expected handled log, got: %s", out)
	}
	if !strings.Contains(out, info.FullMethod) {
		t.Fatalf("expected method in log: %s", out)
	}
	if !strings.Contains(out, "grpc_code") || !strings.Contains(out, "OK") {
		t.Fatalf("expected grpc_code OK in log: %s", out)
	}
	if !strings.Contains(out, "remote_addr") || !strings.Contains(out, "192.168.1.1") {
		t.Fatalf("expected remote_addr in log: %s", out)
	}
	if !strings.Contains(out, "duration") {
		t.Fatalf("expected duration in log: %s", out)
	}
	if !strings.Contains(out, `"category":"emails"`) || !strings.Contains(out, `"subject":"1234"`) {
		t.Fatalf("expected quota fields in log: %s", out)
	}
}

func TestUnaryLoggingInterceptor_ClientError(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf, &internalcfg.Logger{Level: "debug"})

	interceptor := UnaryLoggingInterceptor(log)

	ctx := peer.NewContext(context.Background(), &peer.Peer{Addr: &net.TCPAddr{IP: net.ParseIP("10.0.0.1"), Port: 9999}})
	info := &grpc.UnaryServerInfo{FullMethod: "/quotas.v1.Quotas/SetCategory"}
	handler := func(_ context.Context, _ any) (any, error) {
		return nil, status.Error(codes.InvalidArgument, "quota validation: subject is required")
	}

	resp, err := interceptor(ctx, nil, info, handler)
	if err == nil {
		t.Fatalf("expected error from interceptor, got resp=%v", resp)
	}

	out := buf.String()
	if !strings.Contains(out, "gRPC request rejected") || !strings.Contains(out, `"level":"WARN"`) {
		t.Fatalf("expected rejected warning, got: %s", out)
	}
	if !strings.Contains(out, info.FullMethod) {
		t.Fatalf("expected method in log: %s", out)
	}
	if !strings.Contains(out, "grpc_code") || !strings.Contains(out, "InvalidArgument") {
		t.Fatalf("expected grpc_code InvalidArgument in log: %s", out)
	}
	if !strings.Contains(out, "error") || !strings.Contains(out, "subject is required") {
		t.Fatalf("expected error details in log: %s", out)
	}
}

func TestUnaryLoggingInterceptor_NoPeer(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf, &internalcfg.Logger{Level: "info"})

	interceptor := UnaryLoggingInterceptor(log)
	info := &grpc.UnaryServerInfo{FullMethod: "/quotas.v1.Quotas/Flush"}
	handler := func(_ context.Context, _ any) (any, error) { return "ok", nil }

	if _, err := interceptor(context.Background(), nil, info, handler); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "gRPC request handled") {
		t.Fatalf("expected handled log, got: %s", buf.String())
	}
}

func TestUnaryLoggingInterceptor_ServerError(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf, &internalcfg.Logger{Level: "info"})

	interceptor := UnaryLoggingInterceptor(log)
	info := &grpc.UnaryServerInfo{FullMethod: "/quotas.v1.Quotas/Check"}
	handler := func(_ context.Context, _ any) (any, error) {
		return nil, status.Error(codes.Unavailable, "quota store: connection refused")
	}

	if _, err := interceptor(context.Background(), nil, info, handler); status.Code(err) != codes.Unavailable {
		t.Fatalf("expected Unavailable, got %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "gRPC request failed") || !strings.Contains(out, `"level":"ERROR"`) {
		t.Fatalf("expected failed error log, got: %s", out)
	}
}
