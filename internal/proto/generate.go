// Package proto holds the generated recmarket.v1 gRPC contract. Sources live
// in api/proto.
package proto

//go:generate protoc -I ../../api/proto --go_out=../.. --go_opt=module=github.com/dmitrijs2005/recmarket --go-grpc_out=../.. --go-grpc_opt=module=github.com/dmitrijs2005/recmarket recmarket/v1/registry.proto
