// Package proto holds the UsersService wire definition. The Go bindings
// (users.pb.go, users_grpc.pb.go) are produced by go generate and are not
// edited by hand.
package proto

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative users.proto
