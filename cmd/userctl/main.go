// Command userctl is an operator tool for bootstrapping accounts. The
// identity service guards every RPC with a bearer token, so a fresh
// deployment has no way to create its first user over the API; userctl
// signs a short-lived token with the shared secret and calls Create
// directly.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"golang.org/x/term"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/protobuf/proto"

	"github.com/avoronov/usersvc/internal/common"
	pb "github.com/avoronov/usersvc/internal/proto"
	"github.com/avoronov/usersvc/internal/server/auth"
)

func main() {

	addr := flag.String("addr", "127.0.0.1:50051", "server gRPC address")
	secret := flag.String("secret", "", "shared JWT HMAC secret")
	username := flag.String("username", "", "username for the new account")
	email := flag.String("email", "", "email for the new account")
	firstName := flag.String("first", "", "first name (optional)")
	lastName := flag.String("last", "", "last name (optional)")
	validity := flag.Int("t", 5, "token validity in minutes")
	flag.Parse()

	if *secret == "" || *username == "" || *email == "" {
		fmt.Fprintln(os.Stderr, "usage: userctl -secret <key> -username <name> -email <addr> [-first ...] [-last ...]")
		os.Exit(2)
	}

	fmt.Println("Enter password")
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
	defer common.WipeByteArray(password)

	if err := run(*addr, *secret, *username, *email, *firstName, *lastName, string(password), *validity); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func run(addr, secret, username, email, firstName, lastName, password string, validityMinutes int) error {

	token, err := auth.GenerateToken("userctl", []string{"ADMIN"}, []byte(secret), time.Duration(validityMinutes)*time.Minute)
	if err != nil {
		return fmt.Errorf("token error: %w", err)
	}

	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return fmt.Errorf("connection error: %w", err)
	}
	defer conn.Close()

	client := pb.NewUsersServiceClient(conn)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	ctx = metadata.AppendToOutgoingContext(ctx, common.AuthorizationHeaderName, common.BearerPrefix+token)

	req := &pb.CreateUserRequest{
		Username: username,
		Email:    email,
		Password: password,
	}
	if firstName != "" {
		req.FirstName = proto.String(firstName)
	}
	if lastName != "" {
		req.LastName = proto.String(lastName)
	}

	user, err := client.Create(ctx, req)
	if err != nil {
		return fmt.Errorf("create error: %w", err)
	}

	fmt.Printf("Created user %s (%s)\n", user.Username, user.Id)
	return nil
}
