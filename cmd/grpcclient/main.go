// Package main implements very simple grpc client that can be used for testing ghroster grpc server.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"

	appGrpc "github.com/m-zajac/ghroster/internal/api/grpc"
	"google.golang.org/grpc"
)

var (
	serverAddr = flag.String("s", "localhost:9090", "The server address in the format of host:port")
	repository = flag.String("r", "octocat/Hello-World", "Repository in owner/repo form or a github url")
	token      = flag.String("t", "", "Github personal access token")
)

func main() {
	flag.Parse()

	conn, err := grpc.Dial(*serverAddr, grpc.WithInsecure())
	if err != nil {
		log.Fatalf("failed to dial: %v", err)
	}
	defer conn.Close()
	client := appGrpc.NewServiceClient(conn)

	req := appGrpc.RosterRequest{
		Repository: *repository,
		Token:      *token,
	}
	resp, err := client.ContributorRoster(context.Background(), &req)
	if err != nil {
		log.Fatalf("server response error: %v", err)
	}

	fmt.Print("   Commits | Role         | Login\n")
	fmt.Print("---------------------------------------\n")
	for _, c := range resp.Contributors {
		fmt.Printf("%10d | %-12s | %s\n", c.Commits, c.Role.GetName(), c.Login)
		for _, r := range c.ExternalRepos {
			fmt.Printf("%10s | also %s on %s\n", "", r.Role, r.FullName)
		}
		if len(c.Emails) > 0 {
			fmt.Printf("%10s | email: %s\n", "", strings.Join(c.Emails, ", "))
		}
	}
}
