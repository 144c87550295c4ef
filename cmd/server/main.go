package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/HLPFLCG/HLPFL-INC/auth"
	"github.com/HLPFLCG/HLPFL-INC/auth/sessions"
	"github.com/HLPFLCG/HLPFL-INC/blog"
	"github.com/HLPFLCG/HLPFL-INC/internal/config"
	"github.com/HLPFLCG/HLPFL-INC/server"
	"github.com/HLPFLCG/HLPFL-INC/store"
	"github.com/HLPFLCG/HLPFL-INC/token"
	"github.com/common-nighthawk/go-figure"
)

func main() {
	for {
		if err := run(); err != nil {
			log.Fatalf("Error running server: %s\n", err)
			time.Sleep(1 * time.Second)
		} else {
			break
		}
	}
	log.Printf("Server stopped\n")
}

func run() (returnError error) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Recovered from panic: %v\n", r)
			debug.PrintStack()
			returnError = errors.New("panic recovered")
		}
	}()

	c := config.New()
	displayAppname(c.GetAppName())

	siteServer, err := newSiteServer(c)
	if err != nil {
		return fmt.Errorf("newSiteServer: %w", err)
	}

	httpServer := &http.Server{Addr: c.GetPort(), Handler: siteServer}
	go listenAndServe(httpServer)
	waitForStopSignal()
	returnError = shutdown(httpServer)
	return returnError
}

func newSiteServer(c config.Config) (*server.Server, error) {
	authService, err := auth.NewService(
		sessions.NewInMemorySessionRepo(),
		auth.WithLoginDelay(c.GetLoginDelay()),
		auth.WithMaxSessionAge(c.GetMaxSessionAge()),
	)
	if err != nil {
		return nil, fmt.Errorf("auth.NewService: %w", err)
	}

	cookieManager, err := token.NewManager(c.GetSessionSigningKey(), c.GetMaxSessionAge())
	if err != nil {
		return nil, fmt.Errorf("token.NewManager: %w", err)
	}

	catalog, err := store.NewCatalog()
	if err != nil {
		return nil, fmt.Errorf("store.NewCatalog: %w", err)
	}

	posts, err := blog.NewLibrary()
	if err != nil {
		return nil, fmt.Errorf("blog.NewLibrary: %w", err)
	}

	return server.New(c, authService, cookieManager, catalog, posts, store.NewInMemoryCartRepo())
}

func listenAndServe(server *http.Server) error {
	log.Printf("Server listening on %s\n", server.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server.ListenAndServe %w", err)
	}
	return nil
}

func waitForStopSignal() {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
}

func shutdown(server *http.Server) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server.Shutdown: %w", err)
	}
	return nil
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
