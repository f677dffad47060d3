package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	httpadapter "svw.info/sudoku-master/internal/adapters/http"
	"svw.info/sudoku-master/internal/game"
	"svw.info/sudoku-master/internal/generator"
	"svw.info/sudoku-master/internal/hint"
	"svw.info/sudoku-master/internal/infrastructure/storage"
	"svw.info/sudoku-master/internal/solver"
	"svw.info/sudoku-master/internal/usecase"
)

var (
	serveAddr string
	dataPath  string
)

var commandServe = &cobra.Command{
	Use:   "serve",
	Short: "Run the game server",
	RunE:  runServe,
}

func init() {
	commandServe.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")
	commandServe.Flags().StringVar(&dataPath, "data", "./sudoku.db", "database file path")
	mainCommand.AddCommand(commandServe)
}

func runServe(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(dataPath)
	if err != nil {
		return err
	}
	defer store.Close()

	// Wire engine → use cases → HTTP adapter.
	s := solver.NewBacktrackingSolver()
	hinter := hint.New(s)
	uc := usecase.NewService(s, generator.New(s), hinter, store, game.NewManager(hinter))
	uc.GeneratorUnique = generator.New(s, generator.RequireUnique())
	h := httpadapter.New(uc, logger)

	srv := &http.Server{
		Addr:              serveAddr,
		Handler:           h.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()
	logger.Info("listening", zap.String("addr", serveAddr), zap.String("data", dataPath))

	osSignals := make(chan os.Signal, 1)
	signal.Notify(osSignals, os.Interrupt, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return err
	case sig := <-osSignals:
		logger.Info("shutting down", zap.Stringer("signal", sig))
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}
