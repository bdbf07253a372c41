package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"liftsim/src/config"
	"liftsim/src/console"
	"liftsim/src/executor"
	"liftsim/src/network"
	"liftsim/src/system"
	"liftsim/src/utils"
)

const sendTimeout = 5 * time.Second

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML config file")
	envPath := flag.String("env", ".env", "path to a dotenv file with LIFTSIM_* overrides")
	addr := flag.String("addr", "", "listen address, or the server to contact with -send")
	interactive := flag.Bool("interactive", false, "read single key commands from the terminal")
	send := flag.String("send", "", "send one command to a running server and exit, e.g. request:3,7")
	flag.Parse()

	cfg, warnings, err := config.Load(*configPath, *envPath)
	if err != nil {
		slog.Error("Invalid configuration", "err", err)
		os.Exit(1)
	}
	if *addr != "" {
		cfg.ListenAddr = *addr
	}

	logCloser, err := utils.InitLogger(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		slog.Error("Failed to set up logging", "err", err)
		os.Exit(1)
	}
	defer logCloser.Close()
	for _, w := range warnings {
		w.Log()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *send != "" {
		err = sendCommand(ctx, network.DialAddress(cfg.ListenAddr), *send)
	} else {
		err = serve(ctx, cfg, *interactive)
	}
	if err != nil {
		slog.Error("Exiting", "err", err)
		stop()
		logCloser.Close()
		os.Exit(1)
	}
}

func serve(ctx context.Context, cfg config.Config, interactive bool) error {
	slog.Info("Starting simulation",
		"name", cfg.Name,
		"elevators", cfg.ElevatorCount,
		"floors", cfg.FloorCount,
		"capacity", cfg.DefaultElevatorCapacity)

	sys, err := system.New(cfg.ElevatorCount, cfg.FloorCount, cfg.DefaultElevatorCapacity)
	if err != nil {
		return err
	}
	defer sys.Close()

	exec := executor.New(sys, cfg.TickInterval, cfg.RequestInterval)
	go exec.Run(ctx)

	if cfg.AutoStart {
		if err := exec.StartSimulation(); err != nil {
			return err
		}
		if err := exec.StartGenerator(); err != nil {
			return err
		}
	}

	srv, err := network.Listen(cfg.ListenAddr, exec)
	if err != nil {
		return err
	}
	defer srv.Close()
	go func() {
		if err := srv.Serve(ctx); err != nil {
			slog.Error("Server stopped", "err", err)
		}
	}()

	if interactive {
		return console.New(exec, os.Stdout).Run(ctx)
	}
	<-ctx.Done()
	slog.Info("Shutting down", "name", cfg.Name, "clients", srv.Clients())
	return nil
}

func sendCommand(ctx context.Context, addr, arg string) error {
	cmd, err := network.ParseCommand(arg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	client, err := network.Dial(ctx, addr)
	if err != nil {
		return err
	}
	defer client.Close()

	resp, err := client.Do(ctx, cmd)
	if err != nil {
		return err
	}
	out, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	if !resp.Success {
		return fmt.Errorf("%s failed: %s", cmd.Kind, resp.Message)
	}
	return nil
}
