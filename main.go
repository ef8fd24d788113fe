package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/parley/internal/app"
	"github.com/llehouerou/parley/internal/config"
	"github.com/llehouerou/parley/internal/errmsg"
	"github.com/llehouerou/parley/internal/icons"
	"github.com/llehouerou/parley/internal/logging"
	"github.com/llehouerou/parley/internal/sidebar"
	"github.com/llehouerou/parley/internal/state"
	"github.com/llehouerou/parley/internal/stderr"
)

func main() {
	if err := run(); err != nil {
		stderr.WriteOriginal(err.Error() + "\n")
		os.Exit(1)
	}
}

type userError string

func (e userError) Error() string { return string(e) }

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return userError(errmsg.Format(errmsg.OpConfigLoad, err))
	}

	logCfg := cfg.GetLogConfig()
	logger, logFile, err := logging.Open(logCfg.File, logCfg.Level)
	if err != nil {
		return userError(errmsg.Format(errmsg.OpLogOpen, err))
	}
	defer closeQuietly(logFile)

	if err := stderr.Start(logger); err != nil {
		logger.Warn(errmsg.Format(errmsg.OpStderrRedirect, err))
	}
	defer stderr.Stop()

	icons.Init(cfg.Icons)

	stateMgr, err := state.Open(logger)
	if err != nil {
		logger.Error("open state", "error", err)
		return userError(errmsg.Format(errmsg.OpStateOpen, err))
	}
	defer func() {
		if err := stateMgr.Close(); err != nil {
			logger.Error("close state", "error", err)
		}
	}()

	m, err := app.New(cfg, stateMgr, logger, nil)
	if err != nil {
		logger.Error("initialize", "error", err)
		op := errmsg.OpInitialize
		if errors.Is(err, sidebar.ErrInvalidPolicy) {
			op = errmsg.OpPolicyCheck
		}
		return userError(errmsg.Format(op, err))
	}
	defer m.Close()

	logger.Info("starting", "sidebar_width", m.Prefs.Read().SidebarWidth, "sessions", m.Sessions.Len())

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		logger.Error("program exited", "error", err)
		return fmt.Errorf("parley: %w", err)
	}
	return nil
}

func closeQuietly(c io.Closer) {
	_ = c.Close()
}
