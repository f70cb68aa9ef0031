// Package mcp exposes the timer over the Model Context Protocol so
// agents can drive focus sessions via stdio.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/tbreslin/cadence/internal/domain"
	"github.com/tbreslin/cadence/internal/engine"
	"github.com/tbreslin/cadence/internal/ports"
)

// Server implements the MCP server using mark3labs/mcp-go. It owns the
// headless tick driver: one ticker goroutine advances the engine once
// per second, and a mutex serializes it against tool handlers.
type Server struct {
	server *server.MCPServer
	eng    *engine.Engine
	log    ports.SessionLog
	mu     sync.Mutex
	cancel context.CancelFunc
}

// NewServer creates a new MCP server around an engine. log may be nil
// when no journal is configured.
func NewServer(eng *engine.Engine, log ports.SessionLog) *Server {
	s := &Server{
		eng: eng,
		log: log,
	}

	s.server = server.NewMCPServer(
		"cadence-timer",
		"1.0.0",
		server.WithLogging(),
	)

	s.registerTools()

	return s
}

// registerTools registers all available MCP tools.
func (s *Server) registerTools() {
	s.server.AddTool(
		mcp.NewTool(
			"timer_status",
			mcp.WithDescription("Get the current timer state: mode, remaining time, running flag, pattern, step index, and counters"),
		),
		s.handleStatus,
	)

	s.server.AddTool(
		mcp.NewTool(
			"timer_start",
			mcp.WithDescription("Start or resume the countdown"),
		),
		s.handleStart,
	)

	s.server.AddTool(
		mcp.NewTool(
			"timer_pause",
			mcp.WithDescription("Pause the countdown"),
		),
		s.handlePause,
	)

	s.server.AddTool(
		mcp.NewTool(
			"timer_reset",
			mcp.WithDescription("Stop the timer and restore the full countdown for the current mode"),
		),
		s.handleReset,
	)

	selectTool := mcp.NewTool(
		"select_mode",
		mcp.WithDescription("Switch to a session mode manually; resets the countdown and pauses"),
		mcp.WithString(
			"mode",
			mcp.Required(),
			mcp.Description("The session mode to switch to"),
			mcp.Enum("focus", "short_break", "long_break"),
		),
	)
	s.server.AddTool(selectTool, s.handleSelectMode)

	patternTool := mcp.NewTool(
		"set_pattern",
		mcp.WithDescription("Replace the session pattern from comma-separated tokens (focus, short, long); unrecognized tokens are dropped"),
		mcp.WithString(
			"pattern",
			mcp.Required(),
			mcp.Description("Comma-separated session tokens, e.g. \"focus, short, focus, long\""),
		),
	)
	s.server.AddTool(patternTool, s.handleSetPattern)

	durationTool := mcp.NewTool(
		"set_duration",
		mcp.WithDescription("Set the minute length of one session mode; invalid input coerces to 0"),
		mcp.WithString(
			"mode",
			mcp.Required(),
			mcp.Description("The session mode to configure"),
			mcp.Enum("focus", "short_break", "long_break"),
		),
		mcp.WithString(
			"minutes",
			mcp.Required(),
			mcp.Description("Minute length as text"),
		),
	)
	s.server.AddTool(durationTool, s.handleSetDuration)

	s.server.AddTool(
		mcp.NewTool(
			"daily_stats",
			mcp.WithDescription("Get today's completed focus sessions, breaks, cycles, and total focus time from the journal"),
		),
		s.handleDailyStats,
	)
}

// Start launches the tick driver and serves MCP requests via stdio
// until ctx is cancelled or stdin closes.
func (s *Server) Start(ctx context.Context) error {
	ctx, s.cancel = context.WithCancel(ctx)
	defer s.cancel()

	go s.runTicker(ctx)

	return server.ServeStdio(s.server)
}

// Stop shuts down the tick driver.
func (s *Server) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
}

// runTicker advances the engine once per elapsed second. It is the only
// tick source for the headless server.
func (s *Server) runTicker(ctx context.Context) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.mu.Lock()
			s.eng.Tick()
			s.mu.Unlock()
		}
	}
}

// statusJSON renders the locked engine state.
func (s *Server) statusJSON() (string, error) {
	counters := s.eng.Counters()
	pattern := s.eng.Pattern()
	tokens := make([]string, len(pattern))
	for i, t := range pattern {
		tokens[i] = string(t)
	}

	result := map[string]interface{}{
		"mode":              string(s.eng.Mode()),
		"remaining_seconds": s.eng.Remaining(),
		"remaining":         domain.FormatTime(s.eng.Remaining()),
		"running":           s.eng.Running(),
		"step_index":        s.eng.StepIndex(),
		"pattern":           tokens,
		"focus_sessions":    counters.FocusSessionsCompleted,
		"cycles":            counters.CyclesCompleted,
	}

	jsonData, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal status: %w", err)
	}
	return string(jsonData), nil
}

// status responds with the current state after a mutation.
func (s *Server) status() (*mcp.CallToolResult, error) {
	text, err := s.statusJSON()
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(text), nil
}

// handleStatus handles the timer_status tool.
func (s *Server) handleStatus(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status()
}

// handleStart handles the timer_start tool.
func (s *Server) handleStart(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.eng.Start()
	return s.status()
}

// handlePause handles the timer_pause tool.
func (s *Server) handlePause(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.eng.Pause()
	return s.status()
}

// handleReset handles the timer_reset tool.
func (s *Server) handleReset(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.eng.Reset()
	return s.status()
}

// handleSelectMode handles the select_mode tool.
func (s *Server) handleSelectMode(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	modeStr, err := request.RequireString("mode")
	if err != nil {
		return mcp.NewToolResultError("mode is required: " + err.Error()), nil
	}

	mode := domain.SessionType(modeStr)
	switch mode {
	case domain.SessionTypeFocus, domain.SessionTypeShortBreak, domain.SessionTypeLongBreak:
	default:
		return mcp.NewToolResultError(fmt.Sprintf("unknown mode %q", modeStr)), nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.eng.SelectMode(mode)
	return s.status()
}

// handleSetPattern handles the set_pattern tool.
func (s *Server) handleSetPattern(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := request.RequireString("pattern")
	if err != nil {
		return mcp.NewToolResultError("pattern is required: " + err.Error()), nil
	}

	pattern, err := domain.ParsePattern(text)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.eng.ReplacePattern(pattern)
	return s.status()
}

// handleSetDuration handles the set_duration tool.
func (s *Server) handleSetDuration(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	modeStr, err := request.RequireString("mode")
	if err != nil {
		return mcp.NewToolResultError("mode is required: " + err.Error()), nil
	}
	minutes, err := request.RequireString("minutes")
	if err != nil {
		return mcp.NewToolResultError("minutes is required: " + err.Error()), nil
	}

	mode := domain.SessionType(modeStr)
	switch mode {
	case domain.SessionTypeFocus, domain.SessionTypeShortBreak, domain.SessionTypeLongBreak:
	default:
		return mcp.NewToolResultError(fmt.Sprintf("unknown mode %q", modeStr)), nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.eng.SetDuration(mode, minutes)
	return s.status()
}

// handleDailyStats handles the daily_stats tool.
func (s *Server) handleDailyStats(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if s.log == nil {
		return mcp.NewToolResultError("no session journal configured"), nil
	}

	stats, err := s.log.DailyStats(ctx, time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to get daily stats: %w", err)
	}

	result := map[string]interface{}{
		"date":           stats.Date.Format("2006-01-02"),
		"focus_sessions": stats.FocusSessions,
		"breaks_taken":   stats.BreaksTaken,
		"cycles":         stats.CyclesCompleted,
		"focus_time":     stats.FocusTime.String(),
	}

	jsonData, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal stats: %w", err)
	}

	return mcp.NewToolResultText(string(jsonData)), nil
}
