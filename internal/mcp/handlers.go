package mcp

import (
	"context"
	"errors"
	"fmt"
	"time"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/boardgov/govscore/internal/csvio"
	"github.com/boardgov/govscore/internal/report"
	"github.com/boardgov/govscore/internal/score"
	"github.com/boardgov/govscore/internal/session"
)

// --- Input/Output types ---

// RateInput defines parameters for the govscore_rate tool.
type RateInput struct {
	Code  string `json:"code" jsonschema:"action code, e.g. A1"`
	Level int    `json:"level" jsonschema:"maturity level 0-4"`
}

// RateOutput confirms the rating or explains the rejection.
type RateOutput struct {
	Code     string   `json:"code"`
	Level    int      `json:"level"`
	Notes    string   `json:"notes,omitempty"`
	FollowOn []string `json:"follow_on,omitempty"`
	Locked   bool     `json:"locked,omitempty"`
	Reason   string   `json:"reason,omitempty"`
}

// ClearInput defines parameters for the govscore_clear tool.
type ClearInput struct {
	Code string `json:"code" jsonschema:"action code to clear"`
}

// ClearOutput confirms the clear.
type ClearOutput struct {
	Code string `json:"code"`
}

// LockInput defines parameters for the govscore_lock tool.
type LockInput struct {
	Code string `json:"code" jsonschema:"action code to lock"`
}

// LockOutput confirms the lock state or explains the rejection.
type LockOutput struct {
	Code   string `json:"code"`
	Locked bool   `json:"locked"`
	Reason string `json:"reason,omitempty"`
}

// UnlockInput defines parameters for the govscore_unlock tool.
type UnlockInput struct {
	Code string `json:"code" jsonschema:"action code to unlock"`
}

// ResetInput is empty; reset takes no parameters.
type ResetInput struct{}

// ResetOutput confirms the reset.
type ResetOutput struct {
	Cleared bool `json:"cleared"`
}

// PrefillInput defines parameters for the govscore_prefill tool.
type PrefillInput struct {
	Level int `json:"level,omitempty" jsonschema:"baseline level, defaults to 1"`
}

// PrefillOutput reports how many actions are now rated.
type PrefillOutput struct {
	Rated int `json:"rated"`
}

// MetadataInput defines parameters for the govscore_metadata tool.
type MetadataInput struct {
	Organisation string `json:"organisation,omitempty" jsonschema:"organisation name"`
	Board        string `json:"board,omitempty" jsonschema:"board or committee name"`
	Date         string `json:"date,omitempty" jsonschema:"assessment date"`
	Sector       string `json:"sector,omitempty" jsonschema:"sector key, e.g. finance"`
}

// MetadataOutput echoes the effective metadata and the sector hint.
type MetadataOutput struct {
	Organisation string `json:"organisation"`
	Board        string `json:"board"`
	Date         string `json:"date,omitempty"`
	Sector       string `json:"sector"`
	SectorHint   string `json:"sector_hint,omitempty"`
}

// AdminInput defines parameters for the govscore_admin tool.
type AdminInput struct {
	Enabled bool `json:"enabled" jsonschema:"true to enable administrative mode"`
}

// AdminOutput confirms the mode.
type AdminOutput struct {
	Enabled bool `json:"enabled"`
}

// SummaryInput is empty; summary takes no parameters.
type SummaryInput struct{}

// SummaryOutput carries the full aggregation plus the recommendation text.
type SummaryOutput struct {
	Summary        *score.Summary `json:"summary"`
	Recommendation string         `json:"recommendation"`
	Completion     string         `json:"completion"`
}

// ReportInput is empty; report takes no parameters.
type ReportInput struct{}

// ReportOutput carries the board report and its text rendering.
type ReportOutput struct {
	Report *report.Report `json:"report"`
	Text   string         `json:"text"`
}

// ExportInput is empty; export takes no parameters.
type ExportInput struct{}

// ExportOutput carries the CSV and a suggested filename.
type ExportOutput struct {
	Filename string `json:"filename"`
	CSV      string `json:"csv"`
}

// ImportInput defines parameters for the govscore_import tool.
type ImportInput struct {
	CSV string `json:"csv" jsonschema:"assessment CSV content"`
}

// ImportOutput reports what the import applied.
type ImportOutput struct {
	Rated  int    `json:"rated"`
	Locked int    `json:"locked"`
	Reason string `json:"reason,omitempty"`
}

// --- Handlers ---

func (s *Server) handleRate(ctx context.Context, req *mcpsdk.CallToolRequest, input RateInput) (*mcpsdk.CallToolResult, RateOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.sess.Rate(input.Code, input.Level, s.admin)
	if err != nil {
		var locked *session.LockedError
		if errors.As(err, &locked) {
			out := RateOutput{
				Code:   input.Code,
				Locked: true,
				Reason: locked.Error(),
			}
			return &mcpsdk.CallToolResult{IsError: true}, out, nil
		}
		return nil, RateOutput{}, err
	}

	out := RateOutput{Code: input.Code, Level: input.Level}
	if act, _, ok := s.cat.FindAction(input.Code); ok {
		if lvl, ok := act.LevelFor(input.Level); ok {
			out.Notes = lvl.Notes
			out.FollowOn = lvl.FollowOn
		}
	}
	return nil, out, nil
}

func (s *Server) handleClear(ctx context.Context, req *mcpsdk.CallToolRequest, input ClearInput) (*mcpsdk.CallToolResult, ClearOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sess.Clear(input.Code)
	return nil, ClearOutput{Code: input.Code}, nil
}

func (s *Server) handleLock(ctx context.Context, req *mcpsdk.CallToolRequest, input LockInput) (*mcpsdk.CallToolResult, LockOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.sess.Lock(input.Code); err != nil {
		var ntl *session.NothingToLockError
		if errors.As(err, &ntl) {
			out := LockOutput{Code: input.Code, Reason: ntl.Error()}
			return &mcpsdk.CallToolResult{IsError: true}, out, nil
		}
		return nil, LockOutput{}, err
	}
	return nil, LockOutput{Code: input.Code, Locked: true}, nil
}

func (s *Server) handleUnlock(ctx context.Context, req *mcpsdk.CallToolRequest, input UnlockInput) (*mcpsdk.CallToolResult, LockOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sess.Unlock(input.Code)
	return nil, LockOutput{Code: input.Code, Locked: false}, nil
}

func (s *Server) handleReset(ctx context.Context, req *mcpsdk.CallToolRequest, input ResetInput) (*mcpsdk.CallToolResult, ResetOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sess.ResetAll()
	return nil, ResetOutput{Cleared: true}, nil
}

func (s *Server) handlePrefill(ctx context.Context, req *mcpsdk.CallToolRequest, input PrefillInput) (*mcpsdk.CallToolResult, PrefillOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	level := input.Level
	if level == 0 {
		level = 1
	}
	s.sess.PrefillMinimum(level)
	return nil, PrefillOutput{Rated: s.sess.RatedCount()}, nil
}

func (s *Server) handleMetadata(ctx context.Context, req *mcpsdk.CallToolRequest, input MetadataInput) (*mcpsdk.CallToolResult, MetadataOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	meta := s.sess.Metadata()
	if input.Organisation != "" {
		meta.Organisation = input.Organisation
	}
	if input.Board != "" {
		meta.Board = input.Board
	}
	if input.Date != "" {
		meta.Date = input.Date
	}
	if input.Sector != "" {
		meta.Sector = input.Sector
	}
	s.sess.SetMetadata(meta)

	return nil, MetadataOutput{
		Organisation: meta.DisplayOrganisation(),
		Board:        meta.DisplayBoard(),
		Date:         meta.Date,
		Sector:       meta.DisplaySector(),
		SectorHint:   s.cat.SectorHint(meta.Sector),
	}, nil
}

func (s *Server) handleAdmin(ctx context.Context, req *mcpsdk.CallToolRequest, input AdminInput) (*mcpsdk.CallToolResult, AdminOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.admin = input.Enabled
	return nil, AdminOutput{Enabled: s.admin}, nil
}

func (s *Server) handleSummary(ctx context.Context, req *mcpsdk.CallToolRequest, input SummaryInput) (*mcpsdk.CallToolResult, SummaryOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sum := score.Compute(s.cat, s.sess)
	meta := s.sess.Metadata()

	out := SummaryOutput{
		Summary:        sum,
		Recommendation: sum.Recommendation(meta.DisplayOrganisation(), meta.DisplayBoard(), s.cat.UI.NoRatingsMessage),
		Completion:     completionString(sum),
	}
	return nil, out, nil
}

func (s *Server) handleReport(ctx context.Context, req *mcpsdk.CallToolRequest, input ReportInput) (*mcpsdk.CallToolResult, ReportOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := report.Build(s.cat, s.sess)
	return nil, ReportOutput{Report: r, Text: report.FormatText(r)}, nil
}

func (s *Server) handleExport(ctx context.Context, req *mcpsdk.CallToolRequest, input ExportInput) (*mcpsdk.CallToolResult, ExportOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	meta := s.sess.Metadata()
	date := meta.Date
	if date == "" {
		date = now.Format("2006-01-02")
	}

	out := ExportOutput{
		Filename: csvio.SuggestFilename(meta.DisplayOrganisation(), date),
		CSV:      string(csvio.Export(s.cat, s.sess, now)),
	}
	return nil, out, nil
}

func (s *Server) handleImport(ctx context.Context, req *mcpsdk.CallToolRequest, input ImportInput) (*mcpsdk.CallToolResult, ImportOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := csvio.Import(s.cat, s.sess, []byte(input.CSV))
	if err != nil {
		var malformed *csvio.MalformedCSVError
		if errors.As(err, &malformed) {
			out := ImportOutput{Reason: malformed.Error()}
			return &mcpsdk.CallToolResult{IsError: true}, out, nil
		}
		return nil, ImportOutput{}, err
	}
	return nil, ImportOutput{Rated: result.Rated, Locked: result.Locked}, nil
}

func completionString(sum *score.Summary) string {
	return fmt.Sprintf("%d of %d actions rated", sum.Count, sum.TotalActions)
}
