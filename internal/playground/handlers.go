package playground

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/msto63/rubic/foundation/rubic"
	"github.com/msto63/rubic/foundation/rubic/ast"
	"github.com/msto63/rubic/foundation/rubic/parser"
	"github.com/msto63/rubic/foundation/rubic/token"
	"github.com/msto63/rubic/pkg/core/cache"
	"github.com/msto63/rubic/pkg/core/health"
	"github.com/msto63/rubic/pkg/core/version"
)

// SourceRequest is the body of the lex and parse endpoints
type SourceRequest struct {
	Source string `json:"source"`
}

// LexResponse lists the tokens of a source
type LexResponse struct {
	Tokens []token.Token `json:"tokens"`
}

// ParseResponse describes a parsed program
type ParseResponse struct {
	Program     []*ast.Snapshot     `json:"program"`
	Source      string              `json:"source"`
	Diagnostics []parser.Diagnostic `json:"diagnostics"`
	DurationMS  float64             `json:"duration_ms"`
	Cached      bool                `json:"cached"`
}

func newParseResponse(result *rubic.Result) ParseResponse {
	diags := result.Diagnostics
	if diags == nil {
		diags = []parser.Diagnostic{}
	}
	return ParseResponse{
		Program:     ast.Snapshots(result.Program),
		Source:      result.Program.String(),
		Diagnostics: diags,
		DurationMS:  float64(result.Duration.Microseconds()) / 1000,
	}
}

func (s *Server) handleHealth(c echo.Context) error {
	report := s.health.CheckWithTimeout(c.Request().Context(), HealthCheckTimeout)
	if report.Status != health.StatusHealthy {
		s.logger.Warn("Health check failed", "report", report.String())
	}
	return c.JSON(report.HTTPStatus(), report)
}

func (s *Server) handleVersion(c echo.Context) error {
	return c.JSON(http.StatusOK, version.Get())
}

func (s *Server) bindSource(c echo.Context) (string, error) {
	var req SourceRequest
	if err := c.Bind(&req); err != nil {
		return "", invalidInput("invalid request body: %v", err)
	}
	return req.Source, nil
}

func (s *Server) handleLex(c echo.Context) error {
	src, err := s.bindSource(c)
	if err != nil {
		return err
	}

	toks, err := s.engine.Tokenize(src)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, LexResponse{Tokens: toks})
}

func (s *Server) handleParse(c echo.Context) error {
	src, err := s.bindSource(c)
	if err != nil {
		return err
	}

	resp, cached, err := s.results.GetOrSet(cache.Key(src), func() (ParseResponse, error) {
		result, err := s.engine.Parse(src)
		if err != nil {
			return ParseResponse{}, err
		}
		return newParseResponse(result), nil
	})
	if err != nil {
		return err
	}
	resp.Cached = cached

	return c.JSON(http.StatusOK, resp)
}
