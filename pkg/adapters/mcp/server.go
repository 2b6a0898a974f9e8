package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"unicode/utf8"

	"github.com/aretw0/staticfmt"
	"github.com/aretw0/staticfmt/internal/logging"
	"github.com/aretw0/staticfmt/pkg/alphabet"
	"github.com/aretw0/staticfmt/pkg/wordgen"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// LookupResponse is the payload of the lookup_char tool.
type LookupResponse struct {
	Alphabet string         `json:"alphabet"`
	Import   string         `json:"import"`
	Entry    alphabet.Entry `json:"entry"`
	Char     string         `json:"char"`
}

// Server exposes the word generator and the alphabet tables as an MCP server.
type Server struct {
	alphabets []*alphabet.Alphabet
	generator *wordgen.Generator
	logger    *slog.Logger
	mcpServer *server.MCPServer
}

// Option configures a Server.
type Option func(*Server)

// WithAlphabets sets the tables served and used for generation.
func WithAlphabets(alphabets ...*alphabet.Alphabet) Option {
	return func(s *Server) {
		s.alphabets = alphabets
	}
}

// WithLogger sets a structured logger for the server.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewServer creates a new MCP Server instance.
func NewServer(opts ...Option) *Server {
	s := &Server{
		logger:    logging.NewNop(),
		mcpServer: server.NewMCPServer("staticfmt-mcp", staticfmt.Version),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.alphabets == nil {
		s.alphabets = []*alphabet.Alphabet{alphabet.ASCII(), alphabet.Extended()}
	}
	s.generator = wordgen.New(wordgen.WithAlphabets(s.alphabets...), wordgen.WithLogger(s.logger))

	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	// TOOL: word_type
	wordTool := mcp.NewTool("word_type",
		mcp.WithDescription("Expand a string literal into the nested staticfmt type that renders it. With a name, returns a type alias declaration."),
		mcp.WithString("text", mcp.Required(), mcp.Description("The literal to encode")),
		mcp.WithString("name", mcp.Description("Identifier for a type alias declaration (optional)")),
	)
	s.mcpServer.AddTool(wordTool, s.handleWordType)

	// TOOL: lookup_char
	lookupTool := mcp.NewTool("lookup_char",
		mcp.WithDescription("Find a named character by binding name or by the character itself."),
		mcp.WithString("name", mcp.Description("Binding name or alias, e.g. Nl or LineFeed")),
		mcp.WithString("char", mcp.Description("A single character, e.g. \"W\"")),
	)
	s.mcpServer.AddTool(lookupTool, s.handleLookup)
}

func (s *Server) handleWordType(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := request.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	name := request.GetString("name", "")

	var out string
	if name != "" {
		out, err = s.generator.Decl(name, text)
	} else {
		out, err = s.generator.TypeExpr(text)
	}
	if err != nil {
		s.logger.Warn("MCP word_type: rejected", "error", err)
		return mcp.NewToolResultError(fmt.Sprintf("word_type failed: %v", err)), nil
	}
	return mcp.NewToolResultText(out), nil
}

func (s *Server) handleLookup(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	resp, err := s.lookup(request.GetString("name", ""), request.GetString("char", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	jsonBytes, err := json.Marshal(resp)
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(string(jsonBytes)), nil
}

var errNotFound = errors.New("no such character")

func (s *Server) lookup(name, char string) (LookupResponse, error) {
	if (name == "") == (char == "") {
		return LookupResponse{}, errors.New("exactly one of name or char is required")
	}

	var r rune
	if char != "" {
		if utf8.RuneCountInString(char) != 1 {
			return LookupResponse{}, fmt.Errorf("char must be a single character, got %q", char)
		}
		r, _ = utf8.DecodeRuneInString(char)
	}

	for _, a := range s.alphabets {
		var (
			e  alphabet.Entry
			ok bool
		)
		if name != "" {
			e, ok = a.Lookup(name)
		} else {
			e, ok = a.ForRune(r)
		}
		if ok {
			return LookupResponse{Alphabet: a.Name, Import: a.Import, Entry: e, Char: string(e.Code)}, nil
		}
	}
	return LookupResponse{}, fmt.Errorf("%w: name=%q char=%q", errNotFound, name, char)
}

func (s *Server) registerResources() {
	// EXPOSE: staticfmt://alphabet/<name>
	for _, a := range s.alphabets {
		uri := "staticfmt://alphabet/" + a.Name
		s.mcpServer.AddResource(mcp.NewResource(uri, "Alphabet "+a.Name,
			mcp.WithMIMEType("application/json"),
		), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
			jsonBytes, err := json.Marshal(a.Entries())
			if err != nil {
				return nil, fmt.Errorf("failed to encode alphabet: %w", err)
			}
			return []mcp.ResourceContents{
				mcp.TextResourceContents{
					URI:      uri,
					MIMEType: "application/json",
					Text:     string(jsonBytes),
				},
			}, nil
		})
	}
}
