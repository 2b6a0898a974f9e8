package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/aretw0/staticfmt/pkg/alphabet"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func callRequest(name string, args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, res)
	require.Len(t, res.Content, 1)
	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content, got %T", res.Content[0])
	return text.Text
}

func TestWordType(t *testing.T) {
	s := NewServer()
	ctx := context.Background()

	res, err := s.handleWordType(ctx, callRequest("word_type", map[string]any{"text": "Word"}))
	require.NoError(t, err)
	assert.False(t, res.IsError)
	assert.Equal(t, "ascii.W[ascii.LowerO[ascii.LowerR[ascii.LowerD[staticfmt.Nil]]]]", resultText(t, res))

	res, err = s.handleWordType(ctx, callRequest("word_type", map[string]any{"text": "ok", "name": "Ok"}))
	require.NoError(t, err)
	assert.Equal(t, "type Ok = ascii.LowerO[ascii.LowerK[staticfmt.Nil]]", resultText(t, res))
}

func TestWordType_Errors(t *testing.T) {
	s := NewServer()
	ctx := context.Background()

	res, err := s.handleWordType(ctx, callRequest("word_type", map[string]any{}))
	require.NoError(t, err)
	assert.True(t, res.IsError)

	res, err = s.handleWordType(ctx, callRequest("word_type", map[string]any{"text": "€"}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), "unknown rune")
}

func TestLookup(t *testing.T) {
	s := NewServer()

	resp, err := s.lookup("LineFeed", "")
	require.NoError(t, err)
	assert.Equal(t, "ascii", resp.Alphabet)
	assert.Equal(t, "Nl", resp.Entry.Name)
	assert.Equal(t, "\n", resp.Char)

	resp, err = s.lookup("", "╬")
	require.NoError(t, err)
	assert.Equal(t, "extended", resp.Alphabet)
	assert.Equal(t, "DoubleCross", resp.Entry.Name)

	_, err = s.lookup("", "")
	assert.Error(t, err)
	_, err = s.lookup("W", "W")
	assert.Error(t, err)
	_, err = s.lookup("", "ab")
	assert.Error(t, err)
	_, err = s.lookup("Nope", "")
	assert.ErrorIs(t, err, errNotFound)
}

func TestLookup_Handler(t *testing.T) {
	s := NewServer(WithAlphabets(alphabet.ASCII()))

	res, err := s.handleLookup(context.Background(), callRequest("lookup_char", map[string]any{"char": "W"}))
	require.NoError(t, err)
	require.False(t, res.IsError)

	var resp LookupResponse
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &resp))
	assert.Equal(t, "W", resp.Entry.Name)
	assert.Equal(t, 'W', resp.Entry.Code)
	assert.Equal(t, "github.com/aretw0/staticfmt/pkg/ascii", resp.Import)

	// Extended characters are not served by an ASCII-only server.
	res, err = s.handleLookup(context.Background(), callRequest("lookup_char", map[string]any{"char": "Ç"}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
}
