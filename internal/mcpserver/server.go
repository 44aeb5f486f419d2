// Package mcpserver exposes the cipher machine over the Model Context
// Protocol so editor agents can encipher messages and inspect the rotor
// catalog without shelling out.
package mcpserver

import (
	"context"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"enigma/internal/config"
	"enigma/internal/display"
	"enigma/internal/machine"
	"enigma/internal/permutation"
)

// Server wraps the MCP SDK server around one machine definition. Every
// encipher call builds a fresh machine, so concurrent tool calls never share
// rotor state.
type Server struct {
	MCPServer *sdkmcp.Server
	def       config.Definition
}

// NewServer creates an MCP server for the given machine definition.
func NewServer(def config.Definition) *Server {
	s := &Server{def: def}
	s.MCPServer = sdkmcp.NewServer(
		&sdkmcp.Implementation{Name: "enigma", Version: "dev"},
		nil,
	)
	s.registerTools()
	return s
}

// Run serves MCP over stdio until ctx is canceled.
func (s *Server) Run(ctx context.Context) error {
	return s.MCPServer.Run(ctx, &sdkmcp.StdioTransport{})
}

func (s *Server) registerTools() {
	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "encipher",
		Description: "Encipher (or decipher) a message with the configured rotor machine. Whitespace is stripped; the same settings decode what they encoded.",
	}, s.handleEncipher)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "list_rotors",
		Description: "List the rotor catalog of the loaded machine definition: names, kinds, notches and wiring cycles.",
	}, s.handleListRotors)
}

type encipherInput struct {
	Rotors    []string `json:"rotors" jsonschema:"rotor names in slot order, reflector first"`
	Setting   string   `json:"setting,omitempty" jsonschema:"initial rotor positions, one symbol per non-reflector slot"`
	Plugboard string   `json:"plugboard,omitempty" jsonschema:"plugboard cycles, e.g. (YF) (ZH)"`
	Message   string   `json:"message" jsonschema:"text to convert; whitespace is ignored"`
	Group     int      `json:"group,omitempty" jsonschema:"output group width (default 5, 0 = ungrouped)"`
}

type encipherOutput struct {
	Ciphertext string `json:"ciphertext"`
	Grouped    string `json:"grouped"`
}

type listRotorsInput struct{}

type listRotorsOutput struct {
	Alphabet string            `json:"alphabet"`
	Rotors   int               `json:"rotors"`
	Pawls    int               `json:"pawls"`
	Catalog  []config.RotorDef `json:"catalog"`
}

func (s *Server) handleEncipher(ctx context.Context, _ *sdkmcp.CallToolRequest, input encipherInput) (*sdkmcp.CallToolResult, encipherOutput, error) {
	m, err := s.configure(input)
	if err != nil {
		return nil, encipherOutput{}, err
	}
	cipher, err := m.ConvertMessage(input.Message)
	if err != nil {
		return nil, encipherOutput{}, fmt.Errorf("convert: %w", err)
	}
	group := input.Group
	if group == 0 {
		group = display.DefaultGroup
	}
	return nil, encipherOutput{
		Ciphertext: cipher,
		Grouped:    display.GroupLetters(cipher, group),
	}, nil
}

func (s *Server) handleListRotors(ctx context.Context, _ *sdkmcp.CallToolRequest, _ listRotorsInput) (*sdkmcp.CallToolResult, listRotorsOutput, error) {
	return nil, listRotorsOutput{
		Alphabet: s.def.Alphabet,
		Rotors:   s.def.Rotors,
		Pawls:    s.def.Pawls,
		Catalog:  s.def.Catalog,
	}, nil
}

func (s *Server) configure(input encipherInput) (*machine.Machine, error) {
	m, err := s.def.Build()
	if err != nil {
		return nil, fmt.Errorf("build machine: %w", err)
	}
	if err := m.InsertRotors(input.Rotors); err != nil {
		return nil, err
	}
	if err := m.SetRotors(input.Setting); err != nil {
		return nil, err
	}
	if input.Plugboard != "" {
		p, err := permutation.New(input.Plugboard, m.Alphabet())
		if err != nil {
			return nil, fmt.Errorf("plugboard: %w", err)
		}
		m.SetPlugboard(p)
	}
	return m, nil
}
