package cli

import (
	"encoding/json"
	"fmt"
)

type DebugCmd struct {
	DBPath *DebugDBPathCmd `cmd:"" help:"Show storage path."`
	Dump   *DebugDumpCmd   `cmd:"" help:"Dump the thing collection as JSON."`
}

type DebugDBPathCmd struct{}

func (cmd *DebugDBPathCmd) Run(ctx *Context) error {
	// Output in machine-readable format
	output := map[string]string{
		"path": ctx.Store.GetConfigPath(),
	}

	jsonBytes, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}

	fmt.Println(string(jsonBytes))
	return nil
}

type DebugDumpCmd struct{}

func (cmd *DebugDumpCmd) Run(ctx *Context) error {
	things, err := loadThings(ctx)
	if err != nil {
		return err
	}

	jsonBytes, err := json.MarshalIndent(things, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal things: %w", err)
	}

	fmt.Println(string(jsonBytes))
	return nil
}
