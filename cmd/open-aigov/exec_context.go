package main

import (
	"sync"

	"github.com/open-sspm/open-aigov/internal/logging"
	"github.com/spf13/cobra"
)

// structuredLogAnnotation marks commands whose output is structured logs
// rather than text meant for a terminal.
const structuredLogAnnotation = "open-aigov/structured-log"

type commandExecutionContext struct {
	CommandPath       string
	UsesStructuredLog bool
}

var (
	execContextMu sync.RWMutex
	execContext   commandExecutionContext
)

func setCommandExecutionContext(ctx commandExecutionContext) {
	execContextMu.Lock()
	defer execContextMu.Unlock()
	execContext = ctx
}

func resetCommandExecutionContext() {
	setCommandExecutionContext(commandExecutionContext{})
}

func currentCommandExecutionContext() commandExecutionContext {
	execContextMu.RLock()
	defer execContextMu.RUnlock()
	return execContext
}

func structuredLog(cmd *cobra.Command) *cobra.Command {
	if cmd.Annotations == nil {
		cmd.Annotations = map[string]string{}
	}
	cmd.Annotations[structuredLogAnnotation] = "true"
	return cmd
}

func commandUsesStructuredLogging(cmd *cobra.Command) bool {
	return cmd != nil && cmd.Annotations[structuredLogAnnotation] == "true"
}

// prepareCommand records which command is running and installs the default
// slog logger for structured commands.
func prepareCommand(cmd *cobra.Command, _ []string) error {
	ctx := commandExecutionContext{
		CommandPath:       cmd.CommandPath(),
		UsesStructuredLog: commandUsesStructuredLogging(cmd),
	}
	setCommandExecutionContext(ctx)
	if !ctx.UsesStructuredLog {
		return nil
	}
	_, err := logging.BootstrapFromEnv(logging.BootstrapOptions{Command: ctx.CommandPath, Writer: cmd.ErrOrStderr()})
	return err
}
