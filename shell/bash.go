package shell

import "fmt"

// GenerateBashIntegration returns a Bash script snippet that provides
// statusdeck shell integration. Source the output in ~/.bashrc.
func GenerateBashIntegration(cfg IntegrationConfig) string {
	script := fmt.Sprintf(`# statusdeck shell integration for Bash
# Source this in your ~/.bashrc or ~/.bash_profile

# Launch statusdeck TUI with Ctrl+P
_statusdeck_tui() {
    %[1]s -tui
}
bind -x '"%[2]s": _statusdeck_tui'

# One-shot status line sized to the current terminal
sd-line() {
    %[1]s -line -term-width "${COLUMNS:-80}"
}

# Status frame with detail box
sd-banner() {
    %[1]s -banner
}

# Launch TUI
sd-tui() {
    %[1]s -tui
}

# Side-by-side diff of two files, falling back to unified when narrow
sd-diff() {
    %[1]s -diff-old "$1" -diff-new "$2" -term-width "${COLUMNS:-80}"
}
`, cfg.BinaryPath, cfg.TUIKeybinding)

	if cfg.PromptHook {
		script += fmt.Sprintf(`
# Re-render the status line before each prompt so it tracks resizes
_statusdeck_prompt() {
    %[1]s -line -term-width "${COLUMNS:-80}"
}
PROMPT_COMMAND="_statusdeck_prompt${PROMPT_COMMAND:+; $PROMPT_COMMAND}"
`, cfg.BinaryPath)
	}

	return script
}
