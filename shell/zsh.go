package shell

import "fmt"

// GenerateZshIntegration returns a Zsh script snippet that provides
// statusdeck shell integration. Source the output in ~/.zshrc.
func GenerateZshIntegration(cfg IntegrationConfig) string {
	script := fmt.Sprintf(`# statusdeck shell integration for Zsh
# Source this in your ~/.zshrc

# Launch statusdeck TUI with Ctrl+P
_statusdeck_tui() {
    BUFFER=""
    zle reset-prompt
    %[1]s -tui
    zle reset-prompt
}
zle -N _statusdeck_tui
bindkey '^P' _statusdeck_tui

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

# Zsh completion for statusdeck
_statusdeck_completion() {
    local -a commands
    commands=(
        '-line:Print the composed status line'
        '-banner:Print the status frame'
        '-tui:Launch interactive TUI'
        '-diff-old:Old file for diff rendering'
        '-diff-new:New file for diff rendering'
        '-config:Config file path'
        '-version:Show version'
        '-verbose:Verbose logging'
    )
    _describe 'statusdeck' commands
}
compdef _statusdeck_completion statusdeck
`, cfg.BinaryPath)

	if cfg.PromptHook {
		script += fmt.Sprintf(`
# Re-render the status line before each prompt so it tracks resizes
_statusdeck_precmd() {
    %[1]s -line -term-width "${COLUMNS:-80}"
}
precmd_functions+=(_statusdeck_precmd)
`, cfg.BinaryPath)
	}

	return script
}
