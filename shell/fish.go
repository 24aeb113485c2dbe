package shell

import "fmt"

// GenerateFishIntegration returns a Fish shell script snippet that provides
// statusdeck keybindings, helper functions, and tab completions.
func GenerateFishIntegration(cfg IntegrationConfig) string {
	script := fmt.Sprintf(`# statusdeck shell integration for Fish

# Launch statusdeck TUI with %[2]s
function _statusdeck_tui
    commandline -f repaint
    %[1]s -tui
    commandline -f repaint
end
bind \cp _statusdeck_tui

# One-shot status line sized to the current terminal
function sd-line -d "Print the statusdeck status line"
    %[1]s -line -term-width "$COLUMNS"
end

# Status frame with detail box
function sd-banner -d "Print the statusdeck frame"
    %[1]s -banner
end

# Launch statusdeck TUI
function sd-tui -d "Launch statusdeck TUI"
    %[1]s -tui
end

# Side-by-side diff of two files
function sd-diff -d "Render a responsive diff of two files"
    %[1]s -diff-old $argv[1] -diff-new $argv[2] -term-width "$COLUMNS"
end

# Completions
complete -c %[1]s -o line -d "Print the composed status line"
complete -c %[1]s -o banner -d "Print the status frame"
complete -c %[1]s -o tui -d "Launch interactive TUI"
complete -c %[1]s -o diff-old -d "Old file for diff rendering" -rF
complete -c %[1]s -o diff-new -d "New file for diff rendering" -rF
complete -c %[1]s -o config -d "Config file path" -rF
complete -c %[1]s -o version -d "Show version"
complete -c %[1]s -o verbose -d "Verbose logging"
`, cfg.BinaryPath, cfg.TUIKeybinding)

	if cfg.PromptHook {
		script += fmt.Sprintf(`
# Re-render the status line before each prompt so it tracks resizes
function _statusdeck_prompt --on-event fish_prompt
    %[1]s -line -term-width "$COLUMNS"
end
`, cfg.BinaryPath)
	}

	return script
}
