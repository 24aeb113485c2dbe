package shell

import "fmt"

// GenerateNushellIntegration returns a Nushell script snippet that provides
// statusdeck commands and completions. Keybinding configuration is emitted
// as comments because Nushell keybindings must be defined statically in the
// user's config.nu and cannot be added dynamically via source.
func GenerateNushellIntegration(cfg IntegrationConfig) string {
	return fmt.Sprintf(`# statusdeck shell integration for Nushell

# Keybinding: Add the following block to $env.config.keybindings in your config.nu:
# {
#     name: statusdeck_tui
#     modifier: control
#     keycode: char_p
#     mode: [emacs vi_normal vi_insert]
#     event: {
#         send: executehostcommand
#         cmd: "%[1]s -tui"
#     }
# }

# One-shot status line sized to the current terminal
def sd-line [] {
    %[1]s -line -term-width (term size).columns
}

# Status frame with detail box
def sd-banner [] {
    %[1]s -banner
}

# Launch statusdeck TUI
def sd-tui [] {
    %[1]s -tui
}

# Side-by-side diff of two files
def sd-diff [old: path, new: path] {
    %[1]s -diff-old $old -diff-new $new -term-width (term size).columns
}

# Completions
def "nu-complete statusdeck diff-mode" [] {
    ["auto" "unified" "split" "inline"]
}

extern "%[1]s" [
    --line                                   # Print the composed status line
    --banner                                 # Print the status frame
    --tui                                    # Launch interactive TUI
    --diff-mode: string@"nu-complete statusdeck diff-mode"  # Diff layout
    --config: path                           # Config file path
    --version                                # Show version
    --verbose                                # Verbose logging
]
`, cfg.BinaryPath)
}
