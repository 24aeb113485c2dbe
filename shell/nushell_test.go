package shell

import (
	"strings"
	"testing"
)

func TestGenerateNushellIntegration(t *testing.T) {
	cfg := DefaultIntegrationConfig()
	output := GenerateNushellIntegration(cfg)

	if !strings.Contains(output, "def sd-line") {
		t.Error("Nushell integration should define sd-line")
	}
	if !strings.Contains(output, "def sd-diff") {
		t.Error("Nushell integration should define sd-diff")
	}
	if !strings.Contains(output, `extern "statusdeck"`) {
		t.Error("Nushell integration should declare the extern for completions")
	}
	if !strings.Contains(output, "keybindings") {
		t.Error("Nushell integration should document the keybinding block")
	}
	if !strings.Contains(output, `"unified" "split" "inline"`) {
		t.Error("Nushell completions should list the diff modes")
	}
}

func TestGenerateNushellIntegration_CustomBinary(t *testing.T) {
	cfg := DefaultIntegrationConfig()
	cfg.BinaryPath = "sdk"
	output := GenerateNushellIntegration(cfg)

	if !strings.Contains(output, `extern "sdk"`) {
		t.Error("custom binary should appear in the extern declaration")
	}
	if strings.Contains(output, "statusdeck -tui") {
		t.Error("default binary name should not leak into custom output")
	}
}
