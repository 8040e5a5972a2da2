package ui

import (
	"strings"
	"testing"
)

func TestRenderMarksPlainWithoutColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	if got := RenderPass("✓"); got != "✓" {
		t.Errorf("RenderPass with NO_COLOR should be plain, got %q", got)
	}
	if got := RenderFail("✗"); got != "✗" {
		t.Errorf("RenderFail with NO_COLOR should be plain, got %q", got)
	}
}

func TestRenderMarksKeepText(t *testing.T) {
	t.Setenv("CLICOLOR_FORCE", "1")

	if got := RenderPass("✓"); !strings.Contains(got, "✓") {
		t.Errorf("RenderPass should keep the mark, got %q", got)
	}
	if got := RenderFail("✗"); !strings.Contains(got, "✗") {
		t.Errorf("RenderFail should keep the mark, got %q", got)
	}
}
