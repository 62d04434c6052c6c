package cmd

import "testing"

func TestDisableColors(t *testing.T) {
	orig := []string{colorRed, colorYellow, colorCyan, colorDim, colorBold, colorReset}
	t.Cleanup(func() {
		colorRed, colorYellow, colorCyan = orig[0], orig[1], orig[2]
		colorDim, colorBold, colorReset = orig[3], orig[4], orig[5]
	})

	disableColors()
	if colorRed != "" || colorReset != "" || colorCyan != "" {
		t.Error("disableColors should clear all color codes")
	}
}

func TestShouldDisableColors_NoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	if !shouldDisableColors() {
		t.Error("shouldDisableColors should return true when NO_COLOR is set")
	}
}

func TestShouldDisableColors_TermDumb(t *testing.T) {
	t.Setenv("TERM", "dumb")
	t.Setenv("NO_COLOR", "")
	if !shouldDisableColors() {
		t.Error("shouldDisableColors should return true when TERM=dumb")
	}
}
