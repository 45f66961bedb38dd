package prompt

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"github.com/xtding233/gacha-sim/internal/config"
)

// Ask fills o from interactive prompts. An empty answer keeps the default
// shown in brackets.
func Ask(defaults *config.Params, o *config.Overrides) error {
	target, err := askInt(fmt.Sprintf("How many featured copies do you want to find? [%d]", defaults.Target), defaults.Target)
	if err != nil {
		return fmt.Errorf("target: %w", err)
	}
	o.Target = &target

	trials, err := askInt(fmt.Sprintf("How many trials would you like to run? [%d]", defaults.Trials), defaults.Trials)
	if err != nil {
		return fmt.Errorf("trials: %w", err)
	}
	o.Trials = &trials

	tenDraw, err := pterm.DefaultInteractiveConfirm.
		WithDefaultValue(defaults.TenDraw).
		Show("Use 10-draws?")
	if err != nil {
		return err
	}
	o.TenDraw = &tenDraw

	options := make([]string, len(config.Modes))
	for i, m := range config.Modes {
		options[i] = string(m)
	}
	mode, err := pterm.DefaultInteractiveSelect.
		WithOptions(options).
		WithDefaultOption(string(config.ModeExpectation)).
		Show("Mode")
	if err != nil {
		return err
	}
	o.Mode = &mode
	return nil
}

func askInt(text string, def int) (int, error) {
	s, err := pterm.DefaultInteractiveTextInput.Show(text)
	if err != nil {
		return 0, err
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return def, nil
	}
	return strconv.Atoi(s)
}
