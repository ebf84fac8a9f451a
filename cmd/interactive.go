package cmd

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"

	"algotest/pkg/registry"
)

const allSuitesChoice = "All suites"

// pickSuite prompts for a suite to run and returns its name as a filter,
// or an empty string when the whole registry should run. Cancelling the
// prompt (Ctrl+C) surfaces as an error so the run aborts cleanly.
func pickSuite(reg *registry.Registry) (string, error) {
	suites := reg.Suites()
	choices := make([]string, 0, len(suites)+1)
	choices = append(choices, allSuitesChoice)
	for _, s := range suites {
		choices = append(choices, fmt.Sprintf("%s (%s)", s.Name, s.Namespace))
	}

	var selected string
	prompt := &survey.Select{
		Message: "Which suite should run?",
		Options: choices,
	}
	if err := survey.AskOne(prompt, &selected); err != nil {
		return "", fmt.Errorf("suite selection aborted: %w", err)
	}
	if selected == allSuitesChoice {
		return "", nil
	}
	for _, s := range suites {
		if selected == fmt.Sprintf("%s (%s)", s.Name, s.Namespace) {
			return s.Name, nil
		}
	}
	return "", nil
}
