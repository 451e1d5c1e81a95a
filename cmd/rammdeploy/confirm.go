package main

import (
	"errors"

	"github.com/charmbracelet/huh"
)

// confirmDeployment asks the operator to confirm the rendered deployment
// config before any network call is made. Aborting the prompt counts as a
// rejection, not an error.
func confirmDeployment() (bool, error) {
	var ok bool
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title("Deploy the RAMM with the configuration above?").
			Affirmative("Deploy").
			Negative("Abort").
			Value(&ok),
	))
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, err
	}
	return ok, nil
}
