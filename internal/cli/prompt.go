package cli

import (
	"github.com/AlecAivazis/survey/v2"
)

// promptPassword asks for a secret value without echoing it.
func promptPassword(message string) (string, error) {
	var result string
	prompt := &survey.Password{
		Message: message,
	}
	if err := survey.AskOne(prompt, &result, survey.WithValidator(survey.Required)); err != nil {
		return "", err
	}
	return result, nil
}

// promptConfirm asks a yes/no question.
func promptConfirm(message string, defaultVal bool) (bool, error) {
	result := defaultVal
	prompt := &survey.Confirm{
		Message: message,
		Default: defaultVal,
	}
	if err := survey.AskOne(prompt, &result); err != nil {
		return false, err
	}
	return result, nil
}
