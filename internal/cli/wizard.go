package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"chemfetch/internal/config"
	"chemfetch/internal/pubchem"
)

// RunConfigWizard asks for the handful of tunables and writes them as a JSON
// config file.
func RunConfigWizard() error {
	path := config.DefaultConfigPath()
	baseURL := pubchem.DefaultBaseURL
	timeoutStr := "10"
	userAgent := pubchem.DefaultUserAgent
	format := "tsv"

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Config file path").Value(&path).Validate(validateNonEmpty),
			huh.NewInput().Title("API base URL").Value(&baseURL).Validate(validateNonEmpty),
			huh.NewInput().Title("Timeout seconds").Value(&timeoutStr).Validate(validateIntString(1, 600)),
			huh.NewInput().Title("User-Agent").Value(&userAgent),
			huh.NewSelect[string]().Title("Output format").Value(&format).Options(
				huh.NewOption("tsv", "tsv"),
				huh.NewOption("json", "json"),
			),
		),
	).WithTheme(huh.ThemeDracula())

	if err := form.Run(); err != nil {
		return err
	}

	timeout, err := strconv.Atoi(strings.TrimSpace(timeoutStr))
	if err != nil {
		return fmt.Errorf("invalid timeout: %w", err)
	}

	cfg := config.Config{
		BaseURL:        strings.TrimSpace(baseURL),
		TimeoutSeconds: timeout,
		UserAgent:      strings.TrimSpace(userAgent),
		Format:         format,
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return err
	}

	fmt.Printf("Wrote %s\n", path)
	return nil
}

// PromptName asks for a compound name when running with -i.
func PromptName() (string, error) {
	var name string
	err := huh.NewInput().
		Title("Compound name").
		Placeholder("ethanol").
		Value(&name).
		Validate(validateNonEmpty).
		Run()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(name), nil
}

func validateNonEmpty(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("value is required")
	}
	return nil
}

func validateIntString(min, max int) func(string) error {
	return func(s string) error {
		v, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return errors.New("enter a whole number")
		}
		if v < min || v > max {
			return fmt.Errorf("enter a number between %d and %d", min, max)
		}
		return nil
	}
}
