package main

import (
	"os"
	"strings"
	"text/template"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/fscode/pkg/errors"
)

// formatBold returns the string formatted as bold using pterm
func formatBold(s string) string {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return s
	}
	return pterm.Bold.Sprint(s)
}

// formatUpper returns the string in uppercase
func formatUpper(s string) string {
	return strings.ToUpper(s)
}

// initTemplateFormatting adds custom formatting functions to Cobra templates
func initTemplateFormatting() {
	cobra.AddTemplateFuncs(template.FuncMap{
		"bold":  formatBold,
		"upper": formatUpper,
	})
}

// printError presents a failure on stderr. Coded errors show their code
// and any details that help the user fix the table.
func printError(err error) {
	code := errors.GetErrorCode(err)
	if code == errors.ErrUnknown {
		pterm.Error.Println(err.Error())
		return
	}

	pterm.Error.Printfln("[%s] %s", code, err.Error())
	details := errors.GetErrorDetails(err)
	if line, ok := details["line"]; ok {
		pterm.Println(pterm.Gray("  at table line: "), line)
	}
	if path, ok := details["path"]; ok {
		pterm.Println(pterm.Gray("  path: "), path)
	}
}
