package cmd

import (
	"context"
	"fmt"
	"strings"

	"forkit/internal/domain"
	"forkit/internal/services"
	"forkit/internal/theme"
	"forkit/version"
)

// DoctorCmd prints what an open would see on this machine
type DoctorCmd struct{}

// Run executes the doctor command
func (d *DoctorCmd) Run(cli *CLI) error {
	signals := cli.Container.Detector.Signals(cli.Remote)
	diagnosis := cli.Container.DiagnosticsService.Diagnose(
		context.Background(), signals.Platform, signals.RemoteName, cli.ForkPath, cli.AppName)

	fmt.Print(renderDiagnosis(diagnosis))
	return nil
}

func renderDiagnosis(d services.Diagnosis) string {
	var b strings.Builder

	b.WriteString(theme.AppNameStyle.Render("forkit") + " " + theme.VersionStyle.Render(version.Version) + "\n\n")

	row := func(label, value string) {
		b.WriteString(theme.LabelStyle.Render(label) + theme.NormalStyle.Render(value) + "\n")
	}

	remote := d.RemoteName
	if remote == "" {
		remote = "(none)"
	}
	row("Platform", d.Platform)
	row("Remote", remote)
	row("Environment", d.Environment.String())

	if !d.Environment.Supported() {
		b.WriteString("\n" + theme.ErrorStyle.Render(domain.Failed(domain.ErrUnsupportedPlatform).Message()) + "\n")
		return b.String()
	}

	if d.Environment == domain.EnvWindowsWSL {
		if d.TranslatorErr != nil {
			row("Translator", theme.MissingStyle.Render("failed: "+d.TranslatorErr.Error()))
		} else {
			row("Translator", theme.FoundStyle.Render("ok")+theme.NormalStyle.Render(" / -> "+d.TranslatorRoot))
		}
	}

	if d.Environment == domain.EnvMacOS {
		row("Application", d.AppName+" (opened by name)")
		return b.String()
	}

	b.WriteString("\n" + theme.SubtitleStyle.Render("Executable candidates") + "\n")
	if d.CandidatesErr != nil {
		b.WriteString(theme.ErrorStyle.Render(d.CandidatesErr.Error()) + "\n")
		return b.String()
	}

	found := false
	for _, c := range d.Candidates {
		mark := theme.MissingStyle.Render("  missing ")
		if c.Exists {
			mark = theme.FoundStyle.Render("  found   ")
			if !found {
				mark = theme.FoundStyle.Render("* found   ")
				found = true
			}
		}
		b.WriteString(mark + theme.NormalStyle.Render(c.Path) + "\n")
	}
	if !found {
		b.WriteString("\n" + theme.ErrorStyle.Render(domain.Failed(domain.ErrNoExecutableFound).Message()) + "\n")
	}

	return b.String()
}
