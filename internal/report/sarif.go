package report

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/erraggy/oaslint/analyzer"
	"github.com/erraggy/oaslint/checks"
	"github.com/erraggy/oaslint/issue"
	"github.com/owenrumney/go-sarif/v2/sarif"
)

const (
	toolName = "oaslint"
	toolURI  = "https://github.com/erraggy/oaslint"
)

// NewSARIF builds a SARIF 2.1.0 log with a single run. Rules are described
// from opts.Rules; issue costs are recorded as the "remediationMinutes"
// result property.
func NewSARIF(reports []*analyzer.FileReport, opts Options) (*sarif.Report, error) {
	log, err := sarif.New(sarif.Version210)
	if err != nil {
		return nil, fmt.Errorf("report: failed to create SARIF report: %w", err)
	}

	run := sarif.NewRunWithInformationURI(toolName, toolURI)
	if opts.ToolVersion != "" {
		version := opts.ToolVersion
		run.Tool.Driver.Version = &version
	}

	described := make(map[string]bool, len(opts.Rules))
	for _, rule := range opts.Rules {
		addRule(run, rule)
		described[rule.Key] = true
	}

	for _, r := range reports {
		if r == nil {
			continue
		}
		uri := filepath.ToSlash(r.Path)
		for _, is := range r.Issues {
			if !described[is.RuleKey] {
				run.AddRule(is.RuleKey)
				described[is.RuleKey] = true
			}
			result := sarif.NewRuleResult(is.RuleKey).
				WithLevel(is.Severity.SarifLevel()).
				WithMessage(sarif.NewTextMessage(is.Message())).
				WithLocations([]*sarif.Location{sarifLocation(uri, is.Primary)})
			for _, loc := range is.Secondary {
				related := sarifLocation(uri, loc)
				related.Message = sarif.NewTextMessage(loc.Message)
				result.RelatedLocations = append(result.RelatedLocations, related)
			}
			if is.Cost != nil {
				result.Properties = sarif.Properties{"remediationMinutes": *is.Cost}
			}
			run.AddResult(result)
		}
	}
	log.AddRun(run)
	return log, nil
}

// SARIF writes reports as an indented SARIF 2.1.0 log.
func SARIF(w io.Writer, reports []*analyzer.FileReport, opts Options) error {
	log, err := NewSARIF(reports, opts)
	if err != nil {
		return err
	}
	if err := log.PrettyWrite(w); err != nil {
		return fmt.Errorf("report: failed to write SARIF: %w", err)
	}
	return nil
}

func addRule(run *sarif.Run, rule checks.Rule) {
	d := run.AddRule(rule.Key).
		WithName(rule.Key).
		WithDefaultConfiguration(&sarif.ReportingConfiguration{Level: rule.Severity.SarifLevel()})
	if rule.Title != "" {
		d.WithShortDescription(sarif.NewMultiformatMessageString(rule.Title))
	}
	if rule.Description != "" {
		d.WithFullDescription(sarif.NewMultiformatMessageString(rule.Description))
	}
}

func sarifLocation(uri string, loc issue.Location) *sarif.Location {
	physical := sarif.NewPhysicalLocation().
		WithArtifactLocation(sarif.NewArtifactLocation().WithUri(uri))
	if loc.HasLine() {
		p := NewPosition(loc)
		region := sarif.NewRegion().WithStartLine(p.Line).WithEndLine(p.EndLine)
		if loc.HasOffset() {
			region.WithStartColumn(p.Column).WithEndColumn(p.EndColumn)
		}
		physical.WithRegion(region)
	}
	return sarif.NewLocation().WithPhysicalLocation(physical)
}
