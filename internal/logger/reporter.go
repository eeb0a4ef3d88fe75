package logger

import (
	"github.com/sirupsen/logrus"

	"github.com/ZaparooProject/go-wiitdb/catalog"
)

// Reporter logs catalog data-quality issues at WARN.
type Reporter struct {
	log *logrus.Entry
}

// NewReporter returns a catalog.Reporter writing to log.
func NewReporter(log *logrus.Entry) *Reporter {
	return &Reporter{log: log}
}

// Report implements catalog.Reporter.
func (r *Reporter) Report(issue catalog.Issue) {
	fields := logrus.Fields{
		"kind":   string(issue.Kind),
		"gameid": issue.GameID,
	}
	if issue.Title != "" {
		fields["title"] = issue.Title
	}
	if issue.Version != "" {
		fields["version"] = issue.Version
	}
	if issue.Records > 0 {
		fields["records"] = issue.Records
	}

	entry := r.log.WithFields(fields)
	if issue.Detail != "" {
		entry.Warn(issue.Detail)
		return
	}
	entry.Warn("Database entry needs attention")
}
