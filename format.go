package mdreport

import (
	"fmt"
	"time"
)

// reportDateLayout is the long-form date shown in the report header.
const reportDateLayout = "January 2, 2006"

// reportHeaderTemplate prefixes generated reports with document
// metadata. The .report-metadata classes are styled by the print
// stylesheet on export.
const reportHeaderTemplate = `# %s Market Analysis

<div class="report-metadata">
<p class="report-date">Generated on: %s</p>
<p class="report-id">Report ID: %s</p>
<p class="confidentiality">CONFIDENTIAL DOCUMENT</p>
</div>

---

%s`

// FormatReport wraps raw report content with the standard header:
// title, generation date, report identifier, and confidentiality mark.
func FormatReport(content, title string) string {
	return formatReportAt(content, title, time.Now())
}

// formatReportAt allows injecting a fixed time for testing.
func formatReportAt(content, title string, t time.Time) string {
	id := "MR-" + t.Format("20060102-150405")
	return fmt.Sprintf(reportHeaderTemplate, title, t.Format(reportDateLayout), id, content)
}
