// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package report renders runner reports.

	report.Write(os.Stdout, rep, cliparse.FormatText)

Text output is a human readable summary with a ranked results table. JSON
output is the models.Report value, indented.
*/
package report
