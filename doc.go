// Package tabconv detects the format of pasted tabular text and converts it
// between formats.
//
// Supported inputs are a JSON array of objects, an HTML table, tab-separated
// "Excel paste", a Markdown pipe table, and delimited CSV-like text. Every
// input is parsed into a [Table], a grid of strings whose first row is the
// header. Every output is rendered from a [Table], so any input converts to
// any output.
//
// # Detection
//
// [Detect] runs a fixed chain of structural checks over the trimmed text and
// stops at the first that fits:
//
//  1. JSON: text starting with '[' or '{' that parses as a non-empty array
//     whose first element is an object. The first element's keys form the
//     header.
//  2. HTML: text containing "<table", "<tr", "<td" or "<th". Each <tr>
//     becomes a row of its <th>/<td> text.
//  3. Excel: text containing a tab. Lines are split on tabs.
//  4. Markdown: text containing '|' with at least one line starting with
//     '|'. Divider rows such as "| --- | :-: |" are dropped.
//  5. CSV: lines split on whichever of ',' ';' '|' or tab gives the first
//     line the most fields, honoring double quotes. Accepted when rows
//     average at least two fields.
//
// Detection never fails. Text that matches nothing yields an [Unknown]
// detection with an empty table.
//
//	d := tabconv.Detect(input)
//	fmt.Println(d.Label(), len(d.Table))
//
// # Generation
//
// [Generate], [Write] and [Marshal] render a table in any of [Formats]:
//
//   - [Markdown]: pipe table with a "---" divider
//   - [Excel]: tab-separated rows
//   - [HTML]: styled table fragment; cell text is NOT escaped
//   - [CSV]: every cell quoted, comma separated
//   - [JSON]: array of objects keyed by the header, 2-space indent
//   - [YAML]: the same records as a YAML sequence
//   - [Pretty]: a bordered terminal table, see [WriteTable]
//
// An empty table yields [ErrNoContent]. JSON and YAML also need at least one
// data row.
//
// # Actions
//
// [Convert], [NewDownload] and [Render] combine detection with generation
// for copy, download and preview actions. [ReadWorkbook] turns the first
// sheet of an xlsx file into CSV text that can be fed to any of them.
//
// # Errors
//
//   - [ErrUnsupportedFormat]: unknown format or border name
//   - [ErrNoContent]: nothing to convert
//   - [ErrUndetected]: no format matched
//   - [ErrWorkbook]: the workbook could not be decoded
package tabconv
