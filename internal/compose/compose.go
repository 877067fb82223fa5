// Package compose renders the ordered article list into the two clipboard
// representations: a table-based HTML email body and a plain-text fallback.
package compose

import (
	"fmt"
	"html"
	"strings"

	"briefdesk/internal/model"
)

// HTML builds the email fragment. Tables keep the layout intact in Outlook
// and similar clients.
func HTML(articles []model.Article) string {
	var sb strings.Builder

	sb.WriteString(`<!DOCTYPE html>
<html>
<body style="margin: 0; padding: 0;">
<table width="100%" border="0" cellpadding="0" cellspacing="0" style="font-family: Arial, sans-serif;">
  <tr>
    <td align="center">
      <table width="600" border="0" cellpadding="0" cellspacing="0" style="width: 600px; max-width: 600px; text-align: left;">
`)

	for _, a := range articles {
		writeArticleRow(&sb, a)
	}

	sb.WriteString(`      </table>
    </td>
  </tr>
</table>
</body>
</html>
`)
	return sb.String()
}

func writeArticleRow(sb *strings.Builder, a model.Article) {
	headline := html.EscapeString(a.Headline)
	summary := html.EscapeString(a.Summary)

	sb.WriteString(`        <tr>
          <td style="padding-bottom: 30px;">
            <h2 style="margin-top: 0; margin-bottom: 10px; font-size: 18px; line-height: 1.4;">
`)
	if a.SourceURL != "" {
		fmt.Fprintf(sb, "              <a href=\"%s\" style=\"color: #2563eb; text-decoration: none;\">%s</a>\n", html.EscapeString(a.SourceURL), headline)
	} else {
		fmt.Fprintf(sb, "              <span style=\"color: #2563eb;\">%s</span>\n", headline)
	}
	sb.WriteString("            </h2>\n")

	if a.ImageURL != "" {
		fmt.Fprintf(sb, `            <table width="100%%" border="0" cellpadding="0" cellspacing="0">
              <tr>
                <td style="padding-bottom: 15px;">
                  <img src="%s" alt="%s" width="600" style="width: 600px; max-width: 600px; height: auto; display: block; border-radius: 8px;" />
                </td>
              </tr>
            </table>
`, html.EscapeString(a.ImageURL), headline)
	}

	fmt.Fprintf(sb, "            <p style=\"margin: 0; color: #374151; line-height: 1.6; font-size: 14px;\">%s</p>\n", summary)
	sb.WriteString(`            <table width="100%" border="0" cellpadding="0" cellspacing="0" style="margin-top: 20px;">
              <tr>
                <td style="border-top: 1px solid #e5e7eb;"></td>
              </tr>
            </table>
          </td>
        </tr>
`)
}

// Text builds the plain-text fallback: headline, summary and source URL per
// record, records separated by blank lines.
func Text(articles []model.Article) string {
	blocks := make([]string, len(articles))
	for i, a := range articles {
		blocks[i] = fmt.Sprintf("%s\n%s\n%s", a.Headline, a.Summary, a.SourceURL)
	}
	return strings.Join(blocks, "\n\n")
}
