package publisher

import (
	"fmt"
	"html"
	"strings"

	"MarketBoard/internal/report"
)

// echartsCDN is the script the dashboard loads the chart runtime from; the
// runtime is referenced, never bundled into the document.
const echartsCDN = "https://go-echarts.github.io/go-echarts-assets/assets/echarts.min.js"

const documentStyles = `<style>
    body { font-family: Arial, sans-serif; background: #f4f6f8; padding: 20px; }
    h1 { text-align: center; color: #003366; }
    .chart-container { margin-bottom: 50px; border: 1px solid #ccc; background: white; padding: 15px; border-radius: 10px; box-shadow: 0 2px 5px rgba(0,0,0,0.1); }
    .no-data { text-align: center; padding: 60px 0; color: #666; }
</style>
`

// ObjectKey names the published artifact for one group. The group name is
// used verbatim, spaces included.
func ObjectKey(groupName, periodLabel string) string {
	return fmt.Sprintf("%s_interactive_dashboard_%s.html", groupName, periodLabel)
}

// RenderDocument assembles the charts into one self-contained HTML dashboard.
// Output depends only on the charts and labels, so identical inputs yield
// identical bytes.
func RenderDocument(charts report.ChartSet, groupName, periodLabel string) []byte {
	heading := fmt.Sprintf("%s Interactive Financial Dashboard (%s)", groupName, periodLabel)

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	b.WriteString("<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&b, "<title>%s</title>\n", html.EscapeString(heading))
	fmt.Fprintf(&b, "<script src=%q></script>\n", echartsCDN)
	b.WriteString(documentStyles)
	b.WriteString("</head>\n<body>\n")
	fmt.Fprintf(&b, "<h1>%s</h1>\n", html.EscapeString(heading))
	for _, c := range charts {
		b.WriteString("<div class=\"chart-container\">\n")
		b.WriteString(c.Element)
		b.WriteString(c.Script)
		b.WriteString("\n</div>\n")
	}
	b.WriteString("</body>\n</html>\n")
	return []byte(b.String())
}
