package docgen

// filter.go — chart-text classification and marker stripping.

import "strings"

// downArrow is the reserved marker glyph removed from all text before it
// reaches the document. Nothing else is stripped; bullet glyphs and other
// punctuation pass through untouched.
const downArrow = "↓"

// chartKeywords classifies text as chart markup or chart prose.
// Matching is case-folded substring search, so a keyword also matches
// inside larger words ("chart" matches "charter").
var chartKeywords = []string{
	"echarts", "chart", "charts", "graph", "plot", "canvas",
	"visualization", "visualize", "highcharts", "d3", "d3.js",
	"plotly", "chartjs", "chart.js", "amcharts", "svg", "tooltip",
	"图表", "图表说明", "图表描述", "图表展示", "可视化", "图例", "坐标轴",
	"数据可视化", "柱状图", "折线图", "饼图", "散点图", "条形图", "雷达图",
}

// isChartRelated reports whether text contains any chart keyword after
// trimming and case folding. Empty and whitespace-only text is not
// chart-related.
func isChartRelated(text string) bool {
	t := strings.ToLower(strings.TrimSpace(text))
	if t == "" {
		return false
	}
	for _, kw := range chartKeywords {
		if strings.Contains(t, kw) {
			return true
		}
	}
	return false
}

// stripMarker removes every down-arrow marker from text.
func stripMarker(text string) string {
	return strings.ReplaceAll(text, downArrow, "")
}
