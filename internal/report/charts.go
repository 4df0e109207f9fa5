package report

import (
	"fmt"
	"log"
	"math"
	"strings"

	"MarketBoard/internal/calculator"
	"MarketBoard/internal/model"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/render"
)

// Chart is one renderable dashboard panel, already serialized to an HTML
// element and its accompanying script. The placeholder panel has no script.
type Chart struct {
	Name    string
	Element string
	Script  string
}

// ChartSet is the fixed-order list of panels for one group:
// price trend, price distribution, revenue, average return.
type ChartSet []Chart

// BuildCharts produces the four-chart set for a non-empty dataset. Chart IDs
// are derived from the group name so that identical inputs render identical
// markup on every run.
func BuildCharts(ds *model.GroupDataset, groupName, periodLabel string) ChartSet {
	table := calculator.BuildClosingPriceTable(ds)
	return ChartSet{
		priceTrendChart(table, groupName),
		priceDistributionChart(table, groupName),
		revenueChart(ds, groupName),
		averageReturnChart(ds, groupName),
	}
}

func priceTrendChart(table *calculator.ClosingPriceTable, groupName string) Chart {
	line := charts.NewLine()
	line.SetGlobalOptions(
		chartInit(groupName, "price-trend"),
		charts.WithTitleOpts(opts.Title{Title: fmt.Sprintf("Price Trend Over Time (%s)", groupName)}),
		charts.WithTooltipOpts(opts.Tooltip{Trigger: "axis"}),
	)
	line.SetXAxis(table.Dates)
	for _, symbol := range table.Symbols {
		data := make([]opts.LineData, len(table.Dates))
		for i, v := range table.Columns[symbol] {
			if math.IsNaN(v) {
				data[i] = opts.LineData{Value: nil} // gap, not interpolated
			} else {
				data[i] = opts.LineData{Value: v}
			}
		}
		line.AddSeries(symbol, data)
	}
	return toChart("price-trend", line)
}

func priceDistributionChart(table *calculator.ClosingPriceTable, groupName string) Chart {
	box := charts.NewBoxPlot()
	box.SetGlobalOptions(
		chartInit(groupName, "price-distribution"),
		charts.WithTitleOpts(opts.Title{Title: "Stock Price Distribution"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Ticker"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Close"}),
	)
	data := make([]opts.BoxPlotData, 0, len(table.Symbols))
	for _, symbol := range table.Symbols {
		stats, err := calculator.CalculateBoxStats(table.ColumnValues(symbol))
		if err != nil {
			log.Printf("[WARN] box stats for %s: %v", symbol, err)
			stats = calculator.BoxStats{}
		}
		data = append(data, opts.BoxPlotData{
			Name:  symbol,
			Value: []float64{stats.Min, stats.Q1, stats.Median, stats.Q3, stats.Max},
		})
	}
	box.SetXAxis(table.Symbols)
	box.AddSeries("Close", data)
	return toChart("price-distribution", box)
}

func revenueChart(ds *model.GroupDataset, groupName string) Chart {
	var symbols []string
	var data []opts.BarData
	for _, symbol := range ds.Symbols {
		if rev := ds.Records[symbol].Revenue; rev != nil {
			symbols = append(symbols, symbol)
			data = append(data, opts.BarData{Value: *rev})
		}
	}
	if len(symbols) == 0 {
		return revenuePlaceholder(groupName)
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		chartInit(groupName, "revenue"),
		charts.WithTitleOpts(opts.Title{Title: "Latest Reported Revenue"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Ticker"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Revenue"}),
	)
	bar.SetXAxis(symbols)
	bar.AddSeries("Revenue", data)
	return toChart("revenue", bar)
}

// revenuePlaceholder stands in when no symbol reported revenue: a single
// centered annotation instead of an empty bar chart.
func revenuePlaceholder(groupName string) Chart {
	return Chart{
		Name: "revenue",
		Element: fmt.Sprintf(
			"<div class=\"no-data\" id=%q><h3>Latest Reported Revenue</h3><p>No Revenue Data Available</p></div>",
			chartID(groupName, "revenue")),
	}
}

func averageReturnChart(ds *model.GroupDataset, groupName string) Chart {
	returns := calculator.AverageDailyReturns(ds)
	symbols := make([]string, 0, len(returns))
	data := make([]opts.BarData, 0, len(returns))
	for _, r := range returns {
		symbols = append(symbols, r.Symbol)
		data = append(data, opts.BarData{Value: r.Mean})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		chartInit(groupName, "average-return"),
		charts.WithTitleOpts(opts.Title{Title: "Average Daily Returns"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Ticker"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Avg Daily Return"}),
	)
	bar.SetXAxis(symbols)
	bar.AddSeries("Avg Daily Return", data)
	return toChart("average-return", bar)
}

func chartInit(groupName, slot string) charts.GlobalOpts {
	return charts.WithInitializationOpts(opts.Initialization{
		ChartID:         chartID(groupName, slot),
		Width:           "100%",
		Height:          "500px",
		BackgroundColor: "#ffffff",
	})
}

// chartID derives a stable element ID from the group name and chart slot.
// The ID is interpolated into generated JS variable names, so it must be a
// valid identifier: anything outside [a-z0-9] becomes an underscore.
func chartID(groupName, slot string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(groupName + " " + slot) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}

func toChart(name string, c interface{ Validate() }) Chart {
	snippet := render.NewChartRender(c, c.Validate).RenderSnippet()
	return Chart{Name: name, Element: snippet.Element, Script: snippet.Script}
}
