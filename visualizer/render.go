package visualizer

import (
	"fmt"
	"net/http"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
	"github.com/goccy/go-graphviz"
	"github.com/goccy/go-graphviz/cgraph"
)

// HTML references for the rendered pages.
const gridRef = "grid"
const stationaryRef = "stationary-distribution"
const chainRef = "markov-chain"

// MainHtml is the index page.
const MainHtml = `
<!DOCTYPE html>
<html lang="en">
  <head>
    <meta charset="utf-8">
    <title>VFI: AR1 Discretization</title>
    <link rel="stylesheet" href="style.css">
    <script src="script.js"></script>
  </head>
  <body>
    <h1>VFI: AR1 Discretization</h1>
    <ul>
    <li> <h3> <a href="/` + gridRef + `"> State Grid </a> </h3> </li>
    <li> <h3> <a href="/` + stationaryRef + `"> Stationary Distribution </a> </h3> </li>
    <li> <h3> <a href="/` + chainRef + `"> Markov Chain </a> </h3> </li>
    </ul>
</body>
</html>
`

// renderMain renders the main menu.
func renderMain(w http.ResponseWriter, r *http.Request) {
	fmt.Fprint(w, MainHtml)
}

// convertGridData converts grid points to chart points indexed by state.
func convertGridData(data []float64) []opts.LineData {
	items := []opts.LineData{}
	for i, v := range data {
		items = append(items, opts.LineData{Value: [2]float64{float64(i), v}})
	}
	return items
}

// newGridChart creates a line chart for a state grid.
func newGridChart(title string, subtitle string, series string, grid []float64) *charts.Line {
	chart := charts.NewLine()
	chart.SetGlobalOptions(charts.WithInitializationOpts(opts.Initialization{
		Theme: types.ThemeChalk,
	}),
		charts.WithToolboxOpts(opts.Toolbox{
			Show: true,
			Feature: &opts.ToolBoxFeature{
				SaveAsImage: &opts.ToolBoxFeatureSaveAsImage{
					Show:  true,
					Title: "Save",
				},
				DataZoom: &opts.ToolBoxFeatureDataZoom{
					Show: true,
				},
			},
		}),
		charts.WithLegendOpts(opts.Legend{Show: true}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: subtitle,
		}))
	chart.AddSeries(series, convertGridData(grid))
	return chart
}

// renderGrid renders the state grid in levels and in logs.
func renderGrid(w http.ResponseWriter, r *http.Request) {
	data := GetChainData()
	subtitle := fmt.Sprintf("n=%v, mu=%v, rho=%v, sigma=%v, width=%v",
		data.Parameters.N, data.Parameters.Mu, data.Parameters.Rho,
		data.Parameters.Sigma, data.Parameters.Width)
	levels := newGridChart("State Grid", subtitle, "levels", data.Grid)
	logs := newGridChart("State Grid (log-space)", "evenly spaced by construction", "logs", data.LogGrid)

	page := components.NewPage()
	page.AddCharts(levels, logs)
	page.Render(w)
}

// convertDistributionData produces the data series for the stationary distribution.
func convertDistributionData(data []float64) []opts.BarData {
	items := []opts.BarData{}
	for i := 0; i < len(data); i++ {
		items = append(items, opts.BarData{Value: data[i]})
	}
	return items
}

// renderStationary renders the stationary distribution of the chain.
func renderStationary(w http.ResponseWriter, r *http.Request) {
	data := GetChainData()
	bar := charts.NewBar()
	bar.SetGlobalOptions(charts.WithInitializationOpts(opts.Initialization{
		Theme:     types.ThemeChalk,
		PageTitle: "Stationary Distribution",
	}),
		charts.WithToolboxOpts(opts.Toolbox{
			Show: true,
			Feature: &opts.ToolBoxFeature{
				SaveAsImage: &opts.ToolBoxFeatureSaveAsImage{
					Show:  true,
					Title: "Save",
				},
				DataZoom: &opts.ToolBoxFeatureDataZoom{
					Show: true,
				},
			},
		}),
		charts.WithLegendOpts(opts.Legend{Show: true}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Stationary Distribution",
			Subtitle: fmt.Sprintf("mean=%.4f, std=%.4f", data.Mean, data.StdDev),
		}))
	bar.SetXAxis(data.StateLabel).AddSeries("Stationary Distribution", convertDistributionData(data.Stationary))
	bar.XYReversal()
	bar.Render(w)
}

// edgeColor maps a transition probability to an edge color.
func edgeColor(p float64) string {
	switch int(4 * p) {
	case 0:
		return "gray"
	case 1:
		return "green"
	case 3:
		return "indianred"
	default:
		return "red"
	}
}

// renderChain renders the Markov chain of the discretized process.
func renderChain(w http.ResponseWriter, r *http.Request) {
	data := GetChainData()
	g := graphviz.New()
	graph, _ := g.Graph()
	defer func() {
		graph.Close()
		g.Close()
	}()
	n := len(data.StateLabel)
	nodes := make([]*cgraph.Node, n)
	for i := 0; i < n; i++ {
		nodes[i], _ = graph.CreateNode(data.StateLabel[i])
		nodes[i].SetLabel(data.StateLabel[i])
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			p := data.TransitionMatrix[i][j]
			// omit numerically negligible transitions to keep the graph readable
			if p >= 0.005 {
				txt := fmt.Sprintf("%.2f", p)
				e, _ := graph.CreateEdge("", nodes[i], nodes[j])
				e.SetLabel(txt)
				e.SetColor(edgeColor(p))
			}
		}
	}
	txt, _ := renderDotGraph("AR1 Markov-Chain", g, graph)
	fmt.Fprint(w, txt)
}

// FireUpWeb fires up a new web-server for data visualisation.
func FireUpWeb(port string) {
	http.HandleFunc("/", renderMain)
	http.HandleFunc("/"+gridRef, renderGrid)
	http.HandleFunc("/"+stationaryRef, renderStationary)
	http.HandleFunc("/"+chainRef, renderChain)
	http.ListenAndServe(":"+port, nil)
}
