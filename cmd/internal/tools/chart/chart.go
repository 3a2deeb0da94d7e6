package chart

import (
	"fmt"
	"os"
	"sort"

	"github.com/nathanhack/qecc/cmd/internal/tools"
	mat "github.com/nathanhack/sparsemat"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

var Verbose bool

var ChartRun = func(cmd *cobra.Command, args []string) {
	if Verbose {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}

	code, err := tools.LoadCode(args[0])
	if err != nil {
		fmt.Println("unable to load the code: ", err)
		return
	}

	// histograms of the row and column weights for both stabilizer matrices
	histograms := map[string]map[int]int{
		"hx rows":    rowWeights(code.HX()),
		"hx columns": columnWeights(code.HX()),
		"hz rows":    rowWeights(code.HZ()),
		"hz columns": columnWeights(code.HZ()),
	}

	weights := make(map[int]bool)
	for _, h := range histograms {
		for w := range h {
			weights[w] = true
		}
	}
	xvalues, xnames := xAxisAndValues(weights)

	f, err := os.Create(args[1])
	if err != nil {
		fmt.Println(err)
		return
	}
	defer f.Close()

	// create a new bar instance
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    code.Name(),
			Subtitle: "Stabilizer Weight Distributions",
			Left:     "20%",
		}),
		charts.WithLegendOpts(opts.Legend{Show: true,
			Orient: "vertical",
			Right:  "0",
			Top:    "top",
			Type:   "scroll",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name:      "Weight",
			SplitLine: &opts.SplitLine{Show: true},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:      "Count",
			SplitLine: &opts.SplitLine{Show: true},
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true}),
	)

	bar.SetXAxis(xnames)

	names := make([]string, 0, len(histograms))
	for name := range histograms {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		bar.AddSeries(name, series(histograms[name], xvalues))
	}

	bar.Render(f)
}

func rowWeights(m mat.SparseMat) map[int]int {
	rows, _ := m.Dims()
	histogram := make(map[int]int)
	for i := 0; i < rows; i++ {
		histogram[m.Row(i).HammingWeight()]++
	}
	return histogram
}

func columnWeights(m mat.SparseMat) map[int]int {
	_, cols := m.Dims()
	histogram := make(map[int]int)
	for j := 0; j < cols; j++ {
		histogram[m.Column(j).HammingWeight()]++
	}
	return histogram
}

func xAxisAndValues(weights map[int]bool) ([]int, []string) {
	nums := make([]int, 0, len(weights))
	strs := make([]string, 0, len(weights))
	for w := range weights {
		nums = append(nums, w)
	}

	sort.Ints(nums)

	for _, n := range nums {
		strs = append(strs, fmt.Sprint(n))
	}

	return nums, strs
}

func series(histogram map[int]int, values []int) []opts.BarData {
	results := make([]opts.BarData, len(values))
	null := opts.BarData{Value: nil}
	for i, v := range values {
		count, has := histogram[v]
		if !has {
			results[i] = null
			continue
		}
		results[i] = opts.BarData{Value: count}
	}
	return results
}
