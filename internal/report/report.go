//    CaseTopics
//    Copyright: Lexicon Labs 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package report

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/danaugrs/go-tsne/tsne"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/google/uuid"
	"gonum.org/v1/gonum/mat"

	"github.com/lexiconlabs/casetopics/internal/topics"
	"github.com/lexiconlabs/casetopics/internal/vv"
)

// Payload - everything the html report needs from a finished run
type Payload struct {
	ModelName string
	Weighting string
	Vocab     []string
	Labels    []string
	TopicTerm mat.Matrix // topics x terms
	DocTopic  mat.Matrix // documents x topics
	TopTerms  int
}

// WriteHTML - render one page with a bar chart per topic plus, when the corpus is big
// enough, a 2d t-SNE scatter of the documents colored by their dominant topic. The
// return value is the path of the file that was written.
func WriteHTML(dir string, p Payload) (string, error) {
	const (
		FILEPATTERN = "casetopics-report-%s.html"
		PAGETITLE   = "%s topics over %d documents (%s weighting)"
		MINFORTSNE  = 25
	)

	k, _ := p.TopicTerm.Dims()
	docs, _ := p.DocTopic.Dims()

	page := components.NewPage()
	page.PageTitle = fmt.Sprintf(PAGETITLE, p.ModelName, docs, p.Weighting)

	for t := 0; t < k; t++ {
		bar, err := topicbar(p, t)
		if err != nil {
			return "", err
		}
		page.AddCharts(bar)
	}

	if docs >= MINFORTSNE {
		page.AddCharts(docscatter(p.DocTopic, p.Labels, k))
	}

	fn := filepath.Join(dir, fmt.Sprintf(FILEPATTERN, uuid.New().String()))
	f, err := os.OpenFile(fn, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, vv.WRITEPERMS)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := page.Render(f); err != nil {
		return "", err
	}
	return fn, nil
}

// topicbar - the heaviest terms of one topic as a horizontal-axis bar chart
func topicbar(p Payload, topic int) (*charts.Bar, error) {
	const (
		CHRTWIDTH  = "900px"
		CHRTHEIGHT = "400px"
		TITLESTR   = "Topic %d"
		SERIES     = "term weight"
	)

	ranked, err := topics.TopTermsForTopic(p.TopicTerm, p.Vocab, topic, p.TopTerms)
	if err != nil {
		return nil, err
	}

	labels := make([]string, len(ranked))
	values := make([]opts.BarData, len(ranked))
	for i, rt := range ranked {
		labels[i] = rt.Term
		values[i] = opts.BarData{Value: rt.Weight}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: CHRTWIDTH, Height: CHRTHEIGHT}),
		charts.WithTitleOpts(opts.Title{Title: fmt.Sprintf(TITLESTR, topic)}),
	)
	bar.SetXAxis(labels).AddSeries(SERIES, values)
	return bar, nil
}

// docscatter - embed the document-topic weights into 2d and plot one series per dominant topic
func docscatter(w mat.Matrix, labels []string, k int) *charts.Scatter {
	const (
		CHRTWIDTH  = "900px"
		CHRTHEIGHT = "700px"
		TITLESTR   = "Documents by dominant topic (t-SNE)"
		SERIESSTR  = "topic %d"
		PERPLEX    = 30
		LEARNRT    = 100
		MAXITER    = 150
		VERBOSE    = false
		SYMSIZE    = 8
	)

	docs, _ := w.Dims()

	// t-SNE misbehaves when the perplexity approaches the sample count
	perplex := float64(PERPLEX)
	if ceiling := float64(docs-1) / 3.0; ceiling < perplex {
		perplex = ceiling
	}

	t := tsne.NewTSNE(2, perplex, LEARNRT, MAXITER, VERBOSE)
	t.EmbedData(mat.DenseCopyOf(w), nil)
	y := t.Y

	dom := topics.DominantTopic(w)

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: CHRTWIDTH, Height: CHRTHEIGHT}),
		charts.WithTitleOpts(opts.Title{Title: TITLESTR}),
	)

	for topic := 0; topic < k; topic++ {
		var pts []opts.ScatterData
		for d := 0; d < docs; d++ {
			if dom[d] != topic {
				continue
			}
			pts = append(pts, opts.ScatterData{
				Name:       labels[d],
				Value:      []interface{}{y.At(d, 0), y.At(d, 1)},
				SymbolSize: SYMSIZE,
			})
		}
		if len(pts) != 0 {
			scatter.AddSeries(fmt.Sprintf(SERIESSTR, topic), pts)
		}
	}
	return scatter
}
