// Package renderer turns engine reports into markdown documents. It
// only formats values it is handed; computing them is the engine's
// job.
package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/avigne/stockfolio"
	"github.com/avigne/stockfolio/date"
)

// HoldingMarkdown renders the literal lot table of a portfolio.
func HoldingMarkdown(p *stockfolio.Portfolio) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Composition of %s (%s)", p.Name(), p.Kind()))

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Ticker", "Trade Date", "Open", "Close", "Volume", "Quantity", "Cost Basis"},
		Rows:   [][]string{},
	}
	for _, l := range p.Composition() {
		table.Rows = append(table.Rows, []string{
			l.Ticker,
			l.TradeDate.String(),
			l.Open.String(),
			l.Close.String(),
			fmt.Sprintf("%d", l.Volume),
			l.Quantity.String(),
			l.CostBasis.String(),
		})
	}
	doc.Table(table)

	return doc.String()
}

// ValueMarkdown renders a point-in-time valuation next to the running
// invested principal.
func ValueMarkdown(p *stockfolio.Portfolio, on date.Date, value, invested stockfolio.Money) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Value of %s on %s", p.Name(), on))
	doc.BulletList(
		fmt.Sprintf("Market value: %s", value),
		fmt.Sprintf("Total invested: %s", invested),
	)

	return doc.String()
}

// CrossoverMarkdown renders buy and sell signal dates found in a range.
func CrossoverMarkdown(ticker string, r date.Range, report *stockfolio.CrossoverReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Crossovers for %s, %s to %s", ticker, r.From, r.To))

	doc.H2("Buy signals")
	if len(report.Positives) == 0 {
		doc.PlainText("none")
	} else {
		doc.BulletList(dateStrings(report.Positives)...)
	}

	doc.H2("Sell signals")
	if len(report.Negatives) == 0 {
		doc.PlainText("none")
	} else {
		doc.BulletList(dateStrings(report.Negatives)...)
	}

	return doc.String()
}

// PerformanceMarkdown renders the bucketed samples as the ASCII chart
// inside a code block, so terminal rendering keeps the bars aligned.
func PerformanceMarkdown(name string, r date.Range, samples []stockfolio.PerformanceSample) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Performance of %s, %s to %s", name, r.From, r.To))
	doc.CodeBlocks(md.SyntaxHighlightNone, stockfolio.Chart(samples))

	return doc.String()
}

func dateStrings(dates []date.Date) []string {
	out := make([]string, len(dates))
	for i, d := range dates {
		out[i] = d.String()
	}
	return out
}
