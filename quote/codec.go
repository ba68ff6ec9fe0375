package quote

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/avigne/stockfolio"
	"github.com/avigne/stockfolio/date"
)

// The provider and the cache files share one row format, consumed
// positionally:
//
//	date,open[,high,low],close,volume
//
// Six-field rows carry high/low columns which hold no value here and
// are skipped; four-field rows are the compact cache form. A leading
// header row is tolerated.

// parseSeries decodes provider or cache CSV content into a series.
func parseSeries(ticker string, content []byte) (*stockfolio.PriceSeries, error) {
	cr := csv.NewReader(bytes.NewReader(content))
	cr.FieldsPerRecord = -1

	series := stockfolio.NewPriceSeries(ticker, nil)
	for line := 1; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if line == 1 && isHeader(row) {
			continue
		}
		point, err := parsePoint(row)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		series.Append(point)
	}
	return series, nil
}

func isHeader(row []string) bool {
	if len(row) == 0 {
		return false
	}
	_, err := date.Parse(row[0])
	return err != nil
}

func parsePoint(row []string) (stockfolio.PricePoint, error) {
	var closeField, volumeField int
	switch len(row) {
	case 4: // date,open,close,volume
		closeField, volumeField = 2, 3
	case 6: // date,open,high,low,close,volume
		closeField, volumeField = 4, 5
	default:
		return stockfolio.PricePoint{}, fmt.Errorf("want 4 or 6 fields, got %d", len(row))
	}

	on, err := date.Parse(row[0])
	if err != nil {
		return stockfolio.PricePoint{}, err
	}
	open, err := stockfolio.ParseMoney(strings.TrimSpace(row[1]))
	if err != nil {
		return stockfolio.PricePoint{}, fmt.Errorf("invalid open %q: %w", row[1], err)
	}
	close, err := stockfolio.ParseMoney(strings.TrimSpace(row[closeField]))
	if err != nil {
		return stockfolio.PricePoint{}, fmt.Errorf("invalid close %q: %w", row[closeField], err)
	}
	volume, err := strconv.ParseInt(strings.TrimSpace(row[volumeField]), 10, 64)
	if err != nil {
		return stockfolio.PricePoint{}, fmt.Errorf("invalid volume %q: %w", row[volumeField], err)
	}
	return stockfolio.PricePoint{Date: on, Open: open, Close: close, Volume: volume}, nil
}

// encodeSeries writes a series in the compact four-field cache form.
func encodeSeries(w io.Writer, s *stockfolio.PriceSeries) error {
	cw := csv.NewWriter(w)
	for _, p := range s.Points() {
		row := []string{
			p.Date.String(),
			p.Open.Decimal().String(),
			p.Close.Decimal().String(),
			strconv.FormatInt(p.Volume, 10),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
