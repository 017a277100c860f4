package output

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"compound-interest/domain"
)

var tableHeader = []string{
	"Year", "Principal", "Annual contribution", "Total contribution",
	"Annual interest", "Total interest", "Total amount",
}

// WriteTable writes summary as an aligned text table with amounts rounded
// to cents.
func WriteTable(w io.Writer, summary []domain.YearlySnapshot) error {
	p := message.NewPrinter(language.English)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)

	for i, h := range tableHeader {
		if i > 0 {
			fmt.Fprint(tw, "\t")
		}
		fmt.Fprint(tw, h)
	}
	fmt.Fprint(tw, "\t\n")

	for _, s := range summary {
		p.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t\n",
			s.Year,
			money(p, s.Principal),
			money(p, s.AnnualContribution),
			money(p, s.TotalContribution),
			money(p, s.AnnualInterest),
			money(p, s.TotalInterest),
			money(p, s.TotalAmount),
		)
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrSerialization, err)
	}
	return nil
}

// money rounds half away from zero; %.2f alone would print 4940.62 for
// 4940.625.
func money(p *message.Printer, v float64) string {
	rounded := decimal.NewFromFloat(v).Round(2).InexactFloat64()
	return p.Sprintf("%.2f", rounded)
}
