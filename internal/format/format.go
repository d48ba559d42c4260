// Package format renders amounts, hours and dates the way Colombian pay stubs
// print them.
package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.MustParse("es-CO"))

var monthNames = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// Money prints whole pesos with the local thousands separator, e.g. $1.307.386.
func Money(v int64) string {
	if v < 0 {
		return "-$" + printer.Sprintf("%d", -v)
	}
	return "$" + printer.Sprintf("%d", v)
}

// MoneyFloat rounds v half up before printing it.
func MoneyFloat(v float64) string {
	return Money(int64(math.Floor(v + 0.5)))
}

// Percent prints a fraction as a whole percentage, or "-" when absent.
func Percent(p *float64) string {
	if p == nil {
		return "-"
	}
	return strconv.FormatFloat(math.Round(*p*100), 'f', 0, 64) + "%"
}

// Hours prints at most two decimals, or "-" when absent.
func Hours(h *float64) string {
	if h == nil || *h == 0 {
		return "-"
	}
	out := strconv.FormatFloat(*h, 'f', 2, 64)
	out = strings.TrimRight(out, "0")
	return strings.TrimSuffix(out, ".")
}

// LongDate prints an ISO date as "1 de enero de 2025"; anything else is
// returned unchanged.
func LongDate(iso string) string {
	d, err := time.Parse("2006-01-02", strings.TrimSpace(iso))
	if err != nil {
		return iso
	}
	return fmt.Sprintf("%d de %s de %d", d.Day(), monthNames[d.Month()-1], d.Year())
}

func OrNotApplicable(v int64) string {
	if v <= 0 {
		return "No aplica"
	}
	return Money(v)
}
