package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/blackjacksim/internal/simulator"
	"github.com/lox/blackjacksim/internal/statistics"
)

var (
	// Style definitions
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))

	winStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	lossStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))

	pushStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))
)

// signed styles profits green and losses red.
func signed(v float64, format string) string {
	s := fmt.Sprintf(format, v)
	if v > 0 {
		return winStyle.Render("+" + s)
	}
	if v < 0 {
		return lossStyle.Render(s)
	}
	return s
}

// renderResult prints the summary of a single simulation run.
func renderResult(w io.Writer, r simulator.Result) {
	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("Simulation results — %s", r.Strategy)))

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%d / %d\n", labelStyle.Render("Hands played"), r.HandsPlayed, r.HandsRequested)
	fmt.Fprintf(tw, "%s\t%s\n", labelStyle.Render("Wins"), winStyle.Render(fmt.Sprintf("%d", r.Wins)))
	fmt.Fprintf(tw, "%s\t%s\n", labelStyle.Render("Losses"), lossStyle.Render(fmt.Sprintf("%d", r.Losses)))
	fmt.Fprintf(tw, "%s\t%s\n", labelStyle.Render("Pushes"), pushStyle.Render(fmt.Sprintf("%d", r.Pushes)))
	fmt.Fprintf(tw, "%s\t%.2f%%\n", labelStyle.Render("Win rate"), r.WinRate)
	fmt.Fprintf(tw, "%s\t$%.2f\n", labelStyle.Render("Final bankroll"), r.FinalBankroll)
	fmt.Fprintf(tw, "%s\t%s\n", labelStyle.Render("Profit/Loss"), signed(r.Profit, "$%.2f"))
	fmt.Fprintf(tw, "%s\t%s\n", labelStyle.Render("ROI"), signed(r.ROI, "%.2f%%"))
	if r.Bankrupt {
		fmt.Fprintf(tw, "%s\t%s\n", labelStyle.Render("Stopped"), lossStyle.Render("bankrupt"))
	}
	fmt.Fprintf(tw, "%s\t%d\n", labelStyle.Render("Seed"), r.Seed)
	fmt.Fprintf(tw, "%s\t%s\n", labelStyle.Render("Duration"), r.Duration)
	tw.Flush()
}

// renderStatistics prints the aggregate summary of a trial batch.
func renderStatistics(w io.Writer, name string, stats *statistics.Statistics) {
	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("Trial results — %s (%d trials)", name, stats.Trials)))

	low, high := stats.ConfidenceInterval95()

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%d\n", labelStyle.Render("Hands played"), stats.HandsPlayed)
	fmt.Fprintf(tw, "%s\t%d / %d / %d\n", labelStyle.Render("W/L/P"), stats.Wins, stats.Losses, stats.Pushes)
	fmt.Fprintf(tw, "%s\t%s\n", labelStyle.Render("Mean profit"), signed(stats.Mean(), "$%.2f"))
	fmt.Fprintf(tw, "%s\t%s\n", labelStyle.Render("Median profit"), signed(stats.Median(), "$%.2f"))
	fmt.Fprintf(tw, "%s\t$%.2f\n", labelStyle.Render("Std dev"), stats.StdDev())
	fmt.Fprintf(tw, "%s\t$%.2f\n", labelStyle.Render("Std error"), stats.StdError())
	fmt.Fprintf(tw, "%s\t[$%.2f, $%.2f]\n", labelStyle.Render("95% CI"), low, high)
	fmt.Fprintf(tw, "%s\tP5=%.0f P25=%.0f P75=%.0f P95=%.0f\n", labelStyle.Render("Percentiles"),
		stats.Percentile(0.05), stats.Percentile(0.25), stats.Percentile(0.75), stats.Percentile(0.95))
	fmt.Fprintf(tw, "%s\t%.1f%%\n", labelStyle.Render("Bankruptcy rate"), stats.BankruptcyRate()*100)
	tw.Flush()
}
