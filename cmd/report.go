package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/collabops/webexctl/internal/config"
	"github.com/collabops/webexctl/internal/logging"
	"github.com/collabops/webexctl/internal/reports"
)

func newReportCmd() *cobra.Command {
	var outputFile string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Generate and download a meeting-usage report",
		Long: `Fetch the report templates available to your account, pick one
interactively, and generate a report for the configured site and date window.
The command polls until Webex finishes the report, downloads it, and writes
the CSV to disk.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(envFile)
			if err != nil {
				return err
			}
			if err := cfg.ValidateReport(); err != nil {
				return err
			}
			if outputFile != "" {
				cfg.Report.OutputFile = outputFile
			}

			logger, err := newLogger(cfg)
			if err != nil {
				return err
			}

			ctx, cancel := signal.NotifyContext(context.Background(),
				os.Interrupt, syscall.SIGTERM)
			defer cancel()

			return runReport(ctx, cfg, logger, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&outputFile, "output", "", "file to write the report CSV to (default: webex_report_<timestamp>.csv)")
	return cmd
}

func runReport(ctx context.Context, cfg *config.Config, logger *slog.Logger, stdin io.Reader, stdout io.Writer) error {
	client, err := newWebexClient(ctx, cfg, logger)
	if err != nil {
		logger.Error("authentication failed", logging.Err(err))
		return err
	}

	reportsClient := reports.New(client)

	logger.Info("fetching report templates", logging.Operation("reports.templates"))
	templates, err := reportsClient.Templates(ctx)
	if err != nil {
		logger.Error("listing templates failed", logging.Err(err))
		return err
	}
	logger.Info("templates fetched", slog.Int("count", len(templates)))

	if len(templates) == 0 {
		fmt.Fprintln(stdout, "No report templates available.")
		return nil
	}

	filtered := reports.FilterByService(templates, cfg.Report.Services)

	template, err := selectTemplate(ctx, stdin, stdout, filtered)
	if err != nil {
		return err
	}
	if template == nil {
		// Interrupted at the prompt; nothing has been requested yet.
		fmt.Fprintln(stdout, "\nOperation cancelled.")
		return nil
	}

	window := reports.WindowEndingYesterday(time.Now(), cfg.Report.DaysBack)

	fmt.Fprintln(stdout, "\nCreating report...")
	fmt.Fprintf(stdout, "   Template ID: %d\n", template.ID)
	fmt.Fprintf(stdout, "   Date Range:  %s to %s\n", window.Start, window.End)
	fmt.Fprintf(stdout, "   Site:        %s\n", cfg.Report.SiteList)

	logger.Info("requesting report",
		logging.Operation("reports.create"),
		logging.TemplateID(template.ID),
		slog.String("start_date", window.Start),
		slog.String("end_date", window.End))

	reportID, err := reportsClient.Create(ctx, reports.CreateRequest{
		TemplateID: template.ID,
		StartDate:  window.Start,
		EndDate:    window.End,
		SiteList:   cfg.Report.SiteList,
	})
	if err != nil {
		logger.Error("report request failed", logging.Err(err))
		return err
	}

	fmt.Fprintf(stdout, "Report created (ID: %s). Waiting for generation...\n", reportID)
	logger.Info("polling report",
		logging.ReportID(reportID),
		slog.Duration("interval", cfg.Report.PollInterval),
		slog.Int("max_attempts", cfg.Report.PollAttempts))

	report, err := reportsClient.PollUntilDone(ctx, reportID, cfg.Report.PollInterval, cfg.Report.PollAttempts)
	if err != nil {
		logger.Error("report did not complete", logging.ReportID(reportID), logging.Err(err))
		return err
	}

	printReportDetails(stdout, report)

	if report.DownloadURL == "" {
		logger.Warn("report finished without a download URL", logging.ReportID(report.ID))
		fmt.Fprintln(stdout, "No download URL available for this report.")
		return nil
	}

	data, err := reportsClient.DownloadFrom(ctx, report.DownloadURL)
	if err != nil {
		logger.Error("report download failed", logging.ReportID(report.ID), logging.Err(err))
		return err
	}

	csvData, err := reports.ExtractCSV(data)
	if err != nil {
		logger.Error("report extraction failed", logging.ReportID(report.ID), logging.Err(err))
		return err
	}

	filename := cfg.Report.OutputFile
	if filename == "" {
		filename = reports.DefaultFilename(time.Now())
	}
	if err := os.WriteFile(filename, csvData, 0o644); err != nil {
		return fmt.Errorf("writing report file: %w", err)
	}

	logger.Info("report saved",
		logging.ReportID(report.ID),
		slog.String("file", filename),
		slog.Int("bytes", len(csvData)),
		logging.Status(logging.StatusSuccess))
	fmt.Fprintf(stdout, "Report saved as: %s\n", filename)
	return nil
}

// selectTemplate runs the interactive prompt while watching for
// cancellation. A plain Ctrl-C at the prompt must not hang on the blocked
// stdin read, so the prompt runs in a goroutine and an interrupt wins the
// select. A nil template with a nil error means the run was interrupted.
func selectTemplate(ctx context.Context, stdin io.Reader, stdout io.Writer, templates []reports.Template) (*reports.Template, error) {
	type selection struct {
		template *reports.Template
		err      error
	}

	ch := make(chan selection, 1)
	go func() {
		t, err := reports.SelectTemplate(stdin, stdout, templates)
		ch <- selection{t, err}
	}()

	select {
	case <-ctx.Done():
		return nil, nil
	case sel := <-ch:
		return sel.template, sel.err
	}
}

func printReportDetails(w io.Writer, report *reports.Report) {
	divider := strings.Repeat("=", 70)
	fmt.Fprintln(w)
	fmt.Fprintln(w, divider)
	fmt.Fprintln(w, "REPORT DETAILS")
	fmt.Fprintln(w, divider)
	fmt.Fprintf(w, "\nTitle:         %s\n", report.Title)
	fmt.Fprintf(w, "Service:       %s\n", report.Service)
	fmt.Fprintf(w, "Status:        %s\n", report.Status)
	fmt.Fprintf(w, "Date Range:    %s to %s\n", report.StartDate, report.EndDate)
	fmt.Fprintf(w, "Site:          %s\n", report.SiteList)
	fmt.Fprintf(w, "Report ID:     %s\n", report.ID)
	fmt.Fprintf(w, "Download URL:  %s\n", report.DownloadURL)
	fmt.Fprintln(w)
	fmt.Fprintln(w, divider)
}
