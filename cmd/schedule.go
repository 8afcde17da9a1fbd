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

	"github.com/spf13/cobra"

	"github.com/collabops/webexctl/internal/config"
	"github.com/collabops/webexctl/internal/logging"
	"github.com/collabops/webexctl/internal/meetings"
)

func newScheduleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Create a scheduled Webex meeting",
		Long: `Create one scheduled meeting from the MEETING_* environment variables
and print the resulting meeting details, including the join link and
meeting number.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(envFile)
			if err != nil {
				return err
			}
			if err := cfg.ValidateSchedule(); err != nil {
				return err
			}

			logger, err := newLogger(cfg)
			if err != nil {
				return err
			}

			ctx, cancel := signal.NotifyContext(context.Background(),
				os.Interrupt, syscall.SIGTERM)
			defer cancel()

			return runSchedule(ctx, cfg, logger, cmd.OutOrStdout())
		},
	}

	return cmd
}

func runSchedule(ctx context.Context, cfg *config.Config, logger *slog.Logger, stdout io.Writer) error {
	client, err := newWebexClient(ctx, cfg, logger)
	if err != nil {
		logger.Error("authentication failed", logging.Err(err))
		return err
	}

	meetingsClient := meetings.New(client)

	logger.Info("creating meeting",
		logging.Operation("meetings.create"),
		slog.String("title", cfg.Meeting.Title),
		slog.String("start", cfg.Meeting.Start),
		slog.String("end", cfg.Meeting.End))

	meeting, err := meetingsClient.Create(ctx, &meetings.Meeting{
		Title:     cfg.Meeting.Title,
		Start:     cfg.Meeting.Start,
		End:       cfg.Meeting.End,
		Timezone:  cfg.Meeting.Timezone,
		HostEmail: cfg.Meeting.HostEmail,
		SiteURL:   cfg.Meeting.SiteURL,
	})
	if err != nil {
		logger.Error("meeting creation failed", logging.Err(err))
		return err
	}

	fmt.Fprintf(stdout, "Meeting created successfully!\n\n")
	printMeetingDetails(stdout, meeting)

	logger.Info("meeting created",
		slog.String("meeting_id", meeting.ID),
		slog.String("meeting_number", meeting.MeetingNumber),
		logging.Status(logging.StatusSuccess))
	return nil
}

func printMeetingDetails(w io.Writer, m *meetings.Meeting) {
	divider := strings.Repeat("=", 70)
	fmt.Fprintln(w, divider)
	fmt.Fprintln(w, "MEETING DETAILS")
	fmt.Fprintln(w, divider)
	fmt.Fprintf(w, "\nTitle:          %s\n", m.Title)
	fmt.Fprintf(w, "Meeting ID:     %s\n", m.ID)
	fmt.Fprintf(w, "Meeting Number: %s\n", m.MeetingNumber)
	fmt.Fprintf(w, "Password:       %s\n", m.Password)
	fmt.Fprintf(w, "Start Time:     %s\n", m.Start)
	fmt.Fprintf(w, "End Time:       %s\n", m.End)
	fmt.Fprintf(w, "Timezone:       %s\n", m.Timezone)
	fmt.Fprintf(w, "Host Email:     %s\n", m.HostEmail)
	fmt.Fprintf(w, "Site URL:       %s\n", m.SiteURL)
	fmt.Fprintf(w, "Web Link:       %s\n", m.WebLink)
	fmt.Fprintf(w, "SIP Address:    %s\n", m.SipAddress)
	fmt.Fprintln(w)
	fmt.Fprintln(w, divider)
}
