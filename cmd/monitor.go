package cmd

import (
	"errors"
	"fmt"
	"net"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/openmix/oscwire/internal/stats"
	"github.com/openmix/oscwire/internal/tui"
	"github.com/openmix/oscwire/osc"
)

var monitorAddr string

var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Live per-address traffic monitor",
	Long: `Listen on a UDP socket and show a live terminal view of the
incoming OSC traffic: message counts, rates, and latest arguments per
address, plus a log of the most recent messages.`,
	Args: cobra.NoArgs,
	RunE: runMonitor,
}

func init() {
	monitorCmd.Flags().StringVarP(&monitorAddr, "listen", "l", "", "UDP address to bind (overrides config)")
	rootCmd.AddCommand(monitorCmd)
}

func runMonitor(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(monitorAddr)
	if err != nil {
		return err
	}

	conn, err := net.ListenPacket("udp", cfg.Listen)
	if err != nil {
		return fmt.Errorf("listen %s: %w", cfg.Listen, err)
	}
	defer conn.Close()

	tracker := stats.NewTracker()
	server := &osc.Server{}

	go func() {
		for {
			packet, _, err := server.ReceivePacket(conn)
			if err != nil {
				if errors.Is(err, osc.ErrParse) || errors.Is(err, osc.ErrUnderrun) {
					tracker.RecordDropped()
					continue
				}
				return
			}
			for msg := range packet.Messages() {
				if cfg.Wants(msg.Address) {
					tracker.Record(msg.Address, argPreview(msg))
				}
			}
		}
	}()

	model := tui.NewModel(tracker, conn.LocalAddr().String())
	_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}

// argPreview renders a message's argument list for the monitor table.
func argPreview(m *osc.Message) string {
	return strings.TrimSpace(strings.TrimPrefix(m.String(), m.Address))
}
