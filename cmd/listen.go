package cmd

import (
	"errors"
	"fmt"
	"net"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/openmix/oscwire/osc"
)

var listenAddr string

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Print incoming OSC messages",
	Long: `Listen on a UDP socket and print every decoded OSC message to
stdout, one per line. Bundles are unpacked; the address filter from the
config file applies to the individual messages.`,
	Args: cobra.NoArgs,
	RunE: runListen,
}

func init() {
	listenCmd.Flags().StringVarP(&listenAddr, "listen", "l", "", "UDP address to bind (overrides config)")
	rootCmd.AddCommand(listenCmd)
}

func runListen(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(listenAddr)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg.Verbose)
	if err != nil {
		return err
	}
	defer logger.Sync()

	conn, err := net.ListenPacket("udp", cfg.Listen)
	if err != nil {
		return fmt.Errorf("listen %s: %w", cfg.Listen, err)
	}
	defer conn.Close()

	logger.Info("listening", zap.String("addr", conn.LocalAddr().String()))

	server := &osc.Server{Logger: logger}
	for {
		packet, from, err := server.ReceivePacket(conn)
		if err != nil {
			if errors.Is(err, osc.ErrParse) || errors.Is(err, osc.ErrUnderrun) {
				logger.Debug("dropping malformed packet",
					zap.Stringer("from", from), zap.Error(err))
				continue
			}
			return err
		}
		for msg := range packet.Messages() {
			if cfg.Wants(msg.Address) {
				fmt.Println(msg)
			}
		}
	}
}
