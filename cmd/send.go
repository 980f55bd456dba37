package cmd

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/openmix/oscwire/osc"
)

var (
	sendBundle bool
	sendAt     float64
)

var sendCmd = &cobra.Command{
	Use:   "send <host:port> <address> [args...]",
	Short: "Send an OSC message",
	Long: `Send a single OSC message to a UDP endpoint.

Arguments are typed by prefix: i:42 (int32), f:1.5 (float32),
d:1.5 (float64), s:text (string), b:deadbeef (blob, hex encoded).
Without a prefix the type is inferred: integers become int32, decimal
numbers float32, true/false become int32 1/0, anything else a string.`,
	Example: `  oscwire send 127.0.0.1:8000 /synth/freq f:440
  oscwire send 127.0.0.1:8000 /mixer/mute 1 --bundle --at 0.5`,
	Args: cobra.MinimumNArgs(2),
	RunE: runSend,
}

func init() {
	sendCmd.Flags().BoolVar(&sendBundle, "bundle", false, "Wrap the message in a bundle")
	sendCmd.Flags().Float64Var(&sendAt, "at", 0, "Bundle time tag, seconds from now (implies --bundle)")
	rootCmd.AddCommand(sendCmd)
}

func runSend(cmd *cobra.Command, args []string) error {
	target, address := args[0], args[1]

	msg := osc.NewMessage(address)
	for _, raw := range args[2:] {
		arg, err := parseArgument(raw)
		if err != nil {
			return err
		}
		msg.Append(arg)
	}

	var packet osc.Packet = msg
	if sendBundle || cmd.Flags().Changed("at") {
		tt := osc.Immediate
		if sendAt > 0 {
			tt = osc.TimetagFromTime(time.Now().Add(time.Duration(sendAt * float64(time.Second))))
		}
		packet = osc.NewBundle(tt, msg)
	}

	client, err := osc.Dial(target)
	if err != nil {
		return fmt.Errorf("dial %s: %w", target, err)
	}
	defer client.Close()

	return client.Send(packet)
}

// parseArgument converts a command line token into an OSC argument.
func parseArgument(raw string) (interface{}, error) {
	if typ, val, ok := strings.Cut(raw, ":"); ok && len(typ) == 1 {
		switch typ {
		case "i":
			n, err := strconv.ParseInt(val, 10, 32)
			if err != nil {
				return nil, fmt.Errorf("argument %q: %w", raw, err)
			}
			return int32(n), nil
		case "f":
			f, err := strconv.ParseFloat(val, 32)
			if err != nil {
				return nil, fmt.Errorf("argument %q: %w", raw, err)
			}
			return float32(f), nil
		case "d":
			f, err := strconv.ParseFloat(val, 64)
			if err != nil {
				return nil, fmt.Errorf("argument %q: %w", raw, err)
			}
			return f, nil
		case "s":
			return val, nil
		case "b":
			b, err := hex.DecodeString(val)
			if err != nil {
				return nil, fmt.Errorf("argument %q: %w", raw, err)
			}
			return b, nil
		}
	}

	// No recognized prefix, infer the type.
	if n, err := strconv.ParseInt(raw, 10, 32); err == nil {
		return int32(n), nil
	}
	if f, err := strconv.ParseFloat(raw, 32); err == nil {
		return float32(f), nil
	}
	if b, err := strconv.ParseBool(raw); err == nil {
		return b, nil
	}
	return raw, nil
}
