// Command aingle is a small CLI over the SDK: create entries, fetch entries
// and node info, or watch the node's push channel.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/aingle/aingle-sdk-go/pkg/config"
	"github.com/aingle/aingle-sdk-go/pkg/model"
	"github.com/aingle/aingle-sdk-go/pkg/sdk"
)

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: aingle [-config file] <command> [args]

Commands:
  create <json>   create an entry from a JSON payload
  get <hash>      fetch an entry by hash
  info            print node information
  watch           print entries as the node pushes them (Ctrl-C to stop)
`)
	os.Exit(2)
}

func main() {
	cfgPath := flag.String("config", "", "path to YAML config file (AINGLE_* env vars override)")
	flag.Parse()

	if flag.NArg() < 1 {
		usage()
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "config error:", err)
		os.Exit(1)
	}

	client, err := sdk.NewClient(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer client.Disconnect()

	ctx := context.Background()

	switch flag.Arg(0) {
	case "create":
		if flag.NArg() != 2 {
			usage()
		}
		var payload any
		if err := json.Unmarshal([]byte(flag.Arg(1)), &payload); err != nil {
			fmt.Fprintln(os.Stderr, "payload is not valid JSON:", err)
			os.Exit(1)
		}
		hash, err := client.CreateEntry(ctx, payload)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Println(hash)

	case "get":
		if flag.NArg() != 2 {
			usage()
		}
		entry, err := client.GetEntry(ctx, flag.Arg(1))
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		if entry == nil {
			fmt.Fprintln(os.Stderr, "entry not found")
			os.Exit(1)
		}
		printJSON(entry)

	case "info":
		info, err := client.GetNodeInfo(ctx)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		printJSON(info)

	case "watch":
		unsub, err := client.Subscribe(func(e model.Entry) {
			printJSON(e)
		})
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer unsub()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		zap.L().Info("shutdown signal received, unsubscribing")

	default:
		usage()
	}
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintln(os.Stderr, "encode output:", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}
