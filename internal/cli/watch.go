package cli

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/dom/league-improvement-tracker/internal/client"
	"github.com/dom/league-improvement-tracker/internal/events"
	"github.com/gorilla/websocket"
	"github.com/spf13/cobra"
)

func newWatchCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Stream your change feed",
		Long: `Connect to the server's websocket change feed and print every
mutation made to your data, from this or any other device.

Press Ctrl+C to disconnect.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return streamEvents(jsonOutput)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output events as JSON lines")

	return cmd
}

func streamEvents(jsonOutput bool) error {
	token := client.NewFileCredentials(cfg.TokenFile).Token()
	if token == "" {
		return fmt.Errorf("not logged in; run 'tracker auth login' first")
	}

	wsURL := strings.TrimSuffix(cfg.ServerURL, "/")
	wsURL = strings.Replace(wsURL, "http://", "ws://", 1)
	wsURL = strings.Replace(wsURL, "https://", "wss://", 1)
	wsURL += "/ws?token=" + url.QueryEscape(token)

	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}
	defer conn.Close()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		for {
			_, message, err := conn.ReadMessage()
			if err != nil {
				errCh <- err
				return
			}

			if jsonOutput {
				fmt.Println(string(message))
				continue
			}

			var event events.Event
			if err := json.Unmarshal(message, &event); err != nil {
				fmt.Println(string(message))
				continue
			}
			fmt.Printf("[%s] %s %s #%d\n",
				time.Now().Format("15:04:05"), event.Resource, event.Action, event.EntityID)
		}
	}()

	fmt.Fprintln(os.Stderr, "Watching for changes... (Ctrl+C to stop)")

	select {
	case <-quit:
		// Clean close so the server drops us without logging an error
		deadline := time.Now().Add(time.Second)
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), deadline)
		return nil
	case err := <-errCh:
		if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
			return nil
		}
		return err
	}
}
