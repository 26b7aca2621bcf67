// Sweep - streams a circular test trajectory to a running arm daemon.
//
// Connects to the daemon's /ws/target endpoint and sends one target per tick
// along a horizontal circle, exercising the full target → solve → broadcast
// path without a hand-tracking client.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/websocket"

	"github.com/devanshvpurohit/robotic-arm-3d/pkg/kinematics"
	"github.com/devanshvpurohit/robotic-arm-3d/pkg/protocol"
)

func main() {
	addr := flag.String("addr", "localhost:8090", "arm daemon address")
	radius := flag.Float64("radius", 15, "circle radius")
	height := flag.Float64("height", 8, "circle height above the ground")
	period := flag.Duration("period", 8*time.Second, "time per revolution")
	revs := flag.Int("revs", 3, "revolutions to sweep (0 = until interrupted)")
	flag.Parse()

	url := fmt.Sprintf("ws://%s/ws/target", *addr)
	fmt.Printf("connecting to %s\n", url)

	dialer := websocket.Dialer{HandshakeTimeout: 10 * time.Second}
	conn, _, err := dialer.Dial(url, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dial failed: %v\n", err)
		os.Exit(1)
	}
	defer conn.Close()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(33 * time.Millisecond)
	defer ticker.Stop()

	start := time.Now()
	sent := 0

	fmt.Printf("sweeping radius=%.3g height=%.3g period=%s\n", *radius, *height, *period)

	for {
		select {
		case <-sigChan:
			fmt.Printf("\ninterrupted after %d targets\n", sent)
			return
		case <-ticker.C:
			elapsed := time.Since(start)
			if *revs > 0 && elapsed > time.Duration(*revs)*(*period) {
				fmt.Printf("done: %d targets over %d revolutions\n", sent, *revs)
				return
			}

			angle := 2 * math.Pi * elapsed.Seconds() / period.Seconds()
			target := kinematics.Target{
				X: *radius * math.Sin(angle),
				Y: *height,
				Z: *radius * math.Cos(angle),
			}

			msg, err := protocol.NewTargetMessage(target)
			if err != nil {
				continue
			}
			raw, err := msg.Bytes()
			if err != nil {
				continue
			}
			if err := conn.WriteMessage(websocket.TextMessage, raw); err != nil {
				fmt.Fprintf(os.Stderr, "write failed: %v\n", err)
				return
			}
			sent++
		}
	}
}
