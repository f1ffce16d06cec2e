package player

import (
	"encoding/json"
	"fmt"
	"net"
	"strings"
	"sync"
	"time"

	"github.com/twitchy-cli/twitchy/log"
)

// EventCallback is the function signature for mpv event notifications.
// For property changes, name is the property name and data its new value.
// For "log-message" events, data is the log text.
type EventCallback func(name string, data any)

// EventListener provides real-time mpv event monitoring over a persistent
// IPC connection.
type EventListener struct {
	socketPath string
	conn       net.Conn
	callback   EventCallback
	stopCh     chan struct{}
	mu         sync.Mutex
	listening  bool
}

// NewEventListener creates a new event listener for the given socket.
func NewEventListener(socketPath string, callback EventCallback) *EventListener {
	return &EventListener{
		socketPath: socketPath,
		callback:   callback,
		stopCh:     make(chan struct{}),
	}
}

// Start connects to mpv, registers property observers and begins the read
// loop. mpv routes property-change events only to the client that asked for
// them, so the observers must be registered on this very connection.
func (el *EventListener) Start() error {
	el.mu.Lock()
	defer el.mu.Unlock()

	if el.listening {
		return nil
	}

	conn, err := net.Dial("unix", el.socketPath)
	if err != nil {
		return fmt.Errorf("event listener connect: %w", err)
	}
	el.conn = conn

	properties := []struct {
		id   int
		name string
	}{
		{1, "time-pos"},    // playback progress
		{2, "pause"},       // pausing the progress accounting
		{3, "seeking"},     // seek detection
		{4, "eof-reached"}, // stream completion detection
	}

	for _, prop := range properties {
		if err := el.send([]any{"observe_property", prop.id, prop.name}); err != nil {
			conn.Close()
			return fmt.Errorf("observe %s: %w", prop.name, err)
		}
	}

	el.listening = true
	go el.readLoop()

	log.Infof("mpv event listener started on %s (observing: time-pos, pause, seeking, eof-reached)", el.socketPath)
	return nil
}

// ObserveLogs asks mpv to stream its log messages at the given level to this
// listener; they arrive at the callback as "log-message" events. Must be
// called after Start.
func (el *EventListener) ObserveLogs(level string) error {
	el.mu.Lock()
	defer el.mu.Unlock()

	if !el.listening {
		return fmt.Errorf("event listener not started")
	}

	return el.send([]any{"request_log_messages", level})
}

// send writes a single command line on the persistent connection. The reply
// arrives interleaved with events and is dropped by the read loop.
func (el *EventListener) send(command []any) error {
	payload, err := json.Marshal(ipcCommand{Command: command})
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}

	_, err = el.conn.Write(append(payload, '\n'))
	return err
}

// Stop terminates the event listener and closes its connection.
func (el *EventListener) Stop() {
	el.mu.Lock()
	defer el.mu.Unlock()

	if !el.listening {
		return
	}

	close(el.stopCh)
	if el.conn != nil {
		el.conn.Close()
	}
	el.listening = false
}

// readLoop continuously reads newline-delimited JSON events from the
// persistent mpv connection.
func (el *EventListener) readLoop() {
	defer func() {
		el.mu.Lock()
		el.listening = false
		el.mu.Unlock()
	}()

	buf := make([]byte, 4096)
	var remainder []byte

	for {
		select {
		case <-el.stopCh:
			return
		default:
		}

		// Wake up periodically to notice Stop even when mpv is silent
		if err := el.conn.SetReadDeadline(time.Now().Add(5 * time.Second)); err != nil {
			return
		}

		n, err := el.conn.Read(buf)
		if err != nil {
			if netErr, ok := err.(net.Error); ok && netErr.Timeout() {
				continue
			}

			select {
			case <-el.stopCh:
				// Closed by Stop, not worth reporting
			default:
				log.Warnf("event listener read error: %v", err)
			}
			return
		}

		// mpv sends multiple JSON objects separated by newlines
		data := append(remainder, buf[:n]...)
		remainder = nil

		lines := strings.Split(string(data), "\n")
		for i, line := range lines {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}

			// Last incomplete line goes to remainder for the next read
			if i == len(lines)-1 && !strings.HasSuffix(string(data), "\n") {
				remainder = []byte(line)
				continue
			}

			el.processEvent(line)
		}
	}
}

// processEvent parses and dispatches a single mpv event JSON line.
func (el *EventListener) processEvent(line string) {
	var event map[string]any
	if err := json.Unmarshal([]byte(line), &event); err != nil {
		return // skip unparseable lines
	}

	eventType, ok := event["event"].(string)
	if !ok {
		return // command reply, not an event
	}

	if el.callback == nil {
		return
	}

	switch eventType {
	case "property-change":
		name, _ := event["name"].(string)
		if name != "" {
			el.callback(name, event["data"])
		}
	case "log-message":
		text, _ := event["text"].(string)
		if text != "" {
			el.callback("log-message", text)
		}
	default:
		// Forward lifecycle events (e.g. "playback-restart", "end-file")
		el.callback(eventType, event)
	}
}
