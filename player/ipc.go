package player

import (
	"bufio"
	"encoding/json"
	"fmt"
	"net"
	"sync/atomic"
	"time"
)

// ipcCommand is the JSON structure sent to mpv's IPC socket.
type ipcCommand struct {
	Command   []any `json:"command"`
	RequestID int64 `json:"request_id,omitempty"`
}

// ipcResponse is the JSON structure received from mpv's IPC socket.
// Event is set on asynchronous event lines, which are not command replies.
type ipcResponse struct {
	Data      any    `json:"data"`
	Error     string `json:"error"`
	Event     string `json:"event"`
	RequestID int64  `json:"request_id"`
}

const (
	maxRetries   = 3
	retryDelay   = 100 * time.Millisecond
	readDeadline = 1 * time.Second
	readBufSize  = 4096
)

// requestCounter hands out request ids so replies can be told apart from
// events mpv broadcasts on the same connection.
var requestCounter atomic.Int64

// sendCommand sends a JSON-IPC command to mpv via Unix domain socket,
// retrying transient connection errors. Round-trips are serialized.
func (m *MPV) sendCommand(command []any) (any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var lastErr error

	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			time.Sleep(retryDelay)
		}

		result, err := doSendCommand(m.socketPath, command)
		if err == nil {
			return result, nil
		}
		lastErr = err
	}

	return nil, fmt.Errorf("ipc command failed after %d attempts: %w", maxRetries, lastErr)
}

// doSendCommand performs a single IPC command attempt on a fresh connection.
func doSendCommand(socketPath string, command []any) (any, error) {
	conn, err := net.Dial("unix", socketPath)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	defer conn.Close()

	id := requestCounter.Add(1)

	payload, err := json.Marshal(ipcCommand{Command: command, RequestID: id})
	if err != nil {
		return nil, fmt.Errorf("marshal: %w", err)
	}

	// Send command + newline (mpv requires newline-delimited JSON)
	if _, err = conn.Write(append(payload, '\n')); err != nil {
		return nil, fmt.Errorf("write: %w", err)
	}

	if err := conn.SetReadDeadline(time.Now().Add(readDeadline)); err != nil {
		return nil, fmt.Errorf("set deadline: %w", err)
	}

	// mpv broadcasts core events to every client, so the reply is not
	// necessarily the first line on the wire. Skip until the echoed
	// request id matches (id 0 covers servers that do not echo it; this
	// connection has exactly one request in flight).
	reader := bufio.NewReaderSize(conn, readBufSize)
	for {
		line, err := reader.ReadBytes('\n')
		if err != nil {
			return nil, fmt.Errorf("read: %w", err)
		}

		var resp ipcResponse
		if err := json.Unmarshal(line, &resp); err != nil {
			continue
		}

		if resp.Event != "" || (resp.RequestID != id && resp.RequestID != 0) {
			continue
		}

		if resp.Error != "" && resp.Error != "success" {
			return nil, fmt.Errorf("mpv error: %s", resp.Error)
		}

		return resp.Data, nil
	}
}
