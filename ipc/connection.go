package ipc

import (
	"errors"
	"io"
	"log/slog"
)

// Handler answers one inbound envelope. A nil envelope means no reply.
type Handler func(env Envelope) (*Envelope, error)

// Connection is the controller's side of the stdio bridge: frames arrive
// on r and both commands and replies leave on w. It is not safe for use
// from more than one goroutine; handlers call Send from inside ReadLoop.
type Connection struct {
	r        io.Reader
	w        io.Writer
	handlers map[string]Handler
}

func NewConnection(r io.Reader, w io.Writer, handlers map[string]Handler) *Connection {
	if handlers == nil {
		handlers = make(map[string]Handler)
	}
	return &Connection{r: r, w: w, handlers: handlers}
}

func (c *Connection) RegisterHandler(msgType string, handler Handler) {
	c.handlers[msgType] = handler
}

// Send writes a command frame straight away; replies are written by
// ReadLoop after the handler returns, so commands precede their ack.
func (c *Connection) Send(msgType string, data any) error {
	env, err := NewEnvelope(msgType, data)
	if err != nil {
		return err
	}
	return WriteEnvelope(c.w, env)
}

// ReadLoop serves frames until the engine closes its end (nil) or the
// stream can no longer be trusted (the read or write error). Handler
// errors and unknown types are logged and skipped.
func (c *Connection) ReadLoop() error {
	for {
		env, err := ReadEnvelope(c.r)
		if errors.Is(err, io.EOF) {
			slog.Info("engine closed the bridge")
			return nil
		}
		if err != nil {
			return err
		}
		if err := c.dispatch(env); err != nil {
			return err
		}
	}
}

// dispatch only fails when the reply cannot be written.
func (c *Connection) dispatch(env Envelope) error {
	handler, ok := c.handlers[env.Type]
	if !ok {
		slog.Warn("unhandled message", "type", env.Type)
		return nil
	}

	resp, err := handler(env)
	if err != nil {
		slog.Error("message rejected", "type", env.Type, "error", err)
		return nil
	}
	if resp == nil {
		return nil
	}
	if err := WriteEnvelope(c.w, *resp); err != nil {
		return err
	}
	slog.Debug("replied", "request", env.Type, "type", resp.Type)
	return nil
}
