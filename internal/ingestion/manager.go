package ingestion

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// MessageHandler receives one inbound bus message.
type MessageHandler func(topic string, payload []byte)

// Transport is the broker connection a Manager drives.
//
// Connect blocks until the connection is established or fails. onLost is
// invoked at most once per successful Connect when the connection drops
// without Disconnect having been called. Subscribe returns only after the
// broker has acknowledged every topic; no message is delivered to handler
// before that.
type Transport interface {
	Connect(ctx context.Context, onLost func(error)) error
	Subscribe(ctx context.Context, topics []string, handler MessageHandler) error
	Disconnect()
}

// ManagerOptions configures a Manager.
type ManagerOptions struct {
	Topics            Topics
	ReconnectInterval time.Duration

	// OnTransition, if set, is called synchronously for every state change.
	OnTransition func(Transition)
}

// Manager owns the bus connection lifecycle: connect, subscribe to both
// topics, dispatch messages, and reconnect at a fixed interval forever.
// Connect, subscribe and message errors are logged and never stop Run.
type Manager struct {
	transport  Transport
	dispatcher Dispatcher
	opts       ManagerOptions

	mu    sync.RWMutex
	state State
}

// NewManager creates a manager in the DISCONNECTED state.
func NewManager(transport Transport, dispatcher Dispatcher, opts ManagerOptions) *Manager {
	if transport == nil {
		panic("ingestion: transport must not be nil")
	}
	if dispatcher == nil {
		panic("ingestion: dispatcher must not be nil")
	}
	if opts.ReconnectInterval <= 0 {
		opts.ReconnectInterval = time.Second
	}
	return &Manager{
		transport:  transport,
		dispatcher: dispatcher,
		opts:       opts,
		state:      StateDisconnected,
	}
}

// State returns the current lifecycle state.
func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// Ping reports an error unless messages are currently being processed.
func (m *Manager) Ping(_ context.Context) error {
	if s := m.State(); s != StateSubscribed {
		return fmt.Errorf("bus is %s", s)
	}
	return nil
}

// Run connects and keeps the subscription alive until ctx is cancelled,
// then disconnects gracefully. It always returns nil.
func (m *Manager) Run(ctx context.Context) error {
	defer m.setState(StateDisconnected)

	slog.Info("[Bus] Starting subscription manager",
		"topics", m.opts.Topics.List(),
		"reconnect_interval", m.opts.ReconnectInterval,
	)

	for {
		if ctx.Err() != nil {
			return nil
		}

		m.setState(StateConnecting)
		lost := make(chan error, 1)
		err := m.transport.Connect(ctx, func(err error) {
			select {
			case lost <- err:
			default:
			}
		})
		if err != nil {
			if ctx.Err() != nil {
				m.transport.Disconnect()
				return nil
			}
			slog.Error("[Bus] Connect failed", "error", err, "retry_in", m.opts.ReconnectInterval)
			if !m.wait(ctx) {
				return nil
			}
			continue
		}

		m.setState(StateConnected)
		m.subscribe(ctx)

		select {
		case <-ctx.Done():
			slog.Info("[Bus] Disconnecting (context cancelled)")
			m.transport.Disconnect()
			return nil
		case err := <-lost:
			slog.Warn("[Bus] Connection lost", "error", err, "retry_in", m.opts.ReconnectInterval)
			m.setState(StateConnecting)
			if !m.wait(ctx) {
				return nil
			}
		}
	}
}

// subscribe leaves the manager CONNECTED on failure; the next subscribe
// attempt happens only after a reconnect.
func (m *Manager) subscribe(ctx context.Context) {
	m.setState(StateSubscribing)
	topics := m.opts.Topics.List()
	if err := m.transport.Subscribe(ctx, topics, m.dispatch); err != nil {
		slog.Error("[Bus] Subscribe failed", "topics", topics, "error", err)
		m.setState(StateConnected)
		return
	}
	m.setState(StateSubscribed)
}

func (m *Manager) dispatch(topic string, payload []byte) {
	m.dispatcher.Handle(topic, payload)
}

func (m *Manager) wait(ctx context.Context) bool {
	timer := time.NewTimer(m.opts.ReconnectInterval)
	defer timer.Stop()
	select {
	case <-timer.C:
		return true
	case <-ctx.Done():
		return false
	}
}

func (m *Manager) setState(next State) {
	m.mu.Lock()
	prev := m.state
	if prev == next {
		m.mu.Unlock()
		return
	}
	m.state = next
	m.mu.Unlock()

	slog.Info("[Bus] State changed", "from", prev, "to", next)
	if m.opts.OnTransition != nil {
		m.opts.OnTransition(Transition{From: prev, To: next})
	}
}
