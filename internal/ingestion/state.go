package ingestion

// State is the bus connection lifecycle position of a Manager.
//
//	DISCONNECTED -> CONNECTING -> CONNECTED -> SUBSCRIBING -> SUBSCRIBED
//
// Any connection loss moves back to CONNECTING.
type State string

const (
	StateDisconnected State = "DISCONNECTED"
	StateConnecting   State = "CONNECTING"
	StateConnected    State = "CONNECTED"
	StateSubscribing  State = "SUBSCRIBING"
	StateSubscribed   State = "SUBSCRIBED"
)

// Transition is one observed state change.
type Transition struct {
	From State
	To   State
}
