package events

// Bus publishes the change signals the UI layer subscribes to. Publishing is
// best-effort: a failed publish is logged and never blocks the mutation that
// triggered it.
type Bus interface {
	SendMessage(topic Topic, data any) error
	ProcessMessage(data []byte, returnValue any) error
}
