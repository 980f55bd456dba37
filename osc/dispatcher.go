package osc

// Handler handles a single decoded OSC message.
type Handler interface {
	HandleMessage(msg *Message)
}

// HandlerFunc adapts a plain function to the Handler interface.
type HandlerFunc func(msg *Message)

// HandleMessage calls the function itself. Implements Handler.
func (f HandlerFunc) HandleMessage(msg *Message) {
	f(msg)
}

// Dispatcher routes decoded messages to handlers by exact address.
// There is no pattern matching: an address is either registered or it
// is not.
type Dispatcher struct {
	handlers map[string]Handler
}

// NewDispatcher returns an empty Dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{handlers: make(map[string]Handler)}
}

// Register installs handler for the given address, replacing any
// handler previously registered there.
func (d *Dispatcher) Register(addr string, handler Handler) {
	if d.handlers == nil {
		d.handlers = make(map[string]Handler)
	}
	d.handlers[addr] = handler
}

// RegisterFunc registers a plain function as the handler for addr.
func (d *Dispatcher) RegisterFunc(addr string, handler HandlerFunc) {
	d.Register(addr, handler)
}

// Dispatch walks every message in the packet, in order, and invokes
// the handler registered for its address, if any. Handlers run
// synchronously on the calling goroutine. A panicking handler does not
// stop dispatch of the remaining messages; the panic is swallowed at
// this boundary.
func (d *Dispatcher) Dispatch(packet Packet) {
	for msg := range packet.Messages() {
		if handler, ok := d.handlers[msg.Address]; ok {
			dispatchOne(handler, msg)
		}
	}
}

func dispatchOne(handler Handler, msg *Message) {
	defer func() {
		recover()
	}()
	handler.HandleMessage(msg)
}
