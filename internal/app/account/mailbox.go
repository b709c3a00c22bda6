package account

// Message is a single mailbox entry. The sender login is captured at send
// time and stays as-is even if the sending account is later renamed.
type Message struct {
	Sender string `json:"sender"`
	Body   string `json:"body"`
}

// Mailbox is a per-account FIFO queue of inbound messages. Messages are
// appended at the tail on send and removed from the head on read.
type Mailbox []Message

// Push appends a message at the tail of the mailbox.
func (m *Mailbox) Push(msg Message) {
	*m = append(*m, msg)
}

// Pop removes and returns the head message. The second return value is false
// when the mailbox is empty.
func (m *Mailbox) Pop() (Message, bool) {
	if len(*m) == 0 {
		return Message{}, false
	}

	msg := (*m)[0]
	*m = (*m)[1:]
	return msg, true
}

// Len returns the number of queued messages.
func (m Mailbox) Len() int {
	return len(m)
}
