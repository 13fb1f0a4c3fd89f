package coach

import (
	"errors"
	"strings"
	"sync"
	"time"

	"smarta/internal/domain"
)

// DefaultDelay is how long the coach "thinks" before replying.
const DefaultDelay = time.Second

// ErrClosed is returned by Send after Close.
var ErrClosed = errors.New("conversation closed")

type pending struct {
	question string
	due      time.Time
	out      chan domain.ChatMessage
}

// Conversation is a chat transcript with delayed coach replies. Each reply
// is due one delay after its question was sent; a single worker appends
// them in the order questions were sent.
type Conversation struct {
	mu     sync.Mutex
	wake   *sync.Cond
	msgs   []domain.ChatMessage
	nextID int
	queue  []pending
	closed bool
	done   chan struct{}

	hookMu   sync.Mutex
	delay    time.Duration
	now      func() time.Time
	onChange func([]domain.ChatMessage)
}

// Option configures a Conversation.
type Option func(*Conversation)

// WithDelay sets the reply delay. Zero replies immediately.
func WithDelay(d time.Duration) Option { return func(c *Conversation) { c.delay = d } }

// WithClock replaces time.Now for message timestamps.
func WithClock(now func() time.Time) Option { return func(c *Conversation) { c.now = now } }

// WithHistory resumes a stored transcript instead of starting with the
// greeting. An empty history is ignored.
func WithHistory(msgs []domain.ChatMessage) Option {
	return func(c *Conversation) {
		if len(msgs) > 0 {
			c.msgs = append([]domain.ChatMessage(nil), msgs...)
		}
	}
}

// OnChange registers fn to receive a copy of the transcript after every
// append. Calls are serialised and the last call always sees the latest
// state.
func OnChange(fn func([]domain.ChatMessage)) Option {
	return func(c *Conversation) { c.onChange = fn }
}

// NewConversation starts the reply worker. Callers must Close it.
func NewConversation(opts ...Option) *Conversation {
	c := &Conversation{
		delay: DefaultDelay,
		now:   time.Now,
		done:  make(chan struct{}),
	}
	c.wake = sync.NewCond(&c.mu)
	for _, o := range opts {
		o(c)
	}
	if len(c.msgs) == 0 {
		c.msgs = []domain.ChatMessage{{ID: 1, Text: Greeting, Sender: domain.SenderAI, Timestamp: c.now()}}
	}
	for _, m := range c.msgs {
		if m.ID >= c.nextID {
			c.nextID = m.ID + 1
		}
	}
	go c.run()
	return c
}

// Send appends the user's message and queues the coach reply, which is
// delivered on the returned channel once appended.
func (c *Conversation) Send(text string) (domain.ChatMessage, <-chan domain.ChatMessage, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return domain.ChatMessage{}, nil, domain.ErrEmptyMessage
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return domain.ChatMessage{}, nil, ErrClosed
	}
	msg := c.appendLocked(domain.SenderUser, text)
	out := make(chan domain.ChatMessage, 1)
	c.queue = append(c.queue, pending{question: text, due: time.Now().Add(c.delay), out: out})
	c.wake.Signal()
	c.mu.Unlock()

	c.notify()
	return msg, out, nil
}

// Messages returns a copy of the transcript.
func (c *Conversation) Messages() []domain.ChatMessage {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]domain.ChatMessage(nil), c.msgs...)
}

// ShowSuggestions reports whether the suggested questions are still
// offered: only until the first exchange has happened.
func (c *Conversation) ShowSuggestions() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.msgs) <= 2
}

// Pending is the number of replies not yet delivered.
func (c *Conversation) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.queue)
}

// Close stops accepting questions and waits for queued replies to be
// delivered.
func (c *Conversation) Close() error {
	c.mu.Lock()
	c.closed = true
	c.wake.Broadcast()
	c.mu.Unlock()
	<-c.done
	return nil
}

func (c *Conversation) run() {
	defer close(c.done)
	for {
		c.mu.Lock()
		for len(c.queue) == 0 && !c.closed {
			c.wake.Wait()
		}
		if len(c.queue) == 0 {
			c.mu.Unlock()
			return
		}
		p := c.queue[0]
		c.mu.Unlock()

		if wait := time.Until(p.due); wait > 0 {
			time.Sleep(wait)
		}

		c.mu.Lock()
		c.queue = c.queue[1:]
		msg := c.appendLocked(domain.SenderAI, Respond(p.question).Text)
		c.mu.Unlock()

		c.notify()
		p.out <- msg
		close(p.out)
	}
}

func (c *Conversation) appendLocked(from domain.Sender, text string) domain.ChatMessage {
	m := domain.ChatMessage{ID: c.nextID, Text: text, Sender: from, Timestamp: c.now()}
	c.nextID++
	c.msgs = append(c.msgs, m)
	return m
}

func (c *Conversation) notify() {
	if c.onChange == nil {
		return
	}
	c.hookMu.Lock()
	defer c.hookMu.Unlock()
	c.onChange(c.Messages())
}
