package whatsapp

// Update is the webhook payload shape the Cloud API posts on inbound
// messages. Only the fields the bot reads are mapped.
type Update struct {
	Object string  `json:"object"`
	Entry  []Entry `json:"entry"`
}

type Entry struct {
	Changes []Change `json:"changes"`
}

type Change struct {
	Value Value `json:"value"`
}

type Value struct {
	Messages []Message `json:"messages"`
}

type Message struct {
	From string      `json:"from"`
	Type string      `json:"type"`
	Text MessageText `json:"text"`
}

type MessageText struct {
	Body string `json:"body"`
}

// FirstMessage digs the first inbound message out of an update, if any.
func (u Update) FirstMessage() (Message, bool) {
	if u.Object == "" {
		return Message{}, false
	}
	for _, entry := range u.Entry {
		for _, change := range entry.Changes {
			if len(change.Value.Messages) > 0 {
				return change.Value.Messages[0], true
			}
		}
	}
	return Message{}, false
}
