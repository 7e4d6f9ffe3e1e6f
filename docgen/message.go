package docgen

// message.go — the ordered output sequence a generation produces.

// MIMETypeDocx is the content type reported for generated attachments.
const MIMETypeDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// MessageKind distinguishes the two message shapes a generation emits.
type MessageKind int

const (
	// MessageText carries a status line for the user.
	MessageText MessageKind = iota
	// MessageBlob carries the generated document as a binary attachment.
	MessageBlob
)

// Message is one entry of a generation's output sequence. A successful
// run yields a text message followed by a blob message; empty input and
// failures yield a single text message.
type Message struct {
	Kind MessageKind
	Text string // MessageText only
	Err  bool   // set when Text describes a failed generation
	Blob []byte // MessageBlob only
	Meta BlobMeta
}

// BlobMeta describes a binary attachment to the receiving host.
type BlobMeta struct {
	MIMEType string
	Filename string
}

// TextMessage builds a status message.
func TextMessage(text string) Message {
	return Message{Kind: MessageText, Text: text}
}

// ErrorMessage builds a failure message. Hosts with an error channel
// (the MCP server) relay it there; the text alone still tells the story.
func ErrorMessage(text string) Message {
	return Message{Kind: MessageText, Text: text, Err: true}
}

// BlobMessage builds an attachment message.
func BlobMessage(blob []byte, meta BlobMeta) Message {
	return Message{Kind: MessageBlob, Blob: blob, Meta: meta}
}
