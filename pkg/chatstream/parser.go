// Package chatstream reassembles the chat completion event stream into a
// growing assistant message. The wire format is newline-delimited records
// prefixed "data: ", each carrying a JSON delta, terminated by a literal
// "data: [DONE]" record or end of stream.
package chatstream

import (
	"encoding/json"
	"io"
	"strings"
)

const (
	framePrefix  = "data: "
	doneSentinel = "[DONE]"
)

type chunkPayload struct {
	Choices []struct {
		Delta struct {
			Content string `json:"content"`
		} `json:"delta"`
	} `json:"choices"`
}

// Parser consumes raw stream bytes in arbitrarily split chunks and emits
// "content so far" snapshots. Content only ever grows; there is no
// rollback protocol.
type Parser struct {
	buf     string
	content strings.Builder
	done    bool
}

func NewParser() *Parser {
	return &Parser{}
}

// Feed appends a chunk to the decode buffer and extracts every complete
// record from it. It returns one snapshot of the full content per extracted
// fragment, in order.
func (p *Parser) Feed(chunk []byte) []string {
	if p.done {
		return nil
	}
	p.buf += string(chunk)

	var snapshots []string
	for {
		idx := strings.IndexByte(p.buf, '\n')
		if idx < 0 {
			break
		}
		line := p.buf[:idx]
		p.buf = p.buf[idx+1:]
		line = strings.TrimSuffix(line, "\r")

		if line == "" || strings.HasPrefix(line, ":") {
			continue
		}
		if !strings.HasPrefix(line, framePrefix) {
			continue
		}
		payload := strings.TrimSpace(line[len(framePrefix):])
		if payload == doneSentinel {
			p.done = true
			break
		}

		var parsed chunkPayload
		if err := json.Unmarshal([]byte(payload), &parsed); err != nil {
			// The record was split mid-chunk; push it back and wait
			// for more bytes instead of discarding it.
			p.buf = line + "\n" + p.buf
			break
		}
		for _, choice := range parsed.Choices {
			if choice.Delta.Content == "" {
				continue
			}
			p.content.WriteString(choice.Delta.Content)
			snapshots = append(snapshots, p.content.String())
		}
	}
	return snapshots
}

// Content returns the full reconstructed message so far.
func (p *Parser) Content() string {
	return p.content.String()
}

// Done reports whether the terminating sentinel was seen.
func (p *Parser) Done() bool {
	return p.done
}

// Consume reads r to completion, invoking onSnapshot for every new content
// snapshot, and returns the final message. A pending partial line at end of
// stream is silently dropped.
func Consume(r io.Reader, onSnapshot func(string)) (string, error) {
	p := NewParser()
	buf := make([]byte, 4096)
	for !p.Done() {
		n, err := r.Read(buf)
		if n > 0 {
			for _, snapshot := range p.Feed(buf[:n]) {
				if onSnapshot != nil {
					onSnapshot(snapshot)
				}
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return p.Content(), err
		}
	}
	return p.Content(), nil
}
