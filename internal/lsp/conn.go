package lsp

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/textproto"
	"strconv"
	"sync"
)

// Message is any JSON-RPC 2.0 frame: a request has ID and Method, a
// notification only Method, a response ID plus Result or Error.
type Message struct {
	JSONRPC string           `json:"jsonrpc"`
	ID      *json.RawMessage `json:"id,omitempty"`
	Method  string           `json:"method,omitempty"`
	Params  json.RawMessage  `json:"params,omitempty"`
	Result  json.RawMessage  `json:"result,omitempty"`
	Error   *ResponseError   `json:"error,omitempty"`
}

// ResponseError is the error member of a failed response.
type ResponseError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *ResponseError) Error() string { return fmt.Sprintf("jsonrpc %d: %s", e.Code, e.Message) }

var errNoContentLength = errors.New("lsp: frame without Content-Length")

// conn frames messages with LSP base-protocol headers. Reads are not
// synchronized; writes are.
type conn struct {
	hdr *textproto.Reader
	r   *bufio.Reader

	mu sync.Mutex
	w  io.Writer
}

func newConn(r io.Reader, w io.Writer) *conn {
	br := bufio.NewReader(r)
	return &conn{hdr: textproto.NewReader(br), r: br, w: w}
}

// read returns the next message, or io.EOF once the peer is gone.
func (c *conn) read() (*Message, error) {
	h, err := c.hdr.ReadMIMEHeader()
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, io.EOF
		}
		return nil, err
	}
	v := h.Get("Content-Length")
	if v == "" {
		return nil, errNoContentLength
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return nil, fmt.Errorf("lsp: bad Content-Length %q", v)
	}
	body := make([]byte, n)
	if _, err := io.ReadFull(c.r, body); err != nil {
		return nil, fmt.Errorf("lsp: short body: %w", err)
	}
	msg := new(Message)
	if err := json.Unmarshal(body, msg); err != nil {
		return nil, fmt.Errorf("lsp: decode frame: %w", err)
	}
	return msg, nil
}

func (c *conn) write(msg *Message) error {
	msg.JSONRPC = "2.0"
	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, err := fmt.Fprintf(c.w, "Content-Length: %d\r\n\r\n", len(body)); err != nil {
		return err
	}
	_, err = c.w.Write(body)
	return err
}

func (c *conn) reply(id *json.RawMessage, result any, rerr *ResponseError) error {
	msg := &Message{ID: id, Error: rerr}
	if rerr == nil {
		raw, err := json.Marshal(result)
		if err != nil {
			return err
		}
		msg.Result = raw
	}
	return c.write(msg)
}

func (c *conn) notify(method string, params any) error {
	raw, err := json.Marshal(params)
	if err != nil {
		return err
	}
	return c.write(&Message{Method: method, Params: raw})
}
