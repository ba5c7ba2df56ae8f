// Package rewrite edits the configuration files of a materialized project.
//
// JSON files are edited through Document, an ordered tree that keeps unknown
// fields and key order across a round trip. Text files are edited through
// Pattern, an anchored regular expression substitution.
package rewrite

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrNotObject is returned when a document's top-level value is not an object.
var ErrNotObject = errors.New("top-level value is not an object")

// Document is a parsed JSON object that preserves key order and nesting.
// Values are held as yaml.v3 nodes, whose mapping content keeps key order.
type Document struct {
	root *yaml.Node
}

// Object is a JSON object inside a Document.
type Object struct {
	node *yaml.Node
}

// Array is a JSON array inside a Document.
type Array struct {
	node *yaml.Node
}

// ParseDocument parses a JSON object. Numbers keep their literal text.
func ParseDocument(data []byte) (*Document, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	root, err := decodeValue(dec)
	if errors.Is(err, io.EOF) && len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrNotObject
	}
	if err != nil {
		return nil, err
	}
	if tok, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("offset %d: unexpected %v after top-level value", dec.InputOffset(), tok)
	}
	if root.Kind != yaml.MappingNode {
		return nil, ErrNotObject
	}
	return &Document{root: root}, nil
}

func decodeValue(dec *json.Decoder) (*yaml.Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
			for dec.More() {
				kt, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := kt.(string)
				if !ok {
					return nil, fmt.Errorf("offset %d: object key is not a string", dec.InputOffset())
				}
				v, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				n.Content = append(n.Content, stringNode(key), v)
			}
			return n, closeDelim(dec)
		case '[':
			n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
			for dec.More() {
				v, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				n.Content = append(n.Content, v)
			}
			return n, closeDelim(dec)
		}
		return nil, fmt.Errorf("offset %d: unexpected %q", dec.InputOffset(), t)
	case string:
		return stringNode(t), nil
	case json.Number:
		tag := "!!int"
		if strings.ContainsAny(t.String(), ".eE") {
			tag = "!!float"
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: t.String()}, nil
	case bool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(t)}, nil
	case nil:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}, nil
	}
	return nil, fmt.Errorf("offset %d: unexpected token %v", dec.InputOffset(), tok)
}

// closeDelim consumes the closing bracket of an object or array.
func closeDelim(dec *json.Decoder) error {
	_, err := dec.Token()
	return err
}

func stringNode(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s, Style: yaml.DoubleQuotedStyle}
}

// Root returns the top-level object.
func (d *Document) Root() *Object {
	return &Object{node: d.root}
}

// Encode serializes the document as JSON indented with two spaces and
// terminated by a newline.
func (d *Document) Encode() ([]byte, error) {
	var buf bytes.Buffer
	if err := encodeNode(&buf, d.root, 0); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// Has reports whether the object has key.
func (o *Object) Has(key string) bool {
	_, ok := o.Get(key)
	return ok
}

// Get returns the value node for key.
func (o *Object) Get(key string) (*yaml.Node, bool) {
	for i := 0; i+1 < len(o.node.Content); i += 2 {
		if o.node.Content[i].Value == key {
			return o.node.Content[i+1], true
		}
	}
	return nil, false
}

// Object returns the value for key when it is an object.
func (o *Object) Object(key string) (*Object, bool) {
	v, ok := o.Get(key)
	if !ok || v.Kind != yaml.MappingNode {
		return nil, false
	}
	return &Object{node: v}, true
}

// Array returns the value for key when it is an array.
func (o *Object) Array(key string) (*Array, bool) {
	v, ok := o.Get(key)
	if !ok || v.Kind != yaml.SequenceNode {
		return nil, false
	}
	return &Array{node: v}, true
}

// Set sets key to a string value. An existing key keeps its position; a new
// key is appended.
func (o *Object) Set(key, value string) {
	v := stringNode(value)
	for i := 0; i+1 < len(o.node.Content); i += 2 {
		if o.node.Content[i].Value == key {
			o.node.Content[i+1] = v
			return
		}
	}
	o.node.Content = append(o.node.Content, stringNode(key), v)
}

// String returns the string value for key.
func (o *Object) String(key string) (string, bool) {
	v, ok := o.Get(key)
	if !ok || v.Kind != yaml.ScalarNode || v.Tag != "!!str" {
		return "", false
	}
	return v.Value, true
}

// Len returns the number of elements.
func (a *Array) Len() int {
	return len(a.node.Content)
}

// Index returns the element at i.
func (a *Array) Index(i int) (*yaml.Node, bool) {
	if i < 0 || i >= len(a.node.Content) {
		return nil, false
	}
	return a.node.Content[i], true
}

// Object returns the element at i when it is an object.
func (a *Array) Object(i int) (*Object, bool) {
	v, ok := a.Index(i)
	if !ok || v.Kind != yaml.MappingNode {
		return nil, false
	}
	return &Object{node: v}, true
}

func encodeNode(buf *bytes.Buffer, n *yaml.Node, depth int) error {
	switch n.Kind {
	case yaml.MappingNode:
		if len(n.Content) == 0 {
			buf.WriteString("{}")
			return nil
		}
		buf.WriteString("{\n")
		for i := 0; i+1 < len(n.Content); i += 2 {
			writeIndent(buf, depth+1)
			if err := encodeString(buf, n.Content[i].Value); err != nil {
				return err
			}
			buf.WriteString(": ")
			if err := encodeNode(buf, n.Content[i+1], depth+1); err != nil {
				return err
			}
			if i+2 < len(n.Content) {
				buf.WriteByte(',')
			}
			buf.WriteByte('\n')
		}
		writeIndent(buf, depth)
		buf.WriteByte('}')
	case yaml.SequenceNode:
		if len(n.Content) == 0 {
			buf.WriteString("[]")
			return nil
		}
		buf.WriteString("[\n")
		for i, item := range n.Content {
			writeIndent(buf, depth+1)
			if err := encodeNode(buf, item, depth+1); err != nil {
				return err
			}
			if i+1 < len(n.Content) {
				buf.WriteByte(',')
			}
			buf.WriteByte('\n')
		}
		writeIndent(buf, depth)
		buf.WriteByte(']')
	case yaml.ScalarNode:
		return encodeScalar(buf, n)
	default:
		return fmt.Errorf("line %d: unsupported node kind %d", n.Line, n.Kind)
	}
	return nil
}

func encodeScalar(buf *bytes.Buffer, n *yaml.Node) error {
	switch n.Tag {
	case "!!bool", "!!int", "!!float":
		buf.WriteString(n.Value)
	case "!!null":
		buf.WriteString("null")
	default:
		return encodeString(buf, n.Value)
	}
	return nil
}

// encodeString writes s as a JSON string without HTML escaping.
func encodeString(buf *bytes.Buffer, s string) error {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	buf.Write(bytes.TrimSuffix(tmp.Bytes(), []byte("\n")))
	return nil
}

func writeIndent(buf *bytes.Buffer, depth int) {
	for range depth {
		buf.WriteString("  ")
	}
}
