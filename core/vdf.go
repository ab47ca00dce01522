package core

import (
	"fmt"
	"strings"
)

// Parser for Valve's text KeyValues format as found in libraryfolders.vdf
// and appmanifest_*.acf. Keys and string values are quoted, objects are
// brace-delimited, // starts a line comment, and the document root is an
// implicit object with no braces and no key. Child order follows document
// order and duplicate keys are kept as-is.

type VdfKind int

const (
	VdfObject VdfKind = iota
	VdfString
)

// MaxVdfDepth bounds object nesting so a malicious document cannot
// drive the parser into unbounded recursion.
const MaxVdfDepth = 128

type VdfNode struct {
	Kind     VdfKind
	Key      string
	Value    string
	Children []*VdfNode
}

type vdfParser struct {
	src []byte
	pos int
}

func ParseVdf(src []byte) (*VdfNode, error) {
	p := &vdfParser{src: src}
	root := &VdfNode{Kind: VdfObject}
	if err := p.parsePairs(root, 0); err != nil {
		return nil, err
	}
	return root, nil
}

// parsePairs reads key/value pairs into parent until EOF (depth 0) or a
// closing brace (nested objects).
func (p *vdfParser) parsePairs(parent *VdfNode, depth int) error {
	for {
		p.skipInsignificant()
		if p.pos >= len(p.src) {
			if depth > 0 {
				return fmt.Errorf("%w: unexpected end of document inside object %q", ErrSyntax, parent.Key)
			}
			return nil
		}

		switch p.src[p.pos] {
		case '}':
			if depth == 0 {
				return fmt.Errorf("%w: unexpected '}' at top level", ErrSyntax)
			}
			p.pos++
			return nil
		case '"':
		default:
			return fmt.Errorf("%w: expected quoted key, found %q", ErrSyntax, p.src[p.pos])
		}

		key, err := p.quotedString()
		if err != nil {
			return err
		}

		p.skipInsignificant()
		if p.pos >= len(p.src) {
			return fmt.Errorf("%w: expected value for key %q, found end of document", ErrSyntax, key)
		}

		switch p.src[p.pos] {
		case '{':
			if depth+1 > MaxVdfDepth {
				return fmt.Errorf("%w: object nesting exceeds %v levels", ErrSyntax, MaxVdfDepth)
			}
			p.pos++
			child := &VdfNode{Kind: VdfObject, Key: key}
			if err := p.parsePairs(child, depth+1); err != nil {
				return err
			}
			parent.Children = append(parent.Children, child)
		case '"':
			value, err := p.quotedString()
			if err != nil {
				return err
			}
			parent.Children = append(parent.Children, &VdfNode{
				Kind:  VdfString,
				Key:   key,
				Value: value,
			})
		default:
			return fmt.Errorf("%w: expected value for key %q, found %q", ErrSyntax, key, p.src[p.pos])
		}
	}
}

func (p *vdfParser) skipInsignificant() {
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		if c == ' ' || c == '\t' || c == '\r' || c == '\n' {
			p.pos++
			continue
		}
		if c == '/' && p.pos+1 < len(p.src) && p.src[p.pos+1] == '/' {
			for p.pos < len(p.src) && p.src[p.pos] != '\n' {
				p.pos++
			}
			continue
		}
		break
	}
}

// quotedString consumes a quoted token. Contents are copied verbatim with
// no escape processing, so the returned string does not alias the source
// buffer.
func (p *vdfParser) quotedString() (string, error) {
	p.pos++
	start := p.pos
	for p.pos < len(p.src) {
		if p.src[p.pos] == '"' {
			token := string(p.src[start:p.pos])
			p.pos++
			return token, nil
		}
		p.pos++
	}
	return "", fmt.Errorf("%w: unterminated quoted string", ErrSyntax)
}

// Child returns the first direct child with the given key, in document
// order. Duplicate keys are not collapsed, so later duplicates are
// unreachable through this lookup.
func (n *VdfNode) Child(key string) (*VdfNode, error) {
	for _, child := range n.Children {
		if child.Key == key {
			return child, nil
		}
	}
	return nil, fmt.Errorf("%w: no child %q", ErrNotFound, key)
}

func (n *VdfNode) AsString() (string, error) {
	if n.Kind != VdfString {
		return "", fmt.Errorf("%w: %q is an object, not a string", ErrWrongKind, n.Key)
	}
	return n.Value, nil
}

// ChildString is the common lookup-then-read path for leaf fields.
func (n *VdfNode) ChildString(key string) (string, error) {
	child, err := n.Child(key)
	if err != nil {
		return "", err
	}
	return child.AsString()
}

// Serialize renders the tree in the format's own print form. Parsing the
// output yields a structurally identical tree.
func (n *VdfNode) Serialize() string {
	var sb strings.Builder
	if n.Key == "" && n.Kind == VdfObject {
		for _, child := range n.Children {
			child.write(&sb, 0)
		}
	} else {
		n.write(&sb, 0)
	}
	return sb.String()
}

func (n *VdfNode) write(sb *strings.Builder, indent int) {
	tabs := strings.Repeat("\t", indent)
	if n.Kind == VdfString {
		fmt.Fprintf(sb, "%v\"%v\"\t\t\"%v\"\n", tabs, n.Key, n.Value)
		return
	}

	fmt.Fprintf(sb, "%v\"%v\"\n%v{\n", tabs, n.Key, tabs)
	for _, child := range n.Children {
		child.write(sb, indent+1)
	}
	fmt.Fprintf(sb, "%v}\n", tabs)
}
