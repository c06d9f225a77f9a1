package entities

import (
	"encoding/json"
	"strings"
	"time"
)

type CommandKind string

const (
	CommandKindRead   CommandKind = "read"
	CommandKindCreate CommandKind = "create"
	CommandKindMutate CommandKind = "mutate"
)

func (k CommandKind) String() string {
	return string(k)
}

// Param is a single API word. Keys starting with "?" are query words.
type Param struct {
	Key   string `json:"key" validate:"required"`
	Value string `json:"value"`
}

func NewParam(key, value string) Param {
	return Param{
		Key:   key,
		Value: value,
	}
}

// IsQuery reports whether the param filters a print command.
func (p Param) IsQuery() bool {
	return strings.HasPrefix(p.Key, "?")
}

// Word returns the RouterOS API word for the param.
func (p Param) Word() string {
	if p.IsQuery() {
		return p.Key + "=" + p.Value
	}

	return "=" + p.Key + "=" + p.Value
}

// Command is a unit of work sent to the device. It is immutable after creation.
type Command struct {
	Path    string        `json:"path" validate:"required,startswith=/"`
	Params  []Param       `json:"params" validate:"dive"`
	Timeout time.Duration `json:"timeout"`
}

func NewCommand(path string, params ...Param) Command {
	return Command{
		Path:   path,
		Params: params,
	}
}

// WithTimeout returns a copy of the command with the timeout set.
func (c Command) WithTimeout(timeout time.Duration) Command {
	c.Timeout = timeout
	return c
}

// Verb returns the last path segment (print, add, set, remove...).
func (c Command) Verb() string {
	idx := strings.LastIndex(c.Path, "/")
	if idx < 0 {
		return c.Path
	}

	return c.Path[idx+1:]
}

// Family returns the resource family of the command, e.g. /ip/hotspot/user.
func (c Command) Family() string {
	idx := strings.LastIndex(c.Path, "/")
	if idx <= 0 {
		return c.Path
	}

	return c.Path[:idx]
}

func (c Command) Kind() CommandKind {
	switch c.Verb() {
	case "print", "getall", "get", "monitor":
		return CommandKindRead
	case "add":
		return CommandKindCreate
	default:
		return CommandKindMutate
	}
}

// Cacheable reports whether the result of the command may be served from cache.
func (c Command) Cacheable() bool {
	switch c.Verb() {
	case "print", "getall":
		return true
	default:
		return false
	}
}

// CacheKey is the path followed by the JSON-encoded params in their original order.
// Values may contain any separator, so they are never joined by hand.
func (c Command) CacheKey() string {
	if len(c.Params) == 0 {
		return c.Path
	}

	params, _ := json.Marshal(c.Params)
	return c.Path + "|" + string(params)
}

// Sentence builds the API sentence for the command.
func (c Command) Sentence() []string {
	sentence := make([]string, 0, len(c.Params)+1)
	sentence = append(sentence, c.Path)
	for _, p := range c.Params {
		sentence = append(sentence, p.Word())
	}

	return sentence
}
