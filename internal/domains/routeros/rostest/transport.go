// Package rostest provides an in-memory RouterOS device for tests.
package rostest

import (
	"context"
	"fmt"
	"net"
	"strings"
	"sync"
	"time"

	"github.com/go-routeros/routeros/v3"
	"github.com/go-routeros/routeros/v3/proto"
	"github.com/samber/lo"

	"github.com/rickicode/mikrotik-billing/internal/entities"
)

// Transport emulates the print/add/set/remove verbs on in-memory tables keyed by family.
type Transport struct {
	mu sync.Mutex

	tables map[string][]entities.Row
	nextID int

	delay      time.Duration
	connectErr error
	loginErr   error
	queryErr   func(path string) error

	connected bool
	connects  int
	logins    int
	calls     []string
	writes    int
}

func NewTransport() *Transport {
	return &Transport{
		tables: map[string][]entities.Row{
			"/system/identity": {{"name": "MikroTik"}},
		},
		nextID: 1,
	}
}

// DeviceError builds the error the device returns on a !trap.
func DeviceError(message string) error {
	return &routeros.DeviceError{
		Sentence: &proto.Sentence{
			Word: "!trap",
			Map:  map[string]string{"message": message},
		},
	}
}

// SetDelay makes every query take d.
func (t *Transport) SetDelay(d time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.delay = d
}

func (t *Transport) SetConnectError(err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.connectErr = err
}

func (t *Transport) SetLoginError(err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.loginErr = err
}

// SetQueryError installs a hook consulted before every query. A nil result lets the query run.
func (t *Transport) SetQueryError(fn func(path string) error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.queryErr = fn
}

// Seed appends rows to the family table, assigning ids where missing.
func (t *Transport) Seed(family string, rows ...entities.Row) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, row := range rows {
		row = lo.Assign(entities.Row{}, row)
		if _, ok := row[".id"]; !ok {
			row[".id"] = t.newID()
		}
		if _, ok := row["disabled"]; !ok {
			row["disabled"] = "false"
		}
		t.tables[family] = append(t.tables[family], row)
	}
}

// Rows returns a copy of the family table.
func (t *Transport) Rows(family string) []entities.Row {
	t.mu.Lock()
	defer t.mu.Unlock()

	return copyRows(t.tables[family])
}

// Row returns the row with the given name.
func (t *Transport) Row(family, name string) (row entities.Row, ok bool) {
	return lo.Find(t.Rows(family), func(item entities.Row) bool {
		return item["name"] == name
	})
}

// Calls returns the paths of all queries in order, including the liveness query on connect.
func (t *Transport) Calls() []string {
	t.mu.Lock()
	defer t.mu.Unlock()

	return append([]string(nil), t.calls...)
}

// CallCount returns how many times path was queried.
func (t *Transport) CallCount(path string) int {
	return lo.Count(t.Calls(), path)
}

// Writes returns the number of add/set/remove commands applied.
func (t *Transport) Writes() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.writes
}

func (t *Transport) Connects() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.connects
}

func (t *Transport) Logins() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.logins
}

// ResetCounters forgets calls, writes and connects.
func (t *Transport) ResetCounters() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.calls = nil
	t.writes = 0
	t.connects = 0
	t.logins = 0
}

func (t *Transport) Connect(_ context.Context, _ string) (err error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.connects++
	if t.connectErr != nil {
		return t.connectErr
	}

	t.connected = true
	return nil
}

func (t *Transport) Login(_, _ string) (err error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.logins++
	if !t.connected {
		return net.ErrClosed
	}

	return t.loginErr
}

func (t *Transport) RunQuery(path string, params []entities.Param) (reply entities.Reply, err error) {
	t.mu.Lock()
	delay := t.delay
	t.mu.Unlock()

	if delay > 0 {
		time.Sleep(delay)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.calls = append(t.calls, path)
	if !t.connected {
		return reply, net.ErrClosed
	}

	if t.queryErr != nil {
		if err = t.queryErr(path); err != nil {
			return reply, err
		}
	}

	cmd := entities.NewCommand(path, params...)
	family := cmd.Family()
	switch cmd.Verb() {
	case "print", "getall":
		reply.Rows = t.filter(family, params)
		return reply, nil

	case "add":
		row := entities.Row{
			".id":      t.newID(),
			"disabled": "false",
		}
		for _, param := range params {
			row[param.Key] = param.Value
		}

		if _, exists := lo.Find(t.tables[family], func(item entities.Row) bool {
			return !lo.IsEmpty(row["name"]) && item["name"] == row["name"]
		}); exists {
			return reply, DeviceError("failure: already have user with this name")
		}

		t.tables[family] = append(t.tables[family], row)
		t.writes++
		reply.Ret = row[".id"]
		return reply, nil

	case "set":
		row, ok := t.find(family, params)
		if !ok {
			return reply, DeviceError("no such item")
		}

		for _, param := range params {
			if param.Key != ".id" {
				row[param.Key] = param.Value
			}
		}
		t.writes++
		return reply, nil

	case "remove":
		row, ok := t.find(family, params)
		if !ok {
			return reply, DeviceError("no such item")
		}

		t.tables[family] = lo.Reject(t.tables[family], func(item entities.Row, _ int) bool {
			return item[".id"] == row[".id"]
		})
		t.writes++
		return reply, nil

	default:
		return reply, DeviceError("no such command prefix")
	}
}

func (t *Transport) Close() (err error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.connected = false
	return nil
}

func (t *Transport) filter(family string, params []entities.Param) []entities.Row {
	rows := lo.Filter(t.tables[family], func(row entities.Row, _ int) bool {
		return lo.EveryBy(params, func(param entities.Param) bool {
			if !param.IsQuery() {
				return true
			}

			return row[strings.TrimPrefix(param.Key, "?")] == param.Value
		})
	})

	return copyRows(rows)
}

func (t *Transport) find(family string, params []entities.Param) (row entities.Row, ok bool) {
	id, ok := lo.Find(params, func(param entities.Param) bool {
		return param.Key == ".id"
	})
	if !ok {
		return nil, false
	}

	return lo.Find(t.tables[family], func(item entities.Row) bool {
		return item[".id"] == id.Value
	})
}

func (t *Transport) newID() string {
	id := fmt.Sprintf("*%X", t.nextID)
	t.nextID++
	return id
}

func copyRows(rows []entities.Row) []entities.Row {
	return lo.Map(rows, func(row entities.Row, _ int) entities.Row {
		return lo.Assign(entities.Row{}, row)
	})
}
