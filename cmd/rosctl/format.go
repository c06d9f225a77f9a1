package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"

	"github.com/rickicode/mikrotik-billing/internal/entities"
	"github.com/rickicode/mikrotik-billing/internal/objects/dto"
)

func formatConnectionInfo(info entities.ConnectionInfo) string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"HOST", "STATE", "OFFLINE", "ATTEMPTS", "LAST CONNECTED", "LAST ERROR"})

	lastConnected := "-"
	if info.LastConnectedAt != nil {
		lastConnected = info.LastConnectedAt.Format("2006-01-02 15:04:05")
	}

	t.AppendRow(table.Row{
		fmt.Sprintf("%s:%d", info.Host, info.Port),
		info.State,
		info.IsOffline,
		info.ReconnectAttempts,
		lastConnected,
		info.LastError,
	})

	return t.Render()
}

func formatSyncReport(report entities.SyncReport) string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"STEP", "CHECKED", "WRITTEN", "FAILED", "SKIPPED"})

	var failures []string
	for _, step := range []entities.SyncStep{report.Restore, report.Expire, report.FirstLogin} {
		t.AppendRow(table.Row{step.Name, step.Checked, step.Written, step.Failed, step.Skipped})
		failures = append(failures, step.Messages...)
	}
	t.AppendFooter(table.Row{"TOTAL", "", report.Writes(), report.Failures(), ""})

	output := t.Render()
	if len(failures) > 0 {
		output += "\n" + strings.Join(failures, "\n")
	}

	return output
}

func formatReply(reply dto.Reply) string {
	var lines []string
	if !lo.IsEmpty(reply.Ret) {
		lines = append(lines, "ret: "+reply.Ret)
	}
	if reply.Cached {
		lines = append(lines, "served from cache")
	}
	if reply.Degraded {
		lines = append(lines, fmt.Sprintf("degraded reply (offline: %t): %s", reply.Offline, reply.Cause))
	}
	if len(reply.Rows) > 0 {
		lines = append(lines, formatRows(reply.Rows, nil))
	}

	return strings.Join(lines, "\n")
}

// formatRows renders rows as a table. Without columns every key is shown, sorted.
func formatRows(rows []entities.Row, columns []string) string {
	if len(columns) == 0 {
		columns = lo.Uniq(lo.FlatMap(rows, func(row entities.Row, _ int) []string {
			return lo.Keys(row)
		}))
		slices.Sort(columns)
	}

	t := table.NewWriter()
	t.AppendHeader(lo.Map(append([]string{"#"}, columns...), func(column string, _ int) any {
		return strings.ToUpper(column)
	}))

	for i, row := range rows {
		values := table.Row{i + 1}
		for _, column := range columns {
			values = append(values, row[column])
		}
		t.AppendRow(values)
	}

	return t.Render()
}
